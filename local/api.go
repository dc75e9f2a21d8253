package local
import (
	"net/http"

	"pixelvault/util"
	"pixelvault/config"
)

/*
 * package local exposes the engine over a loopback http api, so that
 * frontends in other languages can drive it without linking against
 * the module. every endpoint speaks json, carriers and files travel
 * base64-encoded.
 */
func RunApiServer( conf *config.Config, logger *util.Logger ) error {

	mux := NewApiMux( conf, logger )

	util.DebugPrintln( util.CyanColor + "Listening and serving at address " + conf.Server.Address + util.ResetColor )
	return http.ListenAndServe( conf.Server.Address, mux )
}

// NewApiMux is split out so tests can drive the routes through
// httptest without binding a socket.
func NewApiMux( conf *config.Config, logger *util.Logger ) *http.ServeMux {

	mux := http.NewServeMux()

	// hide a text message in a decoy image
	mux.HandleFunc("POST /api/encode", func(w http.ResponseWriter, r *http.Request) {
		handleEncode( w, r, logger, conf, false )
	})

	// recover a text message
	mux.HandleFunc("POST /api/decode", func(w http.ResponseWriter, r *http.Request) {
		handleDecode( w, r, logger, conf, false )
	})

	// hide an arbitrary file in a decoy image
	mux.HandleFunc("POST /api/encode-file", func(w http.ResponseWriter, r *http.Request) {
		handleEncode( w, r, logger, conf, true )
	})

	// recover a hidden file
	mux.HandleFunc("POST /api/decode-file", func(w http.ResponseWriter, r *http.Request) {
		handleDecode( w, r, logger, conf, true )
	})

	// report how much a carrier can hold
	mux.HandleFunc("POST /api/capacity", func(w http.ResponseWriter, r *http.Request) {
		handleCapacity( w, r, logger )
	})

	// statistical look at a carrier's least significant bits
	mux.HandleFunc("POST /api/analyze", func(w http.ResponseWriter, r *http.Request) {
		handleAnalyze( w, r, logger )
	})

	return mux
}
