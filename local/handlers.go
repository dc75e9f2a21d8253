package local
import (
	"io"
	"errors"
	"net/http"
	"encoding/json"
	"encoding/base64"

	"pixelvault/util"
	"pixelvault/config"
	"pixelvault/stegano"
	"pixelvault/stegano/img"
)

func writeJsonResponse( w http.ResponseWriter, status int, resp *Response ) {
	data, err := json.Marshal( resp )
	if err != nil {
		http.Error( w, "Internal Server Error", http.StatusInternalServerError )
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader( status )
	w.Write( data )
}

func writeError( w http.ResponseWriter, logger *util.Logger, err error ) {
	if logger != nil {
		logger.LogError( err )
	}
	writeJsonResponse( w, statusFor( err ), &Response{
		Success: false,
		Error: err.Error(),
	})
}

// map engine sentinels to http statuses, so clients can branch
// without parsing error strings.
func statusFor( err error ) int {
	switch {
	case errors.Is( err, stegano.ErrPayloadTooLarge ),
		errors.Is( err, stegano.ErrCarrierTooSmall ):
		return http.StatusRequestEntityTooLarge
	case errors.Is( err, stegano.ErrNoPayloadFound ):
		return http.StatusNotFound
	case errors.Is( err, stegano.ErrPasswordRequired ):
		return http.StatusUnauthorized
	case errors.Is( err, stegano.ErrDecryptionFailed ):
		return http.StatusForbidden
	case errors.Is( err, stegano.ErrUnsupportedCarrierFormat ):
		return http.StatusUnsupportedMediaType
	case errors.Is( err, stegano.ErrMetadataMalformed ),
		errors.Is( err, stegano.ErrAddressingSeedMissing ):
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

func parseJsonBody( r *http.Request, dst any ) error {
	if r == nil || r.Body == nil {
		return errors.New("empty request body")
	}
	defer r.Body.Close()
	data, err := io.ReadAll( r.Body )
	if err != nil {
		return err
	}
	return json.Unmarshal( data, dst )
}

func addressingFrom( random bool, seed int64 ) (stegano.AddressingMode, int64) {
	if random {
		return stegano.Random, seed
	}
	return stegano.Sequential, 0
}

func handleEncode( w http.ResponseWriter, r *http.Request,
			logger *util.Logger, conf *config.Config, fileMode bool ) {

	var req EncodeRequest
	if err := parseJsonBody( r, &req ); err != nil {
		writeError( w, logger, err )
		return
	}

	decoy, err := base64.StdEncoding.DecodeString( req.Carrier )
	if err != nil {
		writeError( w, logger, errors.New("carrier must be base64-encoded") )
		return
	}

	var payload []byte
	filename := ""
	if fileMode {
		if req.Filename == "" {
			writeError( w, logger, errors.New("file mode requires a filename") )
			return
		}
		payload, err = base64.StdEncoding.DecodeString( req.File )
		if err != nil {
			writeError( w, logger, errors.New("file must be base64-encoded") )
			return
		}
		filename = req.Filename
	} else {
		payload = []byte( util.FixUnicode( req.Message ) )
	}
	if len(payload) == 0 {
		writeError( w, logger, errors.New("nothing to hide") )
		return
	}

	mode, seed := addressingFrom( req.Random || conf.Stegano.Random, req.Seed )
	stego, md, err := img.Hide( decoy, payload, stegano.Options{
		Password: req.Password,
		Compress: req.Compress || conf.Stegano.Compress,
		Addressing: mode,
		Seed: seed,
		Filename: filename,
	})
	if err != nil {
		writeError( w, logger, err )
		return
	}

	writeJsonResponse( w, http.StatusOK, &Response{
		Success: true,
		Carrier: base64.StdEncoding.EncodeToString( stego ),
		Metadata: md,
	})
}

func handleDecode( w http.ResponseWriter, r *http.Request,
			logger *util.Logger, conf *config.Config, fileMode bool ) {

	var req DecodeRequest
	if err := parseJsonBody( r, &req ); err != nil {
		writeError( w, logger, err )
		return
	}

	stego, err := base64.StdEncoding.DecodeString( req.Carrier )
	if err != nil {
		writeError( w, logger, errors.New("carrier must be base64-encoded") )
		return
	}

	mode, seed := addressingFrom( req.Random, req.Seed )
	payload, md, err := img.Reveal( stego, stegano.Options{
		Password: req.Password,
		Addressing: mode,
		Seed: seed,
	})
	if err != nil {
		writeError( w, logger, err )
		return
	}

	resp := &Response{
		Success: true,
		Metadata: md,
	}
	if fileMode {
		resp.File = base64.StdEncoding.EncodeToString( payload )
	} else {
		resp.Message = string( payload )
	}
	writeJsonResponse( w, http.StatusOK, resp )
}

func handleCapacity( w http.ResponseWriter, r *http.Request, logger *util.Logger ) {

	var req CarrierRequest
	if err := parseJsonBody( r, &req ); err != nil {
		writeError( w, logger, err )
		return
	}
	decoy, err := base64.StdEncoding.DecodeString( req.Carrier )
	if err != nil {
		writeError( w, logger, errors.New("carrier must be base64-encoded") )
		return
	}

	capacity, err := img.Capacity( decoy )
	if err != nil {
		writeError( w, logger, err )
		return
	}
	writeJsonResponse( w, http.StatusOK, &Response{
		Success: true,
		Capacity: capacity,
	})
}

func handleAnalyze( w http.ResponseWriter, r *http.Request, logger *util.Logger ) {

	var req CarrierRequest
	if err := parseJsonBody( r, &req ); err != nil {
		writeError( w, logger, err )
		return
	}
	decoy, err := base64.StdEncoding.DecodeString( req.Carrier )
	if err != nil {
		writeError( w, logger, errors.New("carrier must be base64-encoded") )
		return
	}

	analysis, err := img.Analyze( decoy )
	if err != nil {
		writeError( w, logger, err )
		return
	}
	writeJsonResponse( w, http.StatusOK, &Response{
		Success: true,
		Analysis: analysis,
	})
}
