package local
import (
	"pixelvault/stegano"
)

type EncodeRequest struct {
	Carrier		string		`json:"carrier"`	// base64-encoded decoy image
	Message		string		`json:"message"`	// message mode payload
	File		string		`json:"file"`		// base64-encoded file mode payload
	Filename	string		`json:"filename"`	// required in file mode
	Password	string		`json:"password"`
	Compress	bool		`json:"compress"`
	Random		bool		`json:"random"`		// random bit addressing
	Seed		int64		`json:"seed"`		// 0 lets the engine pick one
}

type DecodeRequest struct {
	Carrier		string		`json:"carrier"`	// base64-encoded stego image
	Password	string		`json:"password"`
	Random		bool		`json:"random"`
	Seed		int64		`json:"seed"`
}

type CarrierRequest struct {
	Carrier		string		`json:"carrier"`	// base64-encoded image
}

type Response struct {
	Success		bool			`json:"success"`
	Message		string			`json:"message,omitempty"`	// recovered text
	Error		string			`json:"error,omitempty"`
	Carrier		string			`json:"carrier,omitempty"`	// base64-encoded stego image
	File		string			`json:"file,omitempty"`		// base64-encoded recovered file
	Metadata	*stegano.Metadata	`json:"metadata,omitempty"`
	Capacity	*stegano.Capacity	`json:"capacity,omitempty"`
	Analysis	*stegano.Analysis	`json:"analysis,omitempty"`
}
