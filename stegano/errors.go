package stegano
import (
	"fmt"
	"errors"
)

/*
 * every failure of the engine is classified into one of these kinds.
 * library faults (codecs, filesystem) are wrapped at the component
 * boundary so callers never see an unclassified error.
 */
var (
	ErrCarrierNotFound          = errors.New("stegano: carrier not found")
	ErrCarrierTooSmall          = errors.New("stegano: carrier too small")
	ErrPayloadTooLarge          = errors.New("stegano: payload too large")
	ErrNoPayloadFound           = errors.New("stegano: no payload found")
	ErrMetadataMalformed        = errors.New("stegano: metadata malformed")
	ErrPasswordRequired         = errors.New("stegano: password required")
	ErrDecryptionFailed         = errors.New("stegano: decryption failed")
	ErrAddressingSeedMissing    = errors.New("stegano: addressing seed missing")
	ErrUnsupportedCarrierFormat = errors.New("stegano: unsupported carrier format")
	ErrFileWriteError           = errors.New("stegano: file write error")
)

// CapacityError reports the exact bit counts when a payload does not
// fit its carrier. It matches both ErrPayloadTooLarge and
// ErrCarrierTooSmall under errors.Is, since they describe the same
// mismatch from two points of view.
type CapacityError struct {
	RequiredBits	int
	AvailableBits	int
}

func NewCapacityError( required, available int ) *CapacityError {
	return &CapacityError{
		RequiredBits: required,
		AvailableBits: available,
	}
}

func( e *CapacityError ) Error() string {
	return fmt.Sprintf( "stegano: payload too large (%d bits required, %d available)",
		e.RequiredBits, e.AvailableBits )
}

func( e *CapacityError ) Is( target error ) bool {
	return target == ErrPayloadTooLarge || target == ErrCarrierTooSmall
}
