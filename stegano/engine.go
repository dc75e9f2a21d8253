package stegano
import (
	"fmt"
	"unicode/utf8"

	"pixelvault/cryptography"
	"pixelvault/stegano/util"
)

/*
 * the orchestrator. Encode and Decode are pure functions of their
 * inputs: a carrier buffer, a payload buffer and an options value.
 * they never mutate the carrier they are given, so independent calls
 * on different carriers can run in parallel without locking. within a
 * call everything is strictly ordered by bit index, because decode
 * has to replay the same order.
 */
type Options struct {
	Password	string		// non-empty enables encryption
	Compress	bool
	Addressing	AddressingMode
	Seed		int64		// random addressing; 0 means "pick one" on encode
	Filename	string		// non-empty selects file mode
}

type Metadata struct {
	BitsUsed	int	`json:"bits_used"`
	CapacityBits	int	`json:"capacity_bits"`
	CapacityUsed	float64	`json:"capacity_used"`	// percent
	Encrypted	bool	`json:"encrypted"`
	Compressed	bool	`json:"compressed"`
	Addressing	string	`json:"addressing"`
	Seed		int64	`json:"seed,omitempty"`
	Filename	string	`json:"filename,omitempty"`
	Filesize	int64	`json:"filesize,omitempty"`
	Checksum	string	`json:"checksum,omitempty"`	// sha256 of the payload, file mode only
}

// Encode hides the payload in a clone of the carrier. the capacity
// check happens before any embedding, so a failed encode never
// produces a partially mutated carrier.
func Encode( carrier Carrier, payload []byte, opts Options ) (Carrier, *Metadata, error) {

	framed, env, err := buildFrame( payload, &opts, carrier.Kind() )
	if err != nil {
		return nil, nil, err
	}

	data := append( util.PackLength( uint64(len(framed)) ), framed... )
	bits := util.BytesToBits( data )

	total := carrier.TotalBits()
	if len(bits) > total {
		return nil, nil, NewCapacityError( len(bits), total )
	}

	addr := newAddressor( opts.Addressing, opts.Seed, total )
	out := carrier.Clone()
	for i, bit := range bits {
		out.EmbedBit( addr.at( i ), bit )
	}

	md := metadataFor( env, len(bits), total )
	if env.FileMode() {
		md.Checksum = cryptography.Hash( payload )
	}
	return out, md, nil
}

// Decode recovers a payload hidden by Encode. the length prefix is
// extracted first, so only the bits the frame actually occupies are
// ever read, no matter how large the carrier is.
func Decode( carrier Carrier, opts Options ) ([]byte, *Metadata, error) {

	total := carrier.TotalBits()
	if total < lengthPrefixBits {
		return nil, nil, ErrNoPayloadFound
	}
	if opts.Addressing == Random && opts.Seed == 0 {
		return nil, nil, ErrAddressingSeedMissing
	}

	addr := newAddressor( opts.Addressing, opts.Seed, total )

	prefix, err := util.BitsToBytes( extractBits( carrier, addr, 0, lengthPrefixBits ) )
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrNoPayloadFound, err)
	}
	frameLen := util.UnpackLength( prefix )
	if frameLen == 0 || frameLen > uint64( (total - lengthPrefixBits) / 8 ) {
		return nil, nil, ErrNoPayloadFound
	}

	framed, err := util.BitsToBytes( extractBits( carrier, addr, lengthPrefixBits, int(frameLen) * 8 ) )
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrNoPayloadFound, err)
	}

	env, err := unframe( framed, carrier.Kind() )
	if err != nil {
		return nil, nil, err
	}

	payload, err := recoverBody( env, opts )
	if err != nil {
		return nil, nil, err
	}

	md := metadataFor( env, lengthPrefixBits + int(frameLen) * 8, total )
	if env.FileMode() {
		md.Checksum = cryptography.Hash( payload )
	}
	return payload, md, nil
}

// FramePayload returns the length-prefixed frame Encode would embed.
// it exists for collaborators that drive their own embedding, like
// the file-level jpeg glue.
func FramePayload( payload []byte, opts Options, kind CarrierKind ) ([]byte, *Metadata, error) {
	framed, env, err := buildFrame( payload, &opts, kind )
	if err != nil {
		return nil, nil, err
	}
	data := append( util.PackLength( uint64(len(framed)) ), framed... )
	md := metadataFor( env, len(data) * 8, 0 )
	if env.FileMode() {
		md.Checksum = cryptography.Hash( payload )
	}
	return data, md, nil
}

// ParseFramed is the inverse of FramePayload over an already
// extracted byte stream.
func ParseFramed( data []byte, opts Options, kind CarrierKind ) ([]byte, *Metadata, error) {
	if len(data) < lengthPrefixBits / 8 {
		return nil, nil, ErrNoPayloadFound
	}
	frameLen := util.UnpackLength( data[ : lengthPrefixBits / 8 ] )
	if frameLen == 0 || frameLen > uint64( len(data) - lengthPrefixBits / 8 ) {
		return nil, nil, ErrNoPayloadFound
	}
	framed := data[ lengthPrefixBits / 8 : lengthPrefixBits / 8 + int(frameLen) ]

	env, err := unframe( framed, kind )
	if err != nil {
		return nil, nil, err
	}
	payload, err := recoverBody( env, opts )
	if err != nil {
		return nil, nil, err
	}
	md := metadataFor( env, lengthPrefixBits + int(frameLen) * 8, 0 )
	if env.FileMode() {
		md.Checksum = cryptography.Hash( payload )
	}
	return payload, md, nil
}

func buildFrame( payload []byte, opts *Options, kind CarrierKind ) ([]byte, *Envelope, error) {

	if opts.Addressing == Random && opts.Seed == 0 {
		opts.Seed = newSeed()
	}

	body := payload
	if opts.Compress {
		compressed, err := compressBody( body )
		if err != nil {
			return nil, nil, err
		}
		body = compressed
	}

	encrypted := opts.Password != ""
	if encrypted {
		enc, err := cryptography.EncryptWithPassword( body, opts.Password )
		if err != nil {
			return nil, nil, err
		}
		body = enc
	}

	file := opts.Filename != ""
	env := &Envelope{
		Tag: tagFor( kind, file ),
		Version: Version,
		Encrypted: encrypted,
		Compressed: opts.Compress,
		Addressing: opts.Addressing,
		Seed: opts.Seed,
		Body: body,
	}
	if file {
		env.Filename = sanitizeFilename( opts.Filename )
		env.Filesize = int64( len(payload) )
	}
	return env.frame( kind ), env, nil
}

func recoverBody( env *Envelope, opts Options ) ([]byte, error) {

	body := env.Body
	if env.Encrypted {
		if opts.Password == "" {
			return nil, ErrPasswordRequired
		}
		dec, err := cryptography.DecryptWithPassword( body, opts.Password )
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
		}
		body = dec
	}

	if env.Compressed {
		dec, err := decompressBody( body )
		if err != nil {
			// after a successful padding check a corrupt stream
			// almost surely means a wrong key slipped through
			if env.Encrypted {
				return nil, fmt.Errorf("%w: corrupt stream after decryption", ErrDecryptionFailed)
			}
			return nil, fmt.Errorf("%w: corrupt compressed body: %v", ErrMetadataMalformed, err)
		}
		body = dec
	}

	// message bodies are utf-8 text, so garbage here is the other
	// way a wrong key shows up past the padding check
	if env.Encrypted && !env.FileMode() && !utf8.Valid( body ) {
		return nil, fmt.Errorf("%w: recovered text is not valid utf-8", ErrDecryptionFailed)
	}
	return body, nil
}

func extractBits( carrier Carrier, addr addressor, offset, count int ) []uint8 {
	bits := make( []uint8, count )
	for i := 0; i < count; i++ {
		bits[i] = carrier.ExtractBit( addr.at( offset + i ) )
	}
	return bits
}

func metadataFor( env *Envelope, bitsUsed, totalBits int ) *Metadata {
	md := &Metadata{
		BitsUsed: bitsUsed,
		CapacityBits: totalBits,
		Encrypted: env.Encrypted,
		Compressed: env.Compressed,
		Addressing: env.Addressing.String(),
		Filename: env.Filename,
		Filesize: env.Filesize,
	}
	if env.Addressing == Random {
		md.Seed = env.Seed
	}
	if totalBits > 0 {
		md.CapacityUsed = 100 * float64(bitsUsed) / float64(totalBits)
	}
	return md
}
