package stegano
import (
	"fmt"
	"bytes"
	"strconv"
	"strings"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

/*
 * the envelope is the framed structure embedded into a carrier:
 *
 *   message mode: "<TAG>:<version>:<flags>:<addr>|" + body + terminator
 *   file mode:    "<TAG>:<version>:<flags>:<addr>|" + filename + "|" + filesize + "|" + body + terminator
 *
 * flags is "E" (encrypted) or "P" (plain), with "C" appended when the
 * body is compressed. addr is "S" or "R<seed>". the tag selects the
 * mode and the carrier family, the terminator is fixed per family.
 */
const (
	Version = "2.0"

	TagRasterMessage = "PV"
	TagRasterFile    = "PVF"
	TagDCTMessage    = "JV"
	TagDCTFile       = "JVF"

	TerminatorRaster = "<<PIXELVAULT_END>>"
	TerminatorDCT    = "<<JPEG_END>>"

	headerSep = "|"
)

type Envelope struct {
	Tag		string
	Version		string
	Encrypted	bool
	Compressed	bool
	Addressing	AddressingMode
	Seed		int64
	Filename	string
	Filesize	int64
	Body		[]byte
}

func( e *Envelope ) FileMode() bool {
	return e.Tag == TagRasterFile || e.Tag == TagDCTFile
}

func tagFor( kind CarrierKind, file bool ) string {
	switch {
	case kind == KindDCT && file:
		return TagDCTFile
	case kind == KindDCT:
		return TagDCTMessage
	case file:
		return TagRasterFile
	}
	return TagRasterMessage
}

func terminatorFor( kind CarrierKind ) string {
	if kind == KindDCT {
		return TerminatorDCT
	}
	return TerminatorRaster
}

func( e *Envelope ) header() string {
	flags := "P"
	if e.Encrypted {
		flags = "E"
	}
	if e.Compressed {
		flags += "C"
	}
	addr := "S"
	if e.Addressing == Random {
		addr = "R" + strconv.FormatInt( e.Seed, 10 )
	}
	return e.Tag + ":" + e.Version + ":" + flags + ":" + addr + headerSep
}

// frame serializes the envelope into the byte sequence that gets
// embedded (without the outer length prefix)
func( e *Envelope ) frame( kind CarrierKind ) []byte {
	buf := []byte( e.header() )
	if e.FileMode() {
		buf = append( buf, []byte( e.Filename + headerSep )... )
		buf = append( buf, []byte( strconv.FormatInt( e.Filesize, 10 ) + headerSep )... )
	}
	buf = append( buf, e.Body... )
	buf = append( buf, []byte( terminatorFor( kind ) )... )
	return buf
}

// unframe parses a serialized envelope back. a missing terminator
// means the carrier holds no payload; a present terminator with a
// broken header means the metadata is malformed.
func unframe( data []byte, kind CarrierKind ) (*Envelope, error) {

	term := []byte( terminatorFor( kind ) )
	if !bytes.HasSuffix( data, term ) {
		return nil, ErrNoPayloadFound
	}
	data = data[ : len(data) - len(term) ]

	sep := bytes.IndexByte( data, '|' )
	if sep < 0 {
		return nil, fmt.Errorf("%w: header separator missing", ErrMetadataMalformed)
	}
	header := string( data[:sep] )
	rest := data[sep+1:]

	parts := strings.Split( header, ":" )
	if len(parts) < 3 {
		return nil, fmt.Errorf("%w: header %q has %d fields", ErrMetadataMalformed, header, len(parts))
	}

	e := &Envelope{
		Tag: parts[0],
		Version: parts[1],
	}
	switch e.Tag {
	case TagRasterMessage, TagRasterFile, TagDCTMessage, TagDCTFile:
	default:
		return nil, fmt.Errorf("%w: unknown tag %q", ErrMetadataMalformed, e.Tag)
	}
	if _, err := strconv.ParseFloat( e.Version, 64 ); err != nil {
		return nil, fmt.Errorf("%w: bad version %q", ErrMetadataMalformed, e.Version)
	}

	flags := parts[2]
	if len(flags) == 0 {
		return nil, fmt.Errorf("%w: empty flags field", ErrMetadataMalformed)
	}
	switch flags[0] {
	case 'E':
		e.Encrypted = true
	case 'P':
	default:
		return nil, fmt.Errorf("%w: bad encryption flag %q", ErrMetadataMalformed, flags)
	}
	e.Compressed = strings.ContainsRune( flags[1:], 'C' )

	// the addressing field is informational: under random addressing
	// the seed must already be known to read the header at all
	if len(parts) > 3 && strings.HasPrefix( parts[3], "R" ) {
		e.Addressing = Random
		seed, err := strconv.ParseInt( parts[3][1:], 10, 64 )
		if err != nil {
			return nil, fmt.Errorf("%w: bad addressing field %q", ErrMetadataMalformed, parts[3])
		}
		e.Seed = seed
	}

	if e.FileMode() {
		nameEnd := bytes.IndexByte( rest, '|' )
		if nameEnd < 0 {
			return nil, fmt.Errorf("%w: filename field missing", ErrMetadataMalformed)
		}
		e.Filename = string( rest[:nameEnd] )
		rest = rest[nameEnd+1:]

		sizeEnd := bytes.IndexByte( rest, '|' )
		if sizeEnd < 0 {
			return nil, fmt.Errorf("%w: filesize field missing", ErrMetadataMalformed)
		}
		size, err := strconv.ParseInt( string( rest[:sizeEnd] ), 10, 64 )
		if err != nil || size < 0 {
			return nil, fmt.Errorf("%w: bad filesize %q", ErrMetadataMalformed, rest[:sizeEnd])
		}
		e.Filesize = size
		rest = rest[sizeEnd+1:]
	}

	e.Body = rest
	return e, nil
}

// filenames cross the wire inside a '|'-separated header, so strip
// paths and separators and normalize the unicode form
func sanitizeFilename( name string ) string {
	name = norm.NFC.String( name )
	name = filepath.Base( name )
	return strings.ReplaceAll( name, headerSep, "_" )
}
