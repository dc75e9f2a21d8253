package img
import (
	"fmt"

	"pixelvault/stegano"
)

/*
 * file-level glue between image bytes and the engine. formats are
 * sniffed by magic bytes; png, bmp and gif decode to an rgb raster,
 * jpeg goes through the dct path. the output of a raster embed is
 * always a lossless format: any lossy re-encoding after embedding
 * would destroy the hidden bits.
 */
type Format int

const (
	FormatUnknown Format = iota
	FormatPNG
	FormatBMP
	FormatGIF
	FormatJPEG
)

func( f Format ) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatGIF:
		return "gif"
	case FormatJPEG:
		return "jpeg"
	}
	return "unknown"
}

func Sniff( decoy []byte ) Format {
	if len(decoy) < 8 {
		return FormatUnknown
	}
	if decoy[0] == 0x47 && decoy[1] == 0x49 && decoy[2] == 0x46 {
		return FormatGIF
	}
	if decoy[0] == 0x89 && decoy[1] == 0x50 && decoy[2] == 0x4e &&
		decoy[3] == 0x47 && decoy[4] == 0x0d && decoy[5] == 0x0a &&
		decoy[6] == 0x1a && decoy[7] == 0x0a {
		return FormatPNG
	}
	if decoy[0] == 0xff && decoy[1] == 0xd8 && decoy[2] == 0xff {
		return FormatJPEG
	}
	if decoy[0] == 0x42 && decoy[1] == 0x4d {
		return FormatBMP
	}
	return FormatUnknown
}

func Hide( decoy, payload []byte, opts stegano.Options ) ([]byte, *stegano.Metadata, error) {

	switch Sniff( decoy ) {
	case FormatJPEG:
		return hideInJpeg( decoy, payload, opts )
	case FormatPNG, FormatBMP, FormatGIF:
		raster, format, err := DecodeRaster( decoy )
		if err != nil {
			return nil, nil, err
		}
		out, md, err := stegano.Encode( raster, payload, opts )
		if err != nil {
			return nil, nil, err
		}
		encoded, err := EncodeRaster( out.(*stegano.Raster), format )
		if err != nil {
			return nil, nil, err
		}
		return encoded, md, nil
	}
	return nil, nil, fmt.Errorf("%w: unrecognized image magic", stegano.ErrUnsupportedCarrierFormat)
}

func Reveal( decoy []byte, opts stegano.Options ) ([]byte, *stegano.Metadata, error) {

	switch Sniff( decoy ) {
	case FormatJPEG:
		return revealFromJpeg( decoy, opts )
	case FormatPNG, FormatBMP, FormatGIF:
		raster, _, err := DecodeRaster( decoy )
		if err != nil {
			return nil, nil, err
		}
		return stegano.Decode( raster, opts )
	}
	return nil, nil, fmt.Errorf("%w: unrecognized image magic", stegano.ErrUnsupportedCarrierFormat)
}

func Capacity( decoy []byte ) (*stegano.Capacity, error) {

	switch Sniff( decoy ) {
	case FormatJPEG:
		return jpegCapacity( decoy )
	case FormatPNG, FormatBMP, FormatGIF:
		raster, _, err := DecodeRaster( decoy )
		if err != nil {
			return nil, err
		}
		c := stegano.CapacityOf( raster )
		return &c, nil
	}
	return nil, fmt.Errorf("%w: unrecognized image magic", stegano.ErrUnsupportedCarrierFormat)
}

func Analyze( decoy []byte ) (*stegano.Analysis, error) {
	raster, _, err := DecodeRaster( decoy )
	if err != nil {
		return nil, err
	}
	return stegano.AnalyzeRaster( raster ), nil
}
