package img
import (
	"fmt"
	"bytes"
	"image/jpeg"

	"lukechampine.com/jsteg"

	"pixelvault/stegano"
)

/*
 * file-level jpeg path. jsteg re-encodes the image and writes the
 * frame into the coefficient stream in its own fixed order, so only
 * sequential addressing is available here; callers that hold the raw
 * coefficient plane use stegano.DCTMatrix and get the full matrix.
 */
func hideInJpeg( jpgBytes, payload []byte, opts stegano.Options ) ([]byte, *stegano.Metadata, error) {

	if opts.Addressing == stegano.Random {
		return nil, nil, fmt.Errorf("%w: random addressing needs coefficient-level access to the jpeg",
			stegano.ErrUnsupportedCarrierFormat)
	}

	m, err := jpeg.Decode( bytes.NewReader( jpgBytes ) )
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", stegano.ErrUnsupportedCarrierFormat, err)
	}

	framed, md, err := stegano.FramePayload( payload, opts, stegano.KindDCT )
	if err != nil {
		return nil, nil, err
	}

	capacity := jsteg.Capacity( m, nil )
	if capacity < len(framed) {
		return nil, nil, stegano.NewCapacityError( len(framed) * 8, capacity * 8 )
	}

	outbuf := new( bytes.Buffer )
	if err = jsteg.Hide( outbuf, m, framed, nil ); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", stegano.ErrUnsupportedCarrierFormat, err)
	}

	md.CapacityBits = capacity * 8
	md.CapacityUsed = 100 * float64(md.BitsUsed) / float64(md.CapacityBits)
	return outbuf.Bytes(), md, nil
}

func revealFromJpeg( jpgBytes []byte, opts stegano.Options ) ([]byte, *stegano.Metadata, error) {

	hidden, err := jsteg.Reveal( bytes.NewReader( jpgBytes ) )
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", stegano.ErrUnsupportedCarrierFormat, err)
	}
	return stegano.ParseFramed( hidden, opts, stegano.KindDCT )
}

func jpegCapacity( jpgBytes []byte ) (*stegano.Capacity, error) {

	m, err := jpeg.Decode( bytes.NewReader( jpgBytes ) )
	if err != nil {
		return nil, fmt.Errorf("%w: %v", stegano.ErrUnsupportedCarrierFormat, err)
	}

	total := jsteg.Capacity( m, nil ) * 8

	// fixed framing cost of a minimal plain message
	overhead, _, err := stegano.FramePayload( nil, stegano.Options{}, stegano.KindDCT )
	if err != nil {
		return nil, err
	}
	usable := total - len(overhead) * 8
	if usable < 0 {
		usable = 0
	}
	return &stegano.Capacity{
		TotalBits: total,
		UsableBits: usable,
	}, nil
}
