package img
import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"

	"pixelvault/stegano"
)

// deterministic pseudo-photo
func testImage( width, height int ) *image.RGBA {
	m := image.NewRGBA( image.Rect( 0, 0, width, height ) )
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.Set( x, y, color.RGBA{
				uint8( (x*7 + y*13) % 256 ),
				uint8( (x*3 + y*29 + 101) % 256 ),
				uint8( (x*17 + y*5 + 59) % 256 ),
				255,
			})
		}
	}
	return m
}

func encodeTestImage( t *testing.T, format Format, width, height int ) []byte {
	t.Helper()
	m := testImage( width, height )
	buf := new( bytes.Buffer )
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode( buf, m )
	case FormatBMP:
		err = bmp.Encode( buf, m )
	case FormatGIF:
		err = gif.Encode( buf, m, &gif.Options{ NumColors: 256 } )
	default:
		t.Fatalf( "no test encoder for %s", format )
	}
	if err != nil {
		t.Fatalf( "failed to build %s test image: %v", format, err )
	}
	return buf.Bytes()
}

func TestSniff(t *testing.T) {
	tests := map[Format][]byte{
		FormatPNG: encodeTestImage(t, FormatPNG, 10, 10),
		FormatBMP: encodeTestImage(t, FormatBMP, 10, 10),
		FormatGIF: encodeTestImage(t, FormatGIF, 10, 10),
	}
	for want, data := range tests {
		if got := Sniff(data); got != want {
			t.Errorf("Sniff: expected %s, got %s", want, got)
		}
	}
	if Sniff([]byte("definitely not an image")) != FormatUnknown {
		t.Error("garbage must sniff as unknown")
	}
	if Sniff([]byte{0x89}) != FormatUnknown {
		t.Error("short input must sniff as unknown")
	}
}

func TestHideRevealLossless(t *testing.T) {
	payload := []byte("Hello world!")

	formats := []Format{FormatPNG, FormatBMP, FormatGIF}
	optsList := []stegano.Options{
		{},
		{Password: "pw1"},
		{Compress: true},
		{Addressing: stegano.Random, Seed: 42},
	}

	for _, format := range formats {
		decoy := encodeTestImage(t, format, 64, 64)
		for _, opts := range optsList {
			out, md, err := Hide(decoy, payload, opts)
			if err != nil {
				t.Fatalf("%s/%+v: hide failed: %v", format, opts, err)
			}
			if md.BitsUsed == 0 {
				t.Fatalf("%s: metadata missing bits used", format)
			}
			// output of a raster embed is always lossless
			outFormat := Sniff(out)
			if format == FormatBMP && outFormat != FormatBMP {
				t.Fatalf("bmp input must stay bmp, got %s", outFormat)
			}
			if format != FormatBMP && outFormat != FormatPNG {
				t.Fatalf("%s input must come back as png, got %s", format, outFormat)
			}

			dec, _, err := Reveal(out, opts)
			if err != nil {
				t.Fatalf("%s/%+v: reveal failed: %v", format, opts, err)
			}
			if !bytes.Equal(dec, payload) {
				t.Fatalf("%s/%+v: round trip mismatch: %q", format, opts, dec)
			}
		}
	}
}

func TestHideUnknownFormat(t *testing.T) {
	_, _, err := Hide([]byte("not an image, sorry about it"), []byte("x"), stegano.Options{})
	if !errors.Is(err, stegano.ErrUnsupportedCarrierFormat) {
		t.Fatalf("expected ErrUnsupportedCarrierFormat, got %v", err)
	}
	_, _, err = Reveal([]byte("not an image, sorry about it"), stegano.Options{})
	if !errors.Is(err, stegano.ErrUnsupportedCarrierFormat) {
		t.Fatalf("expected ErrUnsupportedCarrierFormat, got %v", err)
	}
}

func TestRevealCleanImage(t *testing.T) {
	decoy := encodeTestImage(t, FormatPNG, 64, 64)
	_, _, err := Reveal(decoy, stegano.Options{})
	if !errors.Is(err, stegano.ErrNoPayloadFound) {
		t.Fatalf("expected ErrNoPayloadFound, got %v", err)
	}
}

func TestCapacityReport(t *testing.T) {
	decoy := encodeTestImage(t, FormatPNG, 50, 40)
	c, err := Capacity(decoy)
	if err != nil {
		t.Fatal(err)
	}
	if c.TotalBits != 50*40*3 {
		t.Fatalf("expected %d total bits, got %d", 50*40*3, c.TotalBits)
	}
	if c.UsableBits <= 0 || c.UsableBits >= c.TotalBits {
		t.Fatalf("usable bits out of range: %+v", c)
	}
}

func TestAnalyzeReport(t *testing.T) {
	decoy := encodeTestImage(t, FormatPNG, 32, 32)
	a, err := Analyze(decoy)
	if err != nil {
		t.Fatal(err)
	}
	if a.Width != 32 || a.Height != 32 {
		t.Fatalf("dimensions wrong: %+v", a)
	}
	if a.LSBRatio < 0 || a.LSBRatio > 1 {
		t.Fatalf("ratio out of range: %f", a.LSBRatio)
	}
}

func TestHideTooLargeForCarrier(t *testing.T) {
	decoy := encodeTestImage(t, FormatPNG, 10, 10)
	payload := bytes.Repeat([]byte("A"), 500)

	_, _, err := Hide(decoy, payload, stegano.Options{})
	if !errors.Is(err, stegano.ErrPayloadTooLarge) {
		t.Fatalf("expected ErrPayloadTooLarge, got %v", err)
	}
	var capErr *stegano.CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected *CapacityError, got %T", err)
	}
	if capErr.AvailableBits != 10*10*3 {
		t.Fatalf("expected %d available bits, got %d", 10*10*3, capErr.AvailableBits)
	}
	if capErr.RequiredBits <= capErr.AvailableBits {
		t.Fatalf("inconsistent capacity report: %+v", capErr)
	}
}
