package img
import (
	"fmt"
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"

	"golang.org/x/image/bmp"

	"pixelvault/stegano"
)

// DecodeRaster loads any supported lossless carrier into an rgb
// raster of known dimensions
func DecodeRaster( data []byte ) (*stegano.Raster, Format, error) {

	format := Sniff( data )
	var m image.Image
	var err error

	switch format {
	case FormatPNG:
		m, err = png.Decode( bytes.NewReader( data ) )
	case FormatBMP:
		m, err = bmp.Decode( bytes.NewReader( data ) )
	case FormatGIF:
		m, err = gif.Decode( bytes.NewReader( data ) )
	default:
		return nil, format, fmt.Errorf("%w: no raster decoder for %s",
			stegano.ErrUnsupportedCarrierFormat, format)
	}
	if err != nil {
		return nil, format, fmt.Errorf("%w: %v", stegano.ErrUnsupportedCarrierFormat, err)
	}
	return rasterFromImage( m ), format, nil
}

// EncodeRaster writes a raster back as a lossless image. gif input
// comes back as png: re-quantizing to a palette would destroy the
// embedded bits.
func EncodeRaster( r *stegano.Raster, format Format ) ([]byte, error) {

	m := imageFromRaster( r )
	buf := new( bytes.Buffer )

	var err error
	switch format {
	case FormatBMP:
		err = bmp.Encode( buf, m )
	case FormatPNG, FormatGIF:
		err = png.Encode( buf, m )
	default:
		return nil, fmt.Errorf("%w: no lossless encoder for %s",
			stegano.ErrUnsupportedCarrierFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", stegano.ErrUnsupportedCarrierFormat, err)
	}
	return buf.Bytes(), nil
}

func rasterFromImage( m image.Image ) *stegano.Raster {
	bounds := m.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	raster := stegano.NewRaster( width, height )
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := m.At( bounds.Min.X + x, bounds.Min.Y + y ).RGBA()
			raster.SetRGB( x, y, uint8(r >> 8), uint8(g >> 8), uint8(b >> 8) )
		}
	}
	return raster
}

func imageFromRaster( r *stegano.Raster ) *image.RGBA {
	m := image.NewRGBA( image.Rect( 0, 0, r.Width, r.Height ) )
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			red, green, blue := r.RGB( x, y )
			m.Set( x, y, color.RGBA{ red, green, blue, 255 } )
		}
	}
	return m
}
