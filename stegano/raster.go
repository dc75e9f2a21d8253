package stegano

// channel offsets within a pixel
const rasterChannels = 3

// Raster is an RGB pixel matrix with one embeddable bit per channel
// sample. Pix is row-major with interleaved channels, so the flat
// sample index is also the bit location.
type Raster struct {
	Width	int
	Height	int
	Pix	[]uint8
}

func NewRaster( width, height int ) *Raster {
	return &Raster{
		Width: width,
		Height: height,
		Pix: make( []uint8, width * height * rasterChannels ),
	}
}

func( r *Raster ) Kind() CarrierKind {
	return KindRaster
}

func( r *Raster ) TotalBits() int {
	return r.Height * r.Width * rasterChannels
}

func( r *Raster ) Clone() Carrier {
	pix := make( []uint8, len(r.Pix) )
	copy( pix, r.Pix )
	return &Raster{
		Width: r.Width,
		Height: r.Height,
		Pix: pix,
	}
}

func( r *Raster ) EmbedBit( loc int, bit uint8 ) {
	r.Pix[loc] = (r.Pix[loc] & 0xfe) | (bit & 1)
}

func( r *Raster ) ExtractBit( loc int ) uint8 {
	return r.Pix[loc] & 1
}

// RGB returns the samples of the pixel at (x, y).
func( r *Raster ) RGB( x, y int ) (uint8, uint8, uint8) {
	i := (y * r.Width + x) * rasterChannels
	return r.Pix[i], r.Pix[i+1], r.Pix[i+2]
}

func( r *Raster ) SetRGB( x, y int, red, green, blue uint8 ) {
	i := (y * r.Width + x) * rasterChannels
	r.Pix[i] = red
	r.Pix[i+1] = green
	r.Pix[i+2] = blue
}
