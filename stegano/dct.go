package stegano
import (
	"fmt"
)

const dctBlockSize = 8

// DCTMatrix is a JPEG luminance coefficient plane organized in 8x8
// blocks. Embeddable locations are the nonzero AC coefficients; the
// DC coefficient at (0,0) of each block is never touched.
//
// The location list is frozen when the matrix is constructed. Writing
// a zero bit into a coefficient of value 1 or -1 zeroes it, so a
// recount after embedding would disagree with the count the bits were
// addressed by. Extraction therefore always runs over the original
// list, never over a recomputed one.
type DCTMatrix struct {
	Coeffs	[]int32
	Width	int	// plane width in coefficients, multiple of 8
	Height	int
	locs	[]int	// frozen indices of nonzero AC coefficients
}

func NewDCTMatrix( coeffs []int32, width, height int ) (*DCTMatrix, error) {
	if width <= 0 || height <= 0 || width % dctBlockSize != 0 || height % dctBlockSize != 0 {
		return nil, fmt.Errorf("%w: coefficient plane must be a multiple of %dx%d, got %dx%d",
			ErrUnsupportedCarrierFormat, dctBlockSize, dctBlockSize, width, height )
	}
	if len(coeffs) != width * height {
		return nil, fmt.Errorf("%w: %d coefficients for a %dx%d plane",
			ErrUnsupportedCarrierFormat, len(coeffs), width, height )
	}
	m := &DCTMatrix{
		Coeffs: coeffs,
		Width: width,
		Height: height,
	}
	m.locs = m.embeddableLocations()
	return m, nil
}

// scan blocks in raster order, coefficients in row order within each
// block, skipping the DC term and zero coefficients
func( m *DCTMatrix ) embeddableLocations() []int {
	locs := []int{}
	blocksY := m.Height / dctBlockSize
	blocksX := m.Width / dctBlockSize
	for by := 0; by < blocksY; by++ {
		for bx := 0; bx < blocksX; bx++ {
			for i := 0; i < dctBlockSize; i++ {
				for j := 0; j < dctBlockSize; j++ {
					if i == 0 && j == 0 {
						continue
					}
					idx := (by * dctBlockSize + i) * m.Width + bx * dctBlockSize + j
					if m.Coeffs[idx] != 0 {
						locs = append( locs, idx )
					}
				}
			}
		}
	}
	return locs
}

func( m *DCTMatrix ) Kind() CarrierKind {
	return KindDCT
}

func( m *DCTMatrix ) TotalBits() int {
	return len(m.locs)
}

func( m *DCTMatrix ) Clone() Carrier {
	coeffs := make( []int32, len(m.Coeffs) )
	copy( coeffs, m.Coeffs )
	locs := make( []int, len(m.locs) )
	copy( locs, m.locs )
	return &DCTMatrix{
		Coeffs: coeffs,
		Width: m.Width,
		Height: m.Height,
		locs: locs,
	}
}

func( m *DCTMatrix ) EmbedBit( loc int, bit uint8 ) {
	idx := m.locs[loc]
	m.Coeffs[idx] = (m.Coeffs[idx] &^ 1) | int32(bit & 1)
}

func( m *DCTMatrix ) ExtractBit( loc int ) uint8 {
	return uint8( m.Coeffs[ m.locs[loc] ] & 1 )
}
