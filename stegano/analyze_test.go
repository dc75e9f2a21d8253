package stegano
import (
	"testing"
)

func TestAnalyzeRasterBalanced(t *testing.T) {
	// alternating lsb pattern sits exactly at ratio 0.5
	r := NewRaster(16, 16)
	for i := range r.Pix {
		r.Pix[i] = uint8(128 + i%2)
	}
	a := AnalyzeRaster(r)
	if a.LSBRatio != 0.5 {
		t.Fatalf("expected ratio 0.5, got %f", a.LSBRatio)
	}
	if a.Suspicious {
		t.Fatal("balanced lsb plane must not be suspicious")
	}
	if a.TotalBits != 16*16*3 {
		t.Fatalf("expected %d total bits, got %d", 16*16*3, a.TotalBits)
	}
	if a.MaxPayloadBytes <= 0 {
		t.Fatal("usable capacity must be positive for a 16x16 raster")
	}
}

func TestAnalyzeRasterSkewed(t *testing.T) {
	// all-even samples: every lsb clear, ratio 0
	r := NewRaster(16, 16)
	for i := range r.Pix {
		r.Pix[i] = 128
	}
	a := AnalyzeRaster(r)
	if a.LSBRatio != 0 {
		t.Fatalf("expected ratio 0, got %f", a.LSBRatio)
	}
	if !a.Suspicious {
		t.Fatal("fully skewed lsb plane must be suspicious")
	}
}

func TestCapacityOf(t *testing.T) {
	r := newTestRaster(100, 100)
	c := CapacityOf(r)
	if c.TotalBits != 100*100*3 {
		t.Fatalf("expected %d total bits, got %d", 100*100*3, c.TotalBits)
	}
	if c.UsableBits <= 0 || c.UsableBits >= c.TotalBits {
		t.Fatalf("usable bits out of range: %+v", c)
	}

	// overhead never goes negative on tiny carriers
	tiny := NewRaster(2, 2)
	if c := CapacityOf(tiny); c.UsableBits != 0 {
		t.Fatalf("expected zero usable bits, got %d", c.UsableBits)
	}
}
