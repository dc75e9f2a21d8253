package util
import (
	"bytes"
	"testing"
)

func TestToBinFromBin(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		bits := ToBin(b)
		if len(bits) != 8 {
			t.Fatalf("ToBin(%d) returned %d bits", i, len(bits))
		}
		if FromBin(bits) != b {
			t.Fatalf("FromBin(ToBin(%d)) = %d", i, FromBin(bits))
		}
	}
}

func TestBytesToBitsRoundTrip(t *testing.T) {
	tests := [][]byte{
		{},
		{0x00},
		{0xff},
		[]byte("Hello world!"),
		bytes.Repeat([]byte{0xa5}, 1000),
	}
	for _, data := range tests {
		bits := BytesToBits(data)
		if len(bits) != len(data)*8 {
			t.Fatalf("expected %d bits, got %d", len(data)*8, len(bits))
		}
		back, err := BitsToBytes(bits)
		if err != nil {
			t.Fatalf("BitsToBytes failed: %v", err)
		}
		if !bytes.Equal(data, back) {
			t.Fatalf("round trip mismatch: %v != %v", data, back)
		}
	}
}

func TestBitsToBytesUnaligned(t *testing.T) {
	if _, err := BitsToBytes(make([]uint8, 7)); err == nil {
		t.Fatal("expected error for unaligned bit stream")
	}
}

func TestLengthPrefix(t *testing.T) {
	for _, n := range []uint64{0, 1, 255, 256, 1 << 32} {
		buf := PackLength(n)
		if len(buf) != 8 {
			t.Fatalf("length prefix must be 8 bytes, got %d", len(buf))
		}
		if UnpackLength(buf) != n {
			t.Fatalf("UnpackLength(PackLength(%d)) = %d", n, UnpackLength(buf))
		}
	}
}
