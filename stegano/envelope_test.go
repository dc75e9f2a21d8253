package stegano
import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestFrameUnframeMessage(t *testing.T) {
	env := &Envelope{
		Tag:     TagRasterMessage,
		Version: Version,
		Body:    []byte("hello | with | separators"),
	}
	framed := env.frame(KindRaster)
	if !strings.HasPrefix(string(framed), "PV:2.0:P:S|") {
		t.Fatalf("unexpected header: %q", framed[:16])
	}
	if !bytes.HasSuffix(framed, []byte(TerminatorRaster)) {
		t.Fatal("terminator missing")
	}

	back, err := unframe(framed, KindRaster)
	if err != nil {
		t.Fatalf("unframe failed: %v", err)
	}
	if !bytes.Equal(back.Body, env.Body) {
		t.Fatalf("body mismatch: %q", back.Body)
	}
	if back.Encrypted || back.Compressed || back.FileMode() {
		t.Fatalf("flags mismatch: %+v", back)
	}
}

func TestFrameUnframeFile(t *testing.T) {
	env := &Envelope{
		Tag:        TagDCTFile,
		Version:    Version,
		Encrypted:  true,
		Compressed: true,
		Addressing: Random,
		Seed:       1234,
		Filename:   "report.pdf",
		Filesize:   98765,
		Body:       []byte{0, 1, 2, '|', 0xff},
	}
	framed := env.frame(KindDCT)
	if !strings.HasPrefix(string(framed), "JVF:2.0:EC:R1234|report.pdf|98765|") {
		t.Fatalf("unexpected frame prefix: %q", framed[:40])
	}

	back, err := unframe(framed, KindDCT)
	if err != nil {
		t.Fatalf("unframe failed: %v", err)
	}
	if back.Filename != "report.pdf" || back.Filesize != 98765 {
		t.Fatalf("file fields lost: %+v", back)
	}
	if !back.Encrypted || !back.Compressed {
		t.Fatalf("flags lost: %+v", back)
	}
	if back.Addressing != Random || back.Seed != 1234 {
		t.Fatalf("addressing lost: %+v", back)
	}
	if !bytes.Equal(back.Body, env.Body) {
		t.Fatalf("body mismatch: %v", back.Body)
	}
}

func TestUnframeMissingTerminator(t *testing.T) {
	if _, err := unframe([]byte("PV:2.0:P:S|hello"), KindRaster); !errors.Is(err, ErrNoPayloadFound) {
		t.Fatalf("expected ErrNoPayloadFound, got %v", err)
	}
}

func TestUnframeMalformedHeaders(t *testing.T) {
	bad := []string{
		"no separator at all" + TerminatorRaster,
		"XX:2.0:P:S|body" + TerminatorRaster,          // unknown tag
		"PV:abc:P:S|body" + TerminatorRaster,          // bad version
		"PV:2.0::S|body" + TerminatorRaster,           // empty flags
		"PV:2.0:Q:S|body" + TerminatorRaster,          // bad flag
		"PV:2.0|body" + TerminatorRaster,              // too few fields
		"PV:2.0:P:Rxyz|body" + TerminatorRaster,       // bad seed
		"PVF:2.0:P:S|nameonly" + TerminatorRaster,     // file fields missing
		"PVF:2.0:P:S|name|notanint|b" + TerminatorRaster,
	}
	for _, data := range bad {
		if _, err := unframe([]byte(data), KindRaster); !errors.Is(err, ErrMetadataMalformed) {
			t.Errorf("%q: expected ErrMetadataMalformed, got %v", data, err)
		}
	}
}

func TestUnframeWrongCarrierFamily(t *testing.T) {
	env := &Envelope{Tag: TagRasterMessage, Version: Version, Body: []byte("x")}
	framed := env.frame(KindRaster)
	// a raster terminator never matches the dct one
	if _, err := unframe(framed, KindDCT); !errors.Is(err, ErrNoPayloadFound) {
		t.Fatalf("expected ErrNoPayloadFound, got %v", err)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"plain.txt":          "plain.txt",
		"/tmp/dir/plain.txt": "plain.txt",
		"weird|name.bin":     "weird_name.bin",
	}
	for in, want := range tests {
		if got := sanitizeFilename(in); got != want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
