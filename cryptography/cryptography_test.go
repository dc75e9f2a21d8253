package cryptography
import (
	"bytes"
	"testing"
)

func TestDeriveKeyDeterministic(t *testing.T) {
	salt := []byte("0123456789abcdef")
	k1 := DeriveKey([]byte("password"), salt)
	k2 := DeriveKey([]byte("password"), salt)
	if len(k1) != KeySize {
		t.Fatalf("expected %d-byte key, got %d", KeySize, len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatal("same password and salt must derive the same key")
	}
	k3 := DeriveKey([]byte("password"), []byte("fedcba9876543210"))
	if bytes.Equal(k1, k3) {
		t.Fatal("different salts must derive different keys")
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	tests := [][]byte{
		{},
		[]byte("x"),
		[]byte("Hello world!"),
		bytes.Repeat([]byte("block-aligned..."), 4),
		bytes.Repeat([]byte("A"), 4096),
	}

	for _, data := range tests {
		blob, err := EncryptWithPassword(data, "pw1")
		if err != nil {
			t.Fatalf("encrypt failed: %v", err)
		}
		if len(blob) < SaltSize+IVSize+BlockSize {
			t.Fatalf("blob too short: %d bytes", len(blob))
		}
		if (len(blob)-SaltSize-IVSize)%BlockSize != 0 {
			t.Fatalf("ciphertext not block aligned: %d bytes", len(blob))
		}

		dec, err := DecryptWithPassword(blob, "pw1")
		if err != nil {
			t.Fatalf("decrypt failed: %v", err)
		}
		if !bytes.Equal(data, dec) {
			t.Fatalf("round trip mismatch: %v != %v", data, dec)
		}
	}
}

func TestEncryptFreshSaltAndIV(t *testing.T) {
	data := []byte("same plaintext")
	a, err := EncryptWithPassword(data, "pw")
	if err != nil {
		t.Fatal(err)
	}
	b, err := EncryptWithPassword(data, "pw")
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a[:SaltSize], b[:SaltSize]) {
		t.Fatal("salt must be fresh per encryption")
	}
	if bytes.Equal(a[SaltSize:SaltSize+IVSize], b[SaltSize:SaltSize+IVSize]) {
		t.Fatal("iv must be fresh per encryption")
	}
}

func TestDecryptWrongPassword(t *testing.T) {
	data := []byte("secret")
	blob, err := EncryptWithPassword(data, "pw1")
	if err != nil {
		t.Fatal(err)
	}
	dec, err := DecryptWithPassword(blob, "pw2")
	// padding check is probabilistic; what is guaranteed is that the
	// original plaintext never comes back
	if err == nil && bytes.Equal(dec, data) {
		t.Fatal("wrong password returned the original plaintext")
	}
}

func TestDecryptTruncatedBlob(t *testing.T) {
	for _, n := range []int{0, 1, SaltSize, SaltSize + IVSize, SaltSize + IVSize + 1} {
		if _, err := DecryptWithPassword(make([]byte, n), "pw"); err == nil {
			t.Errorf("expected error for %d-byte blob", n)
		}
	}
}

func TestUnpadRejectsGarbage(t *testing.T) {
	bad := [][]byte{
		bytes.Repeat([]byte{0}, BlockSize),
		bytes.Repeat([]byte{17}, BlockSize),
		append(bytes.Repeat([]byte{2}, BlockSize-2), 1, 2),
	}
	for _, data := range bad {
		if _, err := unpad(data); err == nil {
			t.Errorf("expected padding error for %v", data)
		}
	}
}

func TestHash(t *testing.T) {
	if Hash(nil) != "" {
		t.Fatal("nil data must hash to empty string")
	}
	h := Hash([]byte("abc"))
	if !VerifyHash([]byte("abc"), h) {
		t.Fatal("hash verification failed")
	}
	if VerifyHash([]byte("abd"), h) {
		t.Fatal("hash verification must fail on different data")
	}
}
