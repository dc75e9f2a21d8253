package cryptography
import (
	"crypto/aes"
)

const (
	// layout of an encrypted blob: salt || iv || ciphertext
	SaltSize = 16
	IVSize = 16
	BlockSize = aes.BlockSize

	// AES-256 key derived with PBKDF2-HMAC-SHA256
	KeySize = 32
	KDFIterations = 100000
)
