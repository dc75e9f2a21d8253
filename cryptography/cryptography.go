package cryptography
import (
	"fmt"
	"bytes"
	"crypto/aes"
	"crypto/rand"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

/*
 * password-based encryption of opaque byte buffers.
 * an encrypted blob carries its own salt and iv, so the only
 * secret the caller has to keep is the password itself.
 * there is no authentication tag: a wrong password is detected
 * through padding validity only, which is probabilistic.
 */

// derive an AES-256 key from a password and salt
func DeriveKey( password, saltBytes []byte ) []byte {
	return pbkdf2.Key( password, saltBytes, KDFIterations, KeySize, sha256.New )
}

// generate a random amount of bytes
func GenRandom( size uint ) ([]byte, error) {
	if size == 0 {
		return nil, fmt.Errorf("GenRandom: invalid size of random data")
	}
	data := make( []byte, size )
	if _, err := rand.Read( data ); err != nil {
		return nil, err
	}
	return data, nil
}

// calculate the hash of data
func Hash( data []byte ) string {
	if data == nil {
		return ""
	}
	hash := sha256.Sum256( data )
	return hex.EncodeToString( hash[:] )
}

// verify hash of data
func VerifyHash( data []byte, hash string ) bool {
	if data == nil && hash == "" {
		return true
	} else if data == nil || hash == "" {
		return false
	}
	return hash == Hash( data )
}

func EncryptWithPassword( data []byte, password string ) ([]byte, error) {

	salt, err := GenRandom( SaltSize )
	if err != nil {
		return nil, err
	}
	iv, err := GenRandom( IVSize )
	if err != nil {
		return nil, err
	}

	key := DeriveKey( []byte(password), salt )
	block, err := aes.NewCipher( key )
	if err != nil {
		return nil, err
	}

	padded := pad( data )
	ct := make( []byte, len(padded) )
	cipher.NewCBCEncrypter( block, iv ).CryptBlocks( ct, padded )

	blob := make( []byte, 0, SaltSize + IVSize + len(ct) )
	blob = append( blob, salt... )
	blob = append( blob, iv... )
	blob = append( blob, ct... )
	return blob, nil
}

func DecryptWithPassword( blob []byte, password string ) ([]byte, error) {

	if len(blob) < SaltSize + IVSize + BlockSize {
		return nil, fmt.Errorf("encrypted blob is too short (%d bytes)", len(blob))
	}
	salt := blob[:SaltSize]
	iv := blob[SaltSize : SaltSize + IVSize]
	ct := blob[SaltSize + IVSize:]
	if len(ct) % BlockSize != 0 {
		return nil, fmt.Errorf("ciphertext is not block-aligned (%d bytes)", len(ct))
	}

	key := DeriveKey( []byte(password), salt )
	block, err := aes.NewCipher( key )
	if err != nil {
		return nil, err
	}

	padded := make( []byte, len(ct) )
	cipher.NewCBCDecrypter( block, iv ).CryptBlocks( padded, ct )
	return unpad( padded )
}

// pkcs#7 padding to the cipher's block size
func pad( data []byte ) []byte {
	n := BlockSize - len(data) % BlockSize
	return append( data, bytes.Repeat( []byte{ byte(n) }, n )... )
}

func unpad( data []byte ) ([]byte, error) {
	if len(data) == 0 || len(data) % BlockSize != 0 {
		return nil, fmt.Errorf("invalid padded length %d", len(data))
	}
	n := int( data[ len(data) - 1 ] )
	if n == 0 || n > BlockSize || n > len(data) {
		return nil, fmt.Errorf("invalid padding")
	}
	for _, b := range data[ len(data) - n : ] {
		if int(b) != n {
			return nil, fmt.Errorf("invalid padding")
		}
	}
	return data[ : len(data) - n ], nil
}
