package util
import (
	"fmt"
	"encoding/binary"
)

/*
 * transform data from/to binary form.
 * bits are stored one per byte, least significant bit first,
 * so that bit i of the stream is always bits[i].
 */
func ToBin( x byte ) []byte {
	result := make( []byte, 8 )
	for i := 0; i < 8; i++ {
		result[i] = x & 1
		x >>= 1
	}
	return result
}

func FromBin( x []byte ) byte {
	result := byte(0)
	for i := 0; i < 8; i++ {
		result |= (x[i] & 1) << i
	}
	return result
}

func BytesToBits( data []byte ) []uint8 {
	bits := make( []uint8, 0, len(data) * 8 )
	for _, b := range data {
		bits = append( bits, ToBin( b )... )
	}
	return bits
}

func BitsToBytes( bits []uint8 ) ([]byte, error) {
	if len(bits) % 8 != 0 {
		return nil, fmt.Errorf("bit stream is not byte-aligned (%d bits)", len(bits))
	}
	result := make( []byte, 0, len(bits) / 8 )
	for i := 0; i < len(bits); i += 8 {
		result = append( result, FromBin( bits[i:i+8] ) )
	}
	return result, nil
}

// the length prefix in front of every embedded frame
func PackLength( n uint64 ) []byte {
	buf := make( []byte, 8 )
	binary.LittleEndian.PutUint64( buf, n )
	return buf
}

func UnpackLength( buf []byte ) uint64 {
	return binary.LittleEndian.Uint64( buf )
}
