package stegano
import (
	"math/rand"
	"encoding/binary"

	"pixelvault/cryptography"
)

type AddressingMode int

const (
	Sequential AddressingMode = iota
	Random
)

func( m AddressingMode ) String() string {
	if m == Random {
		return "random"
	}
	return "sequential"
}

// Permutation derives a deterministic permutation of all carrier
// locations from a seed. The same seed reproduces the same order at
// decode time; there is no way to recover a lost seed from the
// carrier. This scatters the payload across the carrier but it is
// obfuscation only, not a substitute for the encryption layer.
func Permutation( seed int64, total int ) []int {
	return rand.New( rand.NewSource( seed ) ).Perm( total )
}

// addressor maps a payload bit index to a carrier location
type addressor struct {
	perm	[]int	// nil means natural scan order
}

func newAddressor( mode AddressingMode, seed int64, total int ) addressor {
	if mode == Random {
		return addressor{ perm: Permutation( seed, total ) }
	}
	return addressor{}
}

func( a addressor ) at( i int ) int {
	if a.perm == nil {
		return i
	}
	return a.perm[i]
}

// a fresh nonzero seed for random addressing. zero is reserved to
// mean "no seed supplied".
func newSeed() int64 {
	buf, err := cryptography.GenRandom( 8 )
	if err != nil {
		return 1
	}
	seed := int64( binary.LittleEndian.Uint64( buf ) & 0x7fffffff )
	if seed == 0 {
		seed = 1
	}
	return seed
}
