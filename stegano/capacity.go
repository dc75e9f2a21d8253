package stegano

// every embedded frame starts with a 64-bit length prefix
const lengthPrefixBits = 64

type Capacity struct {
	TotalBits	int	`json:"total_bits"`
	UsableBits	int	`json:"usable_bits"`
}

// CapacityOf reports the carrier's raw bit count and what remains
// after the framing overhead of a minimal plain sequential message.
// Encrypted, compressed or file-mode envelopes carry a few more header
// bytes; Encode always checks against the exact frame it builds.
func CapacityOf( c Carrier ) Capacity {
	env := &Envelope{
		Tag: tagFor( c.Kind(), false ),
		Version: Version,
	}
	overhead := lengthPrefixBits + len( env.frame( c.Kind() ) ) * 8
	total := c.TotalBits()
	usable := total - overhead
	if usable < 0 {
		usable = 0
	}
	return Capacity{
		TotalBits: total,
		UsableBits: usable,
	}
}

// RequiredBits builds the exact frame Encode would embed for this
// payload and options, so capacity checks are never approximate.
// With random addressing and no seed chosen yet, the widest possible
// seed field is assumed.
func RequiredBits( payload []byte, opts Options, kind CarrierKind ) (int, error) {
	o := opts
	if o.Addressing == Random && o.Seed == 0 {
		o.Seed = 1<<31 - 1
	}
	framed, _, err := buildFrame( payload, &o, kind )
	if err != nil {
		return 0, err
	}
	return lengthPrefixBits + len(framed) * 8, nil
}
