package stegano

type CarrierKind int

const (
	KindRaster CarrierKind = iota
	KindDCT
)

func( k CarrierKind ) String() string {
	if k == KindDCT {
		return "dct"
	}
	return "raster"
}

/*
 * a carrier is an in-memory matrix with addressable single-bit slots.
 * location indices run over the carrier's natural scan order; the
 * addressing policy decides which payload bit goes to which location.
 * carriers are passed in already loaded, the engine performs no i/o.
 */
type Carrier interface {
	Kind() CarrierKind
	TotalBits() int
	Clone() Carrier
	EmbedBit( loc int, bit uint8 )
	ExtractBit( loc int ) uint8
}
