package stegano

/*
 * rough statistical look at a raster: the fraction of set least
 * significant bits across all samples should sit near one half for
 * natural photos. a strong deviation hints at embedded data, or at
 * synthetic content. informational only.
 */
const suspicionThreshold = 0.05

type Analysis struct {
	Width		int	`json:"width"`
	Height		int	`json:"height"`
	TotalBits	int	`json:"total_bits"`
	MaxPayloadBytes	int	`json:"max_payload_bytes"`
	LSBRatio	float64	`json:"lsb_ratio"`
	Suspicious	bool	`json:"suspicious"`
}

func AnalyzeRaster( r *Raster ) *Analysis {

	ones := 0
	for _, sample := range r.Pix {
		ones += int( sample & 1 )
	}

	ratio := 0.0
	if len(r.Pix) > 0 {
		ratio = float64(ones) / float64(len(r.Pix))
	}

	dev := ratio - 0.5
	if dev < 0 {
		dev = -dev
	}

	return &Analysis{
		Width: r.Width,
		Height: r.Height,
		TotalBits: r.TotalBits(),
		MaxPayloadBytes: CapacityOf( r ).UsableBits / 8,
		LSBRatio: ratio,
		Suspicious: dev > suspicionThreshold,
	}
}
