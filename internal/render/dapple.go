package render

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Dappler perturbs tile colours with smooth per-channel noise so large areas
// of one tile do not render as flat fills.
type Dappler struct {
	r, g, b   opensimplex.Noise
	amplitude float64
	frequency float64
}

// NewDappler returns a dappler seeded for one world. Offsets stay within
// ±amplitude per channel.
func NewDappler(seed int64, amplitude int) *Dappler {
	return &Dappler{
		r:         opensimplex.NewNormalized(seed),
		g:         opensimplex.NewNormalized(seed + 1),
		b:         opensimplex.NewNormalized(seed + 2),
		amplitude: float64(amplitude),
		frequency: 0.35,
	}
}

// Offset returns the channel offsets for (row, col).
func (d *Dappler) Offset(row, col int) (dr, dg, db int) {
	if d == nil || d.amplitude == 0 {
		return 0, 0, 0
	}
	x, y := float64(col)*d.frequency, float64(row)*d.frequency
	return d.scale(d.r.Eval2(x, y)), d.scale(d.g.Eval2(x, y)), d.scale(d.b.Eval2(x, y))
}

// scale maps a normalized noise sample in [0, 1] to [-amplitude, amplitude].
func (d *Dappler) scale(n float64) int {
	return int(math.Round((n*2 - 1) * d.amplitude))
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
