package contrast

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Delta Phi Star constants. The formula is community-standardised; these
// values must not be tuned.
// https://github.com/Myndex/deltaphistar
const (
	dpsPhi       = 1.6180339887498949 // (sqrt(5) + 1) / 2
	dpsThreshold = 7.5                // scores below this are imperceptible
	dpsOffset    = 40.0
)

// DeltaPhiStar calculates contrast using the Delta Phi Star model: a
// golden-ratio power transform of the two colours' CIE L* (Lab, D65) values.
// Returns 0 for sub-threshold contrast, otherwise roughly 7.5 to 100+.
// Unsigned and order-independent.
func DeltaPhiStar(fg, bg colorful.Color) float64 {
	ltxt := lstar100(fg)
	lbg := lstar100(bg)

	c := math.Pow(math.Abs(math.Pow(lbg, dpsPhi)-math.Pow(ltxt, dpsPhi)), 1.0/dpsPhi)*math.Sqrt2 - dpsOffset
	if c < dpsThreshold {
		return 0.0
	}
	return c
}

// lstar100 returns the CIE L* of a colour on the conventional 0-100 scale,
// guarded non-negative so the power transform stays real.
func lstar100(c colorful.Color) float64 {
	l, _, _ := c.Lab()
	if l < 0 {
		return 0
	}
	return l * 100.0
}
