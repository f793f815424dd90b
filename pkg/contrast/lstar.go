package contrast

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Lstar calculates contrast as the absolute difference of the two colours'
// CIE L* components (Lab, D65). Returns a value between 0 and 100, unsigned
// and order-independent.
//
// This is the simplest of the supported models; a single subtraction on a
// perceptually uniform lightness axis.
func Lstar(fg, bg colorful.Color) float64 {
	lf, _, _ := fg.Lab()
	lb, _, _ := bg.Lab()

	// go-colorful reports L in [0, 1]; L* is conventionally 0-100.
	return math.Abs(lf-lb) * 100.0
}
