package contrast

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// APCA 0.0.98G constants. The licence for the algorithm requires these exact
// values; none of them are tunable.
// https://github.com/Myndex/SAPC-APCA
const (
	// Exponents.
	apcaNormBG  = 0.56
	apcaNormTxt = 0.57
	apcaRevTxt  = 0.62
	apcaRevBG   = 0.65

	// Clamps.
	apcaBlkThrs   = 0.022
	apcaBlkClmp   = 1.414
	apcaLoClip    = 0.1
	apcaDeltaYMin = 0.0005

	// Scalers.
	apcaScale    = 1.14
	apcaLoOffset = 0.027
	apcaMainTRC  = 2.4
)

// APCA per-channel luminance coefficients.
var apcaGamma = [3]float64{0.2126729, 0.7151522, 0.0721750}

// APCA calculates the APCA (0.0.98G) lightness contrast Lc of a text colour
// against a background colour. The result is signed: positive when the text
// is darker than the background ("black on white"), negative when lighter
// ("white on black"), in a roughly -108 to +106 range. Scores with magnitude
// below the low-contrast clip, or with a near-zero luminance delta, are
// exactly 0.
func APCA(txt, bg colorful.Color) float64 {
	yTxt := apcaSoftClamp(apcaLuminance(txt))
	yBG := apcaSoftClamp(apcaLuminance(bg))

	// Noise gate for extremely low delta Y.
	if math.Abs(yBG-yTxt) < apcaDeltaYMin {
		return 0.0
	}

	var sapc float64
	if yBG > yTxt {
		// Dark text on light background.
		sapc = (math.Pow(yBG, apcaNormBG) - math.Pow(yTxt, apcaNormTxt)) * apcaScale
	} else {
		// Light text on dark background.
		sapc = (math.Pow(yBG, apcaRevBG) - math.Pow(yTxt, apcaRevTxt)) * apcaScale
	}

	switch {
	case math.Abs(sapc) < apcaLoClip:
		sapc = 0.0
	case sapc > 0:
		sapc -= apcaLoOffset
	default:
		sapc += apcaLoOffset
	}

	return sapc * 100.0
}

// apcaLuminance computes APCA's perceptual luminance: each sRGB channel
// raised to the 2.4 TRC and summed with APCA's own coefficients. This is
// deliberately not the WCAG relative luminance.
func apcaLuminance(c colorful.Color) float64 {
	return math.Pow(c.R, apcaMainTRC)*apcaGamma[0] +
		math.Pow(c.G, apcaMainTRC)*apcaGamma[1] +
		math.Pow(c.B, apcaMainTRC)*apcaGamma[2]
}

// apcaSoftClamp boosts the luminance of very dark colours to avoid
// divide-by-near-zero artifacts near black.
func apcaSoftClamp(y float64) float64 {
	if y >= apcaBlkThrs {
		return y
	}
	return y + math.Pow(apcaBlkThrs-y, apcaBlkClmp)
}
