// Package colour provides the perceptual colour plumbing for contrast
// matching: conversion between sRGB and the OkLrCh lightness-chroma-hue
// space, candidate generation at a trial lightness, and sRGB gamut clamping.
package colour

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Oklab lightness toe constants.
// https://bottosson.github.io/posts/colorpicker/#intermission---a-new-lightness-estimate-for-oklab
const (
	toeK1 = 0.206
	toeK2 = 0.03
	toeK3 = (1.0 + toeK1) / (1.0 + toeK2)
)

// OkLrCh is a colour in the OkLrCh space: Oklab with the lightness estimate
// replaced by the toe-corrected Lr, expressed in cylindrical form.
// L is lightness in [0, 1], C is chroma (>= 0), H is hue in degrees [0, 360).
//
// Lightness, chroma and hue are independently addressable, which is what the
// contrast search relies on: it moves L while H stays fixed and C is either
// carried or rescaled.
type OkLrCh struct {
	L float64
	C float64
	H float64
}

// FromColor converts an sRGB colour to OkLrCh.
func FromColor(c colorful.Color) OkLrCh {
	r, g, b := c.LinearRgb()
	l, a, bb := linearToOklab(r, g, b)

	lr := toe(l)
	chroma := math.Hypot(a, bb)
	hue := math.Atan2(bb, a) * (180.0 / math.Pi)
	if hue < 0 {
		hue += 360.0
	}

	return OkLrCh{L: lr, C: chroma, H: hue}
}

// Color converts back to an sRGB colour. The result may lie outside the sRGB
// gamut; callers that need a displayable colour go through Clamp first.
func (p OkLrCh) Color() colorful.Color {
	hRad := p.H * (math.Pi / 180.0)
	a := p.C * math.Cos(hRad)
	b := p.C * math.Sin(hRad)

	r, g, bl := oklabToLinear(toeInv(p.L), a, b)
	return colorful.LinearRgb(r, g, bl)
}

// WithLightness produces a candidate colour at the given lightness. Hue is
// always preserved. With preserveChroma the chroma is rescaled proportionally
// so the chroma-to-lightness ratio of the base colour is kept as lightness
// moves; otherwise the base chroma is carried unchanged. Chroma never goes
// negative, and a base with no lightness keeps its chroma as-is since the
// ratio is undefined there.
func (p OkLrCh) WithLightness(l float64, preserveChroma bool) OkLrCh {
	c := p.C
	if preserveChroma && p.L > 0 {
		c = p.C * (l / p.L)
		if c < 0 {
			c = 0
		}
	}
	return OkLrCh{L: l, C: c, H: p.H}
}

// toe maps Oklab L to the toe-corrected Lr, which is closer to L* in its
// distribution of perceived lightness.
func toe(l float64) float64 {
	return 0.5 * (toeK3*l - toeK1 + math.Sqrt((toeK3*l-toeK1)*(toeK3*l-toeK1)+4*toeK2*toeK3*l))
}

// toeInv maps Lr back to Oklab L.
func toeInv(lr float64) float64 {
	return (lr*lr + toeK1*lr) / (toeK3 * (lr + toeK2))
}

// linearToOklab converts linear sRGB to Oklab (L, a, b).
// https://bottosson.github.io/posts/oklab/
func linearToOklab(r, g, b float64) (float64, float64, float64) {
	// M1: linear RGB -> LMS
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp := math.Cbrt(l)
	mp := math.Cbrt(m)
	sp := math.Cbrt(s)

	// M2: LMS' -> Lab
	L := 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	A := 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	B := 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp

	return L, A, B
}

// oklabToLinear converts Oklab (L, a, b) to linear sRGB.
func oklabToLinear(L, a, b float64) (float64, float64, float64) {
	// Inverse M2: Lab -> LMS'
	lp := L + 0.3963377774*a + 0.2158037573*b
	mp := L - 0.1055613458*a - 0.0638541728*b
	sp := L - 0.0894841775*a - 1.2914855480*b

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	// Inverse M1: LMS -> linear RGB
	r := +4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	bl := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	return r, g, bl
}
