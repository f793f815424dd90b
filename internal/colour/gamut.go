package colour

// gamutIterations bounds the chroma bisection. Halving the chroma interval
// this many times lands far below any visible difference.
const gamutIterations = 32

// InGamut reports whether the colour is representable in sRGB.
func (p OkLrCh) InGamut() bool {
	return p.Color().IsValid()
}

// Clamp maps an out-of-gamut colour back into sRGB by reducing chroma at
// fixed lightness and hue. Lightness and hue are never touched: the contrast
// search depends on lightness being the only free variable it controls, so
// only chroma is sacrificed to regain validity.
//
// The achromatic colour at any lightness in [0, 1] is always representable,
// so the bisection brackets the gamut boundary between chroma 0 and the
// requested chroma. If even chroma 0 fails the gamut test (numerically
// pathological hue/lightness), the achromatic colour is returned anyway as
// the best-effort fallback.
func (p OkLrCh) Clamp() OkLrCh {
	if p.InGamut() {
		return p
	}

	grey := OkLrCh{L: p.L, C: 0, H: p.H}
	if !grey.InGamut() {
		return grey
	}

	lo, hi := 0.0, p.C
	for i := 0; i < gamutIterations; i++ {
		mid := (lo + hi) / 2
		if (OkLrCh{L: p.L, C: mid, H: p.H}).InGamut() {
			lo = mid
		} else {
			hi = mid
		}
	}

	return OkLrCh{L: p.L, C: lo, H: p.H}
}
