// Package contrast computes perceptual contrast between colours and solves
// for colours that achieve a caller-specified contrast against a background.
//
// Four contrast models are supported: WCAG 2.1, APCA, L* difference and
// Delta Phi Star. The model set is fixed: each model has bespoke maths and
// its own numeric scale, so they are dispatched as a closed enumeration
// rather than an open registry.
package contrast

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Method identifies a contrast model.
type Method string

const (
	// MethodWCAG21 is the WCAG 2.1 contrast ratio (1 to 21, unsigned).
	MethodWCAG21 Method = "wcag21"
	// MethodAPCA is APCA Lc (roughly -108 to +106, signed: positive means
	// dark text on a light background).
	MethodAPCA Method = "apca"
	// MethodLstar is the absolute CIE L* difference (0 to 100, unsigned).
	MethodLstar Method = "lstar"
	// MethodDeltaPhi is Delta Phi Star (0 or 7.5 to ~100, unsigned).
	MethodDeltaPhi Method = "delta-phi"
)

// ErrInvalidMethod is returned for an unrecognised contrast method.
var ErrInvalidMethod = errors.New("invalid contrast method")

// ParseMethod converts a method name to a Method.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodWCAG21, MethodAPCA, MethodLstar, MethodDeltaPhi:
		return Method(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMethod, s)
	}
}

// Valid reports whether the method is one of the supported contrast models.
func (m Method) Valid() bool {
	_, err := ParseMethod(string(m))
	return err == nil
}

// Signed reports whether the method's score carries polarity information.
// Only APCA is direction-aware; the other models return absolute scores.
func (m Method) Signed() bool {
	return m == MethodAPCA
}

// Contrast evaluates the contrast between a foreground and background colour
// under the given method, in the method's native scale.
func Contrast(fg, bg colorful.Color, method Method) (float64, error) {
	switch method {
	case MethodWCAG21:
		return WCAG21(fg, bg), nil
	case MethodAPCA:
		return APCA(fg, bg), nil
	case MethodLstar:
		return Lstar(fg, bg), nil
	case MethodDeltaPhi:
		return DeltaPhiStar(fg, bg), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}
}
