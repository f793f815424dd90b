package contrast

import "github.com/lucasb-eyer/go-colorful"

// Luminance calculates the relative luminance of a colour according to
// WCAG 2.1. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG21/#dfn-relative-luminance
func Luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// WCAG21 calculates the contrast ratio between two colours according to
// WCAG 2.1. Returns a value between 1 and 21, where 21 is maximum contrast
// (black vs white). Order-independent.
// Meets WCAG AA for normal text at 4.5:1, large text at 3:1, AAA at 7:1.
// https://www.w3.org/TR/WCAG21/#dfn-contrast-ratio
func WCAG21(fg, bg colorful.Color) float64 {
	l1 := Luminance(fg)
	l2 := Luminance(bg)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}
