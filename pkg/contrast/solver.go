package contrast

import (
	"math"

	"github.com/hashicorp/go-hclog"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/contrasty/internal/colour"
)

// Default search parameters. Bisecting a [0, 1] lightness bracket converges
// far below float precision well inside the iteration cap.
const (
	// DefaultEpsilon is the convergence tolerance in the metric's native
	// units.
	DefaultEpsilon = 0.01
	// DefaultMaxIterations bounds the bisection.
	DefaultMaxIterations = 50
)

// Options controls the contrast search.
type Options struct {
	// Epsilon is the convergence tolerance in the metric's native units.
	// Zero means DefaultEpsilon.
	Epsilon float64
	// MaxIterations bounds the search. Zero means DefaultMaxIterations.
	MaxIterations int
	// PreserveChroma rescales the candidate's chroma proportionally to the
	// lightness change, keeping the base colour's chroma-to-lightness ratio
	// (its vibrancy) instead of a fixed absolute chroma that can look
	// desaturated at a very different lightness.
	PreserveChroma bool
	// Logger receives debug traces of the search. Nil disables logging.
	Logger hclog.Logger
}

// Contrasty finds a variant of the base colour that achieves the target
// contrast against the background colour, using default options.
//
// The target's sign selects the direction: positive asks for a variant darker
// than the background, negative for a lighter one. For the signed APCA model
// this coincides with APCA's own polarity convention (positive Lc = dark text
// on light background); for the unsigned models only the magnitude is matched.
func Contrasty(base, bg colorful.Color, target float64, method Method) (colorful.Color, error) {
	return ContrastyWithOptions(base, bg, target, method, Options{})
}

// ContrastyWithOptions finds a variant of the base colour that achieves the
// target contrast against the background colour.
//
// Design Theory:
//   - The search moves only the candidate's lightness in OkLrCh; hue is never
//     touched and chroma is either carried or rescaled (see Options). This
//     keeps the result recognisably "the same colour", just lighter or darker.
//   - Every supported metric is monotonic in candidate lightness on each side
//     of the background's lightness, so the bracket is restricted to the side
//     the target's sign implies ([0, bgL] darker, [bgL, 1] lighter) and then
//     bisected.
//   - Candidates are gamut-clamped before scoring, so the score always
//     describes a displayable colour and the returned colour is the scored one.
//   - An unreachable target is not an error: the search degrades to the
//     nearest achievable extreme (lightness 0 or 1), since "best achievable"
//     is still a meaningful accessible answer. Callers needing a strict
//     guarantee should verify the achieved contrast with Contrast.
func ContrastyWithOptions(base, bg colorful.Color, target float64, method Method, opts Options) (colorful.Color, error) {
	if _, err := ParseMethod(string(method)); err != nil {
		return colorful.Color{}, err
	}

	epsilon := opts.Epsilon
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	maxIterations := opts.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	fg := colour.FromColor(base)
	bgL := colour.FromColor(bg).L

	// Direction and goal magnitude. Searching on one side of the background
	// lightness also fixes the sign of the APCA score, so magnitudes compare
	// directly for every method.
	goal := math.Abs(target)
	darker := target >= 0

	lo, hi := 0.0, bgL
	if !darker {
		lo, hi = bgL, 1.0
	}

	var (
		result    colorful.Color
		achieved  float64
		converged bool
		iters     int
	)

	for iters < maxIterations {
		iters++
		mid := (lo + hi) / 2
		cand := fg.WithLightness(mid, opts.PreserveChroma).Clamp()
		col := cand.Color().Clamped()

		score, err := Contrast(col, bg, method)
		if err != nil {
			return colorful.Color{}, err
		}

		result = col
		achieved = score

		if math.Abs(math.Abs(score)-goal) <= epsilon {
			converged = true
			break
		}

		if math.Abs(score) < goal {
			// Need more contrast: move away from the background lightness.
			if darker {
				hi = mid
			} else {
				lo = mid
			}
		} else {
			// Too much contrast: move toward the background lightness.
			if darker {
				lo = mid
			} else {
				hi = mid
			}
		}
	}

	if !converged {
		// If even the lightness extreme cannot reach the goal, the target is
		// unreachable: terminate at the extreme rather than asymptotically
		// near it, so the caller gets the best achievable boundary colour.
		extreme := 0.0
		if !darker {
			extreme = 1.0
		}
		cand := fg.WithLightness(extreme, opts.PreserveChroma).Clamp()
		col := cand.Color().Clamped()

		score, err := Contrast(col, bg, method)
		if err != nil {
			return colorful.Color{}, err
		}
		if math.Abs(score) < goal {
			result = col
			achieved = score
		}
	}

	logger.Debug("contrast search finished",
		"method", method,
		"target", target,
		"achieved", achieved,
		"iterations", iters,
		"converged", converged,
		"preserve_chroma", opts.PreserveChroma,
	)

	return result, nil
}
