package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/eigenwell/eigenwell/internal/quantum"
)

// nodeFloor ignores sign flips inside the numerical noise band around zero,
// which otherwise inflate the count in the clamped or evanescent tails.
const nodeFloor = 1e-6

// NodeCount returns the number of interior zero crossings of psi. The n-th
// bound state of a 1D well has exactly n of them.
func NodeCount(psi []float64) int {
	max := 0.0
	for _, p := range psi {
		if a := math.Abs(p); a > max {
			max = a
		}
	}
	if max == 0 {
		return 0
	}
	floor := nodeFloor * max

	count := 0
	prev := 0.0
	for _, p := range psi {
		if math.Abs(p) < floor {
			continue
		}
		if prev != 0 && (p > 0) != (prev > 0) {
			count++
		}
		prev = p
	}
	return count
}

// NormalizationError returns |1 - sum psi_i^2 h|, the deviation from unit
// probability under the trapezoid-free discrete convention used throughout.
func NormalizationError(psi []float64, h float64) float64 {
	d := floats.Dot(psi, psi)
	return math.Abs(1 - d*h)
}

// AnalyticDeviation returns the relative errors of the computed energies
// against a potential's closed-form levels, or nil when the well has none.
func AnalyticDeviation(v quantum.Potential, pairs []quantum.Eigenpair) []float64 {
	a, ok := v.(quantum.Analytic)
	if !ok {
		return nil
	}
	levels := a.Levels(len(pairs))
	if len(levels) < len(pairs) {
		pairs = pairs[:len(levels)]
	}

	dev := make([]float64, len(pairs))
	for i, p := range pairs {
		if levels[i] != 0 {
			dev[i] = math.Abs(p.Energy-levels[i]) / math.Abs(levels[i])
		} else {
			dev[i] = math.Abs(p.Energy)
		}
	}
	return dev
}
