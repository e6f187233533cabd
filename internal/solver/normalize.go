package solver

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Normalize scales psi in place to unit discrete probability,
// sum psi_i^2 h = 1, and fixes the sign convention: the first appreciable
// lobe points up. A zero vector is left untouched.
func Normalize(psi []float64, h float64) {
	norm := math.Sqrt(floats.Dot(psi, psi) * h)
	if norm == 0 {
		return
	}
	floats.Scale(1/norm, psi)

	max := 0.0
	for _, p := range psi {
		if a := math.Abs(p); a > max {
			max = a
		}
	}
	for _, p := range psi {
		if math.Abs(p) > 0.1*max {
			if p < 0 {
				floats.Scale(-1, psi)
			}
			return
		}
	}
}
