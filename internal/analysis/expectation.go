package analysis

import (
	"math"

	"github.com/eigenwell/eigenwell/internal/quantum"
)

// Moments holds the position and momentum moments of a normalized state.
type Moments struct {
	MeanX       float64
	MeanX2      float64
	MeanP2      float64
	Uncertainty float64 // dx * dp, bounded below by hbar / 2
}

// Expectation computes the moments of psi sampled on grid. The state is
// assumed normalized; real wavefunctions have <p> = 0, so the momentum
// spread is sqrt(<p^2>).
func Expectation(psi []float64, grid quantum.Grid) Moments {
	h := grid.Step()

	var mx, mx2 float64
	for i, p := range psi {
		x := grid.At(i)
		w := p * p * h
		mx += x * w
		mx2 += x * x * w
	}

	// <p^2> = integral of (psi')^2 by parts, hbar = 1.
	var mp2 float64
	for i := 1; i < len(psi)-1; i++ {
		d := (psi[i+1] - psi[i-1]) / (2 * h)
		mp2 += d * d * h
	}

	varX := mx2 - mx*mx
	if varX < 0 {
		varX = 0
	}

	return Moments{
		MeanX:       mx,
		MeanX2:      mx2,
		MeanP2:      mp2,
		Uncertainty: math.Sqrt(varX) * math.Sqrt(mp2),
	}
}
