package integrate

import (
	"math"

	"github.com/eigenwell/eigenwell/internal/quantum"
)

// Numerov integrates psi'' = f(x) psi with the fourth-order three-point
// recurrence specific to second-order equations without a first-derivative
// term. It works on psi directly, so it implements Tracer rather than
// Stepper; derivatives are recovered by finite differences for callers
// that need them.
type Numerov struct{}

func NewNumerov() *Numerov { return &Numerov{} }

func (Numerov) Trace(v quantum.Potential, e float64, init quantum.WaveState, grid quantum.Grid) ([]quantum.WaveState, bool) {
	n := grid.Len()
	h := grid.Step()
	h2 := h * h

	f := func(i int) float64 {
		return 2 * (v.Evaluate(grid.At(i)) - e)
	}

	psi := make([]float64, n)
	psi[0] = init.Psi
	clamped := false

	if n > 1 {
		// Taylor start for the second point.
		psi[1] = init.Psi + h*init.Dpsi + 0.5*h2*f(0)*init.Psi
	}

	for i := 2; i < n; i++ {
		if clamped {
			psi[i] = psi[i-1]
			continue
		}
		num := psi[i-1]*(2+5*h2*f(i-1)/6) - psi[i-2]*(1-h2*f(i-2)/12)
		den := 1 - h2*f(i)/12
		next := num / den
		if math.IsNaN(next) {
			next = math.Copysign(ClampLimit, psi[i-1])
			clamped = true
		} else if math.Abs(next) > ClampLimit {
			next = math.Copysign(ClampLimit, next)
			clamped = true
		}
		psi[i] = next
	}

	out := make([]quantum.WaveState, n)
	for i := range out {
		out[i] = quantum.WaveState{Psi: psi[i], Dpsi: diff(psi, i, h)}
	}
	out[0].Dpsi = init.Dpsi
	return out, clamped
}

// diff estimates psi' at index i: central where possible, one-sided at the
// edges.
func diff(psi []float64, i int, h float64) float64 {
	n := len(psi)
	switch {
	case n < 2:
		return 0
	case i == 0:
		return (psi[1] - psi[0]) / h
	case i == n-1:
		return (psi[n-1] - psi[n-2]) / h
	default:
		return (psi[i+1] - psi[i-1]) / (2 * h)
	}
}
