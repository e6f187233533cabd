package integrate

import "github.com/eigenwell/eigenwell/internal/quantum"

// Stepper advances one wavefunction state by a single fixed step h.
type Stepper interface {
	Step(v quantum.Potential, e, x float64, s quantum.WaveState, h float64) quantum.WaveState
}

// derive evaluates the first-order system right-hand side.
func derive(v quantum.Potential, e, x float64, s quantum.WaveState) quantum.WaveState {
	return quantum.WaveState{
		Psi:  s.Dpsi,
		Dpsi: 2 * (v.Evaluate(x) - e) * s.Psi,
	}
}

type Euler struct{}

func NewEuler() *Euler { return &Euler{} }

func (Euler) Step(v quantum.Potential, e, x float64, s quantum.WaveState, h float64) quantum.WaveState {
	d := derive(v, e, x, s)
	return quantum.WaveState{
		Psi:  s.Psi + h*d.Psi,
		Dpsi: s.Dpsi + h*d.Dpsi,
	}
}
