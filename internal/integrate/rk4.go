package integrate

import "github.com/eigenwell/eigenwell/internal/quantum"

// RK4 is the classical fourth-order Runge-Kutta scheme.
type RK4 struct{}

func NewRK4() *RK4 { return &RK4{} }

func (RK4) Step(v quantum.Potential, e, x float64, s quantum.WaveState, h float64) quantum.WaveState {
	k1 := derive(v, e, x, s)

	mid := quantum.WaveState{
		Psi:  s.Psi + 0.5*h*k1.Psi,
		Dpsi: s.Dpsi + 0.5*h*k1.Dpsi,
	}
	k2 := derive(v, e, x+0.5*h, mid)

	mid = quantum.WaveState{
		Psi:  s.Psi + 0.5*h*k2.Psi,
		Dpsi: s.Dpsi + 0.5*h*k2.Dpsi,
	}
	k3 := derive(v, e, x+0.5*h, mid)

	end := quantum.WaveState{
		Psi:  s.Psi + h*k3.Psi,
		Dpsi: s.Dpsi + h*k3.Dpsi,
	}
	k4 := derive(v, e, x+h, end)

	h6 := h / 6.0
	return quantum.WaveState{
		Psi:  s.Psi + h6*(k1.Psi+2*k2.Psi+2*k3.Psi+k4.Psi),
		Dpsi: s.Dpsi + h6*(k1.Dpsi+2*k2.Dpsi+2*k3.Dpsi+k4.Dpsi),
	}
}
