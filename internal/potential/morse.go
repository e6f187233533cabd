package potential

import "math"

// Morse models the anharmonic molecular well
//
//	V(x) = D (e^{-2 a (x - x0)} - 2 e^{-a (x - x0)})
//
// with minimum -D at x0 and a finite number of bound states.
type Morse struct {
	D, A, X0 float64
}

func NewMorse() *Morse {
	return &Morse{D: 10.0, A: 1.0, X0: 0.0}
}

func (m *Morse) Name() string { return "morse" }

func (m *Morse) Evaluate(x float64) float64 {
	e := math.Exp(-m.A * (x - m.X0))
	return m.D * (e*e - 2*e)
}

func (m *Morse) Domain() (float64, float64) {
	// Steep repulsive wall on the left, slow exponential tail on the right.
	return m.X0 - 2.0/m.A, m.X0 + 12.0/m.A
}

// Levels returns the analytic bound energies
//
//	E_n = -D + w (n + 1/2) - w^2 (n + 1/2)^2 / (4 D),  w = a sqrt(2 D)
//
// truncated to the states that actually remain bound.
func (m *Morse) Levels(n int) []float64 {
	w := m.A * math.Sqrt(2*m.D)
	bound := int(math.Floor(math.Sqrt(2*m.D)/m.A - 0.5))
	if n > bound+1 {
		n = bound + 1
	}
	if n < 0 {
		n = 0
	}
	levels := make([]float64, n)
	for k := range levels {
		v := float64(k) + 0.5
		levels[k] = -m.D + w*v - w*w*v*v/(4*m.D)
	}
	return levels
}

func (m *Morse) Params() map[string]float64 {
	return map[string]float64{"D": m.D, "a": m.A, "x0": m.X0}
}

func (m *Morse) SetParam(name string, v float64) error {
	switch name {
	case "D":
		m.D = v
	case "a":
		m.A = v
	case "x0":
		m.X0 = v
	}
	return nil
}
