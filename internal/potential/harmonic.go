package potential

import "math"

// Harmonic models the quantum harmonic oscillator, V(x) = omega^2 x^2 / 2.
type Harmonic struct {
	Omega float64
}

func NewHarmonic() *Harmonic {
	return &Harmonic{Omega: 1.0}
}

func (h *Harmonic) Name() string { return "harmonic" }

func (h *Harmonic) Evaluate(x float64) float64 {
	return 0.5 * h.Omega * h.Omega * x * x
}

// Domain spans several classical turning points of the highest level of
// interest so the wavefunction has room to decay.
func (h *Harmonic) Domain() (float64, float64) {
	l := 6.0 / math.Sqrt(h.Omega)
	return -l, l
}

// Levels returns the first n analytic energies omega (k + 1/2).
func (h *Harmonic) Levels(n int) []float64 {
	levels := make([]float64, n)
	for k := range levels {
		levels[k] = h.Omega * (float64(k) + 0.5)
	}
	return levels
}

func (h *Harmonic) Params() map[string]float64 {
	return map[string]float64{"omega": h.Omega}
}

func (h *Harmonic) SetParam(name string, v float64) error {
	if name == "omega" {
		h.Omega = v
	}
	return nil
}
