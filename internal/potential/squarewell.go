package potential

import "math"

// wallHeight stands in for an infinite barrier. Large enough to suppress
// the wavefunction, small enough that 2 (V - E) h^2 stays representable.
const wallHeight = 1e6

// SquareWell models the infinite square well of width L on [0, L].
type SquareWell struct {
	L float64
}

func NewSquareWell() *SquareWell {
	return &SquareWell{L: 1.0}
}

func (w *SquareWell) Name() string { return "square_well" }

func (w *SquareWell) Evaluate(x float64) float64 {
	if x < 0 || x > w.L {
		return wallHeight
	}
	return 0
}

// Domain is the well itself; the wavefunction is pinned to zero at both
// walls, so integrating outside them adds nothing.
func (w *SquareWell) Domain() (float64, float64) { return 0, w.L }

// Levels returns the first n analytic energies k^2 pi^2 / (2 L^2), k >= 1.
func (w *SquareWell) Levels(n int) []float64 {
	levels := make([]float64, n)
	for i := range levels {
		k := float64(i + 1)
		levels[i] = k * k * math.Pi * math.Pi / (2 * w.L * w.L)
	}
	return levels
}

func (w *SquareWell) Params() map[string]float64 {
	return map[string]float64{"L": w.L}
}

func (w *SquareWell) SetParam(name string, v float64) error {
	if name == "L" {
		w.L = v
	}
	return nil
}
