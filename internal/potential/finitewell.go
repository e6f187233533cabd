package potential

// FiniteWell models a square well of depth V0 and width L centered at 0.
// Its levels solve a transcendental equation, so it carries no analytic
// spectrum; it exists to exercise the solvers on a potential where the
// number of bound states is finite and parameter-dependent.
type FiniteWell struct {
	V0 float64
	L  float64
}

func NewFiniteWell() *FiniteWell {
	return &FiniteWell{V0: 20.0, L: 2.0}
}

func (w *FiniteWell) Name() string { return "finite_well" }

func (w *FiniteWell) Evaluate(x float64) float64 {
	if x >= -w.L/2 && x <= w.L/2 {
		return -w.V0
	}
	return 0
}

func (w *FiniteWell) Domain() (float64, float64) {
	// Three well widths of exterior on each side for the evanescent tails.
	return -3.5 * w.L, 3.5 * w.L
}

func (w *FiniteWell) Params() map[string]float64 {
	return map[string]float64{"V0": w.V0, "L": w.L}
}

func (w *FiniteWell) SetParam(name string, v float64) error {
	switch name {
	case "V0":
		w.V0 = v
	case "L":
		w.L = v
	}
	return nil
}
