package potential

import "math"

// Linear models the triangular well V(x) = F |x|. Its levels are fixed by
// zeros of the Airy function and its derivative; they are not exposed here
// as a closed form, the well serves as a non-polynomial test case.
type Linear struct {
	F float64
}

func NewLinear() *Linear {
	return &Linear{F: 1.0}
}

func (l *Linear) Name() string { return "linear" }

func (l *Linear) Evaluate(x float64) float64 {
	return l.F * math.Abs(x)
}

func (l *Linear) Domain() (float64, float64) {
	w := 10.0 / l.F
	if w > 12 {
		w = 12
	}
	return -w, w
}

func (l *Linear) Params() map[string]float64 {
	return map[string]float64{"F": l.F}
}

func (l *Linear) SetParam(name string, v float64) error {
	if name == "F" {
		l.F = v
	}
	return nil
}
