package potential

import "math"

// DoubleWell models the bistable quartic potential V(x) = A (x^2 - B)^2.
// Low-lying states come in nearly degenerate tunnel-split pairs.
type DoubleWell struct {
	A, B float64
}

func NewDoubleWell() *DoubleWell {
	return &DoubleWell{A: 1.0, B: 1.0}
}

func (d *DoubleWell) Name() string { return "double_well" }

func (d *DoubleWell) Evaluate(x float64) float64 {
	q := x*x - d.B
	return d.A * q * q
}

func (d *DoubleWell) Domain() (float64, float64) {
	l := math.Sqrt(d.B) + 3.0
	return -l, l
}

func (d *DoubleWell) Params() map[string]float64 {
	return map[string]float64{"A": d.A, "B": d.B}
}

func (d *DoubleWell) SetParam(name string, v float64) error {
	switch name {
	case "A":
		d.A = v
	case "B":
		d.B = v
	}
	return nil
}
