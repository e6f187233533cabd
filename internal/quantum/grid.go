package quantum

// Grid is a uniform spatial discretization of [min, max] with n points.
// The step size is fixed at construction; the integrators rely on it.
type Grid struct {
	min, max float64
	n        int
}

// NewGrid builds a uniform grid over [min, max] with n points.
func NewGrid(min, max float64, n int) (Grid, error) {
	if n < 2 {
		return Grid{}, ErrGridTooSmall
	}
	if max <= min {
		return Grid{}, ErrInvertedDomain
	}
	return Grid{min: min, max: max, n: n}, nil
}

func (g Grid) Len() int      { return g.n }
func (g Grid) Min() float64  { return g.min }
func (g Grid) Max() float64  { return g.max }
func (g Grid) Step() float64 { return (g.max - g.min) / float64(g.n-1) }

// At returns the i-th sample point. The last point is exactly Max to keep
// the far boundary free of accumulated rounding.
func (g Grid) At(i int) float64 {
	if i == g.n-1 {
		return g.max
	}
	return g.min + float64(i)*g.Step()
}

// Points materializes all sample points.
func (g Grid) Points() []float64 {
	pts := make([]float64, g.n)
	for i := range pts {
		pts[i] = g.At(i)
	}
	return pts
}

// Interior returns the points excluding both boundaries, the node set the
// finite-element assembly works on under Dirichlet conditions.
func (g Grid) Interior() []float64 {
	if g.n <= 2 {
		return nil
	}
	return g.Points()[1 : g.n-1]
}
