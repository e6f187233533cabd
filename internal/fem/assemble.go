package fem

import (
	"errors"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/mat"

	"github.com/eigenwell/eigenwell/internal/quantum"
)

// quadPoints is the Gauss-Legendre order used per element for the potential
// matrix. Hat products are quadratic, so this is exact for polynomial wells
// up to degree 7.
const quadPoints = 5

var errMeshTooSmall = errors.New("fem: mesh needs at least 4 points for interior elements")

// Mesh assembles the interior-node matrices for a hat-function basis.
// Element (0, 0) of each matrix corresponds to node 1 of the full point set;
// the boundary nodes are pinned to zero and never appear.
type Mesh struct {
	points []float64
}

// NewMesh builds a mesh over an ascending point set.
func NewMesh(points []float64) (*Mesh, error) {
	if len(points) < 4 {
		return nil, errMeshTooSmall
	}
	for i := 1; i < len(points); i++ {
		if points[i] <= points[i-1] {
			return nil, quantum.ErrInvertedDomain
		}
	}
	return &Mesh{points: points}, nil
}

// FromGrid builds the mesh on a solve grid's point set.
func FromGrid(grid quantum.Grid) (*Mesh, error) {
	return NewMesh(grid.Points())
}

func (m *Mesh) interiorLen() int { return len(m.points) - 2 }

// Mass returns the hat-function overlap matrix: (x_{i+1} - x_{i-1}) / 3 on
// the diagonal, element length / 6 off it.
func (m *Mesh) Mass() *mat.SymDense {
	n := m.interiorLen()
	mm := mat.NewSymDense(n, nil)
	for site := 1; site <= n; site++ {
		mm.SetSym(site-1, site-1, (m.points[site+1]-m.points[site-1])/3.0)
	}
	for site := 1; site < n; site++ {
		mm.SetSym(site-1, site, (m.points[site+1]-m.points[site])/6.0)
	}
	return mm
}

// Laplacian returns the stiffness matrix of the second-derivative operator.
func (m *Mesh) Laplacian() *mat.SymDense {
	n := m.interiorLen()
	lap := mat.NewSymDense(n, nil)
	for site := 1; site <= n; site++ {
		d := 1.0/(m.points[site-1]-m.points[site]) + 1.0/(m.points[site]-m.points[site+1])
		lap.SetSym(site-1, site-1, d)
	}
	for site := 1; site < n; site++ {
		lap.SetSym(site-1, site, 1.0/(m.points[site+1]-m.points[site]))
	}
	return lap
}

// PotentialMatrix returns the matrix of V projected on hat products,
// integrated element by element with fixed Gauss-Legendre quadrature.
func (m *Mesh) PotentialMatrix(v quantum.Potential) *mat.SymDense {
	n := m.interiorLen()
	pm := mat.NewSymDense(n, nil)

	// rising ramp into node `site`, falling ramp out of it
	up := func(x float64, site int) float64 {
		return (x - m.points[site-1]) / (m.points[site] - m.points[site-1])
	}
	down := func(x float64, site int) float64 {
		return (m.points[site+1] - x) / (m.points[site+1] - m.points[site])
	}

	for site := 1; site <= n; site++ {
		left := quad.Fixed(func(x float64) float64 {
			r := up(x, site)
			return v.Evaluate(x) * r * r
		}, m.points[site-1], m.points[site], quadPoints, nil, 0)

		right := quad.Fixed(func(x float64) float64 {
			r := down(x, site)
			return v.Evaluate(x) * r * r
		}, m.points[site], m.points[site+1], quadPoints, nil, 0)

		pm.SetSym(site-1, site-1, left+right)
	}

	for site := 1; site < n; site++ {
		cross := quad.Fixed(func(x float64) float64 {
			return v.Evaluate(x) * up(x, site+1) * down(x, site)
		}, m.points[site], m.points[site+1], quadPoints, nil, 0)
		pm.SetSym(site-1, site, cross)
	}

	return pm
}
