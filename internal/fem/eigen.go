package fem

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/eigenwell/eigenwell/internal/quantum"
)

var (
	errMassNotPD  = errors.New("fem: mass matrix not positive definite")
	errEigenFail  = errors.New("fem: symmetric eigendecomposition failed")
	errNoSolution = errors.New("fem: no eigenpairs requested")
)

// Solve assembles and solves the generalized eigenproblem H v = E M v with
// H = Vmat - Lap / 2 and returns the k lowest eigenpairs. Wavefunction
// samples cover the full grid, with the Dirichlet zeros at both boundaries,
// so the grid-length invariant holds for both solver paths.
func Solve(v quantum.Potential, grid quantum.Grid, k int) ([]quantum.Eigenpair, error) {
	if k <= 0 {
		return nil, errNoSolution
	}

	mesh, err := FromGrid(grid)
	if err != nil {
		return nil, err
	}
	n := mesh.interiorLen()
	if k > n {
		k = n
	}

	massM := mesh.Mass()
	lap := mesh.Laplacian()
	pot := mesh.PotentialMatrix(v)

	// H = Vmat - Lap / 2. Only the kinetic term carries the 1/2 of
	// -psi''/2 + V psi = E psi; the potential matrix already holds V.
	h := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			h.SetSym(i, j, pot.At(i, j)-0.5*lap.At(i, j))
		}
	}

	// Reduce with M = L L^T to the ordinary symmetric problem
	// (L^-1 H L^-T) y = E y, then map back v = L^-T y.
	var chol mat.Cholesky
	if ok := chol.Factorize(massM); !ok {
		return nil, errMassNotPD
	}
	var l mat.TriDense
	chol.LTo(&l)

	var y mat.Dense
	if err := y.Solve(&l, h); err != nil {
		return nil, err
	}
	var c mat.Dense
	if err := c.Solve(&l, y.T()); err != nil {
		return nil, err
	}

	// Symmetrize against the rounding introduced by the two solves.
	cs := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			cs.SetSym(i, j, 0.5*(c.At(i, j)+c.At(j, i)))
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(cs, true); !ok {
		return nil, errEigenFail
	}
	vals := es.Values(nil) // ascending
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	pairs := make([]quantum.Eigenpair, k)
	for j := 0; j < k; j++ {
		yj := mat.NewVecDense(n, nil)
		for i := 0; i < n; i++ {
			yj.SetVec(i, vecs.At(i, j))
		}

		var vj mat.VecDense
		if err := vj.SolveVec(l.T(), yj); err != nil {
			return nil, err
		}

		// Position representation through the inverse mass matrix.
		var pos mat.VecDense
		if err := chol.SolveVecTo(&pos, &vj); err != nil {
			return nil, err
		}

		psi := make([]float64, grid.Len())
		for i := 0; i < n; i++ {
			psi[i+1] = pos.AtVec(i)
		}

		pairs[j] = quantum.Eigenpair{
			Energy: vals[j],
			Psi:    psi,
			Status: quantum.Converged,
		}
	}

	return pairs, nil
}
