// Package fem solves the stationary Schrödinger equation by first-order
// finite elements. Hat functions on the interior nodes of the grid (Dirichlet
// boundaries) yield tridiagonal mass and stiffness matrices and a potential
// matrix assembled by Gauss-Legendre quadrature; the resulting generalized
// symmetric eigenproblem
//
//	(Vmat - Lap / 2)  v = E  M  v
//
// is reduced by the Cholesky factor of M and solved directly, no root search.
package fem
