// Package shoot locates bound-state energies by the shooting method: the
// far-boundary value of the integrated wavefunction, taken as a function of
// the trial energy, changes sign at each eigenvalue. A linear scan brackets
// the sign changes and Brent refinement isolates each root.
//
// Non-convergence is data here, not failure: every returned pair carries a
// Status, an empty scan returns an empty slice, and only malformed
// configuration produces an error.
package shoot
