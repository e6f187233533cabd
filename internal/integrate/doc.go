// Package integrate advances the stationary Schrödinger equation across a
// grid. The second-order equation is rewritten as the first-order system
//
//	psi' = phi
//	phi' = 2 (V(x) - E) psi
//
// and stepped with a fixed scheme, no adaptive step control. Divergence at
// non-eigenvalue energies is expected physics, not an error: traces clamp
// instead of overflowing so the caller can still read the residual sign.
package integrate
