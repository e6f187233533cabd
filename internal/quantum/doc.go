// Package quantum provides the core primitives for one-dimensional
// stationary Schrödinger problems.
//
// The package defines the fundamental interfaces and types shared by the
// solver packages:
//
//   - [Potential]: a well V(x) with a natural solution domain
//   - [Grid]: uniform spatial discretization
//   - [WaveState]: wavefunction value and derivative at a point
//   - [Eigenpair]: an accepted energy level with its sampled wavefunction
//   - [Status]: convergence outcome attached to every result
//
// All quantities use natural units, hbar = m = 1. The equation solved is
//
//	psi''(x) = 2 (V(x) - E) psi(x)
//
// # Example
//
//	well := potential.NewHarmonic()
//	grid, _ := quantum.NewGrid(-5, 5, 1000)
//	tr := integrate.NewStepTrace(integrate.NewRK4())
//	pairs, _ := shoot.Find(tr, well, grid, shoot.DefaultConfig())
//
// # Thread Safety
//
// All types in this package are plain values. Potentials are pure functions
// of position and safe to share; nothing here spawns goroutines.
package quantum
