// Package potential provides the predefined one-dimensional wells.
//
// Each well implements [quantum.Potential], and where closed-form energy
// levels exist also [quantum.Analytic]:
//
//   - [Harmonic]: quadratic well, E_n = omega (n + 1/2)
//   - [SquareWell]: infinite square well, E_n = n^2 pi^2 / (2 L^2)
//   - [FiniteWell]: finite-depth square well (transcendental levels)
//   - [DoubleWell]: bistable quartic well
//   - [Linear]: triangular well V = F |x|
//   - [Morse]: anharmonic molecular well with a finite bound spectrum
//
// All wells implement [quantum.Configurable] for parameter adjustment from
// the interactive browser.
package potential
