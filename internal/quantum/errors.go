package quantum

import "errors"

// Domain errors. Configuration errors fail fast at the call boundary;
// non-convergence is reported through [Status], never through an error.
var (
	// ErrGridTooSmall indicates a grid with fewer than two points.
	ErrGridTooSmall = errors.New("quantum: grid needs at least 2 points")

	// ErrInvertedDomain indicates a grid with max <= min.
	ErrInvertedDomain = errors.New("quantum: grid domain inverted or empty")

	// ErrInvertedInterval indicates an energy search window with
	// EMax <= EMin.
	ErrInvertedInterval = errors.New("quantum: energy interval inverted or empty")

	// ErrBadResolution indicates a non-positive scan resolution.
	ErrBadResolution = errors.New("quantum: scan resolution must be positive")

	// ErrBadTolerance indicates a non-positive convergence tolerance.
	ErrBadTolerance = errors.New("quantum: tolerance must be positive")

	// ErrUnknownPotential indicates a potential name missing from the registry.
	ErrUnknownPotential = errors.New("quantum: unknown potential")

	// ErrUnknownMethod indicates a solve method other than shooting or fem.
	ErrUnknownMethod = errors.New("quantum: unknown method")

	// ErrUnknownStepper indicates an integrator name missing from the registry.
	ErrUnknownStepper = errors.New("quantum: unknown stepper")
)
