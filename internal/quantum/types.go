package quantum

import "math"

// Natural units used throughout the module.
const (
	Hbar = 1.0
	Mass = 1.0
)

// Potential is a one-dimensional potential well. Evaluate must be a pure
// function of position.
type Potential interface {
	Evaluate(x float64) float64
	Name() string
	// Domain returns the interval outside of which the bound states of
	// interest are negligible, used as the default solve domain.
	Domain() (min, max float64)
}

// Analytic is implemented by potentials with closed-form energy levels.
type Analytic interface {
	Levels(n int) []float64
}

// Configurable is implemented by potentials with adjustable parameters.
type Configurable interface {
	Params() map[string]float64
	SetParam(name string, value float64) error
}

// WaveState is the wavefunction and its spatial derivative at one grid point.
type WaveState struct {
	Psi  float64
	Dpsi float64
}

// IsValid reports whether both components are representable numbers.
func (w WaveState) IsValid() bool {
	return !math.IsNaN(w.Psi) && !math.IsInf(w.Psi, 0) &&
		!math.IsNaN(w.Dpsi) && !math.IsInf(w.Dpsi, 0)
}

// Status classifies the outcome of an eigenvalue search.
type Status int

const (
	// Converged means the boundary residual or the refinement bracket
	// width met the requested tolerance.
	Converged Status = iota
	// IterationLimit means refinement stopped on the iteration budget
	// with neither criterion met. The energy is the best bracket
	// midpoint found and must not be treated as exact.
	IterationLimit
	// Diverged means the wavefunction overflowed during integration and
	// was clamped; the residual sign is still meaningful, the magnitude
	// is not.
	Diverged
)

func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case IterationLimit:
		return "iteration_limit"
	case Diverged:
		return "diverged"
	default:
		return "unknown"
	}
}

// Eigenpair is one accepted solution of the eigenvalue problem.
type Eigenpair struct {
	Energy     float64
	Residual   float64
	Psi        []float64
	Status     Status
	Iterations int
	// Bracket is the energy interval the root was isolated in.
	// Zero for direct (non-iterative) methods.
	Bracket [2]float64
}

// IsConverged reports whether the pair may be quoted as an eigenvalue.
func (e Eigenpair) IsConverged() bool { return e.Status == Converged }
