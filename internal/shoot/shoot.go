package shoot

import (
	"math"

	"github.com/eigenwell/eigenwell/internal/integrate"
	"github.com/eigenwell/eigenwell/internal/quantum"
)

// Config holds the search parameters for one eigenvalue hunt.
type Config struct {
	// EMin, EMax bound the energy window to scan.
	EMin, EMax float64
	// Resolution is the scan step; brackets narrower than it are missed,
	// a documented limit of the method rather than a failure mode.
	Resolution float64
	// Tolerance accepts a root once the boundary residual magnitude or
	// the refinement bracket width falls below it.
	Tolerance float64
	// MaxIter caps refinement evaluations per bracket.
	MaxIter int
	// MaxStates stops after this many roots; 0 keeps everything found.
	MaxStates int
	// Init is the near-boundary state the trace starts from. A tiny
	// nonzero slope stands in for the decaying exterior tail.
	Init quantum.WaveState
}

func DefaultConfig() Config {
	return Config{
		EMin:       0,
		EMax:       10,
		Resolution: 0.05,
		Tolerance:  1e-9,
		MaxIter:    100,
		Init:       quantum.WaveState{Psi: 0, Dpsi: 1e-3},
	}
}

func (c Config) validate() error {
	if c.EMax <= c.EMin {
		return quantum.ErrInvertedInterval
	}
	if c.Resolution <= 0 {
		return quantum.ErrBadResolution
	}
	if c.Tolerance <= 0 {
		return quantum.ErrBadTolerance
	}
	return nil
}

// Residual is the boundary condition evaluated at the far edge: psi(xMax)
// for the trial energy. Its zeros are the eigenvalues.
func Residual(tr integrate.Tracer, v quantum.Potential, e float64, init quantum.WaveState, grid quantum.Grid) (float64, bool) {
	states, clamped := tr.Trace(v, e, init, grid)
	return states[len(states)-1].Psi, clamped
}

// Find scans [EMin, EMax] for sign changes of the boundary residual and
// refines each bracket. Results come back in ascending energy order, each
// with an explicit Status; an empty window yields an empty slice, nil error.
func Find(tr integrate.Tracer, v quantum.Potential, grid quantum.Grid, cfg Config) ([]quantum.Eigenpair, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.MaxIter <= 0 {
		cfg.MaxIter = DefaultConfig().MaxIter
	}

	residual := func(e float64) float64 {
		r, _ := Residual(tr, v, e, cfg.Init, grid)
		return r
	}

	var pairs []quantum.Eigenpair

	ePrev := cfg.EMin
	rPrev := residual(ePrev)

	for ePrev < cfg.EMax {
		if cfg.MaxStates > 0 && len(pairs) >= cfg.MaxStates {
			break
		}

		eNext := ePrev + cfg.Resolution
		if eNext > cfg.EMax {
			eNext = cfg.EMax
		}
		rNext := residual(eNext)

		switch {
		case rPrev == 0:
			pairs = append(pairs, finish(tr, v, grid, cfg, ePrev, 0, 0, true))
		case rPrev*rNext < 0:
			root, fr, iters, ok := brent(residual, ePrev, eNext, rPrev, rNext, cfg.Tolerance, cfg.MaxIter)
			p := finish(tr, v, grid, cfg, root, fr, iters, ok)
			p.Bracket = [2]float64{ePrev, eNext}
			pairs = append(pairs, p)
		}

		ePrev, rPrev = eNext, rNext
	}

	return pairs, nil
}

// finish traces the wavefunction at the accepted energy and assembles the
// Eigenpair with its convergence status.
func finish(tr integrate.Tracer, v quantum.Potential, grid quantum.Grid, cfg Config, e, r float64, iters int, converged bool) quantum.Eigenpair {
	states, clamped := tr.Trace(v, e, cfg.Init, grid)
	psi := make([]float64, len(states))
	for i, s := range states {
		psi[i] = s.Psi
	}

	status := quantum.Converged
	if !converged {
		status = quantum.IterationLimit
	}
	if clamped && math.Abs(r) > cfg.Tolerance {
		status = quantum.Diverged
	}

	return quantum.Eigenpair{
		Energy:     e,
		Residual:   r,
		Psi:        psi,
		Status:     status,
		Iterations: iters,
	}
}
