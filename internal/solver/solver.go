package solver

import (
	"fmt"
	"time"

	"github.com/eigenwell/eigenwell/internal/analysis"
	"github.com/eigenwell/eigenwell/internal/fem"
	"github.com/eigenwell/eigenwell/internal/quantum"
	"github.com/eigenwell/eigenwell/internal/shoot"
)

// Method names accepted by Solve.
const (
	MethodShooting = "shooting"
	MethodFEM      = "fem"
)

// Options configures one scenario solve.
type Options struct {
	Method     string
	Stepper    string
	Points     int
	States     int
	EMin, EMax float64
	Resolution float64
	Tolerance  float64
	MaxIter    int
	// Domain overrides the potential's default solve interval when
	// Domain[0] < Domain[1].
	Domain [2]float64
}

func DefaultOptions() Options {
	return Options{
		Method:     MethodShooting,
		Stepper:    "rk4",
		Points:     2001,
		States:     3,
		EMin:       0,
		EMax:       10,
		Resolution: 0.05,
		Tolerance:  1e-9,
		MaxIter:    100,
	}
}

// Result is a solved scenario, normalized and annotated for presentation.
type Result struct {
	Potential  string
	Method     string
	Grid       quantum.Grid
	Pairs      []quantum.Eigenpair
	Deviations []float64 // relative error vs analytic levels, nil if none
	Elapsed    time.Duration
}

// Lab orchestrates scenario solves over the registry.
type Lab struct {
	reg *Registry
}

func New() *Lab {
	return &Lab{reg: NewRegistry()}
}

func (l *Lab) Registry() *Registry { return l.reg }

// Solve runs a named potential through the selected method path.
func (l *Lab) Solve(name string, opts Options) (*Result, error) {
	v, err := l.reg.Potential(name)
	if err != nil {
		return nil, err
	}
	return l.SolveWith(v, opts)
}

// SolveWith runs an already-constructed potential, which lets callers
// adjust parameters between solves.
func (l *Lab) SolveWith(v quantum.Potential, opts Options) (*Result, error) {
	grid, err := l.buildGrid(v, opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	var pairs []quantum.Eigenpair
	switch opts.Method {
	case MethodShooting:
		pairs, err = l.solveShooting(v, grid, opts)
	case MethodFEM:
		pairs, err = fem.Solve(v, grid, opts.States)
	default:
		err = fmt.Errorf("%w: %s", quantum.ErrUnknownMethod, opts.Method)
	}
	if err != nil {
		return nil, err
	}

	h := grid.Step()
	for i := range pairs {
		Normalize(pairs[i].Psi, h)
	}

	return &Result{
		Potential:  v.Name(),
		Method:     opts.Method,
		Grid:       grid,
		Pairs:      pairs,
		Deviations: analysis.AnalyticDeviation(v, pairs),
		Elapsed:    time.Since(start),
	}, nil
}

func (l *Lab) solveShooting(v quantum.Potential, grid quantum.Grid, opts Options) ([]quantum.Eigenpair, error) {
	tr, err := l.reg.Tracer(opts.Stepper)
	if err != nil {
		return nil, err
	}

	cfg := shoot.DefaultConfig()
	cfg.EMin = opts.EMin
	cfg.EMax = opts.EMax
	cfg.Resolution = opts.Resolution
	cfg.Tolerance = opts.Tolerance
	cfg.MaxIter = opts.MaxIter
	cfg.MaxStates = opts.States

	return shoot.Find(tr, v, grid, cfg)
}

func (l *Lab) buildGrid(v quantum.Potential, opts Options) (quantum.Grid, error) {
	min, max := v.Domain()
	if opts.Domain[0] < opts.Domain[1] {
		min, max = opts.Domain[0], opts.Domain[1]
	}
	points := opts.Points
	if points == 0 {
		points = DefaultOptions().Points
	}
	return quantum.NewGrid(min, max, points)
}

// ResidualScan samples the boundary residual across the energy window,
// the raw material for the scan plot.
func (l *Lab) ResidualScan(name string, opts Options) (energies, residuals []float64, err error) {
	v, err := l.reg.Potential(name)
	if err != nil {
		return nil, nil, err
	}
	if opts.EMax <= opts.EMin {
		return nil, nil, quantum.ErrInvertedInterval
	}
	if opts.Resolution <= 0 {
		return nil, nil, quantum.ErrBadResolution
	}
	grid, err := l.buildGrid(v, opts)
	if err != nil {
		return nil, nil, err
	}
	tr, err := l.reg.Tracer(opts.Stepper)
	if err != nil {
		return nil, nil, err
	}

	init := shoot.DefaultConfig().Init
	for e := opts.EMin; e <= opts.EMax; e += opts.Resolution {
		r, _ := shoot.Residual(tr, v, e, init, grid)
		energies = append(energies, e)
		residuals = append(residuals, r)
	}
	return energies, residuals, nil
}

// Comparison lines up both methods against the analytic spectrum.
type Comparison struct {
	Potential string
	Shooting  *Result
	FEM       *Result
	Analytic  []float64 // nil when the well has no closed form
}

// Compare solves the same scenario with both methods.
func (l *Lab) Compare(name string, opts Options) (*Comparison, error) {
	sOpts := opts
	sOpts.Method = MethodShooting
	shootRes, err := l.Solve(name, sOpts)
	if err != nil {
		return nil, err
	}

	fOpts := opts
	fOpts.Method = MethodFEM
	femRes, err := l.Solve(name, fOpts)
	if err != nil {
		return nil, err
	}

	cmp := &Comparison{Potential: name, Shooting: shootRes, FEM: femRes}
	v, _ := l.reg.Potential(name)
	if a, ok := v.(quantum.Analytic); ok {
		cmp.Analytic = a.Levels(opts.States)
	}
	return cmp, nil
}
