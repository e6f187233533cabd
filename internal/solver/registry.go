package solver

import (
	"fmt"
	"sort"

	"github.com/eigenwell/eigenwell/internal/integrate"
	"github.com/eigenwell/eigenwell/internal/potential"
	"github.com/eigenwell/eigenwell/internal/quantum"
)

// Registry maps names to potential and integrator constructors.
type Registry struct {
	potentials map[string]func() quantum.Potential
	tracers    map[string]func() integrate.Tracer
}

func NewRegistry() *Registry {
	r := &Registry{
		potentials: make(map[string]func() quantum.Potential),
		tracers:    make(map[string]func() integrate.Tracer),
	}

	r.potentials["harmonic"] = func() quantum.Potential { return potential.NewHarmonic() }
	r.potentials["square_well"] = func() quantum.Potential { return potential.NewSquareWell() }
	r.potentials["finite_well"] = func() quantum.Potential { return potential.NewFiniteWell() }
	r.potentials["double_well"] = func() quantum.Potential { return potential.NewDoubleWell() }
	r.potentials["linear"] = func() quantum.Potential { return potential.NewLinear() }
	r.potentials["morse"] = func() quantum.Potential { return potential.NewMorse() }

	r.tracers["euler"] = func() integrate.Tracer { return integrate.NewStepTrace(integrate.NewEuler()) }
	r.tracers["rk4"] = func() integrate.Tracer { return integrate.NewStepTrace(integrate.NewRK4()) }
	r.tracers["numerov"] = func() integrate.Tracer { return integrate.NewNumerov() }

	return r
}

func (r *Registry) Potential(name string) (quantum.Potential, error) {
	fn, ok := r.potentials[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", quantum.ErrUnknownPotential, name)
	}
	return fn(), nil
}

func (r *Registry) Tracer(name string) (integrate.Tracer, error) {
	fn, ok := r.tracers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", quantum.ErrUnknownStepper, name)
	}
	return fn(), nil
}

func (r *Registry) ListPotentials() []string {
	names := make([]string, 0, len(r.potentials))
	for name := range r.potentials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListSteppers() []string {
	names := make([]string, 0, len(r.tracers))
	for name := range r.tracers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
