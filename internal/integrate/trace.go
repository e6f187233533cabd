package integrate

import (
	"math"

	"github.com/eigenwell/eigenwell/internal/quantum"
)

// ClampLimit bounds the wavefunction magnitude during a trace. Divergence
// past it freezes the trace at a signed terminal value; the residual sign
// stays readable and no Inf or NaN escapes.
const ClampLimit = 1e150

// Tracer produces the full wavefunction trace across a grid. The returned
// slice always has exactly grid.Len() entries. The bool reports whether the
// trace hit the clamp limit.
type Tracer interface {
	Trace(v quantum.Potential, e float64, init quantum.WaveState, grid quantum.Grid) ([]quantum.WaveState, bool)
}

// StepTrace adapts a single-step scheme into a Tracer.
type StepTrace struct {
	Stepper Stepper
}

func NewStepTrace(s Stepper) *StepTrace { return &StepTrace{Stepper: s} }

func (t *StepTrace) Trace(v quantum.Potential, e float64, init quantum.WaveState, grid quantum.Grid) ([]quantum.WaveState, bool) {
	n := grid.Len()
	h := grid.Step()
	out := make([]quantum.WaveState, n)
	out[0] = init

	clamped := false
	s := init
	for i := 1; i < n; i++ {
		if clamped {
			out[i] = s
			continue
		}
		s = t.Stepper.Step(v, e, grid.At(i-1), s, h)
		if c, hit := clamp(s, out[i-1]); hit {
			s = c
			clamped = true
		}
		out[i] = s
	}
	return out, clamped
}

// clamp bounds a state that left the representable range, preserving the
// sign so the boundary residual stays meaningful. prev supplies the sign
// when the value itself is NaN.
func clamp(s, prev quantum.WaveState) (quantum.WaveState, bool) {
	hit := false
	s.Psi, hit = clampValue(s.Psi, prev.Psi, hit)
	s.Dpsi, hit = clampValue(s.Dpsi, prev.Dpsi, hit)
	return s, hit
}

func clampValue(v, prev float64, hit bool) (float64, bool) {
	if math.IsNaN(v) {
		return math.Copysign(ClampLimit, prev), true
	}
	if math.Abs(v) > ClampLimit {
		return math.Copysign(ClampLimit, v), true
	}
	return v, hit
}
