package potential

import (
	"math"
	"testing"

	"github.com/eigenwell/eigenwell/internal/quantum"
)

func TestHarmonicLevels(t *testing.T) {
	h := NewHarmonic()
	levels := h.Levels(3)

	want := []float64{0.5, 1.5, 2.5}
	for i, e := range levels {
		if math.Abs(e-want[i]) > 1e-12 {
			t.Errorf("level %d: got %f, want %f", i, e, want[i])
		}
	}

	h.Omega = 2.0
	if got := h.Levels(1)[0]; math.Abs(got-1.0) > 1e-12 {
		t.Errorf("omega=2 ground state: got %f, want 1.0", got)
	}
}

func TestSquareWellLevels(t *testing.T) {
	w := NewSquareWell()
	levels := w.Levels(3)

	for i, e := range levels {
		k := float64(i + 1)
		want := k * k * math.Pi * math.Pi / 2
		if math.Abs(e-want) > 1e-12 {
			t.Errorf("level %d: got %f, want %f", i, e, want)
		}
	}
}

func TestSquareWellWalls(t *testing.T) {
	w := NewSquareWell()
	if w.Evaluate(0.5) != 0 {
		t.Error("interior should be zero")
	}
	if w.Evaluate(-0.1) != wallHeight || w.Evaluate(1.1) != wallHeight {
		t.Error("exterior should be the wall height")
	}
}

func TestMorseBoundStateTruncation(t *testing.T) {
	m := NewMorse()
	// sqrt(2D)/a - 1/2 with D=10, a=1 gives 3.97..., so 4 bound states.
	levels := m.Levels(10)
	if len(levels) != 4 {
		t.Fatalf("expected 4 bound levels, got %d", len(levels))
	}
	for i, e := range levels {
		if e >= 0 || e <= -m.D {
			t.Errorf("level %d out of (-D, 0): %f", i, e)
		}
		if i > 0 && e <= levels[i-1] {
			t.Errorf("levels not increasing at %d", i)
		}
	}
}

func TestDoubleWellShape(t *testing.T) {
	d := NewDoubleWell()
	if d.Evaluate(1) != 0 || d.Evaluate(-1) != 0 {
		t.Error("minima should sit at x = ±sqrt(B)")
	}
	if d.Evaluate(0) != d.A*d.B*d.B {
		t.Error("wrong barrier height at x = 0")
	}
}

func TestConfigurableRoundTrip(t *testing.T) {
	wells := []quantum.Potential{
		NewHarmonic(), NewSquareWell(), NewFiniteWell(),
		NewDoubleWell(), NewLinear(), NewMorse(),
	}

	for _, w := range wells {
		c, ok := w.(quantum.Configurable)
		if !ok {
			t.Errorf("%s: not configurable", w.Name())
			continue
		}
		for name, v := range c.Params() {
			if err := c.SetParam(name, v*2); err != nil {
				t.Errorf("%s: SetParam(%s): %v", w.Name(), name, err)
			}
		}
		min, max := w.Domain()
		if min >= max {
			t.Errorf("%s: degenerate domain [%f, %f]", w.Name(), min, max)
		}
	}
}
