package quantum

import (
	"errors"
	"math"
	"testing"
)

func TestNewGridValidation(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		n        int
		wantErr  error
	}{
		{"ok", -5, 5, 100, nil},
		{"two points", 0, 1, 2, nil},
		{"one point", 0, 1, 1, ErrGridTooSmall},
		{"zero points", 0, 1, 0, ErrGridTooSmall},
		{"inverted", 5, -5, 100, ErrInvertedDomain},
		{"empty", 1, 1, 100, ErrInvertedDomain},
	}

	for _, tt := range tests {
		_, err := NewGrid(tt.min, tt.max, tt.n)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: got error %v, want %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestGridPoints(t *testing.T) {
	g, err := NewGrid(-1, 1, 5)
	if err != nil {
		t.Fatal(err)
	}

	if g.Len() != 5 {
		t.Errorf("expected 5 points, got %d", g.Len())
	}
	if g.Step() != 0.5 {
		t.Errorf("expected step 0.5, got %f", g.Step())
	}

	pts := g.Points()
	want := []float64{-1, -0.5, 0, 0.5, 1}
	for i, p := range pts {
		if math.Abs(p-want[i]) > 1e-15 {
			t.Errorf("point %d: got %f, want %f", i, p, want[i])
		}
	}

	// Far boundary must be exact, not accumulated.
	if pts[len(pts)-1] != 1.0 {
		t.Errorf("last point not exact: %v", pts[len(pts)-1])
	}
}

func TestGridInterior(t *testing.T) {
	g, _ := NewGrid(0, 4, 5)
	in := g.Interior()
	if len(in) != 3 {
		t.Fatalf("expected 3 interior points, got %d", len(in))
	}
	if in[0] != 1 || in[2] != 3 {
		t.Errorf("unexpected interior points: %v", in)
	}

	g2, _ := NewGrid(0, 1, 2)
	if g2.Interior() != nil {
		t.Error("expected nil interior for 2-point grid")
	}
}

func TestWaveStateIsValid(t *testing.T) {
	if !(WaveState{1, -2}).IsValid() {
		t.Error("finite state should be valid")
	}
	if (WaveState{math.NaN(), 0}).IsValid() {
		t.Error("NaN psi should be invalid")
	}
	if (WaveState{0, math.Inf(1)}).IsValid() {
		t.Error("Inf dpsi should be invalid")
	}
}

func TestStatusString(t *testing.T) {
	if Converged.String() != "converged" {
		t.Errorf("unexpected: %s", Converged)
	}
	if IterationLimit.String() != "iteration_limit" {
		t.Errorf("unexpected: %s", IterationLimit)
	}
	if Status(99).String() != "unknown" {
		t.Errorf("unexpected: %s", Status(99))
	}
}
