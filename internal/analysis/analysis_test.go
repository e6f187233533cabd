package analysis

import (
	"math"
	"testing"

	"github.com/eigenwell/eigenwell/internal/potential"
	"github.com/eigenwell/eigenwell/internal/quantum"
)

// sampled fills psi_n(x) for the infinite square well on [0, 1]:
// sqrt(2) sin((n+1) pi x), normalized in the continuum sense.
func squareWellState(n int, grid quantum.Grid) []float64 {
	psi := make([]float64, grid.Len())
	for i := range psi {
		psi[i] = math.Sqrt2 * math.Sin(float64(n+1)*math.Pi*grid.At(i))
	}
	return psi
}

func TestNodeCount(t *testing.T) {
	grid, _ := quantum.NewGrid(0, 1, 501)

	for n := 0; n < 5; n++ {
		psi := squareWellState(n, grid)
		if got := NodeCount(psi); got != n {
			t.Errorf("state %d: got %d nodes", n, got)
		}
	}
}

func TestNodeCountIgnoresNoiseTail(t *testing.T) {
	psi := make([]float64, 200)
	for i := range psi {
		psi[i] = math.Sin(math.Pi * float64(i) / 400) // single positive lobe
	}
	// Noise-scale wiggles around zero must not register as nodes.
	for i := 150; i < 200; i++ {
		psi[i] = 1e-12 * math.Cos(float64(i))
	}
	if got := NodeCount(psi); got != 0 {
		t.Errorf("noise counted as nodes: %d", got)
	}
}

func TestNormalizationError(t *testing.T) {
	grid, _ := quantum.NewGrid(0, 1, 1001)
	psi := squareWellState(0, grid)

	if e := NormalizationError(psi, grid.Step()); e > 1e-2 {
		t.Errorf("analytic state should be near normalized, error %e", e)
	}

	for i := range psi {
		psi[i] *= 3
	}
	if e := NormalizationError(psi, grid.Step()); e < 1 {
		t.Errorf("scaled state should be far from normalized, error %e", e)
	}
}

func TestAnalyticDeviation(t *testing.T) {
	well := potential.NewHarmonic()
	pairs := []quantum.Eigenpair{
		{Energy: 0.5}, {Energy: 1.515},
	}

	dev := AnalyticDeviation(well, pairs)
	if len(dev) != 2 {
		t.Fatalf("expected 2 deviations, got %d", len(dev))
	}
	if dev[0] > 1e-12 {
		t.Errorf("exact level should have zero deviation, got %e", dev[0])
	}
	if math.Abs(dev[1]-0.01) > 1e-9 {
		t.Errorf("expected 1%% deviation, got %e", dev[1])
	}

	if AnalyticDeviation(potential.NewFiniteWell(), pairs) != nil {
		t.Error("non-analytic well should yield nil")
	}
}

func TestExpectationGroundState(t *testing.T) {
	grid, _ := quantum.NewGrid(0, 1, 2001)
	psi := squareWellState(0, grid)

	m := Expectation(psi, grid)

	// Symmetric density about the well center.
	if math.Abs(m.MeanX-0.5) > 1e-3 {
		t.Errorf("<x>: got %f, want 0.5", m.MeanX)
	}
	// <x^2> = 1/3 - 1/(2 pi^2) for the ground state.
	wantX2 := 1.0/3 - 1.0/(2*math.Pi*math.Pi)
	if math.Abs(m.MeanX2-wantX2) > 1e-3 {
		t.Errorf("<x^2>: got %f, want %f", m.MeanX2, wantX2)
	}
	// <p^2> = pi^2 for the ground state.
	if math.Abs(m.MeanP2-math.Pi*math.Pi) > 0.1 {
		t.Errorf("<p^2>: got %f, want %f", m.MeanP2, math.Pi*math.Pi)
	}
	// Heisenberg bound.
	if m.Uncertainty < 0.5-1e-6 {
		t.Errorf("uncertainty product below hbar/2: %f", m.Uncertainty)
	}
}

func TestFFTImpulse(t *testing.T) {
	data := make([]float64, 8)
	data[0] = 1

	spec := fft(data)
	if len(spec) != 8 {
		t.Fatalf("spectrum length %d, want 8", len(spec))
	}
	for i, c := range spec {
		if math.Abs(real(c)-1) > 1e-12 || math.Abs(imag(c)) > 1e-12 {
			t.Errorf("bin %d: impulse transform should be flat, got %v", i, c)
		}
	}
}

func TestFFTPadsOddLength(t *testing.T) {
	// Awkward input length: padded up to 8, impulse spectrum still flat.
	data := make([]float64, 6)
	data[0] = 1

	spec := fft(data)
	if len(spec) != 8 {
		t.Fatalf("spectrum length %d, want 8", len(spec))
	}
	for i, c := range spec {
		if math.Abs(real(c)-1) > 1e-12 || math.Abs(imag(c)) > 1e-12 {
			t.Errorf("bin %d: got %v", i, c)
		}
	}
}

func TestMomentumDensityPeak(t *testing.T) {
	grid, _ := quantum.NewGrid(0, 1, 1024)
	psi := squareWellState(3, grid) // two full cycles, dominant momentum 4 pi

	k, density := MomentumDensity(psi, grid.Step())

	peak := 0
	for i := range density {
		if density[i] > density[peak] {
			peak = i
		}
	}
	if math.Abs(k[peak]-4*math.Pi) > 1.0 {
		t.Errorf("momentum peak at %f, want near %f", k[peak], 4*math.Pi)
	}

	sum := 0.0
	for _, d := range density {
		sum += d
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("density not normalized: %f", sum)
	}
}
