package export

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/eigenwell/eigenwell/internal/quantum"
	"github.com/eigenwell/eigenwell/internal/solver"
	"github.com/eigenwell/eigenwell/internal/storage"
)

func sampleResult(t *testing.T) *solver.Result {
	t.Helper()

	grid, err := quantum.NewGrid(0, 1, 21)
	if err != nil {
		t.Fatal(err)
	}

	psi := make([]float64, grid.Len())
	for i := range psi {
		psi[i] = math.Sqrt2 * math.Sin(math.Pi*grid.At(i))
	}

	return &solver.Result{
		Potential: "square_well",
		Method:    solver.MethodShooting,
		Grid:      grid,
		Pairs: []quantum.Eigenpair{{
			Energy: math.Pi * math.Pi / 2,
			Psi:    psi,
			Status: quantum.Converged,
		}},
	}
}

func TestSpectrumSVG(t *testing.T) {
	res := sampleResult(t)
	svg := SpectrumSVG(res, func(x float64) float64 { return 0 }, 0.5, 800, 600)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML declaration")
	}
	if !strings.Contains(svg, "<svg") || !strings.HasSuffix(svg, "</svg>") {
		t.Error("not a complete SVG document")
	}
	// One path for the potential, one per state.
	if got := strings.Count(svg, "<path"); got != 2 {
		t.Errorf("expected 2 paths, got %d", got)
	}
	if !strings.Contains(svg, "E0=4.9348") {
		t.Error("missing energy label")
	}
}

func TestSpectrumSVG_Empty(t *testing.T) {
	if svg := SpectrumSVG(nil, nil, 0.5, 800, 600); svg != "" {
		t.Error("expected empty string for nil result")
	}
}

func TestScanSVG(t *testing.T) {
	energies := []float64{0, 0.5, 1, 1.5, 2}
	residuals := []float64{1, 0.2, -0.5, -0.1, 0.8}

	svg := ScanSVG(energies, residuals, 800, 400)
	if !strings.Contains(svg, "<line") {
		t.Error("missing zero axis")
	}
	if !strings.Contains(svg, "<path") {
		t.Error("missing residual path")
	}

	if ScanSVG(energies[:1], residuals[:1], 800, 400) != "" {
		t.Error("expected empty string for a single sample")
	}
	if ScanSVG(energies, residuals[:3], 800, 400) != "" {
		t.Error("expected empty string for mismatched lengths")
	}
}

func TestWriteJSON(t *testing.T) {
	meta := &storage.RunMetadata{ID: "run1", Potential: "harmonic", Energies: []float64{0.5}}
	x := []float64{0, 0.5, 1}
	psi := [][]float64{{0, 1, 0}}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, meta, x, psi); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `"id": "run1"`) {
		t.Error("missing metadata in JSON output")
	}
	if !strings.Contains(out, `"wavefunctions"`) {
		t.Error("missing wavefunctions in JSON output")
	}
}

func TestWriteCSV(t *testing.T) {
	x := []float64{0, 0.5, 1}
	psi := [][]float64{{0, 1, 0}, {1, 0, -1}}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, x, psi); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines", len(lines))
	}
	if lines[0] != "x,psi0,psi1" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "0.500000,1,") {
		t.Errorf("unexpected middle row %q", lines[2])
	}
}
