package report

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/eigenwell/eigenwell/internal/solver"
)

const (
	plotWidth  = 90
	plotHeight = 24
)

// OverlayPlot draws the potential together with each wavefunction offset
// vertically by its energy, the textbook energy-ladder picture. scale
// multiplies the wavefunctions before offsetting so they stay readable
// between levels.
func OverlayPlot(res *solver.Result, v func(x float64) float64, scale float64) string {
	if len(res.Pairs) == 0 {
		return "no states to plot"
	}
	if scale <= 0 {
		scale = 0.5
	}

	n := res.Grid.Len()
	series := make([][]float64, 0, len(res.Pairs)+1)

	pot := make([]float64, n)
	for i := 0; i < n; i++ {
		pot[i] = v(res.Grid.At(i))
	}
	ceiling := res.Pairs[len(res.Pairs)-1].Energy + 1
	for i, p := range pot {
		if p > ceiling {
			pot[i] = ceiling
		}
	}
	series = append(series, pot)

	for _, p := range res.Pairs {
		curve := make([]float64, n)
		for i, psi := range p.Psi {
			curve[i] = p.Energy + scale*psi
		}
		series = append(series, curve)
	}

	return asciigraph.PlotMany(series,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(fmt.Sprintf("%s: V(x) with first %d states", res.Potential, len(res.Pairs))),
	)
}

// ScanPlot draws the boundary residual across the energy window. Sign
// changes mark the eigenvalues.
func ScanPlot(energies, residuals []float64) string {
	if len(residuals) < 2 {
		return "window too narrow to plot"
	}

	// Compress the residual so the plot survives near-divergent tails.
	compressed := make([]float64, len(residuals))
	for i, r := range residuals {
		compressed[i] = math.Copysign(math.Log1p(math.Abs(r)), r)
	}

	caption := fmt.Sprintf("sign(r)*log(1+|r|) over E in [%.3g, %.3g]",
		energies[0], energies[len(energies)-1])
	return asciigraph.Plot(compressed,
		asciigraph.Height(plotHeight/2),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// ConvergencePlot draws energy deviation against grid refinement.
func ConvergencePlot(rows []solver.StudyRow) string {
	if len(rows) < 2 {
		return "need at least two grid sizes to plot"
	}
	devs := make([]float64, len(rows))
	for i, r := range rows {
		d := r.Deviation
		if d <= 0 {
			d = 1e-16
		}
		devs[i] = math.Log10(d)
	}
	return asciigraph.Plot(devs,
		asciigraph.Height(plotHeight/2),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("log10 deviation vs refinement step"),
	)
}
