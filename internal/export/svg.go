// Package export renders solved scenarios to standalone files.
package export

import (
	"fmt"
	"strings"

	"github.com/eigenwell/eigenwell/internal/solver"
)

var strokePalette = []string{
	"#00ccff", "#ff00ff", "#00ff88", "#ffcc00", "#ff4444", "#cc88ff",
}

// SpectrumSVG renders the potential with each wavefunction offset by its
// energy, one path per curve, with the energy printed at the right edge.
func SpectrumSVG(res *solver.Result, v func(x float64) float64, scale float64, width, height int) string {
	if res == nil || res.Grid.Len() < 2 {
		return ""
	}
	if scale <= 0 {
		scale = 0.5
	}

	n := res.Grid.Len()

	pot := make([]float64, n)
	for i := 0; i < n; i++ {
		pot[i] = v(res.Grid.At(i))
	}

	// Vertical bounds: the potential floor up to just above the top level,
	// so a hard wall does not flatten everything else.
	minY, maxY := pot[0], pot[0]
	for _, p := range pot {
		if p < minY {
			minY = p
		}
	}
	maxY = minY + 1
	for _, p := range res.Pairs {
		if top := p.Energy + scale; top > maxY {
			maxY = top
		}
	}
	maxY += (maxY - minY) * 0.1
	for i, p := range pot {
		if p > maxY {
			pot[i] = maxY
		}
	}

	minX, maxX := res.Grid.Min(), res.Grid.Max()
	rangeX, rangeY := maxX-minX, maxY-minY

	toX := func(x float64) float64 { return (x - minX) / rangeX * float64(width) }
	toY := func(y float64) float64 { return float64(height) - (y-minY)/rangeY*float64(height) }

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	writePath := func(ys []float64, stroke string, strokeWidth float64) {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="%.1f" d="M`, stroke, strokeWidth))
		for i, y := range ys {
			px, py := toX(res.Grid.At(i)), toY(y)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
			}
		}
		sb.WriteString("\"/>\n")
	}

	writePath(pot, "#888899", 2)

	for k, p := range res.Pairs {
		curve := make([]float64, n)
		for i, psi := range p.Psi {
			curve[i] = p.Energy + scale*psi
		}
		stroke := strokePalette[k%len(strokePalette)]
		writePath(curve, stroke, 1.5)
		sb.WriteString(fmt.Sprintf(
			`<text x="%d" y="%.1f" fill="%s" font-family="monospace" font-size="12">E%d=%.4f</text>`+"\n",
			width-110, toY(p.Energy)-4, stroke, k, p.Energy))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// ScanSVG renders the boundary residual against energy as a single path
// with a zero axis.
func ScanSVG(energies, residuals []float64, width, height int) string {
	if len(energies) < 2 || len(energies) != len(residuals) {
		return ""
	}

	minR, maxR := residuals[0], residuals[0]
	for _, r := range residuals {
		if r < minR {
			minR = r
		}
		if r > maxR {
			maxR = r
		}
	}
	if minR > 0 {
		minR = 0
	}
	if maxR < 0 {
		maxR = 0
	}
	rangeR := maxR - minR
	if rangeR == 0 {
		rangeR = 1
	}
	minE, maxE := energies[0], energies[len(energies)-1]
	rangeE := maxE - minE

	toX := func(e float64) float64 { return (e - minE) / rangeE * float64(width) }
	toY := func(r float64) float64 { return float64(height) - (r-minR)/rangeR*float64(height) }

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#444466" stroke-width="1"/>
<path fill="none" stroke="#00ccff" stroke-width="1.5" d="M`,
		width, height, width, height, toY(0), width, toY(0)))

	for i := range energies {
		x, y := toX(energies[i]), toY(residuals[i])
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
