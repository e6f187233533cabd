package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/eigenwell/eigenwell/internal/quantum"
	"github.com/eigenwell/eigenwell/internal/solver"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	rowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Summary renders the spectrum table for one solved scenario.
func Summary(res *solver.Result) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s / %s", res.Potential, res.Method)) + "\n")
	b.WriteString(noteStyle.Render(fmt.Sprintf("%d grid points over [%.3g, %.3g], solved in %s",
		res.Grid.Len(), res.Grid.Min(), res.Grid.Max(), res.Elapsed.Round(res.Elapsed/100+1))) + "\n\n")

	if len(res.Pairs) == 0 {
		b.WriteString(noteStyle.Render("no eigenvalues in the scanned window") + "\n")
		return b.String()
	}

	header := fmt.Sprintf("%-4s %-14s %-12s %-16s", "n", "energy", "residual", "status")
	hasDev := res.Deviations != nil
	if hasDev {
		header += fmt.Sprintf(" %-12s", "deviation")
	}
	b.WriteString(headerStyle.Render(header) + "\n")

	for i, p := range res.Pairs {
		line := fmt.Sprintf("%-4d %-14.8f %-12.2e %-16s", i, p.Energy, p.Residual, p.Status)
		if hasDev {
			line += fmt.Sprintf(" %-12.2e", res.Deviations[i])
		}
		if p.IsConverged() {
			b.WriteString(rowStyle.Render(line) + "\n")
		} else {
			b.WriteString(warnStyle.Render(line) + "\n")
		}
	}

	if unconverged := countUnconverged(res.Pairs); unconverged > 0 {
		b.WriteString("\n" + warnStyle.Render(fmt.Sprintf(
			"%d state(s) did not converge; energies are bracket estimates", unconverged)) + "\n")
	}

	return b.String()
}

// CompareSummary renders both methods side by side against the analytic
// levels when they exist.
func CompareSummary(cmp *solver.Comparison) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s: shooting vs finite elements", cmp.Potential)) + "\n\n")

	rows := len(cmp.Shooting.Pairs)
	if len(cmp.FEM.Pairs) > rows {
		rows = len(cmp.FEM.Pairs)
	}
	if rows == 0 {
		b.WriteString(noteStyle.Render("no eigenvalues found by either method") + "\n")
		return b.String()
	}

	header := fmt.Sprintf("%-4s %-16s %-16s", "n", "shooting", "fem")
	if cmp.Analytic != nil {
		header += fmt.Sprintf(" %-16s", "analytic")
	}
	b.WriteString(headerStyle.Render(header) + "\n")

	for i := 0; i < rows; i++ {
		line := fmt.Sprintf("%-4d %-16s %-16s", i,
			pairEnergy(cmp.Shooting.Pairs, i), pairEnergy(cmp.FEM.Pairs, i))
		if cmp.Analytic != nil && i < len(cmp.Analytic) {
			line += fmt.Sprintf(" %-16.8f", cmp.Analytic[i])
		}
		b.WriteString(rowStyle.Render(line) + "\n")
	}

	return b.String()
}

// StudySummary renders a grid refinement study.
func StudySummary(rows []solver.StudyRow) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-8s %-16s %-12s %-10s",
		"points", "energy", "deviation", "elapsed")) + "\n")
	for _, r := range rows {
		b.WriteString(rowStyle.Render(fmt.Sprintf("%-8d %-16.10f %-12.2e %-10s",
			r.Points, r.Energy, r.Deviation, r.Elapsed.Round(r.Elapsed/100+1))) + "\n")
	}
	return b.String()
}

func pairEnergy(pairs []quantum.Eigenpair, i int) string {
	if i >= len(pairs) {
		return "-"
	}
	return fmt.Sprintf("%.8f", pairs[i].Energy)
}

func countUnconverged(pairs []quantum.Eigenpair) int {
	n := 0
	for _, p := range pairs {
		if !p.IsConverged() {
			n++
		}
	}
	return n
}
