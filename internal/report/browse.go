package report

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eigenwell/eigenwell/internal/quantum"
	"github.com/eigenwell/eigenwell/internal/solver"
)

var (
	browsePanelStyle = lipgloss.NewStyle().Padding(1, 2)
	browseStatsStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(lipgloss.Color("240")).
				Padding(1, 2).Width(42)
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	errStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// Browser is an interactive view over one potential: cycle through the
// eigenstates and retune the potential's parameters, re-solving on every
// change.
type Browser struct {
	lab       *solver.Lab
	pot       quantum.Potential
	opts      solver.Options
	plotScale float64

	res      *solver.Result
	err      error
	state    int
	density  bool
	params   map[string]float64
	initial  map[string]float64
	keys     []string
	selected int
}

// NewBrowser solves the scenario once and wraps it for interaction.
func NewBrowser(lab *solver.Lab, pot quantum.Potential, opts solver.Options, plotScale float64) Browser {
	params := make(map[string]float64)
	if c, ok := pot.(quantum.Configurable); ok {
		for k, v := range c.Params() {
			params[k] = v
		}
	}
	keys := make([]string, 0, len(params))
	initial := make(map[string]float64, len(params))
	for k, v := range params {
		keys = append(keys, k)
		initial[k] = v
	}
	sort.Strings(keys)

	b := Browser{
		lab:       lab,
		pot:       pot,
		opts:      opts,
		plotScale: plotScale,
		params:    params,
		initial:   initial,
		keys:      keys,
	}
	b.solve()
	return b
}

func (b Browser) Init() tea.Cmd { return nil }

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return b, tea.Quit
		case "tab", "right", "l":
			b.cycleState(1)
		case "left", "h":
			b.cycleState(-1)
		case "d":
			b.density = !b.density
		case "p":
			b.cycleParam()
		case "up", "k":
			b.adjustParam(1.05)
		case "down", "j":
			b.adjustParam(0.95)
		case "r":
			b.resetParams()
		}
	}
	return b, nil
}

func (b *Browser) cycleState(dir int) {
	if b.res == nil || len(b.res.Pairs) == 0 {
		return
	}
	n := len(b.res.Pairs)
	b.state = (b.state + dir + n) % n
}

func (b *Browser) cycleParam() {
	if len(b.keys) == 0 {
		return
	}
	b.selected = (b.selected + 1) % len(b.keys)
}

func (b *Browser) adjustParam(factor float64) {
	if len(b.keys) == 0 {
		return
	}
	c, ok := b.pot.(quantum.Configurable)
	if !ok {
		return
	}
	key := b.keys[b.selected]
	val := b.params[key] * factor
	if err := c.SetParam(key, val); err != nil {
		b.err = err
		return
	}
	b.params[key] = val
	b.solve()
}

func (b *Browser) resetParams() {
	c, ok := b.pot.(quantum.Configurable)
	if !ok {
		return
	}
	for k, v := range b.initial {
		if err := c.SetParam(k, v); err != nil {
			b.err = err
			return
		}
		b.params[k] = v
	}
	b.solve()
}

func (b *Browser) solve() {
	res, err := b.lab.SolveWith(b.pot, b.opts)
	b.res, b.err = res, err
	if res != nil && b.state >= len(res.Pairs) {
		b.state = 0
	}
}

// densityResult swaps each wavefunction for its probability density so the
// overlay plot shows |psi|^2 instead.
func (b Browser) densityResult() *solver.Result {
	res := *b.res
	res.Pairs = make([]quantum.Eigenpair, len(b.res.Pairs))
	for i, p := range b.res.Pairs {
		sq := make([]float64, len(p.Psi))
		for j, v := range p.Psi {
			sq[j] = v * v
		}
		p.Psi = sq
		res.Pairs[i] = p
	}
	return &res
}

func (b Browser) View() string {
	var plot string
	if b.err != nil {
		plot = errStyle.Render(b.err.Error())
	} else if b.res == nil || len(b.res.Pairs) == 0 {
		plot = "no eigenvalues in the scanned window"
	} else if b.density {
		plot = OverlayPlot(b.densityResult(), b.pot.Evaluate, b.plotScale)
	} else {
		plot = OverlayPlot(b.res, b.pot.Evaluate, b.plotScale)
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render(strings.ToUpper(b.pot.Name())) + "\n\n")

	if b.res != nil && b.state < len(b.res.Pairs) {
		p := b.res.Pairs[b.state]
		s.WriteString(fmt.Sprintf("state    n=%d of %d\n", b.state, len(b.res.Pairs)))
		s.WriteString(fmt.Sprintf("energy   %.8f\n", p.Energy))
		s.WriteString(fmt.Sprintf("residual %.2e\n", p.Residual))
		s.WriteString(fmt.Sprintf("status   %s\n", p.Status))
		if b.density {
			s.WriteString("view     |psi|^2\n")
		} else {
			s.WriteString("view     psi\n")
		}
	}

	s.WriteString("\nPARAMETERS\n")
	if len(b.keys) == 0 {
		s.WriteString(noteStyle.Render("  (none)") + "\n")
	} else {
		for i, k := range b.keys {
			line := fmt.Sprintf("%-10s %.4f", k, b.params[k])
			if i == b.selected {
				s.WriteString(activeParamStyle.Render("> "+line) + "\n")
			} else {
				s.WriteString("  " + noteStyle.Render(line) + "\n")
			}
		}
	}

	s.WriteString(helpStyle.Render("\ntab/←→:State D:Density P:Param\n↑↓:Tune R:Reset Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		browsePanelStyle.Render(plot),
		browseStatsStyle.Render(s.String()))
}
