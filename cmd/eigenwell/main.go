package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/eigenwell/eigenwell/internal/analysis"
	"github.com/eigenwell/eigenwell/internal/config"
	"github.com/eigenwell/eigenwell/internal/export"
	"github.com/eigenwell/eigenwell/internal/report"
	"github.com/eigenwell/eigenwell/internal/solver"
	"github.com/eigenwell/eigenwell/internal/storage"
)

var (
	dataDir    string
	method     string
	stepper    string
	points     int
	states     int
	emin       float64
	emax       float64
	resolution float64
	tolerance  float64
	maxIter    int
	xmin       float64
	xmax       float64
	plotScale  float64
	configFile string
	preset     string
	saveRun    bool
	gridSpec   string
	outFile    string
	svgWidth   int
	svgHeight  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "eigenwell",
		Short: "bound states of one-dimensional quantum wells",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".eigenwell", "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve [potential]",
		Short: "solve for bound states and plot them",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	addSolveFlags(solveCmd)
	solveCmd.Flags().BoolVar(&saveRun, "save", false, "save the run to the data directory")

	scanCmd := &cobra.Command{
		Use:   "scan [potential]",
		Short: "plot the boundary residual across the energy window",
		Args:  cobra.ExactArgs(1),
		RunE:  runScan,
	}
	addSolveFlags(scanCmd)

	compareCmd := &cobra.Command{
		Use:   "compare [potential]",
		Short: "solve with shooting and finite elements side by side",
		Args:  cobra.ExactArgs(1),
		RunE:  runCompare,
	}
	addSolveFlags(compareCmd)

	convergeCmd := &cobra.Command{
		Use:   "converge [potential]",
		Short: "ground state energy against grid refinement",
		Args:  cobra.ExactArgs(1),
		RunE:  runConverge,
	}
	addSolveFlags(convergeCmd)
	convergeCmd.Flags().StringVar(&gridSpec, "grids", "101,201,401,801,1601", "comma-separated grid sizes")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  runList,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a saved run's wavefunctions as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [potential]",
		Short: "solve and render the spectrum to an SVG file",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportSVG,
	}
	addSolveFlags(exportSVGCmd)
	exportSVGCmd.Flags().StringVar(&outFile, "out", "spectrum.svg", "output file")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 900, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 600, "image height")

	presetsCmd := &cobra.Command{
		Use:   "presets [potential]",
		Short: "list available presets for a potential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for potential: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	potentialsCmd := &cobra.Command{
		Use:   "potentials",
		Short: "list known potentials and steppers",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := solver.New().Registry()
			fmt.Println("potentials:")
			for _, name := range reg.ListPotentials() {
				fmt.Printf("  %s\n", name)
			}
			fmt.Println("steppers:")
			for _, name := range reg.ListSteppers() {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}

	browseCmd := &cobra.Command{
		Use:   "browse [potential]",
		Short: "interactively tune a potential and watch its spectrum",
		Args:  cobra.ExactArgs(1),
		RunE:  runBrowse,
	}
	addSolveFlags(browseCmd)

	rootCmd.AddCommand(solveCmd, scanCmd, compareCmd, convergeCmd, listCmd, showCmd,
		exportJSONCmd, exportCSVCmd, exportSVGCmd, presetsCmd, potentialsCmd, browseCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSolveFlags(cmd *cobra.Command) {
	def := solver.DefaultOptions()
	cmd.Flags().StringVar(&method, "method", def.Method, "solve method (shooting, fem)")
	cmd.Flags().StringVar(&stepper, "stepper", def.Stepper, "integration stepper (euler, rk4, numerov)")
	cmd.Flags().IntVar(&points, "points", def.Points, "grid points")
	cmd.Flags().IntVar(&states, "states", def.States, "maximum states to find")
	cmd.Flags().Float64Var(&emin, "emin", def.EMin, "energy window lower bound")
	cmd.Flags().Float64Var(&emax, "emax", def.EMax, "energy window upper bound")
	cmd.Flags().Float64Var(&resolution, "resolution", def.Resolution, "energy scan step")
	cmd.Flags().Float64Var(&tolerance, "tol", def.Tolerance, "residual tolerance")
	cmd.Flags().IntVar(&maxIter, "max-iter", def.MaxIter, "refinement iteration budget")
	cmd.Flags().Float64Var(&xmin, "xmin", 0, "domain lower bound (with --xmax)")
	cmd.Flags().Float64Var(&xmax, "xmax", 0, "domain upper bound (with --xmin)")
	cmd.Flags().Float64Var(&plotScale, "plot-scale", config.DefaultPlotScale, "wavefunction scale in plots")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildOptions resolves preset, config file, and flags in that order of
// increasing precedence.
func buildOptions(cmd *cobra.Command, potential string) (solver.Options, error) {
	if preset != "" {
		cfg := config.GetPreset(potential, preset)
		if cfg == nil {
			return solver.Options{}, fmt.Errorf("unknown preset: %s (available: %v)",
				preset, config.ListPresets(potential))
		}
		applyConfig(cmd, cfg, false)
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return solver.Options{}, fmt.Errorf("failed to load config: %w", err)
		}
		applyConfig(cmd, cfg, true)
	}

	opts := solver.DefaultOptions()
	opts.Method = method
	opts.Stepper = stepper
	opts.Points = points
	opts.States = states
	opts.EMin = emin
	opts.EMax = emax
	opts.Resolution = resolution
	opts.Tolerance = tolerance
	opts.MaxIter = maxIter
	opts.Domain = [2]float64{xmin, xmax}
	return opts, nil
}

// applyConfig copies config values into the flag variables. When
// respectFlags is set, values the user passed explicitly win.
func applyConfig(cmd *cobra.Command, cfg *config.Config, respectFlags bool) {
	changed := func(name string) bool { return respectFlags && cmd.Flags().Changed(name) }

	if cfg.Method != "" && !changed("method") {
		method = cfg.Method
	}
	if cfg.Stepper != "" && !changed("stepper") {
		stepper = cfg.Stepper
	}
	if cfg.Points > 0 && !changed("points") {
		points = cfg.Points
	}
	if cfg.States > 0 && !changed("states") {
		states = cfg.States
	}
	if !changed("emin") {
		emin = cfg.EMin
	}
	if cfg.EMax != 0 && !changed("emax") {
		emax = cfg.EMax
	}
	if cfg.Resolution > 0 && !changed("resolution") {
		resolution = cfg.Resolution
	}
	if cfg.Tolerance > 0 && !changed("tol") {
		tolerance = cfg.Tolerance
	}
	if cfg.MaxIter > 0 && !changed("max-iter") {
		maxIter = cfg.MaxIter
	}
	if cfg.Domain.Min < cfg.Domain.Max && !changed("xmin") && !changed("xmax") {
		xmin, xmax = cfg.Domain.Min, cfg.Domain.Max
	}
	if cfg.Plot.Scale > 0 && !changed("plot-scale") {
		plotScale = cfg.Plot.Scale
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	name := args[0]

	opts, err := buildOptions(cmd, name)
	if err != nil {
		return err
	}

	lab := solver.New()
	res, err := lab.Solve(name, opts)
	if err != nil {
		return err
	}

	fmt.Println(report.Summary(res))

	if len(res.Pairs) > 0 {
		v, err := lab.Registry().Potential(name)
		if err != nil {
			return err
		}
		fmt.Println(report.OverlayPlot(res, v.Evaluate, plotScale))
	}

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(res, opts)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}

	return nil
}

func runScan(cmd *cobra.Command, args []string) error {
	name := args[0]

	opts, err := buildOptions(cmd, name)
	if err != nil {
		return err
	}

	lab := solver.New()
	energies, residuals, err := lab.ResidualScan(name, opts)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d samples over [%g, %g]\n\n", name, len(energies), opts.EMin, opts.EMax)
	fmt.Println(report.ScanPlot(energies, residuals))

	flips := 0
	for i := 1; i < len(residuals); i++ {
		if residuals[i]*residuals[i-1] < 0 {
			flips++
			fmt.Printf("sign change in (%g, %g)\n", energies[i-1], energies[i])
		}
	}
	if flips == 0 {
		fmt.Println("no sign changes: the window contains no eigenvalues")
	}

	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	name := args[0]

	opts, err := buildOptions(cmd, name)
	if err != nil {
		return err
	}

	cmp, err := solver.New().Compare(name, opts)
	if err != nil {
		return err
	}

	fmt.Println(report.CompareSummary(cmp))
	fmt.Printf("shooting: %s  fem: %s\n", cmp.Shooting.Elapsed, cmp.FEM.Elapsed)
	return nil
}

func runConverge(cmd *cobra.Command, args []string) error {
	name := args[0]

	opts, err := buildOptions(cmd, name)
	if err != nil {
		return err
	}

	var grids []int
	for _, part := range strings.Split(gridSpec, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("bad grid size %q: %w", part, err)
		}
		grids = append(grids, n)
	}

	rows, err := solver.New().GridStudy(name, opts, grids)
	if err != nil {
		return err
	}

	fmt.Printf("%s ground state vs grid refinement (%s)\n\n", name, opts.Method)
	fmt.Println(report.StudySummary(rows))
	fmt.Println(report.ConvergencePlot(rows))
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPOTENTIAL\tMETHOD\tTIME\tSTATES\tWINDOW")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t[%g, %g]\n",
			run.ID,
			run.Potential,
			run.Method,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			len(run.Energies),
			run.EMin,
			run.EMax,
		)
	}

	return w.Flush()
}

func runShow(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("potential: %s  method: %s  points: %d\n\n", meta.Potential, meta.Method, meta.Points)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tENERGY\tRESIDUAL\tSTATUS")
	for i, e := range meta.Energies {
		fmt.Fprintf(w, "%d\t%.8f\t%.2e\t%s\n", i, e, meta.Residuals[i], meta.Statuses[i])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	_, psi, err := st.LoadWavefunctions(runID)
	if err != nil {
		return err
	}

	maxPlots := 6
	if len(psi) < maxPlots {
		maxPlots = len(psi)
	}
	for n := 0; n < maxPlots; n++ {
		fmt.Println()
		graph := asciigraph.Plot(psi[n],
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("psi_%d, %d nodes", n, analysis.NodeCount(psi[n]))),
		)
		fmt.Println(graph)
	}

	return nil
}

func runExportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	x, psi, err := st.LoadWavefunctions(runID)
	if err != nil {
		return err
	}

	return export.WriteJSON(os.Stdout, meta, x, psi)
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	x, psi, err := st.LoadWavefunctions(runID)
	if err != nil {
		return err
	}
	if len(x) == 0 {
		return fmt.Errorf("no data to export")
	}

	return export.WriteCSV(os.Stdout, x, psi)
}

func runExportSVG(cmd *cobra.Command, args []string) error {
	name := args[0]

	opts, err := buildOptions(cmd, name)
	if err != nil {
		return err
	}

	lab := solver.New()
	res, err := lab.Solve(name, opts)
	if err != nil {
		return err
	}
	if len(res.Pairs) == 0 {
		return fmt.Errorf("no eigenvalues in the scanned window")
	}

	v, err := lab.Registry().Potential(name)
	if err != nil {
		return err
	}

	svg := export.SpectrumSVG(res, v.Evaluate, plotScale, svgWidth, svgHeight)
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d states)\n", outFile, len(res.Pairs))
	return nil
}

func runBrowse(cmd *cobra.Command, args []string) error {
	name := args[0]

	opts, err := buildOptions(cmd, name)
	if err != nil {
		return err
	}
	// Re-solving on every keystroke wants a lighter grid.
	if !cmd.Flags().Changed("points") {
		opts.Points = 501
	}

	lab := solver.New()
	v, err := lab.Registry().Potential(name)
	if err != nil {
		return err
	}

	m := report.NewBrowser(lab, v, opts, plotScale)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
