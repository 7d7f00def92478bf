package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/mkol/gravsim/internal/analysis"
	"github.com/mkol/gravsim/internal/config"
	"github.com/mkol/gravsim/internal/gravity"
	"github.com/mkol/gravsim/internal/integrators"
	"github.com/mkol/gravsim/internal/metrics"
	"github.com/mkol/gravsim/internal/orbit"
	"github.com/mkol/gravsim/internal/sim"
	"github.com/mkol/gravsim/internal/storage"
	"github.com/mkol/gravsim/internal/tune"
	"github.com/mkol/gravsim/internal/viz"
)

var (
	dataDir string

	configFile string
	dt         float64
	duration   float64
	integrator string
	gConst     float64
	softening  float64
	autoOrbit  string
	saveRun    bool

	series     string
	bodyName   string
	centerName string
	svgOut     string

	phaseMode     string
	phasePoincare bool

	divergence   bool
	perturbation float64

	sweepDts     []float64
	sweepSofts   []float64
	sweepWorkers int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravsim",
		Short: "terminal n-body gravity lab",
		Long: "Newtonian n-body simulation with softened gravity, fixed-step\n" +
			"symplectic integration, recorded runs, offline analysis and a\n" +
			"live terminal view.",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", defaultDataDir(), "data directory")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run a scenario and record it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	scenarioFlags(runCmd)
	runCmd.Flags().BoolVar(&saveRun, "save", true, "record the run")

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "interactive terminal view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	scenarioFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&series, "series", "radius", "series: radius, energy, px, py, pz, vx, vy, vz")
	plotCmd.Flags().StringVar(&bodyName, "body", "", "body name (default first)")
	plotCmd.Flags().StringVar(&centerName, "center", "", "measure radius from this body (default origin)")
	plotCmd.Flags().StringVar(&svgOut, "svg", "", "write projected trajectories to this SVG file instead")

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase portrait of a recorded body",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().StringVar(&bodyName, "body", "", "body name (default first)")
	phaseCmd.Flags().StringVar(&centerName, "center", "", "reference body for radial mode (default origin)")
	phaseCmd.Flags().StringVar(&phaseMode, "mode", "xz", "projection: xy, xz, yz or radial")
	phaseCmd.Flags().BoolVar(&phasePoincare, "poincare", false, "strobe at upward z=0 crossings instead")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "periods, drift and chaos probe for a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().BoolVar(&divergence, "divergence", false, "estimate the divergence exponent")
	analyzeCmd.Flags().Float64Var(&perturbation, "perturbation", 1e-8, "initial offset for the divergence probe")

	compareCmd := &cobra.Command{
		Use:   "compare [preset] [integrators...]",
		Short: "same scenario across integration schemes",
		Args:  cobra.MinimumNArgs(1),
		RunE:  compareIntegrators,
	}
	scenarioFlags(compareCmd)

	benchCmd := &cobra.Command{
		Use:   "bench [preset]",
		Short: "steps per second across timestep sizes",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchScenario,
	}
	scenarioFlags(benchCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep [preset]",
		Short: "grid search over dt and softening",
		Args:  cobra.MaximumNArgs(1),
		RunE:  sweepScenario,
	}
	scenarioFlags(sweepCmd)
	sweepCmd.Flags().Float64SliceVar(&sweepDts, "dts", []float64{0.001, 0.005, 0.01, 0.05}, "timestep grid")
	sweepCmd.Flags().Float64SliceVar(&sweepSofts, "softenings", []float64{0.05, 0.2, 1, 2}, "softening grid")
	sweepCmd.Flags().IntVar(&sweepWorkers, "workers", 0, "concurrent cells (0 = all cores)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios",
		RunE:  listScenarioPresets,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id] [out]",
		Short: "export recorded states as CSV",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id] [out]",
		Short: "export a run as a single JSON document",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  exportJSON,
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, phaseCmd, analyzeCmd,
		compareCmd, benchCmd, sweepCmd, presetsCmd, exportCSVCmd, exportJSONCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gravsim"
	}
	return filepath.Join(home, ".gravsim")
}

func openStore() *storage.Store {
	return storage.New(filepath.Join(dataDir, "runs"))
}

func scenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "scenario config file (yaml)")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration in simulated seconds")
	cmd.Flags().StringVar(&integrator, "integrator", integrators.Default, "integration scheme")
	cmd.Flags().Float64Var(&gConst, "g", config.DefaultG, "gravitational constant")
	cmd.Flags().Float64Var(&softening, "softening", config.DefaultSoftening, "softening clamp radius")
	cmd.Flags().StringVar(&autoOrbit, "auto-orbit", "", "give every other body a circular orbit around this body")
}

// loadScenario resolves a scene from the preset argument or --config,
// then lets explicitly set flags override individual knobs.
func loadScenario(cmd *cobra.Command, args []string) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	case len(args) > 0:
		preset := config.GetPreset(args[0])
		if preset == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
		}
		clone := *preset
		clone.Bodies = append([]config.BodyConfig(nil), preset.Bodies...)
		cfg = &clone
	default:
		return nil, fmt.Errorf("pass a preset name or --config (presets: %v)", config.ListPresets())
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integrator
	}
	if cmd.Flags().Changed("g") {
		cfg.G = gConst
	}
	if cmd.Flags().Changed("softening") {
		cfg.Softening = softening
	}
	if cmd.Flags().Changed("auto-orbit") {
		for i := range cfg.Bodies {
			if cfg.Bodies[i].Name != autoOrbit {
				cfg.Bodies[i].AutoOrbit = autoOrbit
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildSim(cfg *config.Config) (*sim.Simulator, gravity.Field, error) {
	w, err := cfg.ToWorld()
	if err != nil {
		return nil, gravity.Field{}, err
	}
	integ, err := integrators.New(cfg.Integrator)
	if err != nil {
		return nil, gravity.Field{}, err
	}
	field := cfg.Field()
	s, err := sim.New(w, field, integ, cfg.Dt)
	if err != nil {
		return nil, gravity.Field{}, err
	}
	return s, field, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}
	s, field, err := buildSim(cfg)
	if err != nil {
		return err
	}

	s.AddMetric(metrics.NewEnergy(field))
	s.AddMetric(metrics.NewEnergyDrift(field))
	s.AddMetric(metrics.NewMomentumDrift(field))
	s.AddMetric(metrics.NewAngularMomentumDrift(field))
	s.AddMetric(metrics.NewMaxRadius(s.World().CenterOfMass()))
	s.AddMetric(metrics.NewMinSeparation())

	fmt.Printf("running %s for %.1fs (dt=%g, %s)...\n", cfg.Name, cfg.Duration, cfg.Dt, cfg.Integrator)
	start := time.Now()

	runCfg := sim.DefaultConfig()
	runCfg.Duration = cfg.Duration
	result, err := s.Run(context.Background(), runCfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("completed in %v (%d steps)\n", elapsed.Round(time.Microsecond), result.StepsTaken)
	for _, e := range result.Errors {
		fmt.Printf("warning: %v\n", e)
	}

	fmt.Println("\nfinal state:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tMASS\tRADIUS\tSPEED")
	for i := range s.World().Bodies {
		b := &s.World().Bodies[i]
		fmt.Fprintf(w, "%s\t%.4g\t%.3f\t%.3f\n", b.Name, b.Mass, b.Pos.Norm(), b.Vel.Norm())
	}
	w.Flush()

	fmt.Println("\nmetrics:")
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6g\n", name, result.Metrics[name])
	}
	fmt.Printf("  final energy drift: %.3e\n", result.EnergyDrift)

	if saveRun {
		st := openStore()
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg, result)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}
	s, field, err := buildSim(cfg)
	if err != nil {
		return err
	}

	m := viz.NewModel(s, field, cfg.Name)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := openStore().List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENE\tTIME\tDURATION\tDT\tINTEG\tBODIES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%s\t%d\n",
			run.ID,
			run.Scene,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Integrator,
			len(run.Bodies),
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := openStore()
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	times, frames, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	if svgOut != "" {
		doc := viz.TrajectoriesSVG(frames, meta.Bodies, 800, 600)
		if doc == "" {
			return fmt.Errorf("nothing to draw")
		}
		if err := os.WriteFile(svgOut, []byte(doc), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgOut)
		return nil
	}

	body, err := metaBodyIndex(meta, bodyName)
	if err != nil {
		return err
	}
	data, caption, err := seriesData(meta, times, frames, body)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scene: %s\n", meta.Scene)
	fmt.Printf("samples: %d\n\n", len(data))

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	return nil
}

// metaBodyIndex resolves a --body/--center name against the recorded
// body list. An empty name means the first body.
func metaBodyIndex(meta *storage.RunMetadata, name string) (int, error) {
	if name == "" {
		return 0, nil
	}
	for i, n := range meta.Bodies {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown body %q (have %v)", name, meta.Bodies)
}

func metaCenterIndex(meta *storage.RunMetadata) (int, error) {
	if centerName == "" {
		return -1, nil
	}
	return metaBodyIndex(meta, centerName)
}

// restoreBodies rebuilds the body slice from metadata so recorded
// frames can be re-evaluated against the original field.
func restoreBodies(meta *storage.RunMetadata) []orbit.Body {
	bodies := make([]orbit.Body, len(meta.Bodies))
	for i, name := range meta.Bodies {
		bodies[i].Name = name
		bodies[i].Mass = 1
		if i < len(meta.Masses) {
			bodies[i].Mass = meta.Masses[i]
		}
	}
	return bodies
}

func seriesData(meta *storage.RunMetadata, times []float64, frames [][]orbit.BodyState, body int) ([]float64, string, error) {
	switch series {
	case "radius":
		center, err := metaCenterIndex(meta)
		if err != nil {
			return nil, "", err
		}
		return analysis.RadialSeries(frames, body, center), meta.Bodies[body] + " radius", nil
	case "energy":
		field := gravity.New(meta.G, meta.Softening)
		bodies := restoreBodies(meta)
		data := make([]float64, len(frames))
		for i, frame := range frames {
			for b := range bodies {
				if b < len(frame) {
					bodies[b].Pos = frame[b].Pos
					bodies[b].Vel = frame[b].Vel
				}
			}
			data[i] = field.Energy(bodies)
		}
		return data, "total energy", nil
	case "px", "py", "pz", "vx", "vy", "vz":
		data := make([]float64, len(frames))
		for i, frame := range frames {
			data[i] = stateComponent(frame[body])
		}
		return data, meta.Bodies[body] + " " + series, nil
	default:
		return nil, "", fmt.Errorf("unknown series %q", series)
	}
}

func stateComponent(st orbit.BodyState) float64 {
	switch series {
	case "px":
		return st.Pos.X
	case "py":
		return st.Pos.Y
	case "pz":
		return st.Pos.Z
	case "vx":
		return st.Vel.X
	case "vy":
		return st.Vel.Y
	default:
		return st.Vel.Z
	}
}

func phasePlot(cmd *cobra.Command, args []string) error {
	st := openStore()
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, frames, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}

	body, err := metaBodyIndex(meta, bodyName)
	if err != nil {
		return err
	}

	if phasePoincare {
		section, err := analysis.PoincareFromFrames(frames, body)
		if err != nil {
			return err
		}
		fmt.Printf("poincare section: %s at upward z=0 crossings (%s vs %s)\n\n",
			meta.Bodies[body], section.XLabel, section.YLabel)
		fmt.Print(section.ASCII(70, 20))
		fmt.Printf("\n%d crossings\n", len(section.Points))
		return nil
	}

	center, err := metaCenterIndex(meta)
	if err != nil {
		return err
	}
	portrait, err := analysis.PhaseFromFrames(frames, body, center, phaseMode)
	if err != nil {
		return err
	}
	fmt.Printf("phase portrait: %s (%s vs %s)\n\n", meta.Bodies[body], portrait.XLabel, portrait.YLabel)
	fmt.Print(portrait.ASCII(70, 20))
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := openStore()
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	times, frames, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}
	if len(frames) < 4 {
		return fmt.Errorf("not enough samples to analyze")
	}
	if len(meta.Masses) == 0 {
		return fmt.Errorf("metadata has no body masses")
	}

	fmt.Printf("analysis: %s\n", meta.ID)
	fmt.Printf("scene: %s, %d samples at dt=%g\n\n", meta.Scene, len(frames), meta.Dt)

	// The heaviest body anchors the Kepler prediction.
	central := 0
	for i, m := range meta.Masses {
		if m > meta.Masses[central] {
			central = i
		}
	}
	sampleDt := meta.Dt
	if len(times) > 1 {
		sampleDt = times[1] - times[0]
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tPERIOD\tKEPLER\tDRIFT/S\tECC")
	for b := range frames[0] {
		if b == central {
			continue
		}
		radii := analysis.RadialSeries(frames, b, central)
		mean := 0.0
		for _, r := range radii {
			mean += r
		}
		mean /= float64(len(radii))

		name := fmt.Sprintf("body-%d", b)
		if b < len(meta.Bodies) {
			name = meta.Bodies[b]
		}
		fmt.Fprintf(w, "%s\t%.3f\t%.3f\t%+.2e\t%.3f\n",
			name,
			analysis.DominantPeriod(radii, sampleDt),
			gravity.OrbitalPeriod(meta.G, meta.Masses[central], mean),
			analysis.RadialDrift(times, radii),
			analysis.Eccentricity(radii),
		)
	}
	w.Flush()

	if divergence {
		bodies := restoreBodies(meta)
		for b := range bodies {
			if b < len(frames[0]) {
				bodies[b].Pos = frames[0][b].Pos
				bodies[b].Vel = frames[0][b].Vel
			}
		}
		world, err := orbit.NewWorld(bodies)
		if err != nil {
			return err
		}
		integ, err := integrators.New(meta.Integrator)
		if err != nil {
			return err
		}
		field := gravity.New(meta.G, meta.Softening)
		horizon := math.Min(meta.Duration, 50)

		lambda := analysis.DivergenceExponent(field, integ, world, meta.Dt, horizon, perturbation)
		fmt.Printf("\ndivergence exponent: %+.4f /s over %.0fs (perturbation %g)\n", lambda, horizon, perturbation)
		// Regular orbits still shear apart linearly, which shows up as a
		// small positive finite-time exponent.
		if lambda > 0.1 {
			fmt.Println("neighboring configurations fly apart: chaotic regime")
		} else {
			fmt.Println("no significant divergence: regular orbits")
		}
	}
	return nil
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args[:1])
	if err != nil {
		return err
	}
	schemes := args[1:]
	if len(schemes) == 0 {
		schemes = integrators.Names()
	}

	fmt.Printf("comparing integrators on %s (dt=%g, duration=%.1fs)\n\n", cfg.Name, cfg.Dt, cfg.Duration)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tENERGY DRIFT\tMOMENTUM DRIFT\tMAX RADIUS\tTIME")

	for _, name := range schemes {
		clone := *cfg
		clone.Integrator = name
		s, field, err := buildSim(&clone)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}
		s.AddMetric(metrics.NewMomentumDrift(field))
		s.AddMetric(metrics.NewMaxRadius(s.World().CenterOfMass()))

		runCfg := sim.DefaultConfig()
		runCfg.Duration = cfg.Duration
		runCfg.Record = false

		start := time.Now()
		result, err := s.Run(context.Background(), runCfg)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}

		fmt.Fprintf(w, "%s\t%.3e\t%.3e\t%.3f\t%v\n",
			name,
			result.EnergyDrift,
			result.Metrics["momentum_drift"],
			result.Metrics["max_radius"],
			elapsed.Round(time.Millisecond),
		)
	}
	return w.Flush()
}

func benchScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}

	durations := []float64{1.0, 5.0, 10.0}
	dts := []float64{0.001, 0.005, 0.02}

	fmt.Printf("benchmarking %s with %s (%d bodies)\n\n", cfg.Name, cfg.Integrator, len(cfg.Bodies))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DURATION\tDT\tSTEPS\tTIME\tSTEPS/SEC")

	for _, dur := range durations {
		for _, stepSize := range dts {
			clone := *cfg
			clone.Dt = stepSize
			clone.Duration = dur
			s, _, err := buildSim(&clone)
			if err != nil {
				return err
			}

			runCfg := sim.Config{Duration: dur, Record: false, ValidateState: false}

			start := time.Now()
			result, err := s.Run(context.Background(), runCfg)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			stepsPerSec := float64(result.StepsTaken) / elapsed.Seconds()
			fmt.Fprintf(w, "%.1fs\t%.4fs\t%d\t%v\t%.0f\n",
				dur, stepSize, result.StepsTaken, elapsed.Round(time.Microsecond), stepsPerSec)
		}
	}
	return w.Flush()
}

func sweepScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}

	sweep := tune.NewSweep(sweepDts, sweepSofts)
	if sweepWorkers > 0 {
		sweep.Workers = sweepWorkers
	}

	fmt.Printf("sweeping %s: %d cells over %.1fs each (%d workers)\n\n",
		cfg.Name, len(sweepDts)*len(sweepSofts), cfg.Duration, sweep.Workers)
	start := time.Now()
	outcomes, err := sweep.Run(context.Background(), cfg)
	if err != nil {
		return err
	}
	fmt.Printf("done in %v\n\n", time.Since(start).Round(time.Millisecond))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DT\tSOFTENING\tSCORE\tENERGY DRIFT\tMAX RADIUS\tMIN SEP")
	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(w, "%.4g\t%.4g\terror: %v\n", o.Dt, o.Softening, o.Err)
			continue
		}
		fmt.Fprintf(w, "%.4g\t%.4g\t%.4f\t%.3e\t%.2f\t%.3f\n",
			o.Dt, o.Softening, o.Score, o.EnergyDrift, o.MaxRadius, o.MinSeparation)
	}
	w.Flush()

	if best, ok := tune.Best(outcomes); ok {
		fmt.Printf("\nbest: dt=%g softening=%g (score %.4f)\n", best.Dt, best.Softening, best.Score)
	} else {
		fmt.Println("\nno stable cell found")
	}
	return nil
}

func listScenarioPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBODIES\tINTEG\tDT\tDURATION\tG\tSOFTENING")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%s\t%g\t%.0fs\t%g\t%g\n",
			name, len(p.Bodies), p.Integrator, p.Dt, p.Duration, p.G, p.Softening)
	}
	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	out := args[0] + ".csv"
	if len(args) > 1 {
		out = args[1]
	}
	if err := openStore().ExportCSV(args[0], out); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	out := args[0] + ".json"
	if len(args) > 1 {
		out = args[1]
	}
	if err := openStore().ExportJSON(args[0], out); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}
