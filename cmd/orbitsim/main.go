package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/experiment"
	"github.com/san-kum/orbitsim/internal/export"
	"github.com/san-kum/orbitsim/internal/forces"
	"github.com/san-kum/orbitsim/internal/storage"
	"github.com/san-kum/orbitsim/internal/tui"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	x          float64
	y          float64
	vx         float64
	vy         float64
	integrator string
	thrust     string
	historyCap int
	lookahead  int
	configFile string
	preset     string
	svgOut     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbitsim",
		Short: "planar orbit simulator with discrete thrust",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the live view when no command given
			return runLive(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orbitsim", "data directory")

	defaults := config.DefaultConfig()

	addScenarioFlags := func(cmd *cobra.Command) {
		cmd.Flags().Float64Var(&dt, "dt", defaults.Dt, "timestep (simulated seconds)")
		cmd.Flags().Float64Var(&duration, "time", defaults.Duration, "duration (simulated seconds)")
		cmd.Flags().Float64Var(&x, "x", defaults.Body.X, "initial x position (m)")
		cmd.Flags().Float64Var(&y, "y", defaults.Body.Y, "initial y position (m)")
		cmd.Flags().Float64Var(&vx, "vx", defaults.Body.VX, "initial x velocity (m/s)")
		cmd.Flags().Float64Var(&vy, "vy", defaults.Body.VY, "initial y velocity (m/s)")
		cmd.Flags().StringVar(&integrator, "integrator", defaults.Integrator, "integrator")
		cmd.Flags().StringVar(&thrust, "thrust", defaults.Thrust, "thrust source")
		cmd.Flags().IntVar(&historyCap, "history", defaults.HistoryCap, "trail history length")
		cmd.Flags().IntVar(&lookahead, "lookahead", defaults.Lookahead, "forecast steps")
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		cmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless simulation and record the trajectory",
		RunE:  runSimulation,
	}
	addScenarioFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive orbit view with keyboard thrust",
		RunE:  runLive,
	}
	addScenarioFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot altitude and speed of a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export run trajectory as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "", "output file (default <run_id>.svg)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark integration step rate",
		RunE:  benchSteps,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [integrator1] [integrator2] ...",
		Short: "compare integrator drift on the same scenario",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareIntegrators,
	}
	compareCmd.Flags().Float64Var(&dt, "dt", defaults.Dt, "timestep")
	compareCmd.Flags().Float64Var(&duration, "time", defaults.Duration, "duration")

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCmd, exportSVGCmd, presetsCmd, benchCmd, compareCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig resolves preset, config file and CLI flags in that order of
// increasing precedence.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
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
	if cmd.Flags().Changed("thrust") {
		cfg.Thrust = thrust
	}
	if cmd.Flags().Changed("history") {
		cfg.HistoryCap = historyCap
	}
	if cmd.Flags().Changed("lookahead") {
		cfg.Lookahead = lookahead
	}
	if cmd.Flags().Changed("x") {
		cfg.Body.X = x
	}
	if cmd.Flags().Changed("y") {
		cfg.Body.Y = y
	}
	if cmd.Flags().Changed("vx") {
		cfg.Body.VX = vx
	}
	if cmd.Flags().Changed("vy") {
		cfg.Body.VY = vy
	}

	return cfg, cfg.Validate()
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	exp, err := experiment.New(cfg)
	if err != nil {
		return err
	}

	fmt.Println("running orbit simulation...")
	start := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Dt, cfg.Duration, cfg.Integrator, cfg.Thrust, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Printf("energy drift: %.3e\n", result.EnergyDrift)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6e\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	exp, err := experiment.New(cfg)
	if err != nil {
		return err
	}

	return tui.Run(exp.Simulator(), exp.InitialState())
}

func listRuns(cmd *cobra.Command, args []string) error {
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
	fmt.Fprintln(w, "ID\tTIME\tDURATION\tDT\tINTEG\tTHRUST\tENERGY DRIFT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.0fs\t%.1fs\t%s\t%s\t%.2e\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Integrator,
			run.Thrust,
			run.EnergyDrift,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(states))

	altitude := make([]float64, len(states))
	speed := make([]float64, len(states))
	for i, s := range states {
		altitude[i] = (s.Radius() - forces.EarthRadius) / 1000.0
		speed[i] = s.Speed()
	}

	fmt.Println(asciigraph.Plot(altitude,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("altitude (km)"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(speed,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("speed (m/s)"),
	))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) < 2 {
		return fmt.Errorf("not enough data to export")
	}

	svg := export.TrajectoryToSVG(export.StatesToPoints(states), 800, 800, "#00ff00")

	out := svgOut
	if out == "" {
		out = filepath.Join(dataDir, runID+".svg")
	}
	if err := os.WriteFile(out, []byte(svg), 0644); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", out)
	return nil
}

func benchSteps(cmd *cobra.Command, args []string) error {
	durations := []float64{560, 5600, 56000}
	dts := []float64{1.0, 7.0, 70.0}

	fmt.Println("benchmarking rk4")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DURATION\tDT\tSTEPS\tTIME\tSTEPS/SEC")

	for _, dur := range durations {
		for _, step := range dts {
			cfg := config.DefaultConfig()
			cfg.Duration = dur
			cfg.Dt = step

			exp, err := experiment.New(cfg)
			if err != nil {
				return err
			}

			start := time.Now()
			result, err := exp.Run(context.Background())
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			stepsPerSec := float64(result.StepsTaken) / elapsed.Seconds()
			fmt.Fprintf(w, "%.0fs\t%.1fs\t%d\t%v\t%.0f\n",
				dur, step, result.StepsTaken, elapsed, stepsPerSec)
		}
	}

	return w.Flush()
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tENERGY DRIFT\tRADIAL RANGE")

	for _, name := range args {
		cfg := config.DefaultConfig()
		cfg.Integrator = name
		cfg.Dt = dt
		cfg.Duration = duration

		exp, err := experiment.New(cfg)
		if err != nil {
			return err
		}

		result, err := exp.Run(context.Background())
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		fmt.Fprintf(w, "%s\t%.3e\t%.3e\n",
			name, result.EnergyDrift, result.Metrics["radial_range"])
	}

	return w.Flush()
}
