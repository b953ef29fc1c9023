package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/odelab/odelab/internal/compare"
	"github.com/odelab/odelab/internal/config"
	"github.com/odelab/odelab/internal/integrators"
	"github.com/odelab/odelab/internal/microgrid"
	"github.com/odelab/odelab/internal/ode"
	"github.com/odelab/odelab/internal/solve"
	"github.com/odelab/odelab/internal/store"
	"github.com/odelab/odelab/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	method     string
	reference  string
	stepSize   float64
	startTime  float64
	endTime    float64
	temp       float64
	windSpeed  float64
	noPlot     bool
)

var componentNames = []string{"solar generation", "wind generation", "battery storage", "grid draw"}

func main() {
	rootCmd := &cobra.Command{
		Use:   "odelab",
		Short: "fixed-step multistep and DIRK ODE integrator lab",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".odelab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "integrate the microgrid scenario with one method",
		RunE:  runScenario,
	}
	addScenarioFlags(runCmd)
	runCmd.Flags().StringVar(&method, "method", config.DefaultMethod, "integration method")
	runCmd.Flags().BoolVar(&noPlot, "no-plot", false, "suppress trajectory plots")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "run all methods and compare against a reference",
		RunE:  compareMethods,
	}
	addScenarioFlags(compareCmd)
	compareCmd.Flags().StringVar(&reference, "reference", config.DefaultReference, "reference method")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scenario presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("%s\t%s h=%g [%g, %g]\n", name, cfg.Method, cfg.StepSize, cfg.StartTime, cfg.EndTime)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.New(dataDir)
			meta, err := st.Load(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(meta)
		},
	}

	rootCmd.AddCommand(runCmd, compareCmd, presetsCmd, listCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "scenario preset")
	cmd.Flags().Float64Var(&stepSize, "step", config.DefaultStepSize, "step size (hours)")
	cmd.Flags().Float64Var(&startTime, "t0", config.DefaultStartTime, "start time (hours)")
	cmd.Flags().Float64Var(&endTime, "tf", config.DefaultEndTime, "end time (hours)")
	cmd.Flags().Float64Var(&temp, "temp", config.DefaultTemperature, "ambient temperature")
	cmd.Flags().Float64Var(&windSpeed, "wind", config.DefaultWindSpeed, "wind speed")
}

// scenario resolves preset, config file and flags into one Config.
// Flags changed on the command line win over file and preset values.
func scenario(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("step") {
		cfg.StepSize = stepSize
	}
	if cmd.Flags().Changed("t0") {
		cfg.StartTime = startTime
	}
	if cmd.Flags().Changed("tf") {
		cfg.EndTime = endTime
	}
	if cmd.Flags().Changed("temp") {
		cfg.Env.Temperature = temp
	}
	if cmd.Flags().Changed("wind") {
		cfg.Env.WindSpeed = windSpeed
	}
	return cfg, nil
}

func buildSystem(cfg *config.Config) (ode.Func, ode.State) {
	sys := microgrid.New(microgrid.DefaultParams(), microgrid.Conditions{
		Temperature: cfg.Env.Temperature,
		WindSpeed:   cfg.Env.WindSpeed,
	})
	x0 := ode.State(cfg.InitState)
	if len(x0) == 0 {
		x0 = sys.DefaultState()
	}
	return sys.Derivative, x0
}

func methodFor(name string, cfg *config.Config) (integrators.Method, error) {
	opt := solve.Options{Tolerance: cfg.Solver.Tolerance, MaxIter: cfg.Solver.MaxIter}
	switch name {
	case "adams-moulton-2":
		return integrators.NewAM2WithSolver(opt), nil
	case "dirk-radau":
		return integrators.NewDIRKWithSolver(opt), nil
	default:
		return integrators.ByName(name)
	}
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := scenario(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("method") {
		cfg.Method = method
	}

	m, err := methodFor(cfg.Method, cfg)
	if err != nil {
		return err
	}
	f, x0 := buildSystem(cfg)

	start := time.Now()
	res, err := m.Integrate(f, x0, cfg.StartTime, cfg.EndTime, cfg.StepSize)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Println(viz.Title.Render(fmt.Sprintf("%s over [%g, %g] h=%g", m.Name(), cfg.StartTime, cfg.EndTime, cfg.StepSize)))
	fmt.Printf("%s %d points in %v\n", viz.Label.Render("computed"), len(res.Times), elapsed)
	for _, e := range res.Errors {
		fmt.Println(viz.Warn.Render("warning: " + e.Error()))
	}

	if !noPlot {
		for idx, caption := range componentNames {
			fmt.Println()
			fmt.Println(viz.Component(res, idx, caption))
		}
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(store.RunMetadata{
		Timestamp: time.Now(),
		StepSize:  cfg.StepSize,
		StartTime: cfg.StartTime,
		EndTime:   cfg.EndTime,
		Reference: cfg.Reference,
		Warnings:  warningStrings(res.Errors),
	}, map[string]*ode.Result{m.Name(): res})
	if err != nil {
		return err
	}
	fmt.Printf("\n%s %s\n", viz.Label.Render("saved as"), viz.Value.Render(id))
	return nil
}

func compareMethods(cmd *cobra.Command, args []string) error {
	cfg, err := scenario(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("reference") {
		cfg.Reference = reference
	}

	f, x0 := buildSystem(cfg)

	results := make(map[string]*ode.Result)
	var warnings []error
	for _, m := range integrators.All() {
		mm, err := methodFor(m.Name(), cfg)
		if err != nil {
			return err
		}
		res, err := mm.Integrate(f, x0, cfg.StartTime, cfg.EndTime, cfg.StepSize)
		if err != nil {
			return fmt.Errorf("%s: %w", m.Name(), err)
		}
		results[m.Name()] = res
		warnings = append(warnings, res.Errors...)
	}

	ref, ok := results[cfg.Reference]
	if !ok {
		return fmt.Errorf("unknown reference method: %q", cfg.Reference)
	}

	fmt.Println(viz.Title.Render(fmt.Sprintf("method comparison vs %s, h=%g over [%g, %g]",
		cfg.Reference, cfg.StepSize, cfg.StartTime, cfg.EndTime)))
	for _, w := range warnings {
		fmt.Println(viz.Warn.Render("warning: " + w.Error()))
	}

	maxAbs := make(map[string]float64)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tORDER\tMAX ABS\tMEAN ABS\tMAX REL\tMEAN REL")
	for _, m := range integrators.All() {
		stats, err := compare.Against(ref, results[m.Name()])
		if err != nil {
			return err
		}
		maxAbs[m.Name()] = stats.MaxAbs
		fmt.Fprintf(w, "%s\t%d\t%.3e\t%.3e\t%.3e\t%.3e\n",
			m.Name(), m.Order(), stats.MaxAbs, stats.MeanAbs, stats.MaxRel, stats.MeanRel)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(store.RunMetadata{
		Timestamp: time.Now(),
		StepSize:  cfg.StepSize,
		StartTime: cfg.StartTime,
		EndTime:   cfg.EndTime,
		Reference: cfg.Reference,
		MaxAbsErr: maxAbs,
		Warnings:  warningStrings(warnings),
	}, results)
	if err != nil {
		return err
	}
	fmt.Printf("\n%s %s\n", viz.Label.Render("saved as"), viz.Value.Render(id))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSPAN\tSTEP\tMETHODS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t[%g, %g]\t%g\t%v\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.StartTime,
			run.EndTime,
			run.StepSize,
			run.Methods,
		)
	}
	return w.Flush()
}

func warningStrings(errs []error) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Error())
	}
	return out
}
