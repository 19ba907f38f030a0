package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/san-kum/sortsim/internal/analytics"
	"github.com/san-kum/sortsim/internal/config"
	"github.com/san-kum/sortsim/internal/experiment"
	"github.com/san-kum/sortsim/internal/logger"
	"github.com/san-kum/sortsim/internal/sorting"
	"github.com/san-kum/sortsim/internal/store"
	"github.com/san-kum/sortsim/internal/tui"
	"github.com/san-kum/sortsim/internal/viz"
)

var version = "dev"

var (
	configFile string
	theme      string
	verbose    bool
	logFile    string

	quantity   int
	tickRate   int
	finalDelay int
	seed       int64
	preset     string
	plain      bool
	saveConfig string

	benchFrom   int
	benchTo     int
	benchStep   int
	benchHeight int
	benchSeed   int64
	benchRuns   int
	benchJSON   string
)

// bogo's expected shuffle count grows factorially; keep default sweeps short.
const bogoBenchMax = 7

var log = logger.New("sortsim", func() bool { return verbose })

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "sortsim",
		Short:        "sorting algorithm visualizer",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logFile == "" {
				log.SetOutput(cmd.ErrOrStderr())
				return nil
			}
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			log.SetOutput(f)
			return nil
		},
		RunE: runMenu,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "chrome theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "visualize one sort",
		Args:  cobra.ExactArgs(1),
		RunE:  runSort,
	}
	runCmd.Flags().IntVarP(&quantity, "quantity", "n", config.DefaultQuantity, fmt.Sprintf("number of bars [%d - %d]", config.MinQuantity, config.MaxQuantity))
	runCmd.Flags().IntVarP(&tickRate, "tick-rate", "t", config.DefaultTickMs, "delay between frames in ms")
	runCmd.Flags().IntVar(&finalDelay, "final-delay", config.DefaultFinalDelayMs, "how long the sorted state stays on screen in ms")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "shuffle seed (0 picks one)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().BoolVar(&plain, "plain", false, "plain ANSI output, no alternate screen")
	runCmd.Flags().StringVar(&saveConfig, "save-config", "", "write the resolved config to this file before running")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list algorithms",
		Args:  cobra.NoArgs,
		RunE:  listAlgorithms,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [algorithm]",
		Short: "count operations over a range of quantities",
		Args:  cobra.ExactArgs(1),
		RunE:  benchAlgorithm,
	}
	benchCmd.Flags().IntVar(&benchFrom, "from", config.MinQuantity, "first quantity")
	benchCmd.Flags().IntVar(&benchTo, "to", config.MaxQuantity, "last quantity")
	benchCmd.Flags().IntVar(&benchStep, "step", 8, "quantity step")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 42, "shuffle seed (0 picks one)")
	benchCmd.Flags().IntVar(&benchHeight, "height", 10, "plot height")
	benchCmd.Flags().IntVar(&benchRuns, "runs", 1, "permutations sorted per quantity")
	benchCmd.Flags().StringVar(&benchJSON, "json", "", "write a JSON report to this file (- for stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets [algorithm]",
		Short: "list available presets for an algorithm",
		Args:  cobra.ExactArgs(1),
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "inspect config files",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "check [file]",
		Short: "validate a config file on top of the defaults",
		Args:  cobra.ExactArgs(1),
		RunE:  checkConfig,
	})

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sortsim %s\n", version)
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, benchCmd, presetsCmd, configCmd, versionCmd)
	return rootCmd
}

// resolveConfig layers defaults, preset, config file, environment and
// explicit flags, in that order, and validates the result.
func resolveConfig(cmd *cobra.Command, algorithm string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if algorithm != "" {
		cfg.Algorithm = algorithm
	}

	if preset != "" {
		p := config.GetPreset(cfg.Algorithm, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.Algorithm))
		}
		cfg.ApplyPreset(p)
	}

	if configFile != "" {
		if err := cfg.Merge(configFile); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := cfg.ApplyEnv(nil); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if algorithm != "" {
		cfg.Algorithm = algorithm
	}
	if flags.Changed("quantity") {
		cfg.Quantity = quantity
	}
	if flags.Changed("tick-rate") {
		cfg.TickMs = tickRate
	}
	if flags.Changed("final-delay") {
		cfg.FinalDelayMs = finalDelay
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	flags.Visit(func(f *pflag.Flag) {
		log.Debug("flag override", logger.F("flag", f.Name), logger.F("value", f.Value.String()))
	})
	if _, ok := viz.LookupTheme(cfg.Theme); !ok {
		log.Warn("unknown theme, using classic", logger.F("theme", cfg.Theme))
		cfg.Theme = viz.ThemeClassic.Name
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSort(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	if saveConfig != "" {
		if err := config.Save(saveConfig, cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		log.Info("config saved", logger.F("path", saveConfig))
	}

	res, err := play(cmd.Context(), cmd.OutOrStdout(), cfg, plain)
	if errors.Is(err, sorting.ErrCancelled) {
		fmt.Fprintln(cmd.OutOrStdout(), "interrupted")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s finished: %s in %s\n", res.Algorithm, res.Count, res.Elapsed.Round(time.Millisecond))
	return nil
}

// play runs one visualization. The plain frontend is cancelled by SIGINT;
// the alt-screen frontend by its own keys. Output that is not a terminal
// always gets the plain frontend.
func play(ctx context.Context, out io.Writer, cfg *config.Config, plainOutput bool) (*experiment.Result, error) {
	runLog := log.WithComponent("run")
	runLog.Info("starting",
		logger.F("algorithm", cfg.Algorithm),
		logger.F("quantity", cfg.Quantity),
		logger.F("tick_ms", cfg.TickMs),
		logger.F("plain", plainOutput))

	var (
		res *experiment.Result
		err error
	)
	if !plainOutput && !isTerminal(out) {
		runLog.Debug("output is not a terminal, using plain frontend")
		plainOutput = true
	}

	if plainOutput {
		sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()

		r := tui.NewLiveRenderer(sigCtx, out, tui.Options{
			Limits: cfg.Bars,
			Chrome: cfg.ChromeWidth,
			Color:  isTerminal(out),
		})
		r.Start()
		res, err = experiment.Run(sigCtx, cfg, experiment.Direct{Renderer: r})
		r.Stop()
	} else {
		if logFile == "" {
			// the alt screen owns the terminal
			defer silenceLogs()()
		}
		f := viz.NewFrontend(viz.Options{
			Limits: cfg.Bars,
			Chrome: cfg.ChromeWidth,
			Theme:  viz.GetTheme(cfg.Theme),
			Log:    log.WithComponent("viz"),
		})
		res, err = experiment.Run(ctx, cfg, f)
	}

	switch {
	case errors.Is(err, sorting.ErrCancelled):
		runLog.Info("interrupted")
	case err != nil:
		runLog.Error("run failed", logger.Err(err))
	default:
		runLog.Info("finished", logger.F("count", res.Count), logger.Duration(res.Elapsed))
	}
	return res, err
}

// silenceLogs discards log output and returns a func restoring the writer
// that was installed before.
func silenceLogs() func() {
	prev := log.Output()
	log.SetOutput(io.Discard)
	return func() { log.SetOutput(prev) }
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}

// runMenu loops between the picker and a run until the user quits; run
// errors are shown in the menu instead of ending the program.
func runMenu(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "")
	if err != nil {
		return err
	}

	status := viz.Status{}
	for {
		choice, err := viz.RunMenu(*cfg, status)
		if err != nil {
			return err
		}
		if !choice.Start {
			return nil
		}
		*cfg = choice.Config

		res, err := play(cmd.Context(), cmd.OutOrStdout(), cfg, false)
		switch {
		case errors.Is(err, sorting.ErrCancelled):
			status = viz.Status{Text: "Interrupted", Err: true}
		case err != nil:
			status = viz.Status{Text: err.Error(), Err: true}
		default:
			status = viz.Status{Text: fmt.Sprintf("%s: %s", res.Algorithm, res.Count)}
		}
	}
}

func checkConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s, n=%d, tick=%dms, theme=%s)\n",
		args[0], cfg.Algorithm, cfg.Quantity, cfg.TickMs, cfg.Theme)
	return nil
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCOUNTS\tWORST\tAVERAGE\tBEST\tSPACE\tCOLOR")
	for _, algo := range sorting.Algorithms() {
		a := analytics.For(algo)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			algo.Name(), strings.ToLower(algo.CountKind().String()),
			a.Worst, a.Average, a.Best, a.WorstSpace, algo.Hex())
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	presets := config.ListPresets(args[0])
	if len(presets) == 0 {
		fmt.Fprintf(out, "no presets for algorithm: %s\n", args[0])
		return nil
	}

	fmt.Fprintf(out, "presets for %s:\n", args[0])
	for _, name := range presets {
		p := config.GetPreset(args[0], name)
		fmt.Fprintf(out, "  %-10s n=%d tick=%dms\n", name, p.Quantity, p.TickMs)
	}
	return nil
}

func benchAlgorithm(cmd *cobra.Command, args []string) error {
	algo, err := sorting.ParseAlgorithm(args[0])
	if err != nil {
		return err
	}

	to := benchTo
	if algo == sorting.Bogo && !cmd.Flags().Changed("to") {
		to = bogoBenchMax
	}
	step := benchStep
	if algo == sorting.Bogo && !cmd.Flags().Changed("step") {
		step = 1
	}
	quantities := experiment.Range(benchFrom, to, step)
	if len(quantities) == 0 {
		return fmt.Errorf("empty quantity range %d..%d step %d", benchFrom, to, step)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	log.Info("benchmarking", logger.F("algorithm", algo.Name()), logger.F("points", len(quantities)))
	points, err := experiment.Sweep(ctx, algo, quantities, benchRuns, benchSeed)
	if errors.Is(err, sorting.ErrCancelled) {
		fmt.Fprintln(cmd.OutOrStdout(), "interrupted")
		return nil
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if benchJSON != "" {
		report := store.NewReport(algo, benchRuns, benchSeed, points)
		if benchJSON == "-" {
			return store.WriteJSON(out, report)
		}
		if err := store.ExportJSON(benchJSON, report); err != nil {
			return fmt.Errorf("export report: %w", err)
		}
		log.Info("report written", logger.F("path", benchJSON))
	}

	fmt.Fprintf(out, "benchmarking %s\n\n", algo)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	kind := strings.ToUpper(algo.CountKind().String())
	values := make([]float64, len(points))
	if benchRuns > 1 {
		fmt.Fprintf(w, "QUANTITY\tMIN\tMEAN %s\tMAX\n", kind)
		for i, p := range points {
			fmt.Fprintf(w, "%d\t%d\t%.1f\t%d\n", p.Quantity, p.Stats.Min, p.Stats.Mean, p.Stats.Max)
			values[i] = p.Stats.Mean
		}
	} else {
		fmt.Fprintf(w, "QUANTITY\t%s\n", kind)
		for i, p := range points {
			fmt.Fprintf(w, "%d\t%d\n", p.Quantity, p.Count.Value)
			values[i] = float64(p.Count.Value)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(values) > 1 {
		caption := fmt.Sprintf("%s vs quantity (%d..%d)", strings.ToLower(algo.CountKind().String()), quantities[0], quantities[len(quantities)-1])
		fmt.Fprintf(out, "\n%s\n", asciigraph.Plot(values, asciigraph.Height(benchHeight), asciigraph.Caption(caption)))
	}
	return nil
}
