package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	"github.com/san-kum/roulette/internal/config"
	"github.com/san-kum/roulette/internal/export"
	"github.com/san-kum/roulette/internal/roulette"
	"github.com/san-kum/roulette/internal/viz"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type options struct {
	configFile string
	preset     string
	seed       int64
	theme      string
	scale      float64
	logLevel   string
	logFile    string

	// spin
	final int
	steps int

	// profile
	svgPath string
}

// main is the entry point for the roulette CLI. Without a subcommand it opens
// the interactive selector.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "roulette",
		Short:        "roulette-style random selector",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, opts)
		},
	}

	bindConfigFlags(rootCmd.PersistentFlags(), opts)

	spinCmd := &cobra.Command{
		Use:   "spin",
		Short: "run one selection and print every step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpin(cmd, opts)
		},
	}
	spinCmd.Flags().IntVar(&opts.final, "final", -1, "force the final index (-1 = random)")
	spinCmd.Flags().IntVar(&opts.steps, "steps", 0, "force the number of steps (0 = random)")

	profileCmd := &cobra.Command{
		Use:   "profile [steps]",
		Short: "plot the deceleration profile of a run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return plotProfile(cmd, args, opts)
		},
	}
	profileCmd.Flags().StringVar(&opts.svgPath, "svg", "", "also write the profile as SVG to this path")

	itemsCmd := &cobra.Command{
		Use:   "items",
		Short: "list selectable items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listItems(cmd.OutOrStdout())
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listPresets(cmd.OutOrStdout())
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list available themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range viz.ThemeNames() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
			}
		},
	}

	rootCmd.AddCommand(spinCmd, profileCmd, itemsCmd, presetsCmd, themesCmd)
	return rootCmd
}

func bindConfigFlags(fs *pflag.FlagSet, opts *options) {
	fs.StringVar(&opts.configFile, "config", "", "config file path (yaml)")
	fs.StringVar(&opts.preset, "preset", "", "use preset configuration")
	fs.Int64Var(&opts.seed, "seed", 0, "random seed (0 = time based)")
	fs.StringVar(&opts.theme, "theme", config.DefaultTheme, "color theme")
	fs.Float64Var(&opts.scale, "scale", config.DefaultTimeScale, "time scale applied to every step delay")
	fs.StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&opts.logFile, "log-file", "", "write logs to file")
}

// resolveConfig layers preset, config file and explicitly set flags, in that
// order of increasing precedence.
func resolveConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if opts.preset != "" {
		p, err := config.MustPreset(opts.preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}

	if opts.configFile != "" {
		loaded, err := config.LoadOver(opts.configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("theme") {
		cfg.Theme = opts.theme
	}
	if flags.Changed("scale") {
		cfg.TimeScale = opts.scale
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !slices.Contains(viz.ThemeNames(), cfg.Theme) {
		return nil, fmt.Errorf("%w: unknown theme %q", config.ErrInvalidConfig, cfg.Theme)
	}
	return cfg, nil
}

func runInteractive(cmd *cobra.Command, opts *options) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg.LogLevel, cfg.LogFile, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	anim, err := roulette.NewAnimator(roulette.DefaultItems(), roulette.NewPicker(cfg.Seed))
	if err != nil {
		return err
	}
	logger.Info("starting selector", "theme", cfg.Theme, "scale", cfg.TimeScale)
	return viz.RunInteractive(anim, viz.Options{
		Theme:     cfg.Theme,
		TimeScale: cfg.TimeScale,
		Logger:    logger,
	})
}

func runSpin(cmd *cobra.Command, opts *options) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg.LogLevel, cfg.LogFile, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	items := roulette.DefaultItems()
	picker := roulette.NewPicker(cfg.Seed)
	anim, err := roulette.NewAnimator(items, picker)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	runner := roulette.NewRunner(anim,
		roulette.WithTimeScale(cfg.TimeScale),
		roulette.WithLogger(logger),
		roulette.WithObserver(func(ev roulette.Event) {
			if ev.Kind != roulette.EventStepped {
				return
			}
			next := "settle"
			if !ev.Tick.Done {
				next = ev.Tick.Next.String()
			}
			fmt.Fprintf(out, "%3d  %-20s  %s\n", ev.Tick.Counter, items[ev.Tick.Index].Name, next)
		}),
	)
	defer runner.Stop()

	var started bool
	if cmd.Flags().Changed("final") || cmd.Flags().Changed("steps") {
		if opts.final < -1 || opts.final >= len(items) {
			return fmt.Errorf("final index %d out of range [0, %d)", opts.final, len(items))
		}
		if opts.steps < 0 {
			return fmt.Errorf("step count %d must not be negative", opts.steps)
		}
		plan := roulette.NewPlan(picker, len(items))
		if opts.final >= 0 {
			plan.FinalIndex = opts.final
		}
		if opts.steps > 0 {
			plan.TotalSteps = opts.steps
		}
		started = runner.TriggerPlan(plan)
	} else {
		started = runner.Trigger()
	}
	if !started {
		return errors.New("selection did not start")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	start := time.Now()
	item, err := runner.Wait(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			runner.Stop()
			fmt.Fprintln(out, "interrupted")
			return nil
		}
		return err
	}

	fmt.Fprintf(out, "\nselected: #%d %s (%v)\n", item.ID, item.Name, time.Since(start).Round(time.Millisecond))
	return nil
}

func plotProfile(cmd *cobra.Command, args []string, opts *options) error {
	total := roulette.MaxSteps - 1
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid step count: %q", args[0])
		}
		total = n
	}

	delays := roulette.DelaySchedule(total)
	data := make([]float64, len(delays))
	for i, d := range delays {
		data[i] = float64(d.Milliseconds())
	}

	out := cmd.OutOrStdout()
	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("step delay (ms), %d steps", total)),
	)
	fmt.Fprintln(out, graph)
	fmt.Fprintf(out, "\nfirst: %v  last: %v  total: %v\n", delays[0], delays[len(delays)-1], roulette.RunDuration(total))

	phase := roulette.PhaseAt(0, total)
	fmt.Fprintf(out, "phase %-4s from step 1\n", phase)
	for counter := 1; counter < total; counter++ {
		if p := roulette.PhaseAt(counter, total); p != phase {
			phase = p
			fmt.Fprintf(out, "phase %-4s from step %d\n", phase, counter+1)
		}
	}

	if opts.svgPath != "" {
		svg := export.ProfileSVG(total, 800, 240, string(viz.ThemeCyberpunk.Hot))
		if err := os.WriteFile(opts.svgPath, []byte(svg), 0644); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
		fmt.Fprintf(out, "wrote %s\n", opts.svgPath)
	}
	return nil
}

func listItems(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name"})
	for _, it := range roulette.DefaultItems() {
		table.Append([]string{strconv.Itoa(it.ID), it.Name})
	}
	table.Render()
	return nil
}

func listPresets(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Preset", "Theme", "Scale"})
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		table.Append([]string{name, p.Theme, strconv.FormatFloat(p.TimeScale, 'g', -1, 64)})
	}
	table.Render()
	return nil
}
