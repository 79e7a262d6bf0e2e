package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/collatz/internal/collatz"
	"github.com/san-kum/collatz/internal/config"
	"github.com/san-kum/collatz/internal/export"
	"github.com/san-kum/collatz/internal/playback"
	"github.com/san-kum/collatz/internal/viz"
)

var (
	configFile string
	dataDir    string
	logFile    string
	stepCap    int
	intervalMs int
	scale      string
	theme      string
	// run
	height   int
	width    int
	opRows   int
	autoplay bool
	// export
	outPath string
)

// main registers the commands, opens the interactive TUI when no subcommand
// is given, and exits with status 1 if a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:   "collatz",
		Short: "collatz conjecture visualizer",
		Long: `Compute the Collatz trajectory of a positive integer and step through it:
n/2 when n is even, 3n+1 when n is odd, until the sequence reaches 1.`,
		PersistentPreRunE: setupLogging,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, nil)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "directory for exported files")
	rootCmd.PersistentFlags().StringVarP(&logFile, "log", "l", "", "write debug logs to file (empty disables)")
	rootCmd.PersistentFlags().IntVar(&stepCap, "cap", collatz.DefaultCap, "maximum sequence length")
	rootCmd.PersistentFlags().IntVar(&intervalMs, "interval", config.DefaultIntervalMs, "animation speed in ms per step")
	rootCmd.PersistentFlags().StringVar(&scale, "scale", config.DefaultScale, "chart scale (linear|log)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), "|")+")")

	tuiCmd := &cobra.Command{
		Use:   "tui [n]",
		Short: "interactive visualizer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTUI,
	}
	tuiCmd.Flags().BoolVar(&autoplay, "autoplay", false, "start animating immediately")

	runCmd := &cobra.Command{
		Use:   "run [n]",
		Short: "print statistics and a chart of the sequence",
		Args:  cobra.ExactArgs(1),
		RunE:  runSequence,
	}
	runCmd.Flags().IntVar(&height, "height", 15, "chart height")
	runCmd.Flags().IntVar(&width, "width", 80, "chart width")
	runCmd.Flags().IntVar(&opRows, "ops", 10, "number of operations to list")

	playCmd := &cobra.Command{
		Use:   "play [n]",
		Short: "animate the sequence on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  playSequence,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [n]",
		Short: "export the sequence to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRunner(export.CSV),
	}
	exportJSONCmd := &cobra.Command{
		Use:   "export-json [n]",
		Short: "export the sequence to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRunner(export.JSON),
	}
	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [n]",
		Short: "export a chart of the sequence to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRunner(export.SVG),
	}
	for _, c := range []*cobra.Command{exportCSVCmd, exportJSONCmd, exportSVGCmd} {
		c.Flags().StringVarP(&outPath, "output", "o", "", "output path (default Collatz-Conjecture-N-<n>.<ext>)")
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list notable starting numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSTART\tNOTE")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(w, "%s\t%d\t%s\n", name, p.Start, p.Note)
			}
			return w.Flush()
		},
	}

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "where to read more about the conjecture",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), viz.InfoURL)
		},
	}

	rootCmd.AddCommand(tuiCmd, runCmd, playCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd, infoCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	if logFile == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := tea.LogToFile(logFile, "collatz")
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("logging to %s", f.Name())
	return nil
}

// loadConfig reads --config, then applies flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("cap") {
		cfg.Cap = stepCap
	}
	if flags.Changed("interval") {
		cfg.IntervalMs = intervalMs
	}
	if flags.Changed("scale") {
		cfg.Scale = scale
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseStart accepts a number or a preset name.
func parseStart(arg string) (int64, error) {
	if p := config.GetPreset(arg); p != nil {
		return p.Start, nil
	}
	n, err := strconv.ParseInt(strings.ReplaceAll(arg, ",", ""), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer or preset", collatz.ErrInvalidInput, arg)
	}
	return n, nil
}

func computeFor(cfg *config.Config, arg string) (collatz.Sequence, error) {
	n, err := parseStart(arg)
	if err != nil {
		return collatz.Sequence{}, err
	}
	seq, truncated, err := collatz.Compute(n, cfg.Cap)
	if err != nil {
		return collatz.Sequence{}, fmt.Errorf("compute %d: %w", n, err)
	}
	if truncated {
		fmt.Fprintf(os.Stderr, "warning: %v (cap %d)\n", collatz.ErrTruncated, cfg.Cap)
	}
	log.Printf("computed start=%d len=%d truncated=%v", n, seq.Len(), truncated)
	return seq, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		n, err := parseStart(args[0])
		if err != nil {
			return err
		}
		cfg.Start = n
	}
	explicit := cmd.Flags().Changed("theme") || configFile != ""
	return viz.Run(viz.Options{
		Config:   cfg,
		Theme:    viz.ThemeForTerminal(cfg.Theme, explicit),
		Autoplay: autoplay,
	})
}

func runSequence(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	seq, err := computeFor(cfg, args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	st := collatz.ComputeStats(seq)

	fmt.Fprintf(out, "starting number: %d\n", st.Start)
	fmt.Fprintf(out, "length:          %d steps\n", st.Steps)
	fmt.Fprintf(out, "maximum value:   %d (step %d)\n", st.Max, st.MaxIndex)
	fmt.Fprintf(out, "odd/even:        %d/%d\n", st.OddCount, st.EvenCount)
	fmt.Fprintln(out)

	if opRows > 0 {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "STEP\tVALUE\tOPERATION")
		for i := 0; i < seq.Len() && i < opRows; i++ {
			op, ok := collatz.Operation(seq, i)
			text := "-"
			if ok {
				text = op.String()
			}
			fmt.Fprintf(w, "%d\t%d\t%s\n", i, seq.At(i), text)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	if seq.Len() < 2 {
		return nil
	}
	data := seq.Floats(seq.Len())
	caption := "value"
	if cfg.ScaleMode() == playback.Logarithmic {
		for i, v := range data {
			data[i] = math.Log10(v)
		}
		caption = "log10(value)"
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("collatz N = %d, %s", seq.Start(), caption)),
	)
	fmt.Fprintln(out, graph)
	return nil
}

func playSequence(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	seq, err := computeFor(cfg, args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loop := playback.NewLoop()
	printed := -1
	ctrl := playback.New(loop,
		playback.WithInterval(cfg.IntervalMs),
		playback.WithScaleMode(cfg.ScaleMode()),
		playback.WithListener(func(s playback.Snapshot) {
			if s.Cursor == printed {
				return
			}
			printed = s.Cursor
			line := fmt.Sprintf("step %d/%d  value %d", s.Cursor, s.Sequence.Steps(), s.Current())
			if op, ok := s.NextOp(); ok {
				line += "  " + op.String()
			}
			fmt.Fprintln(out, line)
			if s.AtEnd() && !s.Playing {
				cancel()
			}
		}),
	)

	var startErr error
	loop.Post(func() {
		if startErr = ctrl.Load(seq); startErr != nil || seq.Len() == 1 {
			cancel()
			return
		}
		startErr = ctrl.Play()
	})

	if err := loop.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return startErr
}

func exportRunner(f export.Format) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		seq, err := computeFor(cfg, args[0])
		if err != nil {
			return err
		}
		path := outPath
		if path == "" {
			path = filepath.Join(cfg.DataDir, export.DefaultFilename(seq, f))
		}
		opts := export.DefaultChartOptions()
		opts.Scale = cfg.ScaleMode()
		if err := export.WriteFileAs(path, seq, f, opts); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "sequence saved in: %s\n", path)
		return nil
	}
}
