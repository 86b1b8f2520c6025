package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/mattn/go-isatty"
	"github.com/san-kum/folio/internal/clock"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/export"
	"github.com/san-kum/folio/internal/frame"
	"github.com/san-kum/folio/internal/gui"
	"github.com/san-kum/folio/internal/scene"
	"github.com/san-kum/folio/internal/surface"
	"github.com/san-kum/folio/internal/typewriter"
	"github.com/san-kum/folio/internal/viz"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	configFile string
	seed       int64
	fps        int
	logFile    string

	// svg
	svgWidth  float64
	svgHeight float64
	svgFrames int
	svgFor    time.Duration

	// bench
	benchFrames int
	benchWidth  float64
	benchHeight float64

	// type
	instant bool

	downloadDir string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "folio",
		Short:        "animated portfolio in the terminal",
		SilenceUsage: true,
		RunE:         runLive,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", config.DefaultFPS, "backdrop frame rate")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "", "write logs to this file")
	rootCmd.Flags().StringVar(&downloadDir, "downloads", ".", "directory for the resume copy")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "show the portfolio with its live backdrop",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&downloadDir, "downloads", ".", "directory for the resume copy")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "show the backdrop in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, closeLog, err := setup(cmd)
			if err != nil {
				return err
			}
			defer closeLog()
			return gui.Run(cfg, seed, logger)
		},
	}

	svgCmd := &cobra.Command{
		Use:   "svg [out]",
		Short: "render a backdrop frame to an svg file",
		Args:  cobra.ExactArgs(1),
		RunE:  renderSVG,
	}
	svgCmd.Flags().Float64Var(&svgWidth, "width", 1280, "width in px")
	svgCmd.Flags().Float64Var(&svgHeight, "height", 720, "height in px")
	svgCmd.Flags().IntVar(&svgFrames, "frames", 90, "frames to simulate before the snapshot")
	svgCmd.Flags().DurationVar(&svgFor, "for", 0, "run on the wall clock for this long instead of --frames")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark backdrop frames per viewport class",
		RunE:  benchScene,
	}
	benchCmd.Flags().IntVar(&benchFrames, "frames", 450, "frames per class")
	benchCmd.Flags().Float64Var(&benchWidth, "width", 1280, "full viewport width in px")
	benchCmd.Flags().Float64Var(&benchHeight, "height", 720, "viewport height in px")

	typeCmd := &cobra.Command{
		Use:   "type",
		Short: "type the intro paragraphs",
		RunE:  typeIntro,
	}
	typeCmd.Flags().BoolVar(&instant, "instant", false, "skip the delays")

	profilesCmd := &cobra.Command{
		Use:   "profiles",
		Short: "list viewport profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PROFILE\tPARTICLES\tDISTANCE\tCHART SCALE\tGLOW")
			for _, name := range config.ListProfiles() {
				p, _ := config.GetProfile(name)
				fmt.Fprintf(w, "%s\t%d\t%.0f\t%.2f\t%v\n", name, p.ParticleCount, p.ConnectionDistance, p.ChartScale, p.Glow)
			}
			return w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); err == nil {
				return fmt.Errorf("%s already exists", args[0])
			}
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(liveCmd, guiCmd, svgCmd, benchCmd, typeCmd, profilesCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the config and applies flag overrides. Flags win only when set
// on the command line.
func setup(cmd *cobra.Command) (*config.Config, *log.Logger, func(), error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if !cmd.Flags().Changed("seed") && cfg.Seed != 0 {
		seed = cfg.Seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, closeLog, nil
}

// newLogger writes to the --log file. Without one, logs are discarded because
// the terminal belongs to the UI.
func newLogger() (*log.Logger, func(), error) {
	if logFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "folio",
	})
	return logger, func() { f.Close() }, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("stdout is not a terminal; try: folio svg backdrop.svg")
	}
	cfg, logger, closeLog, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	m, err := viz.NewModel(viz.Options{Config: cfg, Seed: seed, Logger: logger, DownloadDir: downloadDir})
	if err != nil {
		return err
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		logger.Info("terminal", "cols", w, "rows", h)
		m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return m.Err()
}

func renderSVG(cmd *cobra.Command, args []string) error {
	cfg, logger, closeLog, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	out := export.NewSVG(svgWidth, svgHeight)
	sc, err := scene.New(cfg, rand.New(rand.NewSource(seed)), svgWidth, svgHeight)
	if err != nil {
		return err
	}
	sched := frame.NewScheduler(cfg.FPS, sc.Renderer(out))

	if svgFor > 0 {
		ctx, cancel := context.WithTimeout(cmd.Context(), svgFor)
		defer cancel()
		src := frame.NewTickerSource(60)
		defer src.Stop()
		if err := sched.Run(ctx, src); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
	} else {
		// Simulated 60 Hz refreshes until enough frames were rendered.
		refresh := time.Second / 60
		for ts := time.Duration(0); sched.Frames() < svgFrames; ts += refresh {
			sched.Frame(ts)
		}
	}

	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := out.WriteTo(f); err != nil {
		return err
	}
	logger.Info("svg written", "path", args[0], "frames", sched.Frames(), "shapes", out.Len())
	fmt.Printf("wrote %s (%s, %d particles, %d shapes)\n", args[0], sc.Class(), sc.Field().Len(), out.Len())
	return nil
}

type benchResult struct {
	class       config.Class
	particles   int
	connections int
	lines       int
	perFrame    time.Duration
	frameTimes  []float64
}

func benchClass(cfg *config.Config, w, h float64) (benchResult, error) {
	rec := surface.NewRecorder(w, h)
	sc, err := scene.New(cfg, rand.New(rand.NewSource(seed)), w, h)
	if err != nil {
		return benchResult{}, err
	}
	res := benchResult{class: sc.Class(), particles: sc.Field().Len()}

	var total time.Duration
	for i := 0; i < benchFrames; i++ {
		rec.Reset()
		start := time.Now()
		sc.RenderFrame(rec)
		elapsed := time.Since(start)
		total += elapsed
		res.frameTimes = append(res.frameTimes, float64(elapsed.Microseconds())/1000)
	}
	res.connections = len(sc.Field().Connections(sc.Profile().ConnectionDistance))
	res.lines = rec.Count(surface.OpLine)
	if benchFrames > 0 {
		res.perFrame = total / time.Duration(benchFrames)
	}
	return res, nil
}

func benchScene(cmd *cobra.Command, args []string) error {
	cfg, logger, closeLog, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closeLog()
	if benchFrames <= 0 {
		return fmt.Errorf("frames must be positive")
	}

	widths := []float64{benchWidth, cfg.CompactBelow / 2}
	var results []benchResult
	for _, w := range widths {
		res, err := benchClass(cfg, w, benchHeight)
		if err != nil {
			return err
		}
		logger.Debug("bench", "class", res.class, "per_frame", res.perFrame)
		results = append(results, res)
	}

	budget := cfg.FrameBudget()
	if budget > 0 {
		fmt.Printf("benchmarking %d frames per class (budget %v)\n\n", benchFrames, budget)
	} else {
		fmt.Printf("benchmarking %d frames per class (unthrottled)\n\n", benchFrames)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CLASS\tPARTICLES\tCONNECTIONS\tLINES/FRAME\tTIME/FRAME\tHEADROOM")
	for _, r := range results {
		headroom := "-"
		if budget > 0 {
			headroom = fmt.Sprintf("%.0fx", float64(budget)/float64(max(r.perFrame, time.Nanosecond)))
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%v\t%s\n", r.class, r.particles, r.connections, r.lines, r.perFrame, headroom)
	}
	w.Flush()

	for _, r := range results {
		caption := fmt.Sprintf("frame time ms (%s)", r.class)
		graph := asciigraph.Plot(r.frameTimes,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Printf("\n%s\n", graph)
	}
	return nil
}

func typeIntro(cmd *cobra.Command, args []string) error {
	cfg, logger, closeLog, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	tw := cfg.Typewriter
	writer := typewriter.New(tw.Paragraphs, tw.TypingSpeed, tw.ParagraphDelay)
	if writer.Done() {
		logger.Warn("no paragraphs to type")
		return nil
	}

	if instant {
		manual := clock.NewManual()
		writer.Run(manual, tw.StartDelay, func(string) {})
		elapsed := manual.Drain()
		logger.Info("typed", "elapsed", elapsed)
		fmt.Println(strings.TrimRight(typewriter.Plain(writer.Text()), "\n"))
		return nil
	}

	// Steps run one at a time on the real timer; only the new tail is printed.
	done := make(chan struct{})
	printed := 0
	writer.Run(clock.Real{}, tw.StartDelay, func(text string) {
		if plain := typewriter.Plain(text); len(plain) > printed {
			fmt.Print(plain[printed:])
			printed = len(plain)
		}
		if writer.Done() {
			close(done)
		}
	})

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
