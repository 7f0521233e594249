package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/ytpl/internal/formatter"
	"github.com/desertthunder/ytpl/internal/services"
	"github.com/desertthunder/ytpl/internal/shared"
	"github.com/desertthunder/ytpl/internal/tasks"
	"github.com/desertthunder/ytpl/internal/ui"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for the command and provides its action.
type Runner struct {
	config     *shared.Config
	fetcher    services.Fetcher
	logger     *log.Logger
	input      *bufio.Reader
	output     io.Writer
	isTerminal func() bool
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Fetcher    services.Fetcher
	Logger     *log.Logger
	Input      io.Reader
	Output     io.Writer
	IsTerminal func() bool // Reports whether the full screen menu can be shown
}

// Options is the fully resolved configuration for one run.
//
// It is built once from flags and config, then passed by value to [Runner.dispatch].
type Options struct {
	URL             string
	Projections     []formatter.Projection // Selected exports in export order; empty means interactive
	OutputDir       string
	MarkdownHeading string
	FetchTimeout    time.Duration
	InstallYTDLP    bool
	TUI             bool
}

// Interactive reports whether the run shows a menu instead of exporting directly.
func (o Options) Interactive() bool {
	return len(o.Projections) == 0
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.IsTerminal == nil {
		opts.IsTerminal = isTerminal
	}

	return &Runner{
		config:     opts.Config,
		fetcher:    opts.Fetcher,
		logger:     opts.Logger,
		input:      bufio.NewReader(opts.Input),
		output:     opts.Output,
		isTerminal: opts.IsTerminal,
	}
}

// isTerminal reports whether both stdin and stdout are attached to a terminal.
func isTerminal() bool {
	for _, f := range []*os.File{os.Stdin, os.Stdout} {
		fd := f.Fd()
		if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
			return false
		}
	}
	return true
}

// Export is the command action: it resolves [Options] and dispatches.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("verbose") {
		shared.SetLogLevel(r.logger, log.DebugLevel)
	}

	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	opts, err := resolveOptions(cmd, config)
	if err != nil {
		return err
	}

	return r.dispatch(ctx, opts)
}

func (r *Runner) loadConfig(cmd *cli.Command) (*shared.Config, error) {
	if r.config != nil {
		return r.config, nil
	}

	path := cmd.String("config")
	if cmd.IsSet("config") {
		return shared.LoadConfig(path)
	}
	return shared.LoadConfigOrDefault(path)
}

// resolveOptions reads every flag once. Projections are collected in export order, whatever the flag order.
func resolveOptions(cmd *cli.Command, config *shared.Config) (Options, error) {
	timeout, err := config.Fetch.TimeoutDuration()
	if err != nil {
		return Options{}, err
	}

	opts := Options{
		URL:             strings.TrimSpace(cmd.String("url")),
		OutputDir:       config.Export.OutputDir,
		MarkdownHeading: config.Export.MarkdownHeading,
		FetchTimeout:    timeout,
		InstallYTDLP:    config.Fetch.Install,
		TUI:             cmd.Bool("tui"),
	}

	if opts.URL == "" {
		opts.URL = strings.TrimSpace(cmd.Args().First())
	}
	if out := cmd.String("output"); out != "" {
		opts.OutputDir = out
	}

	all := cmd.Bool("all")
	for _, p := range formatter.All() {
		if all || cmd.Bool(p.String()) {
			opts.Projections = append(opts.Projections, p)
		}
	}

	return opts, nil
}

// dispatch fetches the playlist once, then either runs the selected exports or shows a menu.
func (r *Runner) dispatch(ctx context.Context, opts Options) error {
	if opts.URL == "" {
		url, err := r.promptURL()
		if err != nil {
			return err
		}
		opts.URL = url
	}

	if opts.OutputDir != "" {
		if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
			return fmt.Errorf("%w: failed to create output directory: %w", shared.ErrWrite, err)
		}
	}

	fetcher := r.fetcher
	if fetcher == nil {
		fetcher = services.NewYouTubeService(services.NewYTDLPExtractor(opts.InstallYTDLP))
	}

	engine := tasks.NewPlaylistEngine(tasks.EngineOpts{
		Fetcher:  fetcher,
		Exporter: formatter.Exporter{Dir: opts.OutputDir, Heading: opts.MarkdownHeading},
		Timeout:  opts.FetchTimeout,
		Logger:   r.logger,
	})

	info, err := engine.Fetch(ctx, opts.URL)
	if err != nil {
		if werr := r.writePlain("%s\n", ui.DefaultPalette().Err(fmt.Sprintf("❌ Failed to fetch playlist: %v", err))); werr != nil {
			return errors.Join(err, werr)
		}
		return err
	}

	r.logger.Info("fetched playlist", "title", info.Title, "entries", info.Len())

	handle := func(projections []formatter.Projection) *tasks.ExportResult {
		return engine.Export(info, projections...)
	}

	if !opts.Interactive() {
		result := handle(opts.Projections)
		r.logger.Debug("exports finished", "written", result.Files(), "failed", result.Failed)
		for _, line := range ui.RenderResult(ui.DefaultPalette(), result) {
			if err := r.writePlain("%s\n", line); err != nil {
				return errors.Join(result.Err(), err)
			}
		}
		return result.Err()
	}

	if opts.TUI {
		if r.isTerminal() {
			// bubbletea only enables raw mode when its input is the terminal itself, so stdin is not wrapped here
			p := tea.NewProgram(ui.NewModel(info, handle), tea.WithContext(ctx))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		}
		r.logger.Warn("not a terminal, using the line menu")
	}

	return ui.NewLineMenu(r.input, r.output, handle).Run()
}

// promptURL asks for the playlist URL on the runner's input.
func (r *Runner) promptURL() (string, error) {
	if err := r.writePlain("Enter YouTube Playlist URL: "); err != nil {
		return "", err
	}

	line, err := r.input.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read playlist URL: %w", err)
	}

	url := strings.TrimSpace(line)
	if url == "" {
		return "", fmt.Errorf("%w: playlist URL", shared.ErrMissingArgument)
	}
	return url, nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
