package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/jonboulle/clockwork"

	"github.com/jask/glacionet/app"
	"github.com/jask/glacionet/core"
	"github.com/jask/glacionet/internal/config"
	"github.com/jask/glacionet/internal/glacier"
	"github.com/jask/glacionet/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, clockwork.NewRealClock())
	stop()
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "glacionet: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	page     string
	dataPath string
	snapshot bool
	width    int
	height   int
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("glacionet", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.page, "page", "", "page to open: home, map or predictions")
	fs.StringVar(&o.dataPath, "data", "", "dataset TOML file (default: built-in sample)")
	fs.BoolVar(&o.snapshot, "snapshot", false, "render one frame to stdout and exit")
	fs.IntVar(&o.width, "width", 100, "snapshot width")
	fs.IntVar(&o.height, "height", 32, "snapshot height")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if o.width <= 0 || o.height <= 0 {
		return options{}, fmt.Errorf("snapshot size must be positive, got %dx%d", o.width, o.height)
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdout io.Writer, clock clockwork.Clock) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if opts.page != "" {
		cfg.UI.StartPage = opts.page
	}
	if opts.dataPath != "" {
		cfg.Data.Path = opts.dataPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	start, err := app.ParsePage(cfg.UI.StartPage)
	if err != nil {
		return fmt.Errorf("ui.start_page: %w", err)
	}

	logPath := cfg.Log.Path
	if opts.snapshot {
		logPath = ""
	}
	logFile, err := logging.OpenFile(logPath)
	if err != nil {
		return err
	}
	level, _ := cfg.Log.SlogLevel()
	logger := logging.NewStructuredLogger(logFile, level, cfg.Log.Format)
	defer logging.SafeClose(logFile, logger, "close log file")
	ctx = logging.WithLogger(ctx, logger)

	ds, err := loadDataset(ctx, cfg.Data.Path)
	if err != nil {
		return err
	}

	m := core.NewModel(
		app.Tabs(ds, clock),
		core.NewKeyRegistry(app.KeyBindings(cfg.Keys)),
		core.NewCommandRegistry(nil),
		core.Options{NarrowWidth: cfg.UI.NarrowWidth, Logger: logger},
	)
	app.ConfigureModel(&m, app.Source{Dataset: ds, Path: cfg.Data.Path})
	m.SwitchTabByID(start.String())

	if opts.snapshot {
		m.SetSize(opts.width, opts.height)
		_, err := fmt.Fprintln(stdout, ansi.Strip(m.View()))
		return err
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UI.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(m, programOpts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		logging.LogError(logger, "program exited", err)
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func loadDataset(ctx context.Context, path string) (glacier.Dataset, error) {
	logger := logging.FromContext(ctx)
	ds, err := glacier.Load(path)
	if err != nil {
		logging.LogError(logger, "load dataset", err, slog.String("path", path))
		return glacier.Dataset{}, err
	}
	logger.Info("dataset loaded",
		slog.String("glacier", ds.Glacier.Name),
		slog.String("path", path))
	return ds, nil
}
