package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/responsive/internal/config"
	"github.com/five82/responsive/internal/host"
	"github.com/five82/responsive/internal/logging"
	"github.com/five82/responsive/internal/prefs"
	"github.com/five82/responsive/internal/responsive"
	"github.com/five82/responsive/internal/scaling"
	"github.com/five82/responsive/internal/ui"
	"github.com/five82/responsive/internal/viewport"
)

// Options configure the demo.
type Options struct {
	ConfigPath string
	PrefsPath  string        // empty uses default ~/.config/responsive/prefs.toml
	LogPath    string        // overrides log_file from the config
	PollEvery  time.Duration // zero relies on window size messages only
}

// DemoDefaults are the scaling settings the demo starts from before the
// config file is applied. Terminal widths are far smaller than the
// library's pixel defaults.
var DemoDefaults = scaling.Overrides{
	BaseWidth: scaling.Float(80),
	Breakpoints: &scaling.BreakpointOverrides{
		Medium: scaling.Float(100),
		Large:  scaling.Float(140),
	},
}

// Run boots the demo until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logPath := cfg.LogFile
	if opts.LogPath != "" {
		logPath = opts.LogPath
	}
	logger, closeLog, err := logging.New(logPath, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closeLog() }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tracker := viewport.NewTracker(viewport.DefaultDimensions, viewport.WithLogger(logger))
	env := responsive.Env{Store: scaling.Default, Viewport: tracker, Logger: logger}

	term := host.NewTerminal(os.Stdout, host.WithLogger(logger), host.WithInterval(opts.PollEvery))
	if opts.PollEvery > 0 {
		if err := tracker.Attach(ctx, term); err != nil {
			logger.Warn("terminal polling disabled", zap.Error(err))
		}
	} else if d, err := term.Current(); err == nil {
		tracker.Resize(d)
	}

	scope := responsive.NewScope(env, DemoDefaults)
	defer scope.Close()
	if err := config.Apply(opts.ConfigPath, env.Store, logger); err != nil {
		return fmt.Errorf("apply config: %w", err)
	}

	reader := responsive.NewReader(responsive.WithScope(ctx, scope), env)
	defer reader.Close()

	model := ui.New(ui.Options{
		Reader:     reader,
		Store:      env.Store,
		Defaults:   DemoDefaults,
		ConfigPath: opts.ConfigPath,
		PrefsPath:  opts.PrefsPath,
		Prefs:      prefs.Load(opts.PrefsPath),
		Logger:     logger,
	})
	program := tea.NewProgram(host.Feed(tracker, model), tea.WithAltScreen(), tea.WithContext(ctx))

	// Snapshots are republished from inside Update (resize, key handling),
	// where a synchronous Send would block the program loop.
	reader.Subscribe(func(s responsive.Snapshot) {
		go program.Send(ui.SnapshotMsg(s))
	})

	g, gctx := errgroup.WithContext(ctx)

	watcher, err := config.NewWatcher(opts.ConfigPath, env.Store, logger)
	if err != nil {
		logger.Warn("config reload disabled", zap.Error(err))
	} else {
		g.Go(func() error { return watcher.Run(gctx) })
	}

	g.Go(func() error {
		defer cancel()
		_, err := program.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	})

	logger.Info("demo started",
		zap.Float64("base_width", env.Store.Config().BaseWidth),
		zap.Stringer("class", reader.Class()))
	return g.Wait()
}
