package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vatscope/vatscope/internal/config"
	"github.com/vatscope/vatscope/internal/logging"
	"github.com/vatscope/vatscope/internal/prefs"
	"github.com/vatscope/vatscope/internal/state"
	"github.com/vatscope/vatscope/internal/ui"
	"github.com/vatscope/vatscope/internal/vatsim"
)

// Options configure the vatscope application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/vatscope/prefs.toml
	PollEvery  int    // seconds; zero uses the config value
	LogLevel   string // overrides the config value when non-empty
}

// Run boots the vatscope TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.PollEvery > 0 {
		cfg.PollInterval = time.Duration(opts.PollEvery) * time.Second
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	logger, closeLog, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closeLog() }()
	slog.SetDefault(logger)

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := newClient(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("init vatsim client: %w", err)
	}

	store := &state.Store{}

	// Start background poller
	StartPoller(ctx, store, client, cfg.PollInterval, logger)

	// Do initial refresh to populate the store before the UI starts. A
	// failure here is not fatal; the UI shows the error header and the
	// poller keeps retrying.
	refresh(ctx, store, client, logger)

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		PollTick:  cfg.PollInterval,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

func newClient(ctx context.Context, cfg config.Config, logger *slog.Logger) (*vatsim.Client, error) {
	if cfg.DataURL != "" {
		logger.Info("using configured datafeed url", "url", cfg.DataURL)
		return vatsim.NewClientWithDataURL(cfg.DataURL)
	}
	client, err := vatsim.NewClient(ctx, cfg.StatusURL)
	if err != nil {
		return nil, err
	}
	logger.Info("discovered datafeed mirror", "url", client.DataURL())
	return client, nil
}
