package app

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/five82/locedit/internal/config"
	"github.com/five82/locedit/internal/logging"
	"github.com/five82/locedit/internal/prefs"
	"github.com/five82/locedit/internal/remote"
	"github.com/five82/locedit/internal/search"
	"github.com/five82/locedit/internal/state"
	"github.com/five82/locedit/internal/ui"
)

// Options configure the locedit application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/locedit/prefs.toml
	EnvFile    string // empty uses ./.env
}

// Run boots the editor TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	if err := config.LoadDotEnv(opts.EnvFile); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logging.Options{Path: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	store := state.NewStore(state.Reducer{Logger: logger})
	loader, err := NewLoader(cfg, store, logger)
	if err != nil {
		return err
	}

	logger.Info("starting locedit",
		zap.String("api_url", cfg.APIURL),
		zap.Strings("locales", cfg.Locales),
		zap.Bool("fallback_to_sample", cfg.FallbackToSample),
	)

	return ui.Run(ui.Options{
		Context:  ctx,
		Store:    store,
		Engine:   search.NewEngine(cfg.SearchCacheSize),
		Logger:   logger,
		Locales:  cfg.Locales,
		Required: cfg.RequiredLocales,
		Debounce: cfg.Debounce(),
		Bootstrap: func(ctx context.Context) (string, error) {
			src, err := loader.Bootstrap(ctx)
			return string(src), err
		},
		Reload:    loader.Reload,
		CanReload: loader.Fetcher != nil,
		Copy:      clipboard.WriteAll,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
	})
}

// NewLoader builds the startup loader for cfg, including the remote client
// when an endpoint is configured.
func NewLoader(cfg config.Config, d *state.Store, logger *zap.Logger) (*Loader, error) {
	loader := &Loader{
		Dispatcher:       d,
		FallbackToSample: cfg.FallbackToSample,
		Logger:           logger,
	}
	if cfg.HasRemote() {
		client, err := remote.NewClient(cfg.APIURL, remote.WithTimeout(cfg.Timeout()))
		if err != nil {
			return nil, fmt.Errorf("init remote client: %w", err)
		}
		loader.Fetcher = client
	}
	return loader, nil
}
