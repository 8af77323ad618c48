package app

import (
	"context"
	"fmt"

	"github.com/five82/roster/internal/config"
	"github.com/five82/roster/internal/logging"
	"github.com/five82/roster/internal/prefs"
	"github.com/five82/roster/internal/roster"
	"github.com/five82/roster/internal/state"
	"github.com/five82/roster/internal/ui"
)

// Options configure the roster application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/roster/prefs.toml
	DataFile   string // overrides data_file from the config
	APIURL     string // overrides api_url from the config
}

// Run boots the roster TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts.ConfigPath, opts.APIURL, opts.DataFile)
	if err != nil {
		return err
	}

	log, err := logging.New().FromPath(cfg.LogPath).WithLevel(cfg.LogLevel).Make()
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer log.Close()
	logger := log.Logger

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn().Err(err).Msg("load prefs failed, using defaults")
	}

	source, err := NewSource(cfg)
	if err != nil {
		return fmt.Errorf("init source: %w", err)
	}

	logger.Info().
		Str("source", cfg.SourceLabel()).
		Str("theme", userPrefs.Theme).
		Msg("roster starting")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store := &state.Store{}
	done := StartLoader(ctx, store, source, LoaderOptions{Logger: logger})

	uiErr := ui.Run(ui.Options{
		Context:     ctx,
		Store:       store,
		Audit:       logging.NewAuditSink(logger),
		Logger:      logger,
		SourceLabel: cfg.SourceLabel(),
		ThemeName:   userPrefs.Theme,
		PrefsPath:   opts.PrefsPath,
	})

	cancel()
	<-done
	logger.Info().Msg("roster stopped")
	return uiErr
}

// LoadConfig reads the config file and applies command line overrides.
func LoadConfig(path, apiURL, dataFile string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg.WithOverrides(apiURL, dataFile), nil
}

// NewSource picks the file source when a data file is configured and the
// HTTP client otherwise.
func NewSource(cfg config.Config) (roster.Source, error) {
	if cfg.UsesFile() {
		return roster.NewFileSource(cfg.DataFile), nil
	}
	client, err := roster.NewClient(cfg.APIURL, cfg.FetchTimeout)
	if err != nil {
		return nil, err
	}
	return client, nil
}
