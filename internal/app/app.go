package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/isebuild/internal/config"
	"github.com/vk/isebuild/internal/ctxlog"
	"github.com/vk/isebuild/internal/options"
	"github.com/vk/isebuild/internal/projgraph"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	model    *config.Model
	resolver *projgraph.Resolver
	intstyle string
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. Preferences are
// loaded through loader when the config names any paths, and the command-line
// overrides are applied on top.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger := NewLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// The option tables are code; a broken table is a programmer error.
	if err := options.Validate(); err != nil {
		panic(err)
	}
	logger.Debug("Option table validation passed.")

	model := config.NewModel()
	if len(cfg.PrefPaths) > 0 {
		if loader == nil {
			return nil, fmt.Errorf("preference paths given but no loader configured")
		}
		loaded, err := loader.Load(ctx, cfg.PrefPaths...)
		if err != nil {
			return nil, fmt.Errorf("failed to load preferences: %w", err)
		}
		model.Merge(loaded)
		logger.Debug("Preferences loaded.", "paths", cfg.PrefPaths)
	}

	if len(cfg.Overrides) > 0 {
		var def options.Process
		if cfg.Process != "" {
			p, err := options.ParseProcess(cfg.Process)
			if err != nil {
				return nil, err
			}
			def = p
		}
		for _, s := range cfg.Overrides {
			o, err := config.ParseOverride(s, def)
			if err != nil {
				return nil, err
			}
			o.Apply(model)
			logger.Debug("Preference override applied.", "process", o.Process, "option", o.Name, "value", o.Value)
		}
	}

	intstyle := DefaultIntstyle
	if model.Toolchain.Intstyle != "" {
		intstyle = model.Toolchain.Intstyle
	}
	if cfg.Intstyle != "" {
		intstyle = cfg.Intstyle
	}

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		model:    model,
		resolver: &projgraph.Resolver{MaxDepth: cfg.MaxDepth},
		intstyle: intstyle,
	}, nil
}

// Context returns a background context carrying the application logger.
func (a *App) Context() context.Context {
	return ctxlog.WithLogger(context.Background(), a.logger)
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Model returns the merged preferences. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}

// Intstyle returns the -intstyle value passed to every tool.
func (a *App) Intstyle() string {
	return a.intstyle
}
