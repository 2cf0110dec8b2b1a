package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/vk/contractcfg/internal/config"
	"github.com/vk/contractcfg/internal/ctxlog"
	"github.com/vk/contractcfg/internal/loader"
	"github.com/vk/contractcfg/internal/plugin"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	logger   *slog.Logger
	config   *Config
	loader   *loader.Loader
	registry *plugin.Registry
}

// Option customizes an App.
type Option func(*App)

// WithModules replaces the built-in plugin modules.
func WithModules(modules ...plugin.Module) Option {
	return func(a *App) {
		a.registry = plugin.New(modules...)
	}
}

// WithCodecs replaces the default file formats.
func WithCodecs(codecs ...config.Codec) Option {
	return func(a *App) {
		a.loader = loader.New(codecs...)
	}
}

// NewApp is the constructor for the main application. Logs go to logW; the
// App never writes command output itself.
func NewApp(logW io.Writer, cfg *Config, opts ...Option) *App {
	a := &App{
		logger:   newLogger(cfg.LogLevel, cfg.LogFormat, logW),
		config:   cfg,
		loader:   loader.New(DefaultCodecs()...),
		registry: plugin.New(coreModules...),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger.Debug("Application initialized.", "plugins_registered", len(a.registry.IDs()), "formats", a.loader.Extensions())
	return a
}

// Context returns ctx carrying the application logger.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Loader returns the descriptor loader.
func (a *App) Loader() *loader.Loader {
	return a.loader
}

// Registry returns the plugin registry.
func (a *App) Registry() *plugin.Registry {
	return a.registry
}
