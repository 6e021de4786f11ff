package load

import "log/slog"

type config struct {
	moduleRoot string
	logger     *slog.Logger
}

func defaultConfig() *config {
	return &config{logger: slog.Default()}
}

// Option configures a [Load] or [LoadSources] call.
type Option func(*config)

// WithModuleRoot sets the directory import paths are resolved relative
// to. Only [Load] uses it, defaulting to the entry file's directory;
// [LoadSources] ignores it (the sources map's keys are already relative
// to the intended root).
func WithModuleRoot(path string) Option {
	return func(c *config) { c.moduleRoot = path }
}

// WithLogger overrides the [slog.Logger] the loader reports progress and
// import resolution to. Defaults to [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

func applyOptions(c *config, opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}
