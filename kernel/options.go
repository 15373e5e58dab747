package kernel

import (
	"log/slog"

	"github.com/cwbudde/algo-simd/cpu"
)

// config holds dispatcher settings.
type config struct {
	features *cpu.Features
	logger   *slog.Logger
}

// Option mutates a dispatcher config.
type Option func(*config)

func defaultConfig() config {
	return config{logger: slog.New(slog.DiscardHandler)}
}

// WithFeatures makes the dispatcher select implementations for f instead of
// the detected CPU. Passing a snapshot without vector extensions, or with
// ForceGeneric set, restricts every call to the scalar tier.
func WithFeatures(f cpu.Features) Option {
	return func(cfg *config) {
		cfg.features = &f
	}
}

// WithLogger sets the logger used to report implementation selection.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
