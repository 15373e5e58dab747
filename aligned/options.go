package aligned

// Source selects where buffer memory comes from.
type Source int

const (
	// SourceHeap allocates from the Go heap.
	SourceHeap Source = iota
	// SourceOffHeap maps anonymous memory from the operating system.
	// Platforms without a mapping primitive fall back to SourceHeap.
	SourceOffHeap
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceHeap:
		return "heap"
	case SourceOffHeap:
		return "offheap"
	default:
		return "unknown"
	}
}

// config holds allocation settings.
type config struct {
	source Source
}

// Option mutates an allocation config.
type Option func(*config)

func defaultConfig() config {
	return config{source: SourceHeap}
}

// WithSource selects the memory source.
func WithSource(src Source) Option {
	return func(cfg *config) {
		if src == SourceHeap || src == SourceOffHeap {
			cfg.source = src
		}
	}
}

// WithOffHeap is shorthand for WithSource(SourceOffHeap).
func WithOffHeap() Option {
	return WithSource(SourceOffHeap)
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.source == SourceOffHeap && !offHeapSupported {
		cfg.source = SourceHeap
	}
	return cfg
}
