package container

import (
	"github.com/arloliu/go-drones/internal/capacity"
	"github.com/arloliu/go-drones/logger"
)

type config struct {
	policy capacity.Policy
	logger logger.Logger
}

// Option configures a Queue or Stack.
type Option func(*config)

func newConfig(opts []Option) config {
	cfg := config{
		policy: capacity.Default(),
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithMaxCapacity sets the largest capacity the container may grow to.
// Growth that would exceed it is treated as an integer overflow.
// Values below the initial capacity of 8 are raised to 8.
//
// The default is math.MaxInt. Use math.MaxInt32 to model 32-bit capacities.
func WithMaxCapacity(n int) Option {
	return func(cfg *config) {
		cfg.policy = cfg.policy.WithMax(n)
	}
}

// WithLogger sets a logger that receives a debug record on every resize.
// A nil logger disables logging, which is also the default.
func WithLogger(l logger.Logger) Option {
	return func(cfg *config) {
		if l == nil {
			l = logger.Nop()
		}
		cfg.logger = l
	}
}

func (cfg *config) logResize(kind string, from, to, size int) {
	cfg.logger.Debug("container resized", "kind", kind, "from", from, "to", to, "size", size)
}
