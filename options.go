package npoint

import (
	"io"
	"log/slog"
)

// DefaultMaxDepth bounds how many times a branch may subdivide. Deeper than
// this, child bounds drop below float64 resolution of the root's center.
const DefaultMaxDepth = 48

type config struct {
	logger   *slog.Logger
	maxDepth int
}

// Option configures an NTree. Options given to the root are inherited by
// every child node.
type Option func(*config)

// WithLogger sets the logger used for subdivision and rejected inserts.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMaxDepth limits subdivision to depth levels below the root. Values
// below 1 are ignored.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
