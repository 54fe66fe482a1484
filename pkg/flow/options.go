package flow

import "log/slog"

// Option configures a combined stream.
type Option func(*config)

type config struct {
	buffer int
	logger *slog.Logger
}

func newConfig(opts []Option) config {
	c := config{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// WithBuffer sets the capacity of the channel that carries primary values
// to the consumer. Negative values are treated as 0 (unbuffered).
func WithBuffer(n int) Option {
	return func(c *config) {
		c.buffer = max(n, 0)
	}
}

// WithLogger sets the logger used for side channel lifecycle events.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
