package runner

import (
	"log/slog"
)

// DefaultMaxLineSize bounds a single input line.
const DefaultMaxLineSize = 1 << 20

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithInterceptor configures the tool execution middleware.
func WithInterceptor(interceptor ToolInterceptor) Option {
	return func(r *Runner) {
		r.interceptor = interceptor
	}
}

// WithMaxLineSize overrides the per-line size limit. Non-positive values are ignored.
func WithMaxLineSize(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.maxLineSize = n
		}
	}
}
