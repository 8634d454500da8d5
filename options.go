package formctl

import (
	"context"
	"log/slog"
	"time"

	"github.com/formctl/formctl/pkg/config"
)

// Option configures a control during construction.
type Option func(*Control)

// WithLogger sets the logger used for engine diagnostics. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Control) {
		if logger != nil {
			c.log = logger
		}
	}
}

// WithContext sets the base context asynchronous validators derive from.
// Cancelling it stops all in-flight validation for the control.
func WithContext(ctx context.Context) Option {
	return func(c *Control) {
		if ctx != nil {
			c.baseCtx = ctx
		}
	}
}

// WithTargetRetry bounds the polling loop that waits for a validation
// target to appear after a commit could not supply one. attempts <= 0
// disables polling entirely.
func WithTargetRetry(attempts int, interval time.Duration) Option {
	return func(c *Control) {
		c.retryAttempts = attempts
		if interval > 0 {
			c.retryInterval = interval
		}
	}
}

// WithEngineConfig applies an explicit engine configuration instead of the
// environment-derived one New loads. Later options still override individual
// settings.
func WithEngineConfig(cfg config.Engine) Option {
	return func(c *Control) {
		c.retryAttempts = cfg.TargetRetryAttempts
		if cfg.TargetRetryInterval > 0 {
			c.retryInterval = cfg.TargetRetryInterval
		}
		c.asyncSettleTimeout = cfg.AsyncSettleTimeout
	}
}

// WithValueReader makes attribute-triggered re-validation re-read the live
// value from the concrete control instead of using the last committed one.
func WithValueReader(read func() Value) Option {
	return func(c *Control) {
		c.valueReader = read
	}
}
