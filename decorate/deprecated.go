package decorate

import (
	"sync"

	"go.uber.org/zap"
)

type deprecatedConfig struct {
	version string
	message string
}

// DeprecatedOption customizes the deprecation warning.
type DeprecatedOption func(*deprecatedConfig)

// WithVersion names the version in which the function will be removed.
func WithVersion(v string) DeprecatedOption {
	return func(c *deprecatedConfig) { c.version = v }
}

// WithMessage appends migration guidance to the warning.
func WithMessage(msg string) DeprecatedOption {
	return func(c *deprecatedConfig) { c.message = msg }
}

// Deprecated wraps fn so that the first call logs a deprecation warning.
// Subsequent calls run silently.
//
// Example:
//
//	oldLoad := decorate.Deprecated(log, "LoadConfig", loadConfig,
//	    decorate.WithVersion("2.0"),
//	    decorate.WithMessage("Use LoadConfigFrom instead"))
func Deprecated[T any](log *zap.SugaredLogger, name string, fn func() T, opts ...DeprecatedOption) func() T {
	var cfg deprecatedConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	msg := name + " is deprecated"
	if cfg.version != "" {
		msg += " and will be removed in version " + cfg.version
	}
	if cfg.message != "" {
		msg += ". " + cfg.message
	}

	var warn sync.Once
	logger := orNop(log)
	return func() T {
		warn.Do(func() {
			logger.Warnw(msg, "function", name)
		})
		return fn()
	}
}
