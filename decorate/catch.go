package decorate

type catchConfig struct {
	onPanic func(recovered any)
	catchIf func(recovered any) bool
}

// CatchOption customizes panic recovery.
type CatchOption func(*catchConfig)

// WithOnPanic registers a callback invoked with the recovered value.
func WithOnPanic(fn func(recovered any)) CatchOption {
	return func(c *catchConfig) { c.onPanic = fn }
}

// WithCatchIf restricts recovery to values the predicate accepts. Values
// it rejects propagate as a fresh panic.
func WithCatchIf(pred func(recovered any) bool) CatchOption {
	return func(c *catchConfig) { c.catchIf = pred }
}

// CatchPanic runs fn and converts a panic into the given default value.
func CatchPanic[T any](def T, fn func() T, opts ...CatchOption) (result T) {
	var cfg catchConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if cfg.catchIf != nil && !cfg.catchIf(r) {
			panic(r)
		}
		if cfg.onPanic != nil {
			cfg.onPanic(r)
		}
		result = def
	}()
	return fn()
}
