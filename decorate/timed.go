package decorate

import (
	"time"

	"go.uber.org/zap"
)

// Timed runs fn and logs how long it took.
func Timed(log *zap.SugaredLogger, name string, fn func()) {
	TimedValue(log, name, func() struct{} {
		fn()
		return struct{}{}
	})
}

// TimedValue runs fn, logs how long it took and returns its result.
//
// Example:
//
//	users := decorate.TimedValue(log, "load_users", loadUsers)
func TimedValue[T any](log *zap.SugaredLogger, name string, fn func() T) T {
	start := time.Now()
	result := fn()
	elapsed := time.Since(start)
	orNop(log).Infow(name+" executed in "+elapsed.String(),
		"function", name,
		"duration", elapsed,
	)
	return result
}
