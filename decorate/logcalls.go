package decorate

import "go.uber.org/zap"

// LogCalls wraps fn so that each invocation logs the argument going in and
// the result coming out.
func LogCalls[A, R any](log *zap.SugaredLogger, name string, fn func(A) R) func(A) R {
	logger := orNop(log)
	return func(arg A) R {
		logger.Infow("calling "+name, "function", name, "arg", arg)
		result := fn(arg)
		logger.Infow(name+" returned", "function", name, "result", result)
		return result
	}
}
