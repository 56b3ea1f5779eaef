// Package decorate wraps plain functions with common cross-cutting
// behaviors: retry with backoff, memoization, call timing, throttling,
// one-shot execution, deprecation warnings, call logging, panic recovery
// and argument validation.
//
// Wrappers are standalone generics with no shared runtime. Wrappers that
// log take a *zap.SugaredLogger; passing nil disables logging.
package decorate

import "go.uber.org/zap"

func orNop(log *zap.SugaredLogger) *zap.SugaredLogger {
	if log == nil {
		return zap.NewNop().Sugar()
	}
	return log
}
