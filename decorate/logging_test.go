package decorate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return zap.New(core).Sugar(), logs
}

func TestTimed_LogsDuration(t *testing.T) {
	log, logs := observedLogger()

	Timed(log, "slow_func", func() {
		time.Sleep(5 * time.Millisecond)
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Message, "slow_func executed in")
}

func TestTimedValue_ReturnsResult(t *testing.T) {
	log, logs := observedLogger()

	got := TimedValue(log, "compute", func() string { return "done" })

	assert.Equal(t, "done", got)
	require.Len(t, logs.All(), 1)
}

func TestTimed_NilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		Timed(nil, "quiet", func() {})
	})
}

func TestDeprecated_WarnsOnce(t *testing.T) {
	log, logs := observedLogger()

	calls := 0
	old := Deprecated(log, "old_func", func() string {
		calls++
		return "old"
	})

	assert.Equal(t, "old", old())
	assert.Equal(t, "old", old())
	assert.Equal(t, 2, calls)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Message, "old_func is deprecated")
}

func TestDeprecated_WithVersion(t *testing.T) {
	log, logs := observedLogger()

	old := Deprecated(log, "old_func", func() int { return 1 }, WithVersion("2.0"))
	old()

	require.Len(t, logs.All(), 1)
	assert.Contains(t, logs.All()[0].Message, "will be removed in version 2.0")
}

func TestDeprecated_WithMessage(t *testing.T) {
	log, logs := observedLogger()

	old := Deprecated(log, "old_func", func() int { return 1 }, WithMessage("Use new_func instead"))
	old()

	require.Len(t, logs.All(), 1)
	assert.Contains(t, logs.All()[0].Message, "Use new_func instead")
}

func TestLogCalls(t *testing.T) {
	log, logs := observedLogger()

	add := LogCalls(log, "add", func(pair [2]int) int { return pair[0] + pair[1] })
	got := add([2]int{1, 2})

	assert.Equal(t, 3, got)
	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Contains(t, entries[0].Message, "calling add")
	assert.Contains(t, entries[1].Message, "add returned")
}
