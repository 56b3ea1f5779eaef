package decorate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoize_CachesResult(t *testing.T) {
	calls := 0
	double := Memoize(func(x int) int {
		calls++
		return x * 2
	})

	assert.Equal(t, 10, double.Call(5))
	assert.Equal(t, 10, double.Call(5))
	assert.Equal(t, 1, calls)
}

func TestMemoize_DifferentArgs(t *testing.T) {
	calls := 0
	double := Memoize(func(x int) int {
		calls++
		return x * 2
	})

	assert.Equal(t, 2, double.Call(1))
	assert.Equal(t, 4, double.Call(2))
	assert.Equal(t, 2, double.Call(1))
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, double.Len())
}

func TestMemoize_Clear(t *testing.T) {
	calls := 0
	m := Memoize(func(x int) int {
		calls++
		return x
	})

	m.Call(1)
	m.Call(1)
	assert.Equal(t, 1, calls)

	m.Clear()
	m.Call(1)
	assert.Equal(t, 2, calls)
}

func TestThrottle_SpacesCalls(t *testing.T) {
	const interval = 30 * time.Millisecond

	var times []time.Time
	throttled := Throttle(interval, func() {
		times = append(times, time.Now())
	})

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, throttled(ctx))
	}

	require.Len(t, times, 3)
	// limiter timing has some slack
	assert.GreaterOrEqual(t, times[1].Sub(times[0]), interval/2)
	assert.GreaterOrEqual(t, times[2].Sub(times[1]), interval/2)
}

func TestThrottle_ContextCanceled(t *testing.T) {
	throttled := Throttle(time.Hour, func() {})

	ctx := context.Background()
	require.NoError(t, throttled(ctx))

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	assert.Error(t, throttled(canceled))
}

func TestThrottleValue(t *testing.T) {
	throttled := ThrottleValue(time.Millisecond, func() (int, error) {
		return 42, nil
	})

	got, err := throttled(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestOnce(t *testing.T) {
	calls := 0
	init := Once(func() int {
		calls++
		return calls
	})

	assert.Equal(t, 1, init())
	assert.Equal(t, 1, init())
	assert.Equal(t, 1, init())
	assert.Equal(t, 1, calls)
}

func TestLazy_FirstConstructionWins(t *testing.T) {
	constructed := 0
	lazy := NewLazy(func() *int {
		constructed++
		v := constructed
		return &v
	})

	a := lazy.Get()
	b := lazy.Get()

	assert.Same(t, a, b)
	assert.Equal(t, 1, *a)
	assert.Equal(t, 1, constructed)
}

func TestCatchPanic_ReturnsDefault(t *testing.T) {
	got := CatchPanic("default", func() string {
		panic("boom")
	})

	assert.Equal(t, "default", got)
}

func TestCatchPanic_NoPanic(t *testing.T) {
	got := CatchPanic("default", func() string {
		return "fine"
	})

	assert.Equal(t, "fine", got)
}

func TestCatchPanic_OnPanicCallback(t *testing.T) {
	var seen []any
	CatchPanic(0, func() int {
		panic("test error")
	}, WithOnPanic(func(r any) { seen = append(seen, r) }))

	assert.Equal(t, []any{"test error"}, seen)
}

func TestCatchPanic_CatchIfRejects(t *testing.T) {
	assert.Panics(t, func() {
		CatchPanic(0, func() int {
			panic("unexpected")
		}, WithCatchIf(func(r any) bool { return r == "expected" }))
	})

	got := CatchPanic(7, func() int {
		panic("expected")
	}, WithCatchIf(func(r any) bool { return r == "expected" }))
	assert.Equal(t, 7, got)
}

func TestValidated(t *testing.T) {
	process := Validated(func(x int) int { return x * 2 },
		Check[int]{Param: "x", Valid: func(x int) bool { return x > 0 }})

	got, err := process(5)
	require.NoError(t, err)
	assert.Equal(t, 10, got)

	_, err = process(-5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid value for parameter "x"`)
}

func TestValidated_MultipleChecks(t *testing.T) {
	type args struct {
		X    int
		Name string
	}
	greet := Validated(func(a args) string { return a.Name },
		Check[args]{Param: "x", Valid: func(a args) bool { return a.X > 0 }},
		Check[args]{Param: "name", Valid: func(a args) bool { return a.Name != "" }})

	got, err := greet(args{X: 5, Name: "World"})
	require.NoError(t, err)
	assert.Equal(t, "World", got)

	_, err = greet(args{X: -1, Name: "World"})
	assert.Contains(t, err.Error(), `"x"`)

	_, err = greet(args{X: 5, Name: ""})
	assert.Contains(t, err.Error(), `"name"`)
}
