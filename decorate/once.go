package decorate

import "sync"

// Once returns a function that runs fn on the first call and returns the
// same result on every call after that.
func Once[T any](fn func() T) func() T {
	return sync.OnceValue(fn)
}

// Lazy holds a value constructed on first access. The first construction
// wins; later Get calls return the same instance. Safe for concurrent use.
type Lazy[T any] struct {
	once sync.Once
	new  func() T
	v    T
}

// NewLazy returns a Lazy that builds its value with construct.
func NewLazy[T any](construct func() T) *Lazy[T] {
	return &Lazy[T]{new: construct}
}

// Get returns the value, constructing it on first call.
func (l *Lazy[T]) Get() T {
	l.once.Do(func() {
		l.v = l.new()
	})
	return l.v
}
