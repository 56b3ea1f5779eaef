package decorate

import "fmt"

// Check names a validation rule for a function argument.
type Check[A any] struct {
	Param string
	Valid func(A) bool
}

// Validated wraps fn so that the argument is checked before the call. The
// first failing check aborts with an error naming the parameter.
//
// Example:
//
//	process := decorate.Validated(double,
//	    decorate.Check[int]{Param: "x", Valid: func(x int) bool { return x > 0 }})
func Validated[A, R any](fn func(A) R, checks ...Check[A]) func(A) (R, error) {
	return func(arg A) (R, error) {
		for _, check := range checks {
			if !check.Valid(arg) {
				var zero R
				return zero, fmt.Errorf("invalid value for parameter %q: %v", check.Param, arg)
			}
		}
		return fn(arg), nil
	}
}
