package objstore

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotFound is returned when a key has no file behind it.
	ErrNotFound = errors.New("key not found")

	// ErrUnsupportedType is returned by Write when the value is not one of
	// bytes, text, or JSON-serializable structured data.
	ErrUnsupportedType = errors.New("unsupported value type")

	// ErrInvalidEncoding is returned by text reads when the stored bytes are
	// not valid UTF-8.
	ErrInvalidEncoding = errors.New("contents are not valid UTF-8")

	// ErrUnauthorized is returned when the filesystem denies an operation.
	ErrUnauthorized = errors.New("unauthorized filesystem access")

	// ErrIsDirectory is returned by Delete when the key resolves to a
	// directory instead of a regular file.
	ErrIsDirectory = errors.New("key refers to a directory")
)

// ErrorWithContext adds additional context to errors for better debugging and logging
type ErrorWithContext struct {
	Err     error
	Context map[string]interface{}
}

func (e *ErrorWithContext) Error() string {
	if len(e.Context) == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v (context: %+v)", e.Err, e.Context)
}

func (e *ErrorWithContext) Unwrap() error {
	return e.Err
}

// WithContext adds context to an error
func WithContext(err error, context map[string]interface{}) error {
	if err == nil {
		return nil
	}
	return &ErrorWithContext{
		Err:     err,
		Context: context,
	}
}

// Common error checking helpers

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnsupportedType checks if an error came from writing an unsupported value
func IsUnsupportedType(err error) bool {
	return errors.Is(err, ErrUnsupportedType)
}

// IsInvalidEncoding checks if an error came from reading non-UTF-8 content as text
func IsInvalidEncoding(err error) bool {
	return errors.Is(err, ErrInvalidEncoding)
}

// IsDirectoryError checks if an error came from deleting a key that is a directory
func IsDirectoryError(err error) bool {
	return errors.Is(err, ErrIsDirectory)
}
