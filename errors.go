package mimesniff

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrFallbackNotLast = errors.New("plain-text fallback must be the last signature")
	ErrNilReader       = errors.New("nil reader")
)

// DetectError records an error and the operation that caused it
type DetectError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *DetectError) Error() string {
	return fmt.Sprintf("mimesniff %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *DetectError) Unwrap() error {
	return e.Err
}

// IsReadError reports whether err was raised while reading input for
// detection.
func IsReadError(err error) bool {
	var detectErr *DetectError
	if errors.As(err, &detectErr) {
		return detectErr.Op == "read"
	}
	return false
}
