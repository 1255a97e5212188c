// core/engine/errors.go
package engine

import "fmt"

// ValidationError is fatal to a single site's computation. A batch
// caller treats it as that site's failure and keeps going.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
