package sparql

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned by builder methods when the given argument
// is rejected. The receiver is left unchanged in that case.
var ErrInvalidArgument = errors.New("sparql: invalid argument")

// BuildError reports a failure while generating query text. Component names
// the construct the failure originated in or passed through.
type BuildError struct {
	Component string
	Err       error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sparql: build failed in %s: %v", e.Component, e.Err)
	}
	return fmt.Sprintf("sparql: build failed in %s", e.Component)
}

// Unwrap returns the underlying cause.
func (e *BuildError) Unwrap() error { return e.Err }

// failf emits a diagnostic for the originating component and returns the
// corresponding *BuildError. Only the origin logs; parents wrap silently.
func failf(component, format string, args ...interface{}) error {
	err := fmt.Errorf(format, args...)
	pkgLogger().Error("build failed", "component", component, "error", err)
	return &BuildError{Component: component, Err: err}
}

// wrapBuild propagates a child failure upward without emitting partial text.
func wrapBuild(component string, err error) error {
	return &BuildError{Component: component, Err: err}
}

// buildSafely absorbs panics from malformed trees so callers only ever see
// a *BuildError, never a crash.
func buildSafely(component string, fn func() (string, error)) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = failf(component, "panic: %v", r)
		}
	}()
	return fn()
}
