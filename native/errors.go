package native

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedPlatform is returned when the host operating system is
	// not one of the known platform families.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrNotFound is matched by every NotFoundError.
	ErrNotFound = errors.New("native function not found")

	// ErrInvalidRequest reports a malformed binding request or manifest entry.
	ErrInvalidRequest = errors.New("invalid binding request")
)

// UnsupportedPlatformError carries the GOOS value that could not be mapped.
type UnsupportedPlatformError struct {
	GOOS string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform: GOOS=%s", e.GOOS)
}

func (e *UnsupportedPlatformError) Is(target error) bool {
	return target == ErrUnsupportedPlatform
}

// NotFoundError is returned for a required binding whose symbol could not be
// resolved from any of its candidate libraries.
type NotFoundError struct {
	Libraries []string
	Symbol    string

	// LoadErrors holds the loader failure for each candidate that did not
	// load. It is empty when a library loaded but lacked the symbol.
	LoadErrors []error
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("failed to load function %s from one of the following libraries: %s",
		e.Symbol, strings.Join(e.Libraries, " "))
	if len(e.LoadErrors) > 0 {
		msg += " (" + errors.Join(e.LoadErrors...).Error() + ")"
	}
	return msg
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func (e *NotFoundError) Unwrap() []error {
	return e.LoadErrors
}

// LoadError records why a single library name failed to load.
type LoadError struct {
	Library string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Library, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func invalidRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}
