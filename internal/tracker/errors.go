// ABOUTME: Validation errors returned when a sensor package cannot be read.
// ABOUTME: Sentinels support errors.Is; PackageError carries the details.
package tracker

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the root of every package validation error.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrUnknownWorkoutType = fmt.Errorf("%w: unknown workout type", ErrInvalidArgument)
	ErrInvalidPackage     = fmt.Errorf("%w: invalid package", ErrInvalidArgument)
)

// PackageError describes why a package was rejected.
type PackageError struct {
	Code   string
	Want   int     // expected value count, 0 when the code is unknown
	Got    int     // received value count
	Field  string  // offending field, if a single value was wrong
	Value  float64 // offending value
	Reason string  // what Value violates, e.g. "must be a whole number"
	Err    error
}

func (e *PackageError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnknownWorkoutType):
		return fmt.Sprintf("unknown workout type %q", e.Code)
	case e.Field != "":
		return fmt.Sprintf("invalid package for %s: %s %s, got %g", e.Code, e.Field, e.Reason, e.Value)
	default:
		return fmt.Sprintf("invalid package for %s: want %d values, got %d", e.Code, e.Want, e.Got)
	}
}

func (e *PackageError) Unwrap() error {
	return e.Err
}
