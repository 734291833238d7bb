// Package errors provides error handling for fiscal.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints
//
// On top of that it defines the two error kinds the code generator reports:
// ValidationError for unusable name input and DateFormatError for birth dates
// that do not parse.
//
// Usage:
//
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	var dfe *errors.DateFormatError
//	if errors.As(err, &dfe) {
//	    // dfe.Input, dfe.Layout, dfe.Cause
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
)

// Sentinel errors for use with errors.Is().
var (
	// ErrValidation is wrapped by every ValidationError
	ErrValidation = New("invalid input")

	// ErrDateFormat is matched by every DateFormatError
	ErrDateFormat = New("invalid birth date")
)

// ValidationError reports a name field (or table entry) that cannot be used to
// build a code: empty after normalization, or reduced to nothing by particle
// stripping.
type ValidationError struct {
	Field  string // e.g. "given_name", "paternal_surname", "blocklist[3]"
	Value  string // offending value after normalization, may be empty
	Reason string // human-readable reason
}

// Error implements error interface
func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Unwrap links every ValidationError to ErrValidation
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a ValidationError with a stack attached
func NewValidationError(field, value, reason string) error {
	return WithStack(&ValidationError{Field: field, Value: value, Reason: reason})
}

// DateFormatError reports a birth date string that does not parse under the
// expected layout, or that names an impossible calendar date.
type DateFormatError struct {
	Input  string // the raw input
	Layout string // expected layout, e.g. "DD-MM-YYYY"
	Cause  error  // underlying parse error
}

// Error implements error interface
func (e *DateFormatError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("invalid birth date %q: expected %s", e.Input, e.Layout)
	}
	return fmt.Sprintf("invalid birth date %q: expected %s: %v", e.Input, e.Layout, e.Cause)
}

// Unwrap returns the original parse error
func (e *DateFormatError) Unwrap() error {
	return e.Cause
}

// Is matches ErrDateFormat so callers can test the kind without As
func (e *DateFormatError) Is(target error) bool {
	return target == ErrDateFormat
}

// NewDateFormatError creates a DateFormatError with a hint naming the layout
func NewDateFormatError(input, layout string, cause error) error {
	err := WithStack(&DateFormatError{Input: input, Layout: layout, Cause: cause})
	return WithHintf(err, "birth dates are written as %s, e.g. 15-03-2007", layout)
}

// IsValidationError checks if an error is or wraps a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return err != nil && As(err, &ve)
}

// IsDateFormatError checks if an error is or wraps a DateFormatError
func IsDateFormatError(err error) bool {
	var de *DateFormatError
	return err != nil && As(err, &de)
}
