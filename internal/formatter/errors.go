package formatter

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is the sentinel wrapped by *TypeMismatchError.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrInvalidValue is the sentinel wrapped by *InvalidValueError.
	ErrInvalidValue = errors.New("invalid value")
	// ErrNoSpecialCase is the sentinel wrapped by *SpecialCaseError.
	ErrNoSpecialCase = errors.New("no special case")
)

// TypeMismatchError reports a raw value whose Go type the formatter cannot take.
type TypeMismatchError struct {
	Process  string
	Option   string
	Value    any
	Expected string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: option %q: expected %s, got %T (%v)", e.Process, e.Option, e.Expected, e.Value, e.Value)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// InvalidValueError reports a formatted value outside the allowed set.
type InvalidValueError struct {
	Process   string
	Option    string
	Value     any
	Formatted string
	Allowed   []string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: option %q: value %v (formatted %q) is not one of %q", e.Process, e.Option, e.Value, e.Formatted, e.Allowed)
}

func (e *InvalidValueError) Unwrap() error { return ErrInvalidValue }

// SpecialCaseError reports a value with no entry in the special-case table.
type SpecialCaseError struct {
	Process string
	Option  string
	Key     string
	Value   any
}

func (e *SpecialCaseError) Error() string {
	return fmt.Sprintf("%s: option %q: no special case for %v under %q", e.Process, e.Option, e.Value, e.Key)
}

func (e *SpecialCaseError) Unwrap() error { return ErrNoSpecialCase }
