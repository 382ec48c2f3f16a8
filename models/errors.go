package models

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidParameter     = errors.New("invalid parameter")
	ErrStoreUnavailable     = errors.New("store unavailable")
	ErrConsistencyViolation = errors.New("count and page disagree")
	ErrNotFound             = errors.New("not found")
)

// ParameterError names the offending field. It matches ErrInvalidParameter
// under errors.Is.
type ParameterError struct {
	Field  string
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidParameter, e.Field, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

func InvalidParameter(field, format string, args ...interface{}) error {
	return &ParameterError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
