package datetime

import (
	"errors"
	"fmt"
)

/***** ERROR ***********************************/

// Sentinel errors for broad classification. All failures reported by this
// package unwrap to one of these, so callers can branch with errors.Is.
var (
	ErrInvalidDate      = errors.New("invalid calendar date")
	ErrInvalidDayOfYear = errors.New("invalid day of year")
	ErrParse            = errors.New("parse failure")
	ErrOverflow         = errors.New("value out of range")
)

// ConversionError wraps a failure with the operation that detected it.
type ConversionError struct {
	Op  string
	Err error
}

func (e *ConversionError) Error() string {
	if e == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ConversionError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

/***********************************************/

func convErr(op string, sentinel error, format string, args ...any) error {
	return &ConversionError{Op: op, Err: fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))}
}
