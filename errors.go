// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpretty

import (
	"errors"
	"fmt"
)

var (
	// Err is the base of every error reported for malformed input.
	Err = errors.New("malformed JSON")

	ErrInvalidStart = fmt.Errorf("invalid start (%w)", Err)
	ErrSingleQuote  = fmt.Errorf("forbidden quoting (%w)", Err)
	ErrKeyword      = fmt.Errorf("malformed keyword (%w)", Err)
	ErrNumber       = fmt.Errorf("malformed number (%w)", Err)
	ErrUnterminated = fmt.Errorf("unterminated string (%w)", Err)
	ErrString       = fmt.Errorf("malformed string (%w)", Err)
	ErrImbalance    = fmt.Errorf("structural imbalance (%w)", Err)
	ErrUnexpected   = fmt.Errorf("unexpected token (%w)", Err)
)

// ErrTabStop is reported by a Printer configured with a negative tab stop.
var ErrTabStop = errors.New("tab stop must be non-negative")

// SyntaxError is the concrete type of errors reported by the scanner and the
// printer. Use errors.Is with one of the Err* values to find the category of
// the failure; an I/O error from the input unwraps to that error instead.
type SyntaxError struct {
	Location LineCol
	Offset   int
	Message  string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
