package geo

import (
	"errors"
	"fmt"
)

// ErrEmptyPolygon is returned when a calculation needs at least one point.
var ErrEmptyPolygon = errors.New("polygon has no points")

// ParseError reports malformed polygon text.
type ParseError struct {
	Err   error  // Underlying error (optional)
	Token string // Offending point or coordinate text
	Index int    // Zero-based point index, -1 when not tied to a point
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := "invalid polygon"
	if e.Index >= 0 {
		msg = fmt.Sprintf("invalid polygon point %d %q", e.Index, e.Token)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ArithmeticError reports a calculation that has no finite result,
// e.g. the centroid of a polygon with zero signed area.
type ArithmeticError struct {
	Op      string
	Message string
}

// Error implements the error interface.
func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// NotSupportedError reports a reserved feature that is not implemented.
type NotSupportedError struct {
	Feature string
}

// Error implements the error interface.
func (e *NotSupportedError) Error() string {
	return e.Feature + " is not implemented yet"
}
