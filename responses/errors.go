package responses

import (
	"errors"
	"fmt"
)

var (
	// ErrNotNumeric is returned when a numeric field arrives as a string that
	// does not parse as a number.
	ErrNotNumeric = errors.New("value is not numeric")
	// ErrUnknownHealthCheckShape is returned when a health check failure body
	// carries neither alarms nor queues.
	ErrUnknownHealthCheckShape = errors.New("health check failure has neither alarms nor queues")
)

// DecodeError describes a payload that could not be decoded into Type.
// Field and Offset are filled in when the codec can locate the problem.
type DecodeError struct {
	Type   string
	Field  string
	Offset int64
	Err    error
}

func (e *DecodeError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("decode %s: field %q (offset %d): %v", e.Type, e.Field, e.Offset, e.Err)
	case e.Offset > 0:
		return fmt.Sprintf("decode %s: offset %d: %v", e.Type, e.Offset, e.Err)
	default:
		return fmt.Sprintf("decode %s: %v", e.Type, e.Err)
	}
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
