package vector

import "errors"

// Failure kinds raised by the bounds-checked operations. Violations are
// reported by panicking with an error wrapping one of these, so recovered
// values classify with errors.Is.
var (
	// ErrInvalidArgument indicates malformed input: a negative size handed
	// to a constructor or Resize, an index outside the live region handed
	// to At, or mismatched operand sizes in Mul/Div.
	ErrInvalidArgument = errors.New("vector: invalid argument")

	// ErrOutOfRange indicates a structurally invalid position: Insert past
	// the live region, or Front/Back on an empty vector.
	ErrOutOfRange = errors.New("vector: out of range")
)

// Error carries a human-readable message through a panic/recover path. It
// is raised only by Get on out-of-range access and is deliberately a
// different kind from the ErrInvalidArgument wrap used by At, keeping the
// two access paths distinguishable to callers (errors.As for Error,
// errors.Is for the sentinels).
type Error struct {
	msg string
}

// NewError constructs an Error carrying msg. An empty message is valid;
// SetMessage can fill it in later.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// Error returns the carried message as a plain string.
func (e *Error) Error() string {
	return e.msg
}

// Message returns the carried message.
func (e *Error) Message() string {
	return e.msg
}

// SetMessage replaces the carried message.
func (e *Error) SetMessage(msg string) {
	e.msg = msg
}
