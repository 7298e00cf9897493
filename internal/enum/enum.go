// Package enum holds the lookup failure shared by the closed enumerations in
// tutorlink and a generic name lookup over a fixed value list.
package enum

import "fmt"

// Error signals that an enumeration lookup found no match. The message is
// always set; the cause may be nil.
type Error struct {
	msg   string
	cause error
}

// NewError returns an Error with the given message and optional cause.
func NewError(msg string, cause error) *Error {
	return &Error{msg: msg, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

// Message returns the message the error was created with.
func (e *Error) Message() string { return e.msg }

func (e *Error) Unwrap() error { return e.cause }

// Lookup returns the member of values whose name equals name.
// Returns *Error naming the enumeration when nothing matches.
func Lookup[T any](enumName, name string, values []T, nameOf func(T) string) (T, error) {
	for _, v := range values {
		if nameOf(v) == name {
			return v, nil
		}
	}
	var zero T
	return zero, NewError(fmt.Sprintf("no %s named %q", enumName, name), nil)
}
