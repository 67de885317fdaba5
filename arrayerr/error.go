// Package arrayerr provides the error value returned by fixedarray and its
// allocator. Errors compare by message: two values are equal iff their
// messages are equal.
package arrayerr

import (
	"errors"
	"fmt"
)

// Error carries a human-readable message. It is comparable, so == and
// errors.Is both compare messages.
type Error struct {
	msg string
}

// New returns an Error with the given message.
func New(msg string) Error {
	return Error{msg: msg}
}

// Newf formats according to a format specifier and returns an Error.
func Newf(format string, args ...any) Error {
	return Error{msg: fmt.Sprintf(format, args...)}
}

func (e Error) Error() string {
	return e.msg
}

// Msg returns the message.
func (e Error) Msg() string {
	return e.msg
}

// Matches reports whether the message equals msg.
func (e Error) Matches(msg string) bool {
	return e.msg == msg
}

// Is lets errors.Is match any Error with the same message, value or pointer.
func (e Error) Is(target error) bool {
	switch t := target.(type) {
	case Error:
		return e.msg == t.msg
	case *Error:
		return t != nil && e.msg == t.msg
	}
	return false
}

// From converts err into an Error. An Error already in the chain is
// returned unchanged; anything else keeps only its message.
func From(err error) Error {
	if err == nil {
		return Error{}
	}
	var e Error
	if errors.As(err, &e) {
		return e
	}
	return Error{msg: err.Error()}
}
