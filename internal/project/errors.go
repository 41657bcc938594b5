package project

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNotFound        = errors.New("not found")
	ErrInvalidFormat   = errors.New("invalid format")
)

// Error wraps one of the sentinel errors with a user-facing message.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Kind }

func outOfRange(noun string, index, size int) error {
	if size == 0 {
		return &Error{Kind: ErrIndexOutOfRange, Msg: fmt.Sprintf("There are no %ss yet, so %s %d does not exist.", noun, noun, index)}
	}
	return &Error{Kind: ErrIndexOutOfRange, Msg: fmt.Sprintf("The %s index %d is invalid, expected 1 to %d.", noun, index, size)}
}

func notFound(noun, id string) error {
	return &Error{Kind: ErrNotFound, Msg: fmt.Sprintf("Unable to find %s %s.", noun, id)}
}

func invalidf(format string, args ...any) error {
	return &Error{Kind: ErrInvalidFormat, Msg: fmt.Sprintf(format, args...)}
}
