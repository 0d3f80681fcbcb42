package errors

import (
	"errors"
	"fmt"
)

// Sentinels matched with Is across package boundaries.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrServiceUnavailable = errors.New("service unavailable")
)

// Codes name the stage that failed: loading media, parsing a feed or opening a link.
const (
	CodeFetch       = "fetch"
	CodeDecode      = "decode"
	CodeResolve     = "resolve"
	CodeBadResult   = "bad_result"
	CodeUnsupported = "unsupported"
)

// Error carries an optional Code next to the wrapped cause.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(message string) error {
	return &Error{Message: message}
}

// Wrap returns nil for a nil err.
func Wrap(err error, message string) error {
	return WrapWithCode(err, "", message)
}

// WrapWithCode returns nil for a nil err.
func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Err: err}
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode returns the first non-empty code in err's chain, or "".
func GetCode(err error) string {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return ""
		}
		if e.Code != "" {
			return e.Code
		}
		err = e.Err
	}
	return ""
}

func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
