package response

import (
	"errors"
)

type Error struct {
	Code  int
	Err   error
	Cause error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Detail returns the underlying cause for operator diagnosis, falling back
// to the public message when no cause was attached.
func (e *Error) Detail() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Err.Error()
}

func NewError(code int, err string) error {
	return &Error{Code: code, Err: errors.New(err)}
}

// WithCause attaches an underlying error to a coded error without changing
// its code or public message, so errors.Is against the original still holds.
func WithCause(err error, cause error) error {
	var respErr *Error
	if !errors.As(err, &respErr) {
		return err
	}
	return &Error{Code: respErr.Code, Err: respErr.Err, Cause: cause}
}
