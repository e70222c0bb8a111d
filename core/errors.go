package core

import (
	"errors"
	"fmt"
	"os"
)

// General error codes
const (
	NOERROR   int = 0
	EMISSING  int = 122 // glyph, font or resource does not exist
	EINVALID  int = 123 // validation failed
	EFORMAT   int = 124 // font data not parsable
	EINTERNAL int = 125 // internal error
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid"
	case EFORMAT:
		return "malformed font data"
	case EINTERNAL:
		return "internal error"
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
// Boundary packages (workspace, importer) wrap their failures in AppErrors;
// the editing core itself signals expected degeneracies with comma-ok
// returns instead.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type appError struct {
	error
	code int
	msg  string
}

func (e appError) Unwrap() error {
	return e.error
}

func (e appError) Error() string {
	return fmt.Sprintf("[%d] %v", e.code, e.error)
}

func (e appError) ErrorCode() int {
	return e.code
}

func (e appError) UserMessage() string {
	return e.msg
}

var _ AppError = appError{}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return appError{
		errors.New(errorText(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}

// WrapError wraps an error into an AppError, featuring an error code and
// a user message.
// If err is nil, an error denoting NOERROR is returned.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	msg := fmt.Sprintf(format, v...)
	return appError{err, code, msg}
}

// Code returns the status code associated with an error.
// If no status code is found, it returns EINTERNAL.
// If err is nil, NOERROR is returned.
func Code(err error) (code int) {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error.
// If no message is attached, the message for the error's code is returned.
// If err is nil, it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// UserError prints an error message intended for users of an application.
func UserError(err error) {
	if e, ok := err.(AppError); ok {
		fmt.Fprintf(os.Stderr, "[%d] %s\n", e.ErrorCode(), e.UserMessage())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}
