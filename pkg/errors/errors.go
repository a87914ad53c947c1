// Package errors provides coded errors and input validators for npmkit.
//
// Failures that reach the user carry a machine-readable [Code] next to a
// short message meant to be printed as-is. main prints [UserMessage] and
// exits with [ExitCode]; code that branches on a failure category uses [Is].
//
// # Error Codes
//
//   - INVALID_*: bad arguments, package names, manifests, versions or config
//   - FILE_NOT_FOUND: a manifest, lockfile or config file is missing
//   - INTERNAL_ERROR: IO failures npmkit cannot recover from
//
// # Usage
//
//	if err := errors.ValidatePackageSpec(arg); err != nil {
//	    return err // INVALID_PACKAGE
//	}
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return errors.Wrap(errors.ErrCodeFileNotFound, err, "package.json not found at %s", path)
//	}
package errors

import (
	"context"
	"errors"
	"fmt"
)

// Code is a machine-readable error category.
type Code string

func (c Code) String() string { return string(c) }

const (
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidPackage  Code = "INVALID_PACKAGE"
	ErrCodeInvalidManifest Code = "INVALID_MANIFEST"
	ErrCodeInvalidVersion  Code = "INVALID_VERSION"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"

	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Exit statuses returned by [ExitCode].
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInterrupted = 130
)

// Error is a coded error. Message is what the user sees; Cause keeps the
// underlying error for logs and errors.Is.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error with a formatted message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether any *Error in err's chain has code.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// when there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message to print for err: the Message of the
// outermost *Error, else err.Error(). A nil error yields "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// ExitCode maps err to a process exit status. Cancellation is reported as
// an interrupt (the shell convention for SIGINT).
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	default:
		return ExitFailure
	}
}
