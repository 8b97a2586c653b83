// Package yaerrors provides a coded error type with wrapping and tracing.
// Every error carries a Code which is translated to text by Code.String, so the
// caller can report a failure either as a number or as a description.
package yaerrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/YaCodeDev/GoYaRSADemo/yalogger"
)

// Error is the error type returned by every package of this module.
// It implements the standard error interface and keeps a traceback of the
// messages added while the error travelled up the call stack.
type Error interface {
	error
	Wrap(msg string) Error
	WrapWithLog(msg string, log yalogger.Logger) Error
	Code() Code
	Unwrap() error
	UnwrapLastError() string
}

const (
	codeSeparate  = " | "
	errorSeparate = " -> "
)

type yaError struct {
	code      Code
	cause     error
	traceback string
}

// FromError wraps cause with a code and a message.
func FromError(code Code, cause error, wrap string) Error {
	return &yaError{
		code:      code,
		cause:     cause,
		traceback: fmt.Sprintf("%s: %v", wrap, cause),
	}
}

// FromErrorWithLog is FromError that also logs the message.
func FromErrorWithLog(code Code, cause error, wrap string, log yalogger.Logger) Error {
	msg := fmt.Sprintf("%s: %v", wrap, cause)
	log.Error(msg)

	return &yaError{
		code:      code,
		cause:     cause,
		traceback: msg,
	}
}

// FromString creates a new Error from a message.
func FromString(code Code, msg string) Error {
	return &yaError{
		code:      code,
		cause:     errors.New(msg), //nolint:err113
		traceback: msg,
	}
}

// FromStringWithLog is FromString that also logs the message.
func FromStringWithLog(code Code, msg string, log yalogger.Logger) Error {
	log.Error(msg)

	return FromString(code, msg)
}

// Error returns the hex code and the traceback, e.g. "-0x0011 | load key -> open /public.der: ...".
func (e *yaError) Error() string {
	safetyCheck(&e)

	return e.code.Hex() + codeSeparate + e.traceback
}

// Unwrap returns the original error that caused this error.
func (e *yaError) Unwrap() error {
	safetyCheck(&e)

	return e.cause
}

// UnwrapLastError returns the outermost message of the traceback.
func (e *yaError) UnwrapLastError() string {
	safetyCheck(&e)

	end := strings.Index(e.traceback, errorSeparate)
	if end == -1 {
		return e.traceback
	}

	return e.traceback[:end]
}

// Wrap adds a message to the traceback.
// Call it each time the error is returned to a higher level in the call stack.
func (e *yaError) Wrap(msg string) Error {
	safetyCheck(&e)
	e.traceback = fmt.Sprintf("%s%s%s", msg, errorSeparate, e.traceback)

	return e
}

// WrapWithLog is Wrap that also logs the message.
func (e *yaError) WrapWithLog(msg string, log yalogger.Logger) Error {
	log.Error(msg)

	return e.Wrap(msg)
}

// Code returns the failure code.
func (e *yaError) Code() Code {
	safetyCheck(&e)

	return e.code
}

// CodeOf extracts the code from any error. A nil error is CodeOK, an error
// that does not come from this package is CodeUnknown.
func CodeOf(err error) Code {
	if err == nil {
		return CodeOK
	}

	var coded Error
	if errors.As(err, &coded) {
		return coded.Code()
	}

	return CodeUnknown
}

// safetyCheck replaces a nil receiver with a teapot error instead of panicking.
func safetyCheck(err **yaError) {
	if *err == nil {
		*err = &yaError{
			code:      CodeTeapot,
			cause:     ErrTeapot,
			traceback: ErrTeapot.Error(),
		}
	}
}
