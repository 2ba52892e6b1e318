package errors

import (
	stderrors "errors"
	"fmt"
)

type AppError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Cause }

// Constructors
func New(code Code, message string) error {
	return &AppError{Code: code, Message: message}
}

func Wrap(code Code, message string, cause error) error {
	return &AppError{Code: code, Message: message, Cause: cause}
}

func InvalidArg(msg string) error {
	return New(CodeInvalidArgument, msg)
}

func NotFound(msg string) error {
	return New(CodeNotFound, msg)
}

func AlreadyExists(msg string) error {
	return New(CodeAlreadyExists, msg)
}

func Internal(msg string) error {
	return New(CodeInternal, msg)
}

func FailedPrecondition(msg string) error {
	return New(CodeFailedPrecondition, msg)
}

func Integrity(msg string) error {
	return New(CodeIntegrityViolation, msg)
}

func Aborted(msg string) error {
	return New(CodeAborted, msg)
}

// CodeOf extracts the code from anywhere in the chain, CodeUnknown otherwise.
func CodeOf(err error) Code {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// Retryable reports whether the underlying engine aborted the operation
// without applying it, so the caller may safely re-run it.
func Retryable(err error) bool {
	return CodeOf(err) == CodeAborted
}

// IsIntegrity reports a security-relevant violation that must be surfaced
// to the application layer, never swallowed.
func IsIntegrity(err error) bool {
	return CodeOf(err) == CodeIntegrityViolation
}
