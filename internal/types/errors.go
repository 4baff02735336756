package types

import (
	"errors"
	"fmt"
)

// ErrorCode is a namespaced code identifying the kind of failure.
type ErrorCode string

// Configuration error codes
const (
	CONFIG_LOAD_FAILED       ErrorCode = "CONFIG_LOAD_FAILED"
	CONFIG_PARSE_FAILED      ErrorCode = "CONFIG_PARSE_FAILED"
	CONFIG_VALIDATION_FAILED ErrorCode = "CONFIG_VALIDATION_FAILED"
)

// Credential error codes
const (
	CREDENTIAL_UNAVAILABLE ErrorCode = "CREDENTIAL_UNAVAILABLE"
	CREDENTIAL_INVALID     ErrorCode = "CREDENTIAL_INVALID"
)

// Signing error codes
const (
	SIGNING_FAILED ErrorCode = "SIGNING_FAILED"
)

// DemoError is a structured error with an error code, message and optional cause.
type DemoError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
// Format: "[CODE] message" or "[CODE] message: cause" if cause exists.
func (e *DemoError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *DemoError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a DemoError carrying the same code.
func (e *DemoError) Is(target error) bool {
	var demoErr *DemoError
	if errors.As(target, &demoErr) {
		return e.Code == demoErr.Code
	}
	return false
}

// NewError creates a new DemoError.
func NewError(code ErrorCode, message string) *DemoError {
	return &DemoError{
		Code:    code,
		Message: message,
	}
}

// WrapError creates a new DemoError wrapping cause.
func WrapError(code ErrorCode, message string, cause error) *DemoError {
	return &DemoError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf returns the code of the first DemoError in err's chain, or "" if none.
func CodeOf(err error) ErrorCode {
	var demoErr *DemoError
	if errors.As(err, &demoErr) {
		return demoErr.Code
	}
	return ""
}

// Codes returns the codes of every DemoError in err's chain, outermost first.
func Codes(err error) []ErrorCode {
	var codes []ErrorCode
	for err != nil {
		var demoErr *DemoError
		if !errors.As(err, &demoErr) {
			break
		}
		codes = append(codes, demoErr.Code)
		err = demoErr.Cause
	}
	return codes
}
