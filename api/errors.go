// Package api
// Author: xitren
// License: Apache-2.0
//
// Common error types for the dmaring library.
//
// The core ring package never fails observably; these errors serve the
// descriptor-level surfaces (dma, pool) only.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrInvalidArgument   = fmt.Errorf("invalid argument")
	ErrResourceExhausted = fmt.Errorf("resource exhausted")
	ErrNoPending         = fmt.Errorf("no pending transfer")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeResourceExhausted
	ErrCodeNoPending
	ErrCodeInternal
)

// Error is a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps the code to its sentinel, so errors.Is works on
// structured errors.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	case ErrCodeResourceExhausted:
		return ErrResourceExhausted
	case ErrCodeNoPending:
		return ErrNoPending
	}
	return nil
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
