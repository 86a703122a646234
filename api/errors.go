// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for arrayvec.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library.
var (
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrInvalidArgument  = errors.New("invalid argument")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeCapacityExceeded
	ErrCodeIndexOutOfBounds
	ErrCodeInvalidArgument
	ErrCodeInternal
)

func (c ErrorCode) String() string {
	switch c {
	case ErrCodeOK:
		return "ok"
	case ErrCodeCapacityExceeded:
		return "capacity_exceeded"
	case ErrCodeIndexOutOfBounds:
		return "index_out_of_bounds"
	case ErrCodeInvalidArgument:
		return "invalid_argument"
	default:
		return "internal"
	}
}

// Error represents a structured error with code and context.
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

// Unwrap maps the code onto the matching sentinel so errors.Is works
// against structured and plain errors alike.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeCapacityExceeded:
		return ErrCapacityExceeded
	case ErrCodeIndexOutOfBounds:
		return ErrIndexOutOfBounds
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
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
