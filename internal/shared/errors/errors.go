package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeNotFound indicates a resource was not found
	ErrorTypeNotFound ErrorType = "not_found"
	// ErrorTypeValidation indicates invalid input data
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeConflict indicates a conflict with existing data
	ErrorTypeConflict ErrorType = "conflict"
	// ErrorTypeUnauthorized indicates authentication failure
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	// ErrorTypeForbidden indicates insufficient permissions
	ErrorTypeForbidden ErrorType = "forbidden"
	// ErrorTypeInternal indicates an internal server error
	ErrorTypeInternal ErrorType = "internal"
	// ErrorTypeMethodNotAllowed indicates an unsupported HTTP method
	ErrorTypeMethodNotAllowed ErrorType = "method_not_allowed"
	// ErrorTypeExternal indicates an external service error
	ErrorTypeExternal ErrorType = "external"
)

// AppError carries a category alongside the message so the response layer
// can pick a status code without inspecting strings.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func newError(t ErrorType, message string, err error) error {
	return &AppError{Type: t, Message: message, Err: err}
}

func NotFound(message string) error {
	return newError(ErrorTypeNotFound, message, nil)
}

func NotFoundf(format string, args ...any) error {
	return newError(ErrorTypeNotFound, fmt.Sprintf(format, args...), nil)
}

func Validation(message string) error {
	return newError(ErrorTypeValidation, message, nil)
}

func Validationf(format string, args ...any) error {
	return newError(ErrorTypeValidation, fmt.Sprintf(format, args...), nil)
}

// WrapValidation keeps the parse error as the cause.
func WrapValidation(message string, err error) error {
	return newError(ErrorTypeValidation, message, err)
}

func Conflictf(format string, args ...any) error {
	return newError(ErrorTypeConflict, fmt.Sprintf(format, args...), nil)
}

func Internal(message string) error {
	return newError(ErrorTypeInternal, message, nil)
}

func WrapInternal(message string, err error) error {
	return newError(ErrorTypeInternal, message, err)
}

func Unauthorized(message string) error {
	return newError(ErrorTypeUnauthorized, message, nil)
}

func Forbidden(message string) error {
	return newError(ErrorTypeForbidden, message, nil)
}

func MethodNotAllowed(method string) error {
	return newError(ErrorTypeMethodNotAllowed, fmt.Sprintf("method %s not allowed", method), nil)
}

func External(message string) error {
	return newError(ErrorTypeExternal, message, nil)
}

func WrapExternal(message string, err error) error {
	return newError(ErrorTypeExternal, message, err)
}

// GetType returns the category of the outermost AppError in err's chain.
// Plain errors are internal.
func GetType(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// Is reports whether err carries the given category.
func Is(err error, t ErrorType) bool {
	return err != nil && GetType(err) == t
}
