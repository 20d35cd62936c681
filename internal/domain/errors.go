package domain

import (
	"errors"
	"net/http"
)

// Error codes for business logic errors.
const (
	CodeNotFound      = 1
	CodeAlreadyExists = 2
	CodeValidation    = 3
	CodeInternal      = 4
	CodeNoChanges     = 5
	CodeConfig        = 6
)

// AppError represents a business logic error with a code, message, and optional wrapped error.
// Fields carries per-field details for validation failures.
type AppError struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Err     error             `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the wrapped error for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined business errors.
//
// To check whether an error matches one of these categories, use the
// corresponding helper function (IsNotFound, IsAlreadyExists, etc.)
// instead of errors.Is. The helpers compare error codes through errors.As,
// so they match freshly constructed and wrapped instances as well.
var (
	ErrNotFound          = &AppError{Code: CodeNotFound, Message: "resource not found"}
	ErrAlreadyExists     = &AppError{Code: CodeAlreadyExists, Message: "already exists"}
	ErrValidation        = &AppError{Code: CodeValidation, Message: "validation error"}
	ErrInternal          = &AppError{Code: CodeInternal, Message: "database operation failed"}
	ErrNoChangesToUpdate = &AppError{Code: CodeNoChanges, Message: "no valid fields provided for update"}
	ErrConfig            = &AppError{Code: CodeConfig, Message: "configuration error"}
)

// NewAppError creates a new AppError with the given code, message, and wrapped error.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// AlreadyExists reports a unique constraint violation for the named resource,
// e.g. AlreadyExists("Customer", err) yields "Customer already exists".
func AlreadyExists(resource string, err error) *AppError {
	return NewAppError(CodeAlreadyExists, resource+" already exists", err)
}

// DatabaseError wraps a storage failure. The message is generic; the cause is
// only reachable through Unwrap and is meant for server-side logs.
func DatabaseError(err error) *AppError {
	return NewAppError(CodeInternal, ErrInternal.Message, err)
}

// ConfigError wraps an environment or source-open failure.
func ConfigError(err error) *AppError {
	return NewAppError(CodeConfig, ErrConfig.Message, err)
}

// ValidationError creates a validation failure carrying per-field messages.
func ValidationError(fields map[string]string, err error) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: ErrValidation.Message,
		Fields:  fields,
		Err:     err,
	}
}

// IsNotFound reports whether err is or wraps an AppError with CodeNotFound.
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsAlreadyExists reports whether err is or wraps an AppError with CodeAlreadyExists.
func IsAlreadyExists(err error) bool {
	return hasCode(err, CodeAlreadyExists)
}

// IsValidation reports whether err is or wraps an AppError with CodeValidation.
func IsValidation(err error) bool {
	return hasCode(err, CodeValidation)
}

// IsInternal reports whether err is or wraps an AppError with CodeInternal.
func IsInternal(err error) bool {
	return hasCode(err, CodeInternal)
}

// IsNoChanges reports whether err is or wraps an AppError with CodeNoChanges.
func IsNoChanges(err error) bool {
	return hasCode(err, CodeNoChanges)
}

// IsConfig reports whether err is or wraps an AppError with CodeConfig.
func IsConfig(err error) bool {
	return hasCode(err, CodeConfig)
}

// hasCode checks whether err is or wraps an *AppError with the given code.
func hasCode(err error, code int) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// HTTPStatusCode maps an error to an HTTP status code.
// If the error is an *AppError, the code is mapped; otherwise http.StatusInternalServerError is returned.
func HTTPStatusCode(err error) int {
	var appErr *AppError
	if err != nil && errors.As(err, &appErr) {
		switch appErr.Code {
		case CodeNotFound:
			return http.StatusNotFound
		case CodeAlreadyExists:
			return http.StatusConflict
		case CodeValidation, CodeNoChanges:
			return http.StatusBadRequest
		case CodeInternal, CodeConfig:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}
