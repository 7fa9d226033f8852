// Package errors provides domain-specific error types.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for domain errors.
const (
	ErrCodeNotFound             = "NOT_FOUND"
	ErrCodeValidation           = "VALIDATION_ERROR"
	ErrCodeInternal             = "INTERNAL_ERROR"
	ErrCodeBadRequest           = "BAD_REQUEST"
	ErrCodeConnectionConfig     = "CONNECTION_CONFIG_ERROR"
	ErrCodeConnection           = "CONNECTION_ERROR"
	ErrCodeWrite                = "WRITE_ERROR"
	ErrCodeQuery                = "QUERY_ERROR"
	ErrCodeUnsupportedValueType = "UNSUPPORTED_VALUE_TYPE"
)

// DomainError represents a domain-specific error.
type DomainError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"`
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// errDetails renders the wrapped driver error as details text.
func errDetails(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// NewNotFoundError creates a new not found error.
func NewNotFoundError(resource, identifier string) *DomainError {
	return &DomainError{
		Code:       ErrCodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		Details:    identifier,
		HTTPStatus: http.StatusNotFound,
	}
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, details string) *DomainError {
	return &DomainError{
		Code:       ErrCodeValidation,
		Message:    message,
		Details:    details,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewBadRequestError creates a new bad request error.
func NewBadRequestError(message string, details string) *DomainError {
	return &DomainError{
		Code:       ErrCodeBadRequest,
		Message:    message,
		Details:    details,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewConnectionConfigError reports a connection string that the driver refused to parse.
func NewConnectionConfigError(err error) *DomainError {
	return &DomainError{
		Code:       ErrCodeConnectionConfig,
		Message:    "invalid connection configuration",
		Details:    errDetails(err),
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewConnectionError reports an unreachable server or a lost connection.
func NewConnectionError(operation string, err error) *DomainError {
	return &DomainError{
		Code:       ErrCodeConnection,
		Message:    fmt.Sprintf("%s failed: database unreachable", operation),
		Details:    errDetails(err),
		HTTPStatus: http.StatusServiceUnavailable,
		Err:        err,
	}
}

// NewWriteError reports a write rejected by the server.
func NewWriteError(operation string, err error) *DomainError {
	return &DomainError{
		Code:       ErrCodeWrite,
		Message:    fmt.Sprintf("%s rejected by server", operation),
		Details:    errDetails(err),
		HTTPStatus: http.StatusUnprocessableEntity,
		Err:        err,
	}
}

// NewQueryError reports a read command rejected by the server.
func NewQueryError(operation string, err error) *DomainError {
	return &DomainError{
		Code:       ErrCodeQuery,
		Message:    fmt.Sprintf("%s rejected by server", operation),
		Details:    errDetails(err),
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

// NewUnsupportedValueTypeError reports a value that has no document representation.
func NewUnsupportedValueTypeError(typeName string) *DomainError {
	return &DomainError{
		Code:       ErrCodeUnsupportedValueType,
		Message:    "unsupported value type",
		Details:    typeName,
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

// IsDomainError checks if the error is a domain error.
func IsDomainError(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}

// GetDomainError extracts the domain error from an error.
func GetDomainError(err error) (*DomainError, bool) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr, true
	}
	return nil, false
}

func hasCode(err error, code string) bool {
	domainErr, ok := GetDomainError(err)
	return ok && domainErr.Code == code
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

// IsValidationError checks if the error is a validation error.
func IsValidationError(err error) bool {
	return hasCode(err, ErrCodeValidation)
}

// IsConnectionConfigError checks if the error is a connection configuration error.
func IsConnectionConfigError(err error) bool {
	return hasCode(err, ErrCodeConnectionConfig)
}

// IsConnectionError checks if the error is a connection error.
func IsConnectionError(err error) bool {
	return hasCode(err, ErrCodeConnection)
}

// IsWriteError checks if the error is a write error.
func IsWriteError(err error) bool {
	return hasCode(err, ErrCodeWrite)
}

// IsQueryError checks if the error is a query error.
func IsQueryError(err error) bool {
	return hasCode(err, ErrCodeQuery)
}
