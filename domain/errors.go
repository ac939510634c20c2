package domain

import (
	"errors"
	"fmt"
)

// DomainError represents errors in the domain layer
type DomainError struct {
	Code    string
	Message string
	Cause   error
}

func (e DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e DomainError) Unwrap() error {
	return e.Cause
}

// Domain error codes
const (
	ErrCodeInvalidInput      = "INVALID_INPUT"
	ErrCodeDataUnavailable   = "DATA_UNAVAILABLE"
	ErrCodeUpstreamFailure   = "UPSTREAM_FAILURE"
	ErrCodeConfigError       = "CONFIG_ERROR"
	ErrCodeOutputError       = "OUTPUT_ERROR"
	ErrCodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
)

// ErrNotFound is returned by data sources when an entity id does not resolve.
var ErrNotFound = errors.New("entity not found")

// NewDomainError creates a new domain error
func NewDomainError(code, message string, cause error) error {
	return DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewInvalidInputError creates an invalid input error
func NewInvalidInputError(message string, cause error) error {
	return NewDomainError(ErrCodeInvalidInput, message, cause)
}

// NewDataUnavailableError creates an error for a model call that resolved to nothing
func NewDataUnavailableError(message string, cause error) error {
	return NewDomainError(ErrCodeDataUnavailable, message, cause)
}

// NewUpstreamError creates an error for a failing collaborator (classifier, plotting, data source I/O)
func NewUpstreamError(message string, cause error) error {
	return NewDomainError(ErrCodeUpstreamFailure, message, cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) error {
	return NewDomainError(ErrCodeConfigError, message, cause)
}

// NewOutputError creates an output error
func NewOutputError(message string, cause error) error {
	return NewDomainError(ErrCodeOutputError, message, cause)
}

// NewUnsupportedFormatError creates an unsupported format error
func NewUnsupportedFormatError(format string) error {
	return NewDomainError(ErrCodeUnsupportedFormat, fmt.Sprintf("unsupported format: %s", format), nil)
}

// NewValidationError creates a validation error
func NewValidationError(message string) error {
	return NewDomainError(ErrCodeInvalidInput, message, nil)
}

// CodeOf returns the code of the outermost DomainError in err's chain, or ""
// when err carries none.
func CodeOf(err error) string {
	var de DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// IsDataUnavailable reports whether err is a data-unavailable failure.
func IsDataUnavailable(err error) bool {
	return CodeOf(err) == ErrCodeDataUnavailable
}

// IsInvalidInput reports whether err is an invalid-input failure.
func IsInvalidInput(err error) bool {
	return CodeOf(err) == ErrCodeInvalidInput
}
