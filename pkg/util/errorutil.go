package util

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors and their HTTP mapping.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, err error) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Err: err}
}

// NewValidationError reports a malformed or incomplete payload.
func NewValidationError(message string) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, nil)
}

// NewUnauthorized reports a missing or mismatched credential.
func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

// NewUpstreamError reports a failure in an external collaborator (ticket
// store, PDF rendering, email provider). Expected and recoverable by the
// caller retrying the whole request.
func NewUpstreamError(message string, err error) error {
	return NewDomainError("UPSTREAM_FAILED", message, http.StatusBadGateway, err)
}

// NewInvariantViolation reports a broken data invariant. Unlike upstream
// failures this is not a recoverable outcome: it indicates corruption the
// pipeline cannot paper over, so it maps to a server error.
func NewInvariantViolation(message string, err error) error {
	return NewDomainError("INVARIANT_VIOLATION", message, http.StatusInternalServerError, err)
}

// NewInternalError wraps an unexpected fault.
func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
