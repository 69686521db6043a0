package errors

import (
	"fmt"
	"net/http"
)

// AppError represents an application error with additional context
type AppError struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	StatusCode int         `json:"-"`
	Internal   error       `json:"-"`
	Details    interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Internal)
	}
	return e.Message
}

// Unwrap returns the internal error for errors.Is and errors.As
func (e *AppError) Unwrap() error {
	return e.Internal
}

// Common error codes
const (
	ErrCodeInternal             = "INTERNAL_ERROR"
	ErrCodeBadRequest           = "BAD_REQUEST"
	ErrCodeNotFound             = "NOT_FOUND"
	ErrCodeValidation           = "VALIDATION_ERROR"
	ErrCodeMissingMandatoryData = "MISSING_MANDATORY_DATA"
	ErrCodeUpstreamFetch        = "UPSTREAM_FETCH_FAILED"
	ErrCodeStoreQuery           = "STORE_QUERY_ERROR"
	ErrCodeStoreUpdate          = "STORE_UPDATE_ERROR"
	ErrCodeRateLimited          = "RATE_LIMITED"
	ErrCodeServiceUnavailable   = "SERVICE_UNAVAILABLE"
)

// New creates a new AppError
func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// Wrap wraps an error with an AppError
func Wrap(err error, code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Internal:   err,
	}
}

// WithDetails adds details to an AppError
func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

// Common error constructors

// Internal creates an internal server error
func Internal(message string, err error) *AppError {
	return Wrap(err, ErrCodeInternal, message, http.StatusInternalServerError)
}

// BadRequest creates a bad request error
func BadRequest(message string) *AppError {
	return New(ErrCodeBadRequest, message, http.StatusBadRequest)
}

// NotFound creates a not found error
func NotFound(resource string) *AppError {
	return New(ErrCodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

// ValidationError creates a validation error
func ValidationError(message string, details interface{}) *AppError {
	return New(ErrCodeValidation, message, http.StatusBadRequest).WithDetails(details)
}

// MissingMandatoryData signals that a required upstream dataset is empty.
// This is the only fatal condition in the recommendation pipeline.
func MissingMandatoryData(message string) *AppError {
	return New(ErrCodeMissingMandatoryData, message, http.StatusUnprocessableEntity)
}

// UpstreamFetch creates an error for a failed knowledge-store or AI call
func UpstreamFetch(collaborator string, err error) *AppError {
	return Wrap(err, ErrCodeUpstreamFetch,
		fmt.Sprintf("Failed to fetch data from %s", collaborator),
		http.StatusBadGateway)
}

// StoreQuery creates an error for a failed SPARQL query
func StoreQuery(err error) *AppError {
	return Wrap(err, ErrCodeStoreQuery, "Knowledge store query failed", http.StatusBadGateway)
}

// StoreUpdate creates an error for a failed SPARQL update
func StoreUpdate(err error) *AppError {
	return Wrap(err, ErrCodeStoreUpdate, "Knowledge store update failed", http.StatusBadGateway)
}

// RateLimited creates a rate limited error
func RateLimited(message string) *AppError {
	return New(ErrCodeRateLimited, message, http.StatusTooManyRequests)
}

// ServiceUnavailable creates a service unavailable error
func ServiceUnavailable(message string) *AppError {
	return New(ErrCodeServiceUnavailable, message, http.StatusServiceUnavailable)
}
