package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrRange indicates that a numeric input (custom account position, custom
// account count) falls outside its configured bound.
var ErrRange = errors.New("range error")

// ErrLookup indicates that an upstream data fetch (memberships, companies) failed.
var ErrLookup = errors.New("lookup failure")

// ErrConflict indicates a state conflict, such as a duplicate key.
var ErrConflict = errors.New("resource conflict")

// ErrForbidden indicates the caller lacks permission for the action.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates the caller could not be identified.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal indicates an unexpected server side failure.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code and a public message alongside the
// wrapped cause. Unwrap returns the cause so errors.Is works against the
// sentinels above.
type AppError struct {
	Code    int
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

// NewAppError builds an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError reports a missing resource.
func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

// NewValidationFailedError reports a rule or input violation.
func NewValidationFailedError(message string) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, message, ErrValidation)
}

// NewRangeError reports a value outside [min, max].
func NewRangeError(message string) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, message, ErrRange)
}

// NewLookupError wraps a failed upstream fetch.
func NewLookupError(message string, cause error) *AppError {
	if cause == nil {
		cause = ErrLookup
	} else {
		cause = fmt.Errorf("%w: %w", ErrLookup, cause)
	}
	return NewAppError(http.StatusBadGateway, message, cause)
}

// NewConflictError reports a duplicate or stale write.
func NewConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrConflict)
}

// NewForbiddenError reports an action the caller's role does not allow.
func NewForbiddenError(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

// NewUnauthorizedError reports a missing or invalid caller identity.
func NewUnauthorizedError(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

// NewBadRequestError reports malformed input that never reached the engine.
func NewBadRequestError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

// StatusCode returns the status an error should surface as.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation), errors.Is(err, ErrRange):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns a message safe to return to a caller.
func PublicMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	if StatusCode(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
