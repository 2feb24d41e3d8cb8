package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// Domain errors
	ErrorTypeValidation   ErrorType = "VALIDATION"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeConflict     ErrorType = "CONFLICT"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"

	// Dataset errors: soft failures that leave prior state untouched
	ErrorTypeEmptyDataset  ErrorType = "EMPTY_DATASET"
	ErrorTypeEmptyGrouping ErrorType = "EMPTY_GROUPING"
	ErrorTypeFetchFailed   ErrorType = "FETCH_FAILED"

	// Quiz errors
	ErrorTypeNoQuestion            ErrorType = "NO_QUESTION"
	ErrorTypeInsufficientQuestions ErrorType = "INSUFFICIENT_QUESTIONS"
	ErrorTypeNoArticle             ErrorType = "NO_ARTICLE"

	// Application errors
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// AppError represents an application-specific error
type AppError struct {
	Type       ErrorType              `json:"type"`
	Message    string                 `json:"message"`
	Code       string                 `json:"code,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Cause      error                  `json:"-"`
	HTTPStatus int                    `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCode adds an error code
func (e *AppError) WithCode(code string) *AppError {
	e.Code = code
	return e
}

// WithDetails adds error details
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

// WithCause wraps an underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// Constructor functions for common error types

// NewValidationError creates a validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewConflictError creates a conflict error
func NewConflictError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Message:    message,
		HTTPStatus: http.StatusConflict,
	}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError(message string) *AppError {
	if message == "" {
		message = "unauthorized"
	}
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewInternalError creates an internal error
func NewInternalError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewEmptyDatasetError signals that an uploaded file produced zero valid records
func NewEmptyDatasetError() *AppError {
	return &AppError{
		Type:       ErrorTypeEmptyDataset,
		Message:    "no valid article records found in input",
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

// NewEmptyGroupingError signals that valid records produced zero distinct days
func NewEmptyGroupingError() *AppError {
	return &AppError{
		Type:       ErrorTypeEmptyGrouping,
		Message:    "no dated records found in input",
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

// NewFetchFailedError signals that the bundled sample dataset could not be retrieved
func NewFetchFailedError(err error) *AppError {
	return &AppError{
		Type:       ErrorTypeFetchFailed,
		Message:    "failed to fetch sample dataset",
		Cause:      err,
		HTTPStatus: http.StatusBadGateway,
	}
}

// NewNoQuestionError signals that no qualifying quiz question exists for the day
func NewNoQuestionError(dayKey string) *AppError {
	return &AppError{
		Type:       ErrorTypeNoQuestion,
		Message:    fmt.Sprintf("no quiz question available for day %s", dayKey),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewInsufficientQuestionsError signals that the exam question floor could not be reached
func NewInsufficientQuestionsError(got, want int) *AppError {
	return &AppError{
		Type:       ErrorTypeInsufficientQuestions,
		Message:    fmt.Sprintf("only %d of the required %d exam questions available", got, want),
		HTTPStatus: http.StatusConflict,
	}
}

// NewNoArticleError signals that the featured-article pool is exhausted
func NewNoArticleError() *AppError {
	return &AppError{
		Type:       ErrorTypeNoArticle,
		Message:    "no qualifying article available",
		HTTPStatus: http.StatusNotFound,
	}
}

// Helper functions

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from an error chain
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == errType
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

// IsConflict checks if an error is a conflict error
func IsConflict(err error) bool {
	return IsType(err, ErrorTypeConflict)
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	// If it's already an AppError, add context to message
	if appErr := GetAppError(err); appErr != nil {
		appErr.Message = fmt.Sprintf("%s: %s", message, appErr.Message)
		return appErr
	}

	// Otherwise create a new internal error
	return NewInternalError(message).WithCause(err)
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}
