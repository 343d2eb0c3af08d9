// Package errors provides application-level error types and utilities.
// Every AppError carries an HTTP class (Type, Code) and a stable domain Reason
// that clients can branch on.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the HTTP class of an error
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation_error"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeConflict     ErrorType = "conflict"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeForbidden    ErrorType = "forbidden"
	ErrorTypeInternal     ErrorType = "internal_error"
	ErrorTypeBadRequest   ErrorType = "bad_request"
	ErrorTypeRateLimited  ErrorType = "rate_limited"
)

// Reason is the domain-level failure kind.
type Reason string

const (
	ReasonInvalidCredentials  Reason = "InvalidCredentials"
	ReasonDuplicateAccessCode Reason = "DuplicateAccessCode"
	ReasonInvalidAccessCode   Reason = "InvalidAccessCode"
	ReasonMissingField        Reason = "MissingField"
	ReasonMissingName         Reason = "MissingName"
	ReasonEmptyComment        Reason = "EmptyComment"
	ReasonForbidden           Reason = "Forbidden"
	ReasonInvalidStatus       Reason = "InvalidStatus"
	ReasonNotFound            Reason = "NotFound"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Reason  Reason    `json:"reason,omitempty"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(t ErrorType, code int, reason Reason, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    t,
		Reason:  reason,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, "", message, details)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, ReasonNotFound, message, details)
}

// NewConflictError creates a new conflict error
func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, "", message, details)
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, http.StatusUnauthorized, "", message, details)
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, http.StatusForbidden, ReasonForbidden, message, details)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, "", message, details)
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeBadRequest, http.StatusBadRequest, "", message, details)
}

// NewRateLimitedError creates a new too-many-requests error
func NewRateLimitedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeRateLimited, http.StatusTooManyRequests, "", message, details)
}

// NewInvalidCredentialsError is returned when a display name / access code pair does not resolve.
func NewInvalidCredentialsError() *AppError {
	return newAppError(ErrorTypeUnauthorized, http.StatusUnauthorized, ReasonInvalidCredentials,
		"invalid display name or access code", nil)
}

// NewDuplicateAccessCodeError reports an access code already assigned to someone.
func NewDuplicateAccessCodeError(code string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, ReasonDuplicateAccessCode,
		"access code already in use", []string{code})
}

// NewInvalidAccessCodeError reports an access code that is not exactly four digits.
func NewInvalidAccessCodeError(code string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, ReasonInvalidAccessCode,
		"access code must be exactly 4 digits", []string{code})
}

// NewMissingFieldError reports a required field that was blank.
func NewMissingFieldError(field string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, ReasonMissingField,
		field+" is required", []string{field})
}

// NewMissingNameError reports a blank display name.
func NewMissingNameError() *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, ReasonMissingName,
		"display name is required", nil)
}

// NewEmptyCommentError reports a comment whose text is blank after trimming.
func NewEmptyCommentError(text string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, ReasonEmptyComment,
		"comment text cannot be empty", []string{text})
}

// NewInvalidStatusError reports a status token outside the ticket status set.
func NewInvalidStatusError(token string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, ReasonInvalidStatus,
		"invalid ticket status", []string{token})
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasReason reports whether err is an AppError with the given reason.
func HasReason(err error, reason Reason) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Reason == reason
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeConflict
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeNotFound
}

// IsForbiddenError checks if the error is a forbidden error
func IsForbiddenError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeForbidden
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeValidation
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// MySQL
	if strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// SQLite
	if strings.Contains(errStr, "UNIQUE constraint failed") {
		return true
	}
	return false
}
