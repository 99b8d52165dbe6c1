package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// AppError standardizes application errors.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
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

// NewAppError constructs an AppError.
func NewAppError(code, message string, status int, details map[string]any) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewAppError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewSessionExpired() error {
	return NewAppError("SESSION_EXPIRED", "Session expired. Please sign in again.", http.StatusUnauthorized, nil)
}

func NewUnauthorized(message string) error {
	return NewAppError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

func NewForbidden(message string) error {
	return NewAppError("FORBIDDEN", message, http.StatusForbidden, nil)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewStaleData(message string) error {
	return NewAppError("STALE_DATA", message, http.StatusConflict, nil)
}

func NewInternalError(err error) error {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToAppError converts generic errors to AppError.
func ToAppError(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    err.Error(),
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// normalize lowercases a remote message and strips whitespace so backend
// validation tokens can be matched regardless of formatting.
func normalize(message string) string {
	return strings.Join(strings.Fields(strings.ToLower(message)), "")
}

// FriendlyStatusUpdateError rewrites known backend status-update failures into
// explanatory sentences. Unknown messages pass through verbatim.
func FriendlyStatusUpdateError(err error) string {
	message := "Failed to update status"
	if err != nil {
		message = remoteMessage(err)
	}
	if strings.Contains(normalize(message), "cannotchangeunassignedcomplaint") {
		return "You can't change the status until the case is assigned. Assign it first."
	}
	return message
}

// FriendlyAssignmentError rewrites known backend assignment failures, currently
// the expected-resolution-date validation family.
func FriendlyAssignmentError(err error) string {
	message := "Failed to assign complaint"
	if err != nil {
		message = remoteMessage(err)
	}
	normalized := normalize(message)
	if strings.Contains(normalized, "expectedresolutiondate") &&
		(strings.Contains(normalized, "shouldnotbeempty") ||
			strings.Contains(normalized, "min") ||
			strings.Contains(normalized, "minimalalloweddate")) {
		return "Please set an expected resolution date (it must be in the future)."
	}
	return message
}

func remoteMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
