// Package errors provides custom error types for the Mentor Dashboard API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized        = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials  = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrInvalidRefreshToken = &AppError{Code: "INVALID_REFRESH_TOKEN", Message: "Invalid or expired refresh token", StatusCode: http.StatusUnauthorized}
	ErrForbidden           = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors. Validation failures are caught before any database
// write; read and write failures wrap the underlying database error.
var (
	ErrValidation     = &AppError{Code: "VALIDATION_ERROR", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrRemoteRead     = &AppError{Code: "REMOTE_READ_ERROR", Message: "Failed to load records", StatusCode: http.StatusInternalServerError}
	ErrRemoteWrite    = &AppError{Code: "REMOTE_WRITE_ERROR", Message: "Failed to save changes", StatusCode: http.StatusInternalServerError}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Goal errors.
var (
	ErrGoalNotFound = &AppError{Code: "GOAL_NOT_FOUND", Message: "No goal has been set", StatusCode: http.StatusNotFound}
)

// Habit errors.
var (
	ErrHabitNotFound = &AppError{Code: "HABIT_NOT_FOUND", Message: "Habit not found", StatusCode: http.StatusNotFound}
)

// Weekly action errors.
var (
	ErrActionNotFound = &AppError{Code: "ACTION_NOT_FOUND", Message: "Weekly action not found", StatusCode: http.StatusNotFound}
)

// Transaction errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
)

// Milestone errors.
var (
	ErrMilestoneNotFound = &AppError{Code: "MILESTONE_NOT_FOUND", Message: "Milestone not found", StatusCode: http.StatusNotFound}
)

// Skill errors.
var (
	ErrSkillNotFound    = &AppError{Code: "SKILL_NOT_FOUND", Message: "Skill not found", StatusCode: http.StatusNotFound}
	ErrDuplicateSkill   = &AppError{Code: "DUPLICATE_SKILL", Message: "A skill with this name already exists", StatusCode: http.StatusConflict}
	ErrSkillLogNotFound = &AppError{Code: "SKILL_LOG_NOT_FOUND", Message: "Skill log not found", StatusCode: http.StatusNotFound}
)

// Social post errors.
var (
	ErrPostNotFound = &AppError{Code: "POST_NOT_FOUND", Message: "Social post not found", StatusCode: http.StatusNotFound}
)

// Accountability pod errors.
var (
	ErrPodMemberNotFound = &AppError{Code: "POD_MEMBER_NOT_FOUND", Message: "Pod member not found", StatusCode: http.StatusNotFound}
	ErrNotifyFailed      = &AppError{Code: "NOTIFY_FAILED", Message: "Failed to send notification", StatusCode: http.StatusBadGateway}
)
