package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrTaskNotFound is returned when a task does not exist.
	ErrTaskNotFound = errors.New("task not found")
	// ErrNotTaskOwner is returned when the caller does not own the task.
	ErrNotTaskOwner = errors.New("user not authorized")
	// ErrUserNotFound is returned when a user record does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidStatus is returned when a task status is outside the enum.
	ErrInvalidStatus = errors.New("invalid task status")
	// ErrInvalidPriority is returned when a task priority is outside the enum.
	ErrInvalidPriority = errors.New("invalid task priority")
	// ErrEmptyTitle is returned when a supplied task title is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")
	// ErrEmptyDescription is returned when a supplied task description is empty.
	ErrEmptyDescription = errors.New("description cannot be empty")
	// ErrEmptyName is returned when a supplied user name is empty.
	ErrEmptyName = errors.New("name cannot be empty")
	// ErrEmptyEmail is returned when a supplied user email is empty.
	ErrEmptyEmail = errors.New("email cannot be empty")
	// ErrEmptyPassword is returned when a supplied password is empty.
	ErrEmptyPassword = errors.New("password cannot be empty")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Ownership failures map
// to 401 rather than 403, matching the behavior the API clients expect.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrTaskNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "TASK_NOT_FOUND")
	case ErrNotTaskOwner:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "NOT_TASK_OWNER")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "USER_NOT_FOUND")
	case ErrInvalidStatus:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_STATUS")
	case ErrInvalidPriority:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PRIORITY")
	case ErrEmptyTitle:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_TITLE")
	case ErrEmptyDescription:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_DESCRIPTION")
	case ErrEmptyName:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_NAME")
	case ErrEmptyEmail:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_EMAIL")
	case ErrEmptyPassword:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_PASSWORD")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
