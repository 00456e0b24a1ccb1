package errors

import (
	"errors"
	"net/http"
)

// AppError classifies every failure the terminal surfaces: authentication
// failures redirect to login, validation failures keep the user on the current
// step, network/server failures show a blocking notification. StatusCode holds
// the HTTP status of the failed response when there was one.
type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNetwork      = "NETWORK_ERROR"
	ErrCodeServer       = "SERVER_ERROR"
	ErrCodeStock        = "INSUFFICIENT_STOCK"
	ErrCodeState        = "INVALID_STATE"
)

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, http.StatusBadRequest)
}

func BadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

func UnauthorizedError(message string) *AppError {
	return NewAppError(ErrCodeUnauthorized, message, http.StatusUnauthorized)
}

func ForbiddenError(message string) *AppError {
	return NewAppError(ErrCodeForbidden, message, http.StatusForbidden)
}

// NetworkError covers transport-level failures where no HTTP response exists.
func NetworkError(message string) *AppError {
	return NewAppError(ErrCodeNetwork, message, 0)
}

func ServerError(message string, statusCode int) *AppError {
	return NewAppError(ErrCodeServer, message, statusCode)
}

func StockError(message string) *AppError {
	return NewAppError(ErrCodeStock, message, http.StatusConflict)
}

// StateError marks checkout transitions attempted from the wrong state.
func StateError(message string) *AppError {
	return NewAppError(ErrCodeState, message, http.StatusConflict)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// IsUnauthorized reports whether err is an authentication failure that must
// force a re-login.
func IsUnauthorized(err error) bool {
	if appErr, ok := IsAppError(err); ok {
		return appErr.Code == ErrCodeUnauthorized
	}

	return false
}
