package errors

import (
	"errors"
	"net/http"
)

func HTTPStatusCode(err error) int {
	if err == nil {
		return http.StatusInternalServerError
	}

	switch GetErrorType(err) {
	case ErrorTypeValidation:
		return http.StatusUnprocessableEntity
	case ErrorTypeInvalidRequest:
		return http.StatusBadRequest
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeDatabaseError, ErrorTypeInternalServerError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func GetHumanReadableMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}

	// Avoid leaking internal error strings (driver errors, stack messages).
	return "An unexpected error occurred"
}
