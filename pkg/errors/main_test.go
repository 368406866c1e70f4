package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	t.Run("error string carries type and message", func(t *testing.T) {
		err := NewValidationError("name is too short", nil)
		assert.Equal(t, "VALIDATION_ERROR: name is too short", err.Error())
	})

	t.Run("wrapped cause is included and unwrappable", func(t *testing.T) {
		cause := stderrors.New("connection reset")
		err := NewDatabaseError("unable to store inquiry", cause)

		assert.Contains(t, err.Error(), "connection reset")
		assert.ErrorIs(t, err, cause)
	})

	t.Run("type survives wrapping with fmt.Errorf", func(t *testing.T) {
		err := fmt.Errorf("submit: %w", NewNotFoundError("inquiry not found", nil))
		assert.Equal(t, ErrorTypeNotFound, GetErrorType(err))
	})

	t.Run("foreign errors report unknown", func(t *testing.T) {
		assert.Equal(t, ErrorTypeUnknown, GetErrorType(stderrors.New("boom")))
	})

	t.Run("nil reports empty", func(t *testing.T) {
		assert.Empty(t, GetErrorType(nil))
	})
}

func TestHTTPStatusCode(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", NewValidationError("bad field", nil), http.StatusUnprocessableEntity},
		{"invalid request", NewInvalidRequestError("bad request", nil), http.StatusBadRequest},
		{"not found", NewNotFoundError("missing", nil), http.StatusNotFound},
		{"database", NewDatabaseError("down", nil), http.StatusInternalServerError},
		{"internal", NewInternalServerError("bug", nil), http.StatusInternalServerError},
		{"foreign error", stderrors.New("boom"), http.StatusInternalServerError},
		{"nil", nil, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, HTTPStatusCode(tc.err))
		})
	}
}

func TestGetHumanReadableMessage(t *testing.T) {
	t.Run("app errors expose their message", func(t *testing.T) {
		err := NewDatabaseError("unable to store inquiry", stderrors.New("mongo: server selection timeout"))
		assert.Equal(t, "unable to store inquiry", GetHumanReadableMessage(err))
	})

	t.Run("foreign errors never leak", func(t *testing.T) {
		msg := GetHumanReadableMessage(stderrors.New("mongo: server selection timeout"))
		assert.Equal(t, "An unexpected error occurred", msg)
		assert.NotContains(t, msg, "mongo")
	})
}
