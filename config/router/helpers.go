package router

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/psychsphere/backend/internal/log"
	apperrors "github.com/psychsphere/backend/pkg/errors"
)

func GetLogger(ctx *RequestContext) *log.Logger {
	if logger := ctx.Request.Context().Value(log.LoggerContextKey); logger != nil {
		if l, ok := logger.(*log.Logger); ok {
			return l
		}
	}

	return log.NewJSONLogger().WithCorrelationID(ctx.Request.Context())
}

func OK(body any) *Response {
	return &Response{
		StatusCode: http.StatusOK,
		Body:       body,
	}
}

// Error wraps a failure detail in the {"detail": ...} envelope used for every
// non-2xx response. The detail may be a string or a list of field errors.
func Error(statusCode int, detail any) *Response {
	return &Response{
		StatusCode: statusCode,
		Body:       gin.H{"detail": detail},
	}
}

// ParseLimitQuery reads an optional integer query parameter, rejecting
// non-numeric and negative values with a field-level 422.
func ParseLimitQuery(ctx *RequestContext, name string, defaultValue int64) (int64, *Response) {
	raw := ctx.Query(name)
	if raw == "" {
		return defaultValue, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, Error(http.StatusUnprocessableEntity, []apperrors.ValidationErrorResponse{
			{Field: name, Message: "Must be an integer"},
		})
	}

	if v < 0 {
		return 0, Error(http.StatusUnprocessableEntity, []apperrors.ValidationErrorResponse{
			{Field: name, Message: "Must be greater than or equal to 0"},
		})
	}

	return v, nil
}
