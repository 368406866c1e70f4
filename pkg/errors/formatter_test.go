package errors

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactForm struct {
	Name    string `json:"name" binding:"required,min=2"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,min=5"`
}

func newBindingValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

func fieldMessages(errs []ValidationErrorResponse) map[string]string {
	m := make(map[string]string, len(errs))
	for _, e := range errs {
		m[e.Field] = e.Message
	}
	return m
}

func TestFormatValidationErrors(t *testing.T) {
	t.Run("reports every failing field by json name", func(t *testing.T) {
		form := &contactForm{Name: "J", Email: "nope", Message: ""}

		err := newBindingValidator().Struct(form)
		require.Error(t, err)

		result := FormatValidationErrors(err, form)
		messages := fieldMessages(result)

		assert.Len(t, result, 3)
		assert.Equal(t, "Must be at least 2 characters", messages["name"])
		assert.Equal(t, "Invalid email format", messages["email"])
		assert.Equal(t, "This field is required", messages["message"])
	})

	t.Run("min violation carries the threshold", func(t *testing.T) {
		form := &contactForm{Name: "Jo", Email: "jo@example.com", Message: "hey"}

		err := newBindingValidator().Struct(form)
		require.Error(t, err)

		messages := fieldMessages(FormatValidationErrors(err, form))
		assert.Equal(t, "Must be at least 5 characters", messages["message"])
	})

	t.Run("json type mismatch is reported against the field", func(t *testing.T) {
		var form contactForm
		err := json.Unmarshal([]byte(`{"name":42}`), &form)
		require.Error(t, err)

		result := FormatValidationErrors(err, &form)

		require.Len(t, result, 1)
		assert.Equal(t, "name", result[0].Field)
		assert.Contains(t, result[0].Message, "Invalid type")
	})

	t.Run("unrecognized errors yield nothing", func(t *testing.T) {
		assert.Nil(t, FormatValidationErrors(errors.New("boom"), &contactForm{}))
		assert.Nil(t, FormatValidationErrors(nil, &contactForm{}))
	})

	t.Run("nil model still reports struct field names", func(t *testing.T) {
		form := &contactForm{Name: "", Email: "jo@example.com", Message: "Hello there"}

		err := newBindingValidator().Struct(form)
		require.Error(t, err)

		result := FormatValidationErrors(err, nil)
		require.Len(t, result, 1)
		assert.Equal(t, "Name", result[0].Field)
	})
}
