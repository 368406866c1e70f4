package errors

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ValidationErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func msgForTag(tag string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return "Value is too short or too small"
	case "max":
		return "Value is too long or too large"
	case "boolean":
		return "Value must be a boolean"
	case "numeric":
		return "Value must be numeric"
	default:
		return "Invalid value"
	}
}

func getJSONFieldName(structType reflect.Type, fieldName string) string {
	field, found := structType.FieldByName(fieldName)
	if !found {
		return fieldName
	}

	jsonTag := field.Tag.Get("json")
	if jsonTag == "" {
		return fieldName
	}

	return strings.Split(jsonTag, ",")[0]
}

// FormatValidationErrors turns a gin binding failure into field-level errors
// suitable for a 422 response body. Type mismatches surfaced by the JSON
// decoder are reported against the offending field as well.
func FormatValidationErrors(err error, model interface{}) []ValidationErrorResponse {
	if err == nil {
		return nil
	}

	if jsonErr, ok := err.(*json.UnmarshalTypeError); ok {
		return []ValidationErrorResponse{
			{
				Field:   jsonErr.Field,
				Message: fmt.Sprintf("Invalid type for field %s. Expected %s, got %s", jsonErr.Field, jsonErr.Type, jsonErr.Value),
			},
		}
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	var structType reflect.Type
	if model != nil {
		structType = reflect.TypeOf(model)
		if structType.Kind() == reflect.Ptr {
			structType = structType.Elem()
		}
	}

	errorsList := make([]ValidationErrorResponse, len(validationErrors))

	for i, fieldError := range validationErrors {
		jsonField := fieldError.Field()
		if structType != nil {
			jsonField = getJSONFieldName(structType, fieldError.Field())
		}

		message := msgForTag(fieldError.Tag())

		if fieldError.Param() != "" {
			switch fieldError.Tag() {
			case "min":
				message = fmt.Sprintf("Must be at least %s characters", fieldError.Param())
			case "max":
				message = fmt.Sprintf("Must not exceed %s characters", fieldError.Param())
			}
		}

		errorsList[i] = ValidationErrorResponse{
			Field:   jsonField,
			Message: message,
		}
	}

	return errorsList
}
