package exceptions

import (
	"clinic-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatFirstValidationError turns the first failed rule into a client message
// that names the field as it appears in the request body.
func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return constvars.ErrDevInvalidInput
	}

	first := validationErrors[0]
	message, ok := constvars.CustomValidationErrorMessages[first.Tag()]
	if !ok {
		message = "is invalid"
	}
	if constvars.TagsWithParams[first.Tag()] {
		param := first.Param()
		if first.Tag() == "oneof" {
			param = strings.Join(strings.Fields(param), ", ")
		}
		message = fmt.Sprintf(message, param)
	}
	return fmt.Sprintf("%s %s", fieldPath(first), message)
}

// fieldPath drops the top level struct name from the namespace.
func fieldPath(fieldErr validator.FieldError) string {
	namespace := fieldErr.Namespace()
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return fieldErr.Field()
}
