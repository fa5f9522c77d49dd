package middleware

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/yigit/turmas/internal/app/models/dto"
)

var registerOnce sync.Once

// RegisterJSONFieldNames makes gin's validator report fields by their JSON
// name, so binding errors name "registrationNumber" instead of the Go field
func RegisterJSONFieldNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
	})
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// validationErrorDetail flattens validator errors into one detail. The first
// failing field becomes the headline, all of them are listed in details.
func validationErrorDetail(verrs validator.ValidationErrors) *dto.ErrorDetail {
	all := dto.NewValidationErrors()
	for _, fe := range verrs {
		all.AddError(fe.Field(), formatValidationError(fe))
	}

	first := all.Errors[0]
	return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, first.Message).
		WithField(first.Field).
		WithSeverity(dto.ErrorSeverityWarning).
		WithDetails(all.Errors)
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
