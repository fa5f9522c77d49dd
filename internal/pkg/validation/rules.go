package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yigit/turmas/internal/pkg/apperrors"
)

// Validation rule patterns
var (
	// ReservedPattern matches characters the line-oriented store uses as separators
	ReservedPattern = `[|\r\n]`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Reserved *regexp.Regexp
}{
	Reserved: regexp.MustCompile(ReservedPattern),
}

// StringValidation checks a single named request field
type StringValidation struct {
	Field    string
	Value    string
	Required bool
	Forbid   *regexp.Regexp
}

// NewStringValidation creates a required-field validation that also rejects
// store separators
func NewStringValidation(field, value string) *StringValidation {
	return &StringValidation{
		Field:    field,
		Value:    value,
		Required: true,
		Forbid:   CompiledPatterns.Reserved,
	}
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate returns a validation error describing the first broken rule, or nil
func (v *StringValidation) Validate() error {
	if strings.TrimSpace(v.Value) == "" {
		if v.Required {
			return apperrors.NewValidationError(v.Field, fmt.Sprintf("%s is required", v.Field))
		}
		return nil
	}

	if v.Forbid != nil && v.Forbid.MatchString(v.Value) {
		return apperrors.NewValidationError(v.Field, fmt.Sprintf("%s must not contain '|' or line breaks", v.Field)).
			WithCode(apperrors.CodeInvalidField)
	}

	return nil
}

// First runs the validations in order and returns the first failure
func First(validations ...*StringValidation) error {
	for _, v := range validations {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}
