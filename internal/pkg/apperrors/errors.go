package apperrors

import "errors"

// Error kinds. Every error returned by a ledger operation wraps exactly one of these.
var (
	// ErrValidationFailed: a required field is missing, empty or malformed (400)
	ErrValidationFailed = errors.New("validation failed")
	// ErrResourceNotFound: the target or a referenced record does not exist (404)
	ErrResourceNotFound = errors.New("resource not found")
	// ErrConflict: uniqueness violation or delete blocked by dependents (409)
	ErrConflict = errors.New("conflict")
)

// Error codes carried in CustomError.Code
const (
	CodeMissingField    = "missing_field"
	CodeInvalidField    = "invalid_field"
	CodeDuplicate       = "duplicate"
	CodeHasDependents   = "has_dependents"
	CodeUnknownTarget   = "unknown_target"
	CodeUnknownRelation = "unknown_relation"
)

// NewValidationError creates a validation error about a single field
func NewValidationError(field, message string) *CustomError {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Field:   field,
		Code:    CodeMissingField,
	}
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) *CustomError {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
		Code:    CodeUnknownTarget,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) *CustomError {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
		Code:    CodeDuplicate,
	}
}

// Kind returns the sentinel kind err wraps, or nil for unclassified errors
func Kind(err error) error {
	for _, kind := range []error{ErrValidationFailed, ErrResourceNotFound, ErrConflict} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
	Code    string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// WithField names the offending request field
func (e *CustomError) WithField(field string) *CustomError {
	e.Field = field
	return e
}
