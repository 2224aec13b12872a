package errors

import "errors"

// invalidBookData is the exact message reported for malformed book records.
const invalidBookData = "Invalid Book Data!"

// ValidationError represents a candidate record that is missing required
// fields, carries unknown ones, or has values of the wrong type.
type ValidationError struct {
	// Reason describes what was wrong with the candidate. It is meant for
	// logs and never appears in the error message.
	Reason string
}

func (e *ValidationError) Error() string {
	return invalidBookData
}

// NewValidationError creates a ValidationError with the given reason.
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// IsValidationError reports whether err is a ValidationError (even when wrapped).
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
