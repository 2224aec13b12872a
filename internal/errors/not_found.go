package errors

import "errors"

const bookNotFound = "Book Not Found!"

// NotFoundError represents a lookup for an id that no record carries.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return bookNotFound
}

// NewNotFoundError creates a NotFoundError for the given id.
func NewNotFoundError(id string) *NotFoundError {
	return &NotFoundError{ID: id}
}

// IsNotFoundError reports whether err is a NotFoundError (even when wrapped).
func IsNotFoundError(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}
