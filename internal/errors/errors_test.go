package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("missing key year")

	if err.Error() != "Invalid Book Data!" {
		t.Fatalf("Error message = %q, want %q", err.Error(), "Invalid Book Data!")
	}

	if err.Reason != "missing key year" {
		t.Fatalf("Reason = %q, want %q", err.Reason, "missing key year")
	}

	if !IsValidationError(err) {
		t.Fatalf("IsValidationError returned false for ValidationError")
	}

	wrapped := fmt.Errorf("add: %w", err)
	if !IsValidationError(wrapped) {
		t.Fatalf("IsValidationError returned false for wrapped ValidationError")
	}
}

func TestValidationError_ReasonNotInMessage(t *testing.T) {
	tests := []string{"", "unknown key isbn", "year: expected int"}

	for _, reason := range tests {
		err := NewValidationError(reason)
		if err.Error() != "Invalid Book Data!" {
			t.Fatalf("For reason %q, Error() = %q", reason, err.Error())
		}
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("50000")

	if err.Error() != "Book Not Found!" {
		t.Fatalf("Error message = %q, want %q", err.Error(), "Book Not Found!")
	}

	if err.ID != "50000" {
		t.Fatalf("ID = %q, want %q", err.ID, "50000")
	}

	if !IsNotFoundError(err) {
		t.Fatalf("IsNotFoundError returned false for NotFoundError")
	}

	wrapped := stdErrors.Join(err, stdErrors.New("additional context"))
	if !IsNotFoundError(wrapped) {
		t.Fatalf("IsNotFoundError returned false for wrapped NotFoundError")
	}
}

func TestErrorKindsAreDistinct(t *testing.T) {
	if IsNotFoundError(NewValidationError("x")) {
		t.Fatalf("ValidationError reported as NotFoundError")
	}
	if IsValidationError(NewNotFoundError("1")) {
		t.Fatalf("NotFoundError reported as ValidationError")
	}
	if IsValidationError(nil) || IsNotFoundError(nil) {
		t.Fatalf("nil reported as a domain error")
	}
}
