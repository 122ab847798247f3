package apperrors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_CollectsFields(t *testing.T) {
	verr := NewValidationError()
	assert.False(t, verr.HasErrors())

	verr.Add("email", "Email already registered")
	verr.Add("phone", "Enter a valid phone number")
	assert.True(t, verr.HasErrors())
	assert.Len(t, verr.Fields, 2)

	// First message per field wins
	verr.Add("email", "some later, less specific message")
	assert.Equal(t, "Email already registered", verr.Fields["email"])

	assert.Equal(t, "validation failed: email, phone", verr.Error())
}

func TestAsValidationError(t *testing.T) {
	verr := NewValidationError()
	verr.Add("idNumber", "Identification number already registered")

	wrapped := fmt.Errorf("admitting student: %w", verr)
	got, ok := AsValidationError(wrapped)
	require.True(t, ok)
	assert.Contains(t, got.Fields, "idNumber")

	_, ok = AsValidationError(ErrAdmissionFailed)
	assert.False(t, ok)
}

func TestIs_MatchesAnyOf(t *testing.T) {
	err := fmt.Errorf("lookup: %w", ErrCourseNotFound)

	assert.True(t, Is(err, ErrResourceNotFound, ErrUserNotFound, ErrCourseNotFound))
	assert.False(t, Is(err, ErrResourceNotFound, ErrUserNotFound))
}
