package errors

import (
	"net/http"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestBuilderMarksAreMatchable(t *testing.T) {
	err := NewError("customer not found").
		WithHint("No customer found with id cust_1").
		Mark(ErrNotFound)

	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
}

func TestBuilderWrapsExistingError(t *testing.T) {
	inner := NewError("item not found").Mark(ErrNotFound)
	err := WithError(inner).
		WithHint("Customer does not belong to this tenant").
		Mark(ErrValidation)

	// Both marks survive the wrap
	assert.True(t, IsValidation(err))
	assert.True(t, IsNotFound(err))
}

func TestBuilderHints(t *testing.T) {
	err := NewError("series not declared by tenant").
		WithHintf("Series %q is not declared", "ZZ").
		Mark(ErrValidation)

	hints := errors.GetAllHints(err)
	assert.Contains(t, hints, `Series "ZZ" is not declared`)
}

func TestHTTPStatusFromErr(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "not_found",
			err:      NewError("x").Mark(ErrNotFound),
			expected: http.StatusNotFound,
		},
		{
			name:     "already_exists",
			err:      NewError("x").Mark(ErrAlreadyExists),
			expected: http.StatusConflict,
		},
		{
			name:     "validation",
			err:      NewError("x").Mark(ErrValidation),
			expected: http.StatusBadRequest,
		},
		{
			name:     "invalid_operation",
			err:      NewError("x").Mark(ErrInvalidOperation),
			expected: http.StatusBadRequest,
		},
		{
			name:     "unmarked",
			err:      errors.New("plain"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, HTTPStatusFromErr(tc.err))
		})
	}
}
