package sigcard

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{"fields", &ValidationError{Fields: []string{"firstName", "lastName"}}, "validation failed: missing required field(s) firstName, lastName"},
		{"cause", &ValidationError{Err: ErrEmptySignature}, "validation failed: signature text is empty"},
		{"bare", &ValidationError{}, "validation failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.want)
			assert.ErrorIs(t, tt.err, ErrValidation)
		})
	}

	wrapped := fmt.Errorf("form: %w", &ValidationError{Err: ErrUnsupportedInput})
	assert.ErrorIs(t, wrapped, ErrValidation)
	assert.ErrorIs(t, wrapped, ErrUnsupportedInput)
}

func TestExtractionError(t *testing.T) {
	cause := errors.New("status 500: internal")
	err := newExtractionError(cause)

	assert.Equal(t, "Failed to parse signature with AI. Please try again.", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrValidation)
}

func TestSerializationError(t *testing.T) {
	cause := errors.New("broken pipe")
	err := &SerializationError{Cause: cause}

	assert.EqualError(t, err, "an unexpected error occurred while generating the file")
	assert.ErrorIs(t, err, cause)
}
