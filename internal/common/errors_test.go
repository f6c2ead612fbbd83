package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError_MessageAndSentinel(t *testing.T) {
	err := NewNotFound("Contact: Ivan")

	assert.Equal(t, "Contact: Ivan not found", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrAlreadyExists)
}

func TestAlreadyExistsError_MessageAndSentinel(t *testing.T) {
	err := NewAlreadyExists("Phone")

	assert.Equal(t, "Phone already exists", err.Error())
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestValidationError_ReasonIsMessage(t *testing.T) {
	err := NewValidation("phone", KindFormat, "Phone should start with +380")

	assert.Equal(t, "Phone should start with +380", err.Error())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTypedErrors_SurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("add contact: %w", NewValidation("name", KindEmpty, "Name should not be empty"))

	var ve *ValidationError
	require.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, "name", ve.Field)
	assert.Equal(t, KindEmpty, ve.Kind)
	assert.ErrorIs(t, wrapped, ErrValidation)
}

func TestUsagef(t *testing.T) {
	err := Usagef("%s command requires %d arguments", "add", 2)
	assert.Equal(t, "add command requires 2 arguments", err.Error())
}
