package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "application"}
		assert.Equal(t, "application not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "application"}
		err2 := &NotFoundError{Entity: "application"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "application"}
		err2 := &NotFoundError{Entity: "region"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrAPIKeyNotFound, ErrAPIKeyNotFound))
		assert.False(t, errors.Is(ErrAPIKeyNotFound, ErrApplicationNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrAPIKeyNotFound))
		assert.False(t, IsNotFound(ErrApplicationExists))
	})

	t.Run("IsNotFound through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("lookup failed: %w", ErrDeploymentNotFound)
		assert.True(t, IsNotFound(wrapped))
		assert.True(t, errors.Is(wrapped, ErrDeploymentNotFound))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "application", Context: "with this name"}
		assert.Equal(t, "application already exists with this name", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "application"}
		assert.Equal(t, "application already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "application", Context: "with this name"}
		err2 := &AlreadyExistsError{Entity: "application", Context: "with this name"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrApplicationExists))
		assert.False(t, IsAlreadyExists(ErrApplicationNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "date", Message: "must be YYYY-MM-DD"}
		assert.Equal(t, "validation error: date - must be YYYY-MM-DD", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "missing required fields"}
		assert.Equal(t, "validation error: missing required fields", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("date", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrApplicationNotFound))
	})
}

func TestAuthenticationError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "Invalid or missing API key", ErrInvalidAPIKey.Error())
	})

	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidAPIKey))
		assert.False(t, IsAuthentication(ErrAPIKeyNotFound))
	})
}

func TestConstructors(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("gadget")
		assert.Equal(t, "gadget not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("gadget", "with this serial")
		assert.Equal(t, "gadget already exists with this serial", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})
}
