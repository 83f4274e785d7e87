package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "goal"}
		err2 := &NotFoundError{Entity: "goal"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "goal"}
		err2 := &NotFoundError{Entity: "measure"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrGoalNotFound, ErrGoalNotFound))
		assert.False(t, errors.Is(ErrGoalNotFound, ErrMeasureNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrWeeklyRecordNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", ErrTeamNotFound)))
		assert.False(t, IsNotFound(ErrTeamExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "team already exists with this name", ErrTeamExists.Error())
		assert.Equal(t, "user already exists with this email", ErrUserExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team"}
		assert.Equal(t, "team already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user", Context: "somewhere else"}
		assert.True(t, errors.Is(err, ErrUserExists))
		assert.False(t, errors.Is(err, ErrTeamExists))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrTeamExists))
		assert.False(t, IsAlreadyExists(ErrTeamNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("email", "invalid")))
		assert.True(t, IsValidation(ErrNoMeasures))
		assert.True(t, IsValidation(ErrInvalidWeekStart))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestAmbiguousMatchError(t *testing.T) {
	err := NewAmbiguousMatchError("measure", 3)
	assert.Equal(t, "measure identity is ambiguous: 3 rows match", err.Error())
	assert.True(t, errors.Is(err, ErrAmbiguousMeasure))
	assert.True(t, IsAmbiguous(err))
	assert.False(t, IsAmbiguous(ErrMeasureNotFound))
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStoreError("insert", "EQUIPES_4DX", cause)

	assert.Equal(t, "store insert on EQUIPES_4DX failed: connection refused", err.Error())
	assert.True(t, IsStore(err))
	assert.True(t, IsStore(fmt.Errorf("create team: %w", err)))
	assert.ErrorIs(t, err, cause)
	assert.False(t, IsStore(cause))
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewConfigurationError", func(t *testing.T) {
		err := NewConfigurationError("bad driver")
		assert.Equal(t, "bad driver", err.Error())
		assert.True(t, IsConfiguration(err))
	})

	t.Run("Authentication errors", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrMissingToken))
		assert.True(t, IsAuthentication(ErrInvalidToken))
		assert.True(t, IsAuthentication(ErrUnknownUser))
		assert.False(t, IsAuthentication(ErrTeamExists))
	})
}
