package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formstate/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "textVal1", Rule: "required", Message: "field is required"})
		assert.Equal(t, "validation failed: textVal1: field is required", errs.Error())
	})

	t.Run("joins multiple errors in order", func(t *testing.T) {
		errs := validator.ValidationErrors{
			{Field: "textVal2", Message: "must be at least 7 characters long"},
			{Field: "val3", Message: "must have exactly 2 items"},
		}
		assert.Equal(t,
			"validation failed: textVal2: must be at least 7 characters long; val3: must have exactly 2 items",
			errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "textVal2", Rule: "required", Message: "field is required"},
		{Field: "textVal2", Rule: "length", Message: "must be at least 7 characters long"},
		{Field: "textVal4", Rule: "url", Message: "must be a valid URL"},
	}

	t.Run("Failed", func(t *testing.T) {
		assert.True(t, errs.Failed("length"))
		assert.False(t, errs.Failed("email"))
	})

	t.Run("Rules and Messages keep order", func(t *testing.T) {
		assert.Equal(t, []string{"required", "length", "url"}, errs.Rules())
		assert.Equal(t, []string{"field is required", "must be at least 7 characters long", "must be a valid URL"}, errs.Messages())
	})

	t.Run("Fields are unique and ordered", func(t *testing.T) {
		assert.Equal(t, []string{"textVal2", "textVal4"}, errs.Fields())
	})

	t.Run("IsEmpty", func(t *testing.T) {
		assert.False(t, errs.IsEmpty())
		assert.True(t, validator.ValidationErrors{}.IsEmpty())
	})

	t.Run("String without a field is the message", func(t *testing.T) {
		assert.Equal(t, "boom", validator.ValidationError{Message: "boom"}.String())
		assert.Equal(t, "a: boom", validator.ValidationError{Field: "a", Message: "boom"}.String())
	})
}

func TestAsValidationErrors(t *testing.T) {
	errs := validator.ValidationErrors{{Field: "val", Message: "field is required"}}

	t.Run("unwraps a wrapped error", func(t *testing.T) {
		got, ok := validator.AsValidationErrors(fmt.Errorf("submit: %w", errs))
		assert.True(t, ok)
		assert.Equal(t, errs, got)
	})

	t.Run("rejects other errors", func(t *testing.T) {
		_, ok := validator.AsValidationErrors(errors.New("boom"))
		assert.False(t, ok)
		_, ok = validator.AsValidationErrors(nil)
		assert.False(t, ok)
	})
}

func TestConfigError(t *testing.T) {
	err := &validator.ConfigError{Field: "val", Rule: "length", Err: validator.ErrUnsupportedValue}

	assert.Equal(t, `field "val" rule "length": unsupported value type`, err.Error())
	assert.ErrorIs(t, err, validator.ErrUnsupportedValue)
	assert.True(t, validator.IsConfigError(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, validator.IsConfigError(validator.ErrUnsupportedValue))

	noRule := &validator.ConfigError{Field: "val", Err: validator.ErrRulePanicked}
	assert.Equal(t, `field "val": rule panicked`, noRule.Error())
}
