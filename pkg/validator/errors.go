package validator

import (
	"errors"
	"fmt"
)

// Configuration errors. These describe a wrong rule definition, never bad user
// data, and are returned to the caller instead of being recorded as failures.
var (
	// ErrUnknownRule is returned when a rule name has no registered definition.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrInvalidDefinition is returned when registering a rule without a name or check.
	ErrInvalidDefinition = errors.New("invalid rule definition")

	// ErrInvalidParam is returned when a resolved parameter has the wrong type.
	ErrInvalidParam = errors.New("invalid rule parameter")

	// ErrUnsupportedValue is returned when a rule receives a value type it cannot check,
	// such as a number for the length rule.
	ErrUnsupportedValue = errors.New("unsupported value type")

	// ErrRulePanicked is returned when a rule check or a derived parameter panics.
	ErrRulePanicked = errors.New("rule panicked")
)

// ConfigError ties a configuration error to the field and rule that produced it.
type ConfigError struct {
	Field string
	Rule  string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Rule == "" {
		return fmt.Sprintf("field %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("field %q rule %q: %v", e.Field, e.Rule, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError reports whether err carries a *ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
