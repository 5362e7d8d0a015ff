package form

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration wraps every error caused by a wrong rule or schema
	// definition, as opposed to invalid user data.
	ErrConfiguration = errors.New("form configuration error")

	// ErrDependencyCycle is returned when re-evaluating a binding would, through
	// dependant paths, trigger its own re-evaluation.
	ErrDependencyCycle = errors.New("dependant paths form a cycle")

	// ErrInvalidBinding is returned for bindings with an unusable path.
	ErrInvalidBinding = errors.New("invalid rule binding")
)

func configError(err error) error {
	return fmt.Errorf("%w: %w", ErrConfiguration, err)
}

// IsConfigurationError reports whether err was caused by a configuration problem.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}
