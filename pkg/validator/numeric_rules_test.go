package validator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formstate/pkg/validator"
)

func TestNumber(t *testing.T) {
	t.Parallel()

	t.Run("plain number check", func(t *testing.T) {
		rule := validator.Rule(validator.RuleNumber)
		assert.True(t, passes(t, rule, 3))
		assert.True(t, passes(t, rule, 2.5))
		assert.True(t, passes(t, rule, "42"))
		assert.False(t, passes(t, rule, "forty two"))

		failures, err := check(t, rule, "x")
		require.NoError(t, err)
		assert.Equal(t, "must be a number", failures[0].Message)
	})

	t.Run("bounds", func(t *testing.T) {
		rule := validator.Rule(validator.RuleNumber).
			With(validator.ParamGreaterThanOrEqualTo, 18).
			With(validator.ParamLessThan, 65)
		assert.True(t, passes(t, rule, 18))
		assert.True(t, passes(t, rule, "64.9"))
		assert.False(t, passes(t, rule, 17))
		assert.False(t, passes(t, rule, int64(65)))

		failures, err := check(t, rule, 10)
		require.NoError(t, err)
		assert.Equal(t, "must be greater than or equal to 18 and less than 65", failures[0].Message)
	})

	t.Run("empty input counts as absent", func(t *testing.T) {
		rule := validator.Rule(validator.RuleNumber).With(validator.ParamGreaterThan, 0)
		assert.True(t, passes(t, rule, ""))
		assert.True(t, passes(t, rule, nil))
	})

	t.Run("non finite values are not numbers", func(t *testing.T) {
		rule := validator.Rule(validator.RuleNumber)
		for _, v := range []any{"NaN", "nan", "Inf", "+Inf", "-Infinity", math.NaN(), math.Inf(1), float32(math.Inf(-1))} {
			assert.False(t, passes(t, rule, v), "%v", v)
		}

		bounded := validator.Rule(validator.RuleNumber).With(validator.ParamLessThan, 10)
		assert.False(t, passes(t, bounded, "-Inf"))
	})

	t.Run("non finite limits are configuration errors", func(t *testing.T) {
		for _, limit := range []any{"NaN", math.Inf(1)} {
			rule := validator.Rule(validator.RuleNumber).With(validator.ParamGreaterThan, limit)
			_, err := check(t, rule, 5)
			assert.ErrorIs(t, err, validator.ErrInvalidParam, "%v", limit)
		}
	})

	t.Run("non numeric types are configuration errors", func(t *testing.T) {
		_, err := check(t, validator.Rule(validator.RuleNumber), true)
		assert.ErrorIs(t, err, validator.ErrUnsupportedValue)
	})
}
