package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formstate/pkg/form"
	"github.com/dmitrymomot/formstate/pkg/validator"
)

func TestConfigurationErrorsAreIsolated(t *testing.T) {
	t.Parallel()

	t.Run("unsupported value type", func(t *testing.T) {
		f, err := form.New(
			form.WithInitialData(map[string]any{"age": 12, "name": ""}),
			form.WithRules(
				form.Bind("age", validator.Rule(validator.RuleLength).With(validator.ParamGreaterThanOrEqualTo, 1)),
				form.Bind("name", required),
			),
		)
		require.NotNil(t, f, "evaluation problems leave a usable form")
		assert.ErrorIs(t, err, form.ErrConfiguration)
		assert.ErrorIs(t, err, validator.ErrUnsupportedValue)
		assert.True(t, validator.IsConfigError(err))

		assert.False(t, f.IsValid())
		assert.Contains(t, f.ConfigErrors(), "age")
		assert.ErrorIs(t, f.ConfigErrors()["age"], validator.ErrUnsupportedValue)
		assert.True(t, f.ValidationError().Has("name"))
		assert.False(t, f.ValidationError().Has("age"))

		require.NoError(t, f.SetPathValue("name", "Ann"), "unrelated writes are not affected")
		assert.False(t, f.IsValid())

		err = f.SetPathValue("age", 13)
		assert.ErrorIs(t, err, form.ErrConfiguration)
		assert.ErrorIs(t, err, validator.ErrUnsupportedValue)
		v, _ := f.Value("age")
		assert.Equal(t, 13, v, "the write still applies")

		require.NoError(t, f.SetPathValue("age", "abc"))
		assert.Empty(t, f.ConfigErrors())
		assert.True(t, f.IsValid())
	})

	t.Run("panicking rule", func(t *testing.T) {
		f := form.MustNew(
			form.WithRule("explode", validator.Definition{
				Check: func(any, map[string]any, map[string]any) (bool, error) { panic("kaboom") },
			}),
			form.WithRules(
				form.Bind("a", validator.Rule("explode")),
				form.Bind("b", required),
			),
		)
		assert.True(t, f.AllErrors().Has("b"))
		assert.ErrorIs(t, f.ConfigErrors()["a"], validator.ErrRulePanicked)

		err := f.ResetForm()
		assert.ErrorIs(t, err, form.ErrConfiguration)
		assert.ErrorIs(t, err, validator.ErrRulePanicked)

		assert.False(t, f.SetFormIsSubmitted())
	})

	t.Run("panicking derived parameter", func(t *testing.T) {
		f := form.MustNew(form.WithRules(
			form.Bind("n", validator.Rule(validator.RuleNumber).With(validator.ParamGreaterThan, func(data map[string]any) any {
				return data["limits"].(map[string]any)["min"]
			})).DependsOn("limits"),
		))
		assert.ErrorIs(t, f.ConfigErrors()["n"], validator.ErrRulePanicked)

		require.NoError(t, f.SetPathValue("limits.min", 1))
		assert.Empty(t, f.ConfigErrors())
	})
}

func TestCustomRegistry(t *testing.T) {
	t.Parallel()

	reg := validator.NewRegistry()
	require.NoError(t, reg.Register("even", validator.Definition{
		Check: func(value any, _, _ map[string]any) (bool, error) {
			n, _ := value.(int)
			return n%2 == 0, nil
		},
		Message: func(map[string]any) string { return "must be even" },
	}))

	f := form.MustNew(
		form.WithRegistry(reg),
		form.WithInitialData(map[string]any{"n": 3}),
		form.WithRules(form.Bind("n", validator.Rule("even"))),
	)
	assert.Equal(t, "must be even", f.ValidationError().Get("n"))

	require.NoError(t, f.SetPathValue("n", 4))
	assert.True(t, f.IsValid())
}
