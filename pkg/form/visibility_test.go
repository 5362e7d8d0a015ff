package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formstate/pkg/config"
	"github.com/dmitrymomot/formstate/pkg/form"
	"github.com/dmitrymomot/formstate/pkg/validator"
)

func TestVisibility(t *testing.T) {
	t.Parallel()

	t.Run("live validation by default", func(t *testing.T) {
		f := form.MustNew(form.WithRules(form.Bind("val", required)))
		assert.True(t, f.ValidationError().Has("val"))
	})

	t.Run("hide before submit", func(t *testing.T) {
		f := form.MustNew(
			form.WithHideBeforeSubmit(true),
			form.WithRules(form.Bind("val", required), form.Bind("other", required)),
		)
		assert.False(t, f.IsValid())
		assert.Empty(t, f.ValidationError())

		require.NoError(t, f.SetPathIsBlurred("val"))
		assert.Empty(t, f.ValidationError(), "blur alone does not reveal")

		assert.False(t, f.SetFormIsSubmitted())
		assert.False(t, f.IsSubmitted())
		assert.True(t, f.ValidationError().Has("val"))
		assert.True(t, f.ValidationError().Has("other"))
		assert.True(t, f.IsBlurred("val"))
		assert.True(t, f.IsBlurred("other"))
	})

	t.Run("show after blur", func(t *testing.T) {
		f := form.MustNew(
			form.WithShowAfterBlur(true),
			form.WithRules(form.Bind("a", required), form.Bind("b[0]", required)),
		)
		assert.Empty(t, f.ValidationError())

		require.NoError(t, f.SetPathIsBlurred("a"))
		assert.True(t, f.ValidationError().Has("a"))
		assert.False(t, f.ValidationError().Has("b[0]"))

		assert.False(t, f.SetFormIsSubmitted())
		assert.Equal(t, []string{"a", "b[0]"}, f.ValidationError().Fields())
	})

	t.Run("blur does not re-evaluate", func(t *testing.T) {
		calls := 0
		f := form.MustNew(
			form.WithRules(form.Bind("a", validator.Rule(validator.RuleRequired).With("probe", func(map[string]any) any {
				calls++
				return nil
			}))),
		)
		require.NoError(t, f.SetPathIsBlurred("a"))
		assert.Equal(t, 1, calls)
	})

	t.Run("blur accepts any notation", func(t *testing.T) {
		f := form.MustNew()
		require.NoError(t, f.SetPathIsBlurred("items[0].name"))
		assert.True(t, f.IsBlurred("items[0].name"))
		assert.False(t, f.IsBlurred("items"))
		assert.False(t, f.IsBlurred("items[0"))
		assert.True(t, f.IsBlurred("items.0.name"))
		assert.Equal(t, []string{"items[0].name"}, f.BlurredPaths())
		assert.ErrorIs(t, f.SetPathIsBlurred(""), form.ErrConfiguration)
	})
}

func TestReportPolicy(t *testing.T) {
	t.Parallel()

	rules := form.Bind("pw",
		validator.Rule(validator.RuleLength).With(validator.ParamGreaterThanOrEqualTo, 8),
		validator.Rule(validator.RuleRegex).With(validator.ParamRegex, `\d`),
	)
	data := map[string]any{"pw": "abc"}

	t.Run("first failure", func(t *testing.T) {
		f := form.MustNew(form.WithInitialData(data), form.WithRules(rules))
		errs := f.ValidationError().Errors("pw")
		require.Len(t, errs, 1)
		assert.Equal(t, "length", errs[0].Rule)
	})

	t.Run("all failures", func(t *testing.T) {
		f := form.MustNew(
			form.WithReportPolicy(validator.AllFailures),
			form.WithInitialData(data),
			form.WithRules(rules),
		)
		errs := f.ValidationError().Errors("pw")
		require.Len(t, errs, 2)
		assert.Equal(t, "length", errs[0].Rule)
		assert.Equal(t, "regex", errs[1].Rule)
	})

	t.Run("first failure across bindings on one path", func(t *testing.T) {
		f := form.MustNew(
			form.WithInitialData(map[string]any{"pw": ""}),
			form.WithRules(
				form.Bind("pw", required),
				form.Bind("pw", validator.Rule(validator.RuleLength).With(validator.ParamGreaterThanOrEqualTo, 8)),
			),
		)
		errs := f.ValidationError().Errors("pw")
		require.Len(t, errs, 1)
		assert.Equal(t, "required", errs[0].Rule)
	})
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("FORM_HIDE_BEFORE_SUBMIT", "true")
	t.Setenv("FORM_SHOW_AFTER_BLUR", "false")
	t.Setenv("FORM_FOCUS_TO_ERROR_AFTER_SUBMIT", "true")
	t.Setenv("FORM_REPORT_ALL_FAILURES", "true")

	var cfg form.Config
	require.NoError(t, config.ForceReloadConfig(&cfg))
	assert.Equal(t, form.Config{
		HideBeforeSubmit:        true,
		FocusToErrorAfterSubmit: true,
		ReportAllFailures:       true,
	}, cfg)
	assert.Equal(t, validator.AllFailures, cfg.Policy())

	var focused string
	f := form.MustNew(
		form.WithConfig(cfg),
		form.WithElementFocusHandler(func(id string) { focused = id }),
		form.WithRules(form.Bind("val", required)),
	)
	assert.Equal(t, cfg, f.Config())
	assert.Empty(t, f.ValidationError())
	assert.False(t, f.SetFormIsSubmitted())
	assert.Equal(t, "val", focused)
}
