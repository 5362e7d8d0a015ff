package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formstate/pkg/form"
	"github.com/dmitrymomot/formstate/pkg/validator"
)

func TestDependantPaths(t *testing.T) {
	t.Parallel()

	t.Run("derived bound follows the dependant value", func(t *testing.T) {
		f := form.MustNew(
			form.WithInitialData(map[string]any{
				"val":             []any{"a", "b"},
				"comparisonValue": 2,
			}),
			form.WithRules(form.Binding{
				Path: "val",
				RuleSet: []validator.RuleSpec{
					validator.Rule(validator.RuleRequired),
					validator.Rule(validator.RuleListSize).With(validator.ParamEqualTo, func(data map[string]any) any {
						return data["comparisonValue"]
					}),
				},
				DependantPaths: []string{"comparisonValue"},
			}),
		)
		require.True(t, f.IsValid())

		require.NoError(t, f.SetPathValue("comparisonValue", 3))
		assert.False(t, f.IsValid())
		assert.Equal(t, "must have exactly 3 items", f.ValidationError().Get("val"))

		require.NoError(t, f.SetPathValue("comparisonValue", 2))
		assert.True(t, f.IsValid())
	})

	t.Run("re-evaluation fans out transitively and only to affected bindings", func(t *testing.T) {
		calls := map[string]int{}
		counted := func(name string) validator.RuleSpec {
			return validator.Rule("tick").With("name", func(map[string]any) any {
				calls[name]++
				return name
			})
		}

		f := form.MustNew(
			form.WithRule("tick", validator.Definition{
				Check: func(any, map[string]any, map[string]any) (bool, error) { return true, nil },
			}),
			form.WithRules(
				form.Bind("items", counted("items")),
				form.Bind("total", counted("total")).DependsOn("items"),
				form.Bind("summary", counted("summary")).DependsOn("total"),
				form.Bind("other", counted("other")),
			),
		)
		assert.Equal(t, map[string]int{"items": 1, "total": 1, "summary": 1, "other": 1}, calls)

		require.NoError(t, f.SetPathValue("items[0]", 5))
		assert.Equal(t, map[string]int{"items": 2, "total": 2, "summary": 2, "other": 1}, calls)

		require.NoError(t, f.SetPathValue("other", "x"))
		assert.Equal(t, map[string]int{"items": 2, "total": 2, "summary": 2, "other": 2}, calls)

		require.NoError(t, f.SetPathValue("unbound", "x"))
		assert.Equal(t, map[string]int{"items": 2, "total": 2, "summary": 2, "other": 2}, calls)
	})

	t.Run("writes reach ancestors and descendants in any path notation", func(t *testing.T) {
		calls := map[string]int{}
		counted := func(name string) validator.RuleSpec {
			return validator.Rule("tick").With("name", func(map[string]any) any {
				calls[name]++
				return name
			})
		}

		f := form.MustNew(
			form.WithRule("tick", validator.Definition{
				Check: func(any, map[string]any, map[string]any) (bool, error) { return true, nil },
			}),
			form.WithRules(
				form.Bind("rows[0].name", counted("first")),
				form.Bind("rows.1.name", counted("second")),
				form.Bind("rows", counted("rows")),
				form.Bind("meta.rows", counted("meta")),
				form.Bind("summary", counted("summary")).DependsOn("rows.0"),
			),
		)
		assert.Equal(t, map[string]int{"first": 1, "second": 1, "rows": 1, "meta": 1, "summary": 1}, calls)

		require.NoError(t, f.SetPathValue("rows.0.name", "x"))
		assert.Equal(t, map[string]int{"first": 2, "second": 1, "rows": 2, "meta": 1, "summary": 2}, calls)

		require.NoError(t, f.SetPathValue("rows", []any{}))
		assert.Equal(t, map[string]int{"first": 3, "second": 2, "rows": 3, "meta": 1, "summary": 3}, calls)

		require.NoError(t, f.SetPathValue("meta", map[string]any{}))
		assert.Equal(t, map[string]int{"first": 3, "second": 2, "rows": 3, "meta": 2, "summary": 3}, calls)
	})

	t.Run("nested dependant path", func(t *testing.T) {
		f := form.MustNew(
			form.WithInitialData(map[string]any{
				"password": "s3cret",
				"confirm":  "s3cret",
			}),
			form.WithRules(
				form.Bind("confirm", validator.Rule(validator.RuleEquality).With(validator.ParamEqualTo, func(data map[string]any) any {
					return data["password"]
				})).DependsOn("password"),
			),
		)
		require.True(t, f.IsValid())

		require.NoError(t, f.SetPathValue("password", "changed"))
		assert.Equal(t, "does not match", f.ValidationError().Get("confirm"))
	})
}

func TestDependencyCycles(t *testing.T) {
	t.Parallel()

	t.Run("mutual dependency", func(t *testing.T) {
		f := form.MustNew(form.WithRules(form.Bind("a", required)))

		err := f.SetRules([]form.Binding{
			form.Bind("start", required).DependsOn("end"),
			form.Bind("end", required).DependsOn("start"),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, form.ErrDependencyCycle)
		assert.ErrorIs(t, err, form.ErrConfiguration)
		assert.Contains(t, err.Error(), "start -> end -> start")

		require.Len(t, f.Rules(), 1)
		assert.Equal(t, "a", f.Rules()[0].Path)
	})

	t.Run("longer cycle", func(t *testing.T) {
		_, err := form.New(form.WithRules(
			form.Bind("a", required).DependsOn("c"),
			form.Bind("b", required).DependsOn("a"),
			form.Bind("c", required).DependsOn("b"),
		))
		assert.ErrorIs(t, err, form.ErrDependencyCycle)
	})

	t.Run("self dependency", func(t *testing.T) {
		_, err := form.New(form.WithRules(form.Bind("a", required).DependsOn("a")))
		assert.ErrorIs(t, err, form.ErrDependencyCycle)
	})

	t.Run("cycle through nested paths", func(t *testing.T) {
		_, err := form.New(form.WithRules(
			form.Bind("range.start", required).DependsOn("range"),
		))
		assert.ErrorIs(t, err, form.ErrDependencyCycle)
	})

	t.Run("chains and diamonds are fine", func(t *testing.T) {
		_, err := form.New(form.WithRules(
			form.Bind("a", required),
			form.Bind("b", required).DependsOn("a"),
			form.Bind("c", required).DependsOn("a"),
			form.Bind("d", required).DependsOn("b", "c"),
		))
		assert.NoError(t, err)
	})
}
