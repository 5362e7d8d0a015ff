package formpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formstate/pkg/formpath"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want formpath.Path
	}{
		{"single key", "val", formpath.New("val")},
		{"dotted keys", "user.name", formpath.New("user", "name")},
		{"index", "items[2]", formpath.New("items", 2)},
		{"mixed", "a.b[0].c", formpath.New("a", "b", 0, "c")},
		{"consecutive indexes", "grid[1][3]", formpath.New("grid", 1, 3)},
		{"leading index", "[0].name", formpath.New(0, "name")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formpath.Parse(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		_, err := formpath.Parse("  ")
		assert.ErrorIs(t, err, formpath.ErrEmptyPath)
	})

	for _, in := range []string{"a.", ".a", "a..b", "a[", "a[x]", "a]", "a.[0]"} {
		t.Run(in, func(t *testing.T) {
			_, err := formpath.Parse(in)
			assert.ErrorIs(t, err, formpath.ErrInvalidPath)
		})
	}

	t.Run("negative index", func(t *testing.T) {
		_, err := formpath.Parse("a[-1]")
		assert.ErrorIs(t, err, formpath.ErrNegativeIndex)
	})
}

func TestPath_Relations(t *testing.T) {
	t.Parallel()

	user := formpath.MustParse("user")
	name := formpath.MustParse("user.name")
	tag := formpath.MustParse("user.tags[0]")

	assert.True(t, name.HasPrefix(user))
	assert.False(t, user.HasPrefix(name))
	assert.True(t, formpath.Overlaps(user, tag))
	assert.True(t, formpath.Overlaps(tag, user))
	assert.False(t, formpath.Overlaps(name, tag))

	t.Run("numeric key matches index", func(t *testing.T) {
		assert.True(t, formpath.MustParse("items.0").Equal(formpath.MustParse("items[0]")))
	})
}

func TestNew_PanicsOnUnsupportedSegment(t *testing.T) {
	assert.Panics(t, func() { formpath.New(1.5) })
}

func TestPath_Normalize(t *testing.T) {
	t.Parallel()

	p := formpath.MustParse("items.0.name")
	assert.Equal(t, "items.0.name", p.String())
	assert.Equal(t, "items[0].name", p.Normalize().String())
	assert.True(t, p.Equal(formpath.MustParse("items[0].name")))
	assert.Equal(t, "items.-1", formpath.MustParse("items.-1").Normalize().String())
}
