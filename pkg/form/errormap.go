package form

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/formstate/pkg/formpath"
	"github.com/dmitrymomot/formstate/pkg/validator"
)

// ErrorMap holds validation failures keyed by canonical path. Under the
// FirstFailure policy each path holds at most one failure.
type ErrorMap map[string][]validator.ValidationError

// Get returns the first message for path, or "" when the path has no failure.
func (m ErrorMap) Get(path string) string {
	errs := m.Errors(path)
	if len(errs) == 0 {
		return ""
	}
	return errs[0].Message
}

// Has reports whether path has a failure.
func (m ErrorMap) Has(path string) bool {
	return len(m.Errors(path)) > 0
}

// Errors returns every failure for path. Path may be in any accepted notation.
func (m ErrorMap) Errors(path string) []validator.ValidationError {
	if errs, ok := m[path]; ok {
		return errs
	}
	p, err := formpath.Parse(path)
	if err != nil {
		return nil
	}
	return m[p.Normalize().String()]
}

// Fields returns the failing paths in sorted order.
func (m ErrorMap) Fields() []string {
	return slices.Sorted(maps.Keys(m))
}

// Messages returns the first message of every failing path.
func (m ErrorMap) Messages() map[string]string {
	out := make(map[string]string, len(m))
	for path, errs := range m {
		if len(errs) > 0 {
			out[path] = errs[0].Message
		}
	}
	return out
}

// Flatten returns all failures ordered by path.
func (m ErrorMap) Flatten() validator.ValidationErrors {
	var out validator.ValidationErrors
	for _, path := range m.Fields() {
		out = append(out, m[path]...)
	}
	return out
}
