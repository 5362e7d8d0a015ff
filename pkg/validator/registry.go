package validator

import (
	"fmt"
	"maps"
	"slices"
)

// Check reports whether value satisfies a rule. params holds the resolved rule
// parameters and data the whole form data. A returned error means the rule is
// misconfigured for this value and is reported as a configuration error.
type Check func(value any, params map[string]any, data map[string]any) (bool, error)

// Definition describes a named rule.
type Definition struct {
	Check          Check
	Message        func(params map[string]any) string
	TranslationKey string
}

// Registry holds the named rule definitions available to a form.
type Registry struct {
	defs map[string]Definition
}

// NewRegistry returns a registry with every built-in rule registered.
func NewRegistry() *Registry {
	r := &Registry{defs: make(map[string]Definition, len(builtins))}
	maps.Copy(r.defs, builtins)
	return r
}

// Register adds or replaces a rule definition.
func (r *Registry) Register(name string, def Definition) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidDefinition)
	}
	if def.Check == nil {
		return fmt.Errorf("%w: rule %q has no check", ErrInvalidDefinition, name)
	}
	if def.TranslationKey == "" {
		def.TranslationKey = "validation." + name
	}
	r.defs[name] = def
	return nil
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (Definition, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// Names returns the registered rule names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.defs))
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	return &Registry{defs: maps.Clone(r.defs)}
}

// Validate checks that every spec names a registered rule.
func (r *Registry) Validate(specs []RuleSpec) error {
	for _, spec := range specs {
		if _, ok := r.defs[spec.Name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownRule, spec.Name)
		}
	}
	return nil
}
