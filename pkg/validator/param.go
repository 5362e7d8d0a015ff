package validator

import (
	"fmt"
	"maps"
	"slices"
)

// Param is a rule parameter: either a literal value or a value derived from the
// whole form data. Derived parameters are re-evaluated on every validation pass.
type Param struct {
	literal any
	derive  func(data map[string]any) (any, error)
}

// Literal wraps a fixed parameter value.
func Literal(v any) Param {
	return Param{literal: v}
}

// Derived wraps a function computing the parameter from the current form data.
func Derived(fn func(data map[string]any) any) Param {
	if fn == nil {
		return Param{}
	}
	return Param{derive: func(data map[string]any) (any, error) {
		return fn(data), nil
	}}
}

// DerivedE is like Derived for functions that can fail.
func DerivedE(fn func(data map[string]any) (any, error)) Param {
	return Param{derive: fn}
}

// IsDerived reports whether the parameter is computed from form data.
func (p Param) IsDerived() bool {
	return p.derive != nil
}

// Resolve returns the parameter value for the given form data.
func (p Param) Resolve(data map[string]any) (v any, err error) {
	if p.derive == nil {
		return p.literal, nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: derived parameter: %v", ErrRulePanicked, r)
		}
	}()
	return p.derive(data)
}

// Params maps parameter names to their values.
type Params map[string]Param

// RuleSpec names a registered rule together with its parameters.
type RuleSpec struct {
	Name   string
	Params Params
}

// Rule returns a RuleSpec without parameters.
func Rule(name string) RuleSpec {
	return RuleSpec{Name: name}
}

// With returns a copy of the rule with the parameter set. Values may be a Param,
// a func(map[string]any) any, a func(map[string]any) (any, error), or a literal.
func (r RuleSpec) With(key string, v any) RuleSpec {
	params := make(Params, len(r.Params)+1)
	maps.Copy(params, r.Params)

	switch t := v.(type) {
	case Param:
		params[key] = t
	case func(map[string]any) any:
		params[key] = Derived(t)
	case func(map[string]any) (any, error):
		params[key] = DerivedE(t)
	default:
		params[key] = Literal(v)
	}

	return RuleSpec{Name: r.Name, Params: params}
}

// Resolve evaluates every parameter against the form data, in name order so that
// failures are reported deterministically.
func (r RuleSpec) Resolve(data map[string]any) (map[string]any, error) {
	resolved := make(map[string]any, len(r.Params))
	for _, key := range slices.Sorted(maps.Keys(r.Params)) {
		v, err := r.Params[key].Resolve(data)
		if err != nil {
			return nil, fmt.Errorf("param %q: %w", key, err)
		}
		resolved[key] = v
	}
	return resolved, nil
}

// String renders the rule for logs: the name followed by its literal parameters.
func (r RuleSpec) String() string {
	if len(r.Params) == 0 {
		return r.Name
	}
	s := r.Name + "{"
	for i, key := range slices.Sorted(maps.Keys(r.Params)) {
		if i > 0 {
			s += ", "
		}
		if p := r.Params[key]; p.IsDerived() {
			s += key + ": <derived>"
		} else {
			s += fmt.Sprintf("%s: %v", key, p.literal)
		}
	}
	return s + "}"
}
