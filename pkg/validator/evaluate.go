package validator

import (
	"fmt"
	"maps"
)

// Policy selects how many failures are reported for one field.
type Policy int

const (
	// FirstFailure stops at the first failing rule of a field.
	FirstFailure Policy = iota
	// AllFailures checks every rule of a field and reports each failure in order.
	AllFailures
)

func (p Policy) String() string {
	if p == AllFailures {
		return "all"
	}
	return "first"
}

// messageParam overrides the generated message of any rule.
const messageParam = "message"

// Evaluate runs specs in order against value. Parameters are resolved from data
// before each check. The returned slice is empty when every rule passes.
//
// A misconfigured rule stops evaluation of the field and is returned as a
// *ConfigError; failures found before it are discarded.
func (r *Registry) Evaluate(field string, specs []RuleSpec, value any, data map[string]any, policy Policy) (ValidationErrors, error) {
	var failures ValidationErrors

	for _, spec := range specs {
		def, ok := r.defs[spec.Name]
		if !ok {
			return nil, &ConfigError{Field: field, Rule: spec.Name, Err: ErrUnknownRule}
		}

		params, err := spec.Resolve(data)
		if err != nil {
			return nil, &ConfigError{Field: field, Rule: spec.Name, Err: err}
		}

		passed, err := runCheck(def.Check, value, params, data)
		if err != nil {
			return nil, &ConfigError{Field: field, Rule: spec.Name, Err: err}
		}
		if passed {
			continue
		}

		failures.Add(newFailure(field, spec.Name, def, params))
		if policy == FirstFailure {
			break
		}
	}

	return failures, nil
}

func runCheck(check Check, value any, params, data map[string]any) (passed bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrRulePanicked, rec)
		}
	}()
	return check(value, params, data)
}

func newFailure(field, rule string, def Definition, params map[string]any) ValidationError {
	values := make(map[string]any, len(params)+1)
	maps.Copy(values, params)
	delete(values, messageParam)
	values["field"] = field

	msg, _ := params[messageParam].(string)
	if msg == "" && def.Message != nil {
		msg = def.Message(params)
	}
	if msg == "" {
		msg = "is invalid"
	}

	return ValidationError{
		Field:             field,
		Rule:              rule,
		Message:           msg,
		TranslationKey:    def.TranslationKey,
		TranslationValues: values,
	}
}
