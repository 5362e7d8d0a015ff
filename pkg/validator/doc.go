// Package validator evaluates named, declarative rules against form values.
//
// Rules are described by data rather than code: a RuleSpec names a registered
// rule and carries its parameters. A parameter is either a Literal or a value
// Derived from the whole form data, which lets a rule's threshold follow another
// field. Derived parameters are resolved again on every evaluation, never cached.
//
// # Architecture
//
// A Registry maps rule names to Definitions (a Check function plus message and
// translation metadata). NewRegistry pre-registers the built-in rules; callers
// add their own with Register. Each source file groups a family of checks
// (`collection_rules.go`, `string_rules.go`, `format_rules.go`, etc.).
//
// Built-in rules:
//   - required  – fails on nil, missing, "" and empty lists; 0 and false pass
//   - length    – string length in characters or list length, bounded
//   - listSize  – list length only, bounded
//   - number    – numeric value or numeric string, bounded
//   - url       – absolute URL with scheme and host
//   - email     – bare email address
//   - equality  – equal to the equalTo parameter
//   - regex     – matches the regex parameter
//
// Bounded rules accept any subset of equalTo, greaterThan, greaterThanOrEqualTo,
// lessThan and lessThanOrEqualTo. Every rule accepts a message parameter that
// replaces the generated message. Rules other than required pass on absent
// values.
//
// # Usage
//
//	reg := validator.NewRegistry()
//	specs := []validator.RuleSpec{
//	    validator.Rule(validator.RuleRequired),
//	    validator.Rule(validator.RuleListSize).With(validator.ParamEqualTo,
//	        func(data map[string]any) any { return data["comparisonValue"] }),
//	}
//	failures, err := reg.Evaluate("val", specs, value, data, validator.FirstFailure)
//
// # Error Handling
//
// A failing rule is data, not an error: Evaluate returns it in a
// ValidationErrors slice, which also implements error for callers that want to
// return it. A rule that cannot be evaluated (unknown name, parameter of the
// wrong type, unsupported value type, panic) is a configuration error and is
// returned as a *ConfigError wrapping one of the package's sentinel errors.
package validator
