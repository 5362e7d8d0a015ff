// Package form is a stateful validation engine for a single form.
//
// A Form owns a tree of form data, a list of rule bindings and the interaction
// state of the user (blurred paths, submit attempts). Every mutation
// re-evaluates exactly the bindings it can affect and keeps the error map in
// sync, so callers only read results.
//
// # Bindings
//
// A Binding attaches an ordered rule set to a path. Paths use dot and bracket
// notation ("user.addresses[0].city"); "items.0" and "items[0]" address the
// same value. Rule parameters may be derived from the whole form data, in which
// case the binding lists the paths it reads as DependantPaths:
//
//	form.Binding{
//		Path: "confirm",
//		RuleSet: []validator.RuleSpec{
//			validator.Rule(validator.RuleEquality).With(validator.ParamEqualTo, func(data map[string]any) any {
//				return data["password"]
//			}),
//		},
//		DependantPaths: []string{"password"},
//	}
//
// A write to a path re-evaluates bindings on any overlapping path (ancestor,
// descendant or same), bindings watching an overlapping path, and
// transitively their watchers. Dependency cycles are rejected by New and
// SetRules with ErrDependencyCycle.
//
// # Visibility
//
// IsValid and AllErrors always reflect every failure. ValidationError applies
// the display flags of Config:
//
//   - neither flag: errors are shown as soon as they exist
//   - HideBeforeSubmit: errors are hidden until a submit was attempted
//   - ShowAfterBlur: errors of a path are shown once it was blurred or a
//     submit was attempted
//
// SetFormIsSubmitted marks every bound path as blurred and succeeds only when
// the form is valid.
//
// # Errors
//
// Validation failures are data, never errors. Misconfiguration (unknown rule,
// malformed path, cycle, a rule that cannot handle a value, a panicking rule)
// is returned as an error wrapping ErrConfiguration. A rule that fails to
// evaluate marks only its own path invalid; see ConfigErrors.
//
// # Signals
//
// Submit, reset and rule replacement emit capitan signals carrying the form ID
// (KeyFormID) so that observers can log or react without wrapping the Form.
//
// A Form is not safe for concurrent use.
package form
