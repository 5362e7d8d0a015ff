// Package visibility decides which validation errors are shown to the user.
//
// A Policy is pure: it looks only at whether a path was blurred and whether a
// submit was attempted, and never at the errors themselves. Validity is not
// affected by visibility.
package visibility

// Policy combines the two display flags of a form.
type Policy struct {
	// HideBeforeSubmit hides errors until a submit was attempted.
	HideBeforeSubmit bool
	// ShowAfterBlur shows a path's errors once it was blurred, or after a submit attempt.
	ShowAfterBlur bool
}

// Visible reports whether errors of a path are shown.
func (p Policy) Visible(blurred, submitAttempted bool) bool {
	switch {
	case p.ShowAfterBlur:
		return blurred || submitAttempted
	case p.HideBeforeSubmit:
		return submitAttempted
	default:
		return true
	}
}

// Filter returns the entries of errs whose path is visible. isBlurred is asked
// for each key; the input map is not modified.
func Filter[V any](p Policy, errs map[string]V, isBlurred func(path string) bool, submitAttempted bool) map[string]V {
	visible := make(map[string]V, len(errs))
	for path, v := range errs {
		if p.Visible(isBlurred(path), submitAttempted) {
			visible[path] = v
		}
	}
	return visible
}
