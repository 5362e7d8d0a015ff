package validator

import (
	"errors"
	"strings"
)

// ValidationError is one failed rule at one path. Field holds the canonical
// path. TranslationKey and TranslationValues carry the rule name and resolved
// parameters for callers that render their own messages.
type ValidationError struct {
	Field             string
	Rule              string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e ValidationError) String() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationErrors lists failures in rule declaration order.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, e := range ve {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.String())
	}
	return b.String()
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Failed reports whether the named rule is among the failures.
func (ve ValidationErrors) Failed(rule string) bool {
	for _, e := range ve {
		if e.Rule == rule {
			return true
		}
	}
	return false
}

// Rules returns the names of the failed rules in order.
func (ve ValidationErrors) Rules() []string {
	out := make([]string, len(ve))
	for i, e := range ve {
		out[i] = e.Rule
	}
	return out
}

// Messages returns the failure messages in order.
func (ve ValidationErrors) Messages() []string {
	out := make([]string, len(ve))
	for i, e := range ve {
		out[i] = e.Message
	}
	return out
}

// Fields returns each failing path once, in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]struct{})
	for _, e := range ve {
		if _, ok := seen[e.Field]; !ok {
			seen[e.Field] = struct{}{}
			fields = append(fields, e.Field)
		}
	}
	return fields
}

// AsValidationErrors unwraps ValidationErrors from err.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var ve ValidationErrors
	if err == nil || !errors.As(err, &ve) {
		return nil, false
	}
	return ve, true
}
