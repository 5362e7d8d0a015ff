package validator

import (
	"fmt"
	"strings"
)

// bound is one comparison parameter shared by the size and number rules.
type bound struct {
	param string
	holds func(n, limit float64) bool
	// size phrases read "must be at least 3 characters long",
	// number phrases read "must be greater than or equal to 3".
	sizePhrase   string
	numberPhrase string
}

// bounds are checked and described in this order.
var bounds = []bound{
	{ParamEqualTo, func(n, l float64) bool { return n == l }, "exactly", "equal to"},
	{ParamGreaterThan, func(n, l float64) bool { return n > l }, "more than", "greater than"},
	{ParamGreaterThanOrEqualTo, func(n, l float64) bool { return n >= l }, "at least", "greater than or equal to"},
	{ParamLessThan, func(n, l float64) bool { return n < l }, "less than", "less than"},
	{ParamLessThanOrEqualTo, func(n, l float64) bool { return n <= l }, "at most", "less than or equal to"},
}

// boundLimit returns the numeric limit of a bound parameter. Absent, nil and
// empty-string parameters are not set.
func boundLimit(params map[string]any, name string) (float64, bool, error) {
	raw, ok := params[name]
	if !ok || raw == nil || raw == "" {
		return 0, false, nil
	}
	limit, ok := toNumber(raw)
	if !ok {
		return 0, false, fmt.Errorf("%w: %s must be a finite number, got %v (%T)", ErrInvalidParam, name, raw, raw)
	}
	return limit, true, nil
}

// checkBounds reports whether n satisfies every bound present in params.
func checkBounds(n float64, params map[string]any) (bool, error) {
	for _, b := range bounds {
		limit, set, err := boundLimit(params, b.param)
		if err != nil {
			return false, err
		}
		if set && !b.holds(n, limit) {
			return false, nil
		}
	}
	return true, nil
}

func describeBounds(params map[string]any, phrase func(bound) string, unit string) string {
	var parts []string
	for _, b := range bounds {
		if _, set, err := boundLimit(params, b.param); err != nil || !set {
			continue
		}
		part := phrase(b) + " " + formatNumber(params[b.param])
		if unit != "" {
			part += " " + unit
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " and ")
}

// checkNumber accepts numbers and numeric strings within the configured bounds.
// An empty string counts as no value.
func checkNumber(value any, params, _ map[string]any) (bool, error) {
	if isAbsent(value) || value == "" {
		return true, nil
	}
	n, ok := toNumber(value)
	if !ok {
		switch value.(type) {
		case string, float32, float64:
			return false, nil
		}
		return false, fmt.Errorf("%w: number rule got %T", ErrUnsupportedValue, value)
	}
	return checkBounds(n, params)
}

func numberMessage(params map[string]any) string {
	text := describeBounds(params, func(b bound) string { return b.numberPhrase }, "")
	if text == "" {
		return "must be a number"
	}
	return "must be " + text
}
