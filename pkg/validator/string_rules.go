package validator

import (
	"fmt"
	"unicode/utf8"
)

// checkLength bounds the length of a string (in characters) or a sequence.
func checkLength(value any, params, _ map[string]any) (bool, error) {
	if isAbsent(value) {
		return true, nil
	}

	var n int
	if s, ok := value.(string); ok {
		n = utf8.RuneCountInString(s)
	} else if l, ok := sequenceLen(value); ok {
		n = l
	} else {
		return false, fmt.Errorf("%w: length rule needs a string or a list, got %T", ErrUnsupportedValue, value)
	}

	return checkBounds(float64(n), params)
}

func lengthMessage(params map[string]any) string {
	text := describeBounds(params, func(b bound) string { return b.sizePhrase }, "characters long")
	if text == "" {
		return "has an invalid length"
	}
	return "must be " + text
}
