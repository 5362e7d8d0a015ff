package validator

import "fmt"

// checkRequired fails on absent values, nil, empty strings and empty sequences.
// Zero numbers and false are values and pass.
func checkRequired(value any, _, _ map[string]any) (bool, error) {
	if isAbsent(value) {
		return false, nil
	}
	if s, ok := value.(string); ok {
		return s != "", nil
	}
	if n, ok := sequenceLen(value); ok {
		return n > 0, nil
	}
	return true, nil
}

// checkListSize bounds the number of items in a sequence.
func checkListSize(value any, params, _ map[string]any) (bool, error) {
	if isAbsent(value) {
		return true, nil
	}
	n, ok := sequenceLen(value)
	if !ok {
		return false, fmt.Errorf("%w: listSize rule needs a list, got %T", ErrUnsupportedValue, value)
	}
	return checkBounds(float64(n), params)
}

func listSizeMessage(params map[string]any) string {
	text := describeBounds(params, func(b bound) string { return b.sizePhrase }, "items")
	if text == "" {
		return "has an invalid number of items"
	}
	return "must have " + text
}
