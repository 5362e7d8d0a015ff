package validator

import (
	"fmt"
	"reflect"
)

// checkEquality compares the value with the equalTo parameter. Numbers compare
// by value regardless of their Go type or string form; everything else uses deep
// equality. Typically used with a derived parameter for confirmation fields.
func checkEquality(value any, params, _ map[string]any) (bool, error) {
	want, ok := params[ParamEqualTo]
	if !ok {
		return false, fmt.Errorf("%w: equality rule needs %s", ErrInvalidParam, ParamEqualTo)
	}
	if isAbsent(value) {
		return true, nil
	}

	if a, ok := toNumber(value); ok {
		if b, ok := toNumber(want); ok {
			return a == b, nil
		}
	}
	return reflect.DeepEqual(value, want), nil
}

func equalityMessage(params map[string]any) string {
	// Only numeric targets are echoed.
	if v, ok := params[ParamEqualTo]; ok {
		if _, isString := v.(string); !isString {
			if _, isNumber := toNumber(v); isNumber {
				return "must be equal to " + formatNumber(v)
			}
		}
	}
	return "does not match"
}
