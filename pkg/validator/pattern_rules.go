package validator

import (
	"fmt"
	"regexp"
)

// checkRegex matches a string against the regex parameter, given either as a
// pattern string or a compiled *regexp.Regexp.
func checkRegex(value any, params, _ map[string]any) (bool, error) {
	var re *regexp.Regexp
	switch p := params[ParamRegex].(type) {
	case *regexp.Regexp:
		re = p
	case string:
		compiled, err := regexp.Compile(p)
		if err != nil {
			return false, fmt.Errorf("%w: regex: %v", ErrInvalidParam, err)
		}
		re = compiled
	default:
		return false, fmt.Errorf("%w: regex must be a pattern string, got %T", ErrInvalidParam, p)
	}

	if isAbsent(value) || value == "" {
		return true, nil
	}
	s, ok := value.(string)
	if !ok {
		return false, fmt.Errorf("%w: regex rule needs a string, got %T", ErrUnsupportedValue, value)
	}
	return re.MatchString(s), nil
}

func regexMessage(params map[string]any) string {
	if p, ok := params[ParamRegex].(string); ok {
		return fmt.Sprintf("must match pattern %s", p)
	}
	if re, ok := params[ParamRegex].(*regexp.Regexp); ok {
		return fmt.Sprintf("must match pattern %s", re.String())
	}
	return "has an invalid format"
}
