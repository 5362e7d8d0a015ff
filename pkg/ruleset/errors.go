package ruleset

import "errors"

var (
	// ErrInvalidDocument is returned when a rule file does not have the expected shape.
	ErrInvalidDocument = errors.New("invalid rule document")

	// ErrUnsupportedFormat is returned by Load for extensions other than .yaml, .yml and .json.
	ErrUnsupportedFormat = errors.New("unsupported rule file format")

	// ErrInvalidExpression is returned when a parameter expression does not compile.
	ErrInvalidExpression = errors.New("invalid parameter expression")

	// ErrExpressionFailed wraps runtime failures of a parameter expression.
	ErrExpressionFailed = errors.New("parameter expression failed")
)
