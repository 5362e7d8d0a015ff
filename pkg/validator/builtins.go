package validator

// Built-in rule names.
const (
	RuleRequired = "required"
	RuleLength   = "length"
	RuleListSize = "listSize"
	RuleURL      = "url"
	RuleEmail    = "email"
	RuleNumber   = "number"
	RuleEquality = "equality"
	RuleRegex    = "regex"
)

// Bound parameter names shared by length, listSize and number.
const (
	ParamEqualTo              = "equalTo"
	ParamGreaterThan          = "greaterThan"
	ParamGreaterThanOrEqualTo = "greaterThanOrEqualTo"
	ParamLessThan             = "lessThan"
	ParamLessThanOrEqualTo    = "lessThanOrEqualTo"
	ParamRegex                = "regex"
	ParamMessage              = messageParam
)

var builtins = map[string]Definition{
	RuleRequired: {
		Check:          checkRequired,
		Message:        func(map[string]any) string { return "field is required" },
		TranslationKey: "validation.required",
	},
	RuleLength: {
		Check:          checkLength,
		Message:        lengthMessage,
		TranslationKey: "validation.length",
	},
	RuleListSize: {
		Check:          checkListSize,
		Message:        listSizeMessage,
		TranslationKey: "validation.list_size",
	},
	RuleURL: {
		Check:          checkURL,
		Message:        func(map[string]any) string { return "must be a valid URL" },
		TranslationKey: "validation.url",
	},
	RuleEmail: {
		Check:          checkEmail,
		Message:        func(map[string]any) string { return "must be a valid email address" },
		TranslationKey: "validation.email",
	},
	RuleNumber: {
		Check:          checkNumber,
		Message:        numberMessage,
		TranslationKey: "validation.number",
	},
	RuleEquality: {
		Check:          checkEquality,
		Message:        equalityMessage,
		TranslationKey: "validation.equality",
	},
	RuleRegex: {
		Check:          checkRegex,
		Message:        regexMessage,
		TranslationKey: "validation.regex",
	},
}
