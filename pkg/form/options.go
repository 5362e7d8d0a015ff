package form

import (
	"log/slog"

	"github.com/dmitrymomot/formstate/pkg/validator"
)

// Config holds the display flags of a form. It is fixed at construction and can
// be loaded from the environment with pkg/config.
type Config struct {
	// HideBeforeSubmit hides every error until a submit was attempted.
	HideBeforeSubmit bool `env:"FORM_HIDE_BEFORE_SUBMIT" envDefault:"false"`
	// ShowAfterBlur shows the errors of a path once it was blurred.
	ShowAfterBlur bool `env:"FORM_SHOW_AFTER_BLUR" envDefault:"false"`
	// FocusToErrorAfterSubmit calls the focus handler with the first failing
	// path when a submit is rejected.
	FocusToErrorAfterSubmit bool `env:"FORM_FOCUS_TO_ERROR_AFTER_SUBMIT" envDefault:"false"`
	// ReportAllFailures reports every failing rule of a path instead of the first.
	ReportAllFailures bool `env:"FORM_REPORT_ALL_FAILURES" envDefault:"false"`
}

// Policy returns the reporting policy selected by the config.
func (c Config) Policy() validator.Policy {
	if c.ReportAllFailures {
		return validator.AllFailures
	}
	return validator.FirstFailure
}

// Option configures a Form.
type Option func(*options)

type options struct {
	cfg      Config
	bindings []Binding
	initial  map[string]any
	focus    func(id string)
	registry *validator.Registry
	custom   []customRule
	log      *slog.Logger
}

type customRule struct {
	name string
	def  validator.Definition
}

// WithRules sets the initial rule bindings.
func WithRules(bindings ...Binding) Option {
	return func(o *options) {
		o.bindings = append(o.bindings, bindings...)
	}
}

// WithInitialData sets the initial form data. The data is copied; ResetForm
// restores this copy.
func WithInitialData(data map[string]any) Option {
	return func(o *options) {
		o.initial = data
	}
}

func WithHideBeforeSubmit(v bool) Option {
	return func(o *options) { o.cfg.HideBeforeSubmit = v }
}

func WithShowAfterBlur(v bool) Option {
	return func(o *options) { o.cfg.ShowAfterBlur = v }
}

func WithFocusToErrorAfterSubmit(v bool) Option {
	return func(o *options) { o.cfg.FocusToErrorAfterSubmit = v }
}

// WithElementFocusHandler sets the function called with the canonical path of
// the first failing binding after a rejected submit.
func WithElementFocusHandler(fn func(id string)) Option {
	return func(o *options) { o.focus = fn }
}

// WithConfig replaces all display flags at once.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithReportPolicy selects between FirstFailure and AllFailures reporting.
func WithReportPolicy(p validator.Policy) Option {
	return func(o *options) { o.cfg.ReportAllFailures = p == validator.AllFailures }
}

// WithRegistry evaluates rules with a copy of reg instead of the built-ins.
func WithRegistry(reg *validator.Registry) Option {
	return func(o *options) {
		if reg != nil {
			o.registry = reg
		}
	}
}

// WithRule registers a custom rule for this form.
func WithRule(name string, def validator.Definition) Option {
	return func(o *options) {
		o.custom = append(o.custom, customRule{name: name, def: def})
	}
}

// WithLogger sets the logger for lifecycle and configuration messages.
// Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}
