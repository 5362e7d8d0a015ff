package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/zoobzio/capitan"

	"github.com/dmitrymomot/formstate/pkg/formpath"
	"github.com/dmitrymomot/formstate/pkg/interaction"
	"github.com/dmitrymomot/formstate/pkg/logger"
	"github.com/dmitrymomot/formstate/pkg/validator"
	"github.com/dmitrymomot/formstate/pkg/visibility"
)

// Form is a stateful validation engine for one form. It owns the form data, the
// rule bindings and the interaction state. A Form has a single owner and is not
// safe for concurrent use; create one Form per form instance.
type Form struct {
	id       string
	cfg      Config
	focus    func(id string)
	registry *validator.Registry
	log      *slog.Logger

	snapshot map[string]any
	data     map[string]any

	bindings []compiledBinding
	graph    *graph
	results  []result

	tracker *interaction.Tracker
}

type result struct {
	failures validator.ValidationErrors
	err      error
}

// New creates a form, evaluates every binding against the initial data and
// returns it. Unknown rule names, malformed paths and dependency cycles fail
// construction with an error wrapping ErrConfiguration and a nil form.
//
// Rules that fail to evaluate against the initial data return the form
// together with an error wrapping ErrConfiguration. That form is usable: the
// failing paths count as invalid and are listed by ConfigErrors.
func New(opts ...Option) (*Form, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	reg := validator.NewRegistry()
	if o.registry != nil {
		reg = o.registry.Clone()
	}
	for _, r := range o.custom {
		if err := reg.Register(r.name, r.def); err != nil {
			return nil, configError(err)
		}
	}

	bindings, g, err := compile(o.bindings, reg)
	if err != nil {
		return nil, configError(err)
	}

	log := o.log
	if log == nil {
		log = logger.Discard()
	}

	id := uuid.NewString()
	// Set never mutates its input, so the snapshot and the live data can
	// share one copy.
	initial := formpath.Clone(o.initial)
	f := &Form{
		id:       id,
		cfg:      o.cfg,
		focus:    o.focus,
		registry: reg,
		log:      log.With(logger.Component("form"), logger.FormID(id)),
		snapshot: initial,
		data:     initial,
		bindings: bindings,
		graph:    g,
		tracker:  interaction.NewTracker(),
	}
	err = f.evaluateAll()

	f.log.Debug("form created", logger.Count(len(bindings)))
	return f, err
}

// MustNew is like New but panics when the form cannot be built. Rules that
// fail to evaluate do not panic; see ConfigErrors.
func MustNew(opts ...Option) *Form {
	f, err := New(opts...)
	if f == nil {
		panic(fmt.Sprintf("failed to create form: %v", err))
	}
	return f
}

// ID returns the form identifier used in logs and signals.
func (f *Form) ID() string { return f.id }

// Config returns the display flags.
func (f *Form) Config() Config { return f.cfg }

// FormData returns a copy of the current form data.
func (f *Form) FormData() map[string]any {
	return formpath.Clone(f.data)
}

// Value returns a copy of the value at path.
func (f *Form) Value(path string) (any, bool) {
	v, ok := formpath.Lookup(f.data, path)
	if !ok {
		return nil, false
	}
	return formpath.CloneValue(v), true
}

// Rules returns a copy of the current bindings.
func (f *Form) Rules() []Binding {
	out := make([]Binding, len(f.bindings))
	for i, b := range f.bindings {
		out[i] = Binding{
			Path:           b.source.Path,
			RuleSet:        append([]validator.RuleSpec(nil), b.source.RuleSet...),
			DependantPaths: append([]string(nil), b.source.DependantPaths...),
		}
	}
	return out
}

// IsValid reports whether every binding passes. Hidden errors and rules that
// failed to evaluate make the form invalid.
func (f *Form) IsValid() bool {
	for _, r := range f.results {
		if r.err != nil || len(r.failures) > 0 {
			return false
		}
	}
	return true
}

// ValidationError returns the failures currently visible under the display flags.
func (f *Form) ValidationError() ErrorMap {
	p := visibility.Policy{
		HideBeforeSubmit: f.cfg.HideBeforeSubmit,
		ShowAfterBlur:    f.cfg.ShowAfterBlur,
	}
	visible := visibility.Filter(p, map[string][]validator.ValidationError(f.AllErrors()), f.tracker.IsBlurred, f.tracker.SubmitAttempted())
	return ErrorMap(visible)
}

// AllErrors returns every failure regardless of visibility.
func (f *Form) AllErrors() ErrorMap {
	m := make(ErrorMap)
	reportAll := f.cfg.Policy() == validator.AllFailures
	for i, b := range f.bindings {
		failures := f.results[i].failures
		if len(failures) == 0 {
			continue
		}
		if !reportAll && len(m[b.key]) > 0 {
			continue
		}
		m[b.key] = append(m[b.key], failures...)
	}
	return m
}

// ConfigErrors returns the rules that could not be evaluated, keyed by path.
func (f *Form) ConfigErrors() map[string]error {
	out := make(map[string]error)
	for i, b := range f.bindings {
		if err := f.results[i].err; err != nil {
			out[b.key] = errors.Join(out[b.key], err)
		}
	}
	return out
}

// IsSubmitted reports whether a submit succeeded since construction or the last reset.
func (f *Form) IsSubmitted() bool { return f.tracker.Submitted() }

// SubmitAttempted reports whether SetFormIsSubmitted was called since
// construction or the last reset.
func (f *Form) SubmitAttempted() bool { return f.tracker.SubmitAttempted() }

// IsBlurred reports whether path was blurred.
func (f *Form) IsBlurred(path string) bool {
	p, err := formpath.Parse(path)
	if err != nil {
		return false
	}
	return f.tracker.IsBlurred(p.Normalize().String())
}

// BlurredPaths returns the canonical blurred paths in sorted order.
func (f *Form) BlurredPaths() []string { return f.tracker.Blurred() }

// SetPathValue stores value at path and re-evaluates every binding the write
// can affect: bindings on an overlapping path, bindings listing an overlapping
// dependant path, and transitively the bindings depending on those. The value
// is copied.
//
// A malformed path or a write through a value of the wrong shape leaves the
// form unchanged and returns an error wrapping ErrConfiguration. Rules that
// fail to evaluate are recorded for their path only; the write still applies
// and the returned error wraps ErrConfiguration.
func (f *Form) SetPathValue(path string, value any) error {
	p, err := formpath.Parse(path)
	if err != nil {
		return configError(err)
	}

	data, err := formpath.Set(f.data, p, formpath.CloneValue(value))
	if err != nil {
		f.log.Warn("rejected path write", logger.Path(p.String()), logger.Error(err))
		return configError(err)
	}
	f.data = data

	affected := f.graph.affected(f.bindings, p)
	for _, i := range affected {
		f.evaluate(i)
	}

	f.log.Debug("path value set", logger.Path(p.String()), logger.Count(len(affected)))
	return f.evaluationError(affected)
}

// SetPathIsBlurred marks path as blurred. Nothing is re-evaluated.
func (f *Form) SetPathIsBlurred(path string) error {
	p, err := formpath.Parse(path)
	if err != nil {
		return configError(err)
	}
	f.tracker.Blur(p.Normalize().String())
	return nil
}

// SetFormIsSubmitted attempts to submit the form and reports whether it
// succeeded, which happens only when the form is valid. Every bound path is
// marked blurred either way. On a rejected attempt with FocusToErrorAfterSubmit
// set, the focus handler receives the first failing path in binding order.
func (f *Form) SetFormIsSubmitted() bool {
	paths := make([]string, len(f.bindings))
	for i, b := range f.bindings {
		paths[i] = b.key
	}
	f.tracker.BlurAll(paths)

	valid := f.IsValid()
	ok := f.tracker.Submit(valid)
	ctx := context.Background()

	if ok {
		f.log.Debug("form submitted", logger.State(string(f.tracker.State())))
		capitan.Emit(ctx, FormSubmitted, KeyFormID.Field(f.id))
		return true
	}

	failing := f.firstFailingPath()
	count := f.failingCount()
	f.log.Debug("form submit rejected",
		logger.State(string(f.tracker.State())),
		logger.Path(failing),
		logger.Count(count),
	)
	if f.cfg.FocusToErrorAfterSubmit && f.focus != nil && failing != "" {
		f.focus(failing)
	}
	capitan.Emit(ctx, FormSubmitRejected,
		KeyFormID.Field(f.id),
		KeyPath.Field(failing),
		KeyErrorCount.Field(count),
	)
	return false
}

// SetRules replaces every binding and re-evaluates them against the current
// data. Interaction state is kept. Bindings are checked first; on an unknown
// rule, a malformed path or a dependency cycle the previous bindings stay in
// place and the error wraps ErrConfiguration.
func (f *Form) SetRules(bindings []Binding) error {
	compiled, g, err := compile(bindings, f.registry)
	if err != nil {
		f.log.Warn("rejected rule bindings", logger.Error(err))
		return configError(err)
	}

	f.bindings = compiled
	f.graph = g
	err = f.evaluateAll()

	count := f.failingCount()
	f.log.Debug("rules replaced", logger.Count(len(compiled)))
	capitan.Emit(context.Background(), FormRulesReplaced,
		KeyFormID.Field(f.id),
		KeyErrorCount.Field(count),
	)
	return err
}

// ResetForm restores the initial data, clears blurred paths and the submission
// state, and re-evaluates the current bindings.
func (f *Form) ResetForm() error {
	f.data = f.snapshot
	f.tracker.Reset()
	err := f.evaluateAll()

	f.log.Debug("form reset")
	capitan.Emit(context.Background(), FormReset,
		KeyFormID.Field(f.id),
		KeyErrorCount.Field(f.failingCount()),
	)
	return err
}

func (f *Form) evaluate(i int) {
	b := f.bindings[i]
	value, _ := formpath.Get(f.data, b.path)
	failures, err := f.registry.Evaluate(b.key, b.source.RuleSet, value, f.data, f.cfg.Policy())
	f.results[i] = result{failures: failures, err: err}
	if err != nil {
		var ce *validator.ConfigError
		rule := ""
		if errors.As(err, &ce) {
			rule = ce.Rule
		}
		f.log.Warn("rule configuration error",
			logger.Path(b.key),
			logger.Rule(rule),
			logger.Error(err),
		)
	}
}

func (f *Form) evaluateAll() error {
	f.results = make([]result, len(f.bindings))
	all := make([]int, len(f.bindings))
	for i := range f.bindings {
		f.evaluate(i)
		all[i] = i
	}
	return f.evaluationError(all)
}

func (f *Form) evaluationError(indices []int) error {
	var errs []error
	for _, i := range indices {
		if err := f.results[i].err; err != nil {
			errs = append(errs, configError(err))
		}
	}
	return errors.Join(errs...)
}

func (f *Form) firstFailingPath() string {
	for i, b := range f.bindings {
		if r := f.results[i]; r.err != nil || len(r.failures) > 0 {
			return b.key
		}
	}
	return ""
}

func (f *Form) failingCount() int {
	seen := make(map[string]bool)
	for i, b := range f.bindings {
		if r := f.results[i]; r.err != nil || len(r.failures) > 0 {
			seen[b.key] = true
		}
	}
	return len(seen)
}
