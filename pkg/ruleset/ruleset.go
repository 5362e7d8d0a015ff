package ruleset

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formstate/pkg/form"
	"github.com/dmitrymomot/formstate/pkg/validator"
)

// Document is a parsed rule file.
type Document struct {
	Flags           Flags          `yaml:"options"`
	InitialFormData map[string]any `yaml:"initialFormData"`
	Rules           []RuleBinding  `yaml:"rules"`

	bindings []form.Binding
}

// Flags are the display flags of a rule file.
type Flags struct {
	HideBeforeSubmit        bool `yaml:"hideBeforeSubmit"`
	ShowAfterBlur           bool `yaml:"showAfterBlur"`
	FocusToErrorAfterSubmit bool `yaml:"focusToErrorAfterSubmit"`
	ReportAllFailures       bool `yaml:"reportAllFailures"`
}

// RuleBinding is a binding as written in a rule file. Each RuleSet entry is
// either a rule name or a mapping with a "rule" key and the rule parameters.
// A parameter written as {expr: "..."} is evaluated against formData on every
// validation pass.
type RuleBinding struct {
	Path           string   `yaml:"path"`
	RuleSet        []any    `yaml:"ruleSet"`
	DependantPaths []string `yaml:"dependantPaths"`
}

const (
	ruleKey = "rule"
	exprKey = "expr"
)

// Parse decodes a YAML (or JSON) rule document and compiles its expressions.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	c, err := newExprCompiler()
	if err != nil {
		return nil, err
	}

	doc.bindings = make([]form.Binding, 0, len(doc.Rules))
	for i, rb := range doc.Rules {
		if strings.TrimSpace(rb.Path) == "" {
			return nil, fmt.Errorf("%w: rule %d has no path", ErrInvalidDocument, i)
		}
		specs := make([]validator.RuleSpec, 0, len(rb.RuleSet))
		for j, entry := range rb.RuleSet {
			spec, err := c.ruleSpec(entry)
			if err != nil {
				return nil, fmt.Errorf("rule %q entry %d: %w", rb.Path, j, err)
			}
			specs = append(specs, spec)
		}
		doc.bindings = append(doc.bindings, form.Binding{
			Path:           rb.Path,
			RuleSet:        specs,
			DependantPaths: slices.Clone(rb.DependantPaths),
		})
	}

	return &doc, nil
}

// Load reads and parses a rule file. The format is chosen by extension.
func Load(path string) (*Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("%w: %s (supported: .yaml, .yml, .json)", ErrUnsupportedFormat, filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Bindings returns the compiled bindings in document order.
func (d *Document) Bindings() []form.Binding {
	out := make([]form.Binding, len(d.bindings))
	for i, b := range d.bindings {
		out[i] = form.Binding{
			Path:           b.Path,
			RuleSet:        slices.Clone(b.RuleSet),
			DependantPaths: slices.Clone(b.DependantPaths),
		}
	}
	return out
}

// Config returns the display flags as a form.Config.
func (d *Document) Config() form.Config {
	return form.Config{
		HideBeforeSubmit:        d.Flags.HideBeforeSubmit,
		ShowAfterBlur:           d.Flags.ShowAfterBlur,
		FocusToErrorAfterSubmit: d.Flags.FocusToErrorAfterSubmit,
		ReportAllFailures:       d.Flags.ReportAllFailures,
	}
}

// Options returns the form options described by the document: display flags,
// initial data and bindings.
func (d *Document) Options() []form.Option {
	return []form.Option{
		form.WithConfig(d.Config()),
		form.WithInitialData(d.InitialFormData),
		form.WithRules(d.Bindings()...),
	}
}

func (c *exprCompiler) ruleSpec(entry any) (validator.RuleSpec, error) {
	switch e := entry.(type) {
	case string:
		if e == "" {
			return validator.RuleSpec{}, fmt.Errorf("%w: empty rule name", ErrInvalidDocument)
		}
		return validator.Rule(e), nil
	case map[string]any:
		name, _ := e[ruleKey].(string)
		if name == "" {
			return validator.RuleSpec{}, fmt.Errorf("%w: missing %q key", ErrInvalidDocument, ruleKey)
		}
		spec := validator.Rule(name)
		for _, key := range slices.Sorted(maps.Keys(e)) {
			if key == ruleKey {
				continue
			}
			p, err := c.param(e[key])
			if err != nil {
				return validator.RuleSpec{}, fmt.Errorf("param %q: %w", key, err)
			}
			spec = spec.With(key, p)
		}
		return spec, nil
	default:
		return validator.RuleSpec{}, fmt.Errorf("%w: rule entry must be a name or a mapping, got %T", ErrInvalidDocument, entry)
	}
}

func (c *exprCompiler) param(v any) (validator.Param, error) {
	m, ok := v.(map[string]any)
	if !ok || len(m) != 1 {
		return validator.Literal(v), nil
	}
	raw, ok := m[exprKey]
	if !ok {
		return validator.Literal(v), nil
	}
	src, ok := raw.(string)
	if !ok || strings.TrimSpace(src) == "" {
		return validator.Param{}, fmt.Errorf("%w: %s must be a non-empty string", ErrInvalidExpression, exprKey)
	}
	return c.compile(src)
}
