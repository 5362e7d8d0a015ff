package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/zoobzio/capitan"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formstate/pkg/form"
	"github.com/dmitrymomot/formstate/pkg/logger"
	"github.com/dmitrymomot/formstate/pkg/ruleset"
	"github.com/dmitrymomot/formstate/pkg/validator"
)

// Exit codes.
const (
	exitValid   = 0
	exitInvalid = 1
	exitUsage   = 2
)

// listFlag collects a repeatable string flag.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }

func (l *listFlag) Set(v string) error {
	*l = append(*l, v)
	return nil
}

type options struct {
	rules  string
	data   string
	set    listFlag
	blur   listFlag
	submit bool
	watch  bool
}

func parseFlags(args []string, s settings, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("formcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.rules, "rules", s.RulesFile, "Rule file (.yaml, .yml or .json)")
	fs.StringVar(&o.data, "data", "", "Form data file replacing initialFormData (.yaml, .yml or .json)")
	fs.Var(&o.set, "set", "Write a value: path=value, value in YAML/JSON syntax (repeatable)")
	fs.Var(&o.blur, "blur", "Mark a path as blurred (repeatable)")
	fs.BoolVar(&o.submit, "submit", false, "Attempt to submit the form")
	fs.BoolVar(&o.watch, "watch", false, "Re-apply the rule file when it changes")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: formcheck -rules rules.yaml [-data data.json] [-set path=value]... [-blur path]... [-submit] [-watch]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.rules == "" {
		fs.Usage()
		return o, errors.New("-rules is required")
	}
	o.blur = append(listFlag(nonEmpty(s.Blur)), o.blur...)
	return o, nil
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// run executes the command and returns the process exit code: 0 when the form
// is valid, 1 when it is not, 2 on usage or configuration problems.
func run(ctx context.Context, s settings, args []string, stdout, stderr io.Writer) int {
	log, err := s.logger(stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	o, err := parseFlags(args, s, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitValid
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	doc, err := ruleset.Load(o.rules)
	if err != nil {
		log.Error("failed to load rules", logger.File(o.rules), logger.Error(err))
		return exitUsage
	}

	opts := append(doc.Options(),
		form.WithConfig(mergeConfig(doc.Config(), s.Form)),
		form.WithLogger(log),
		form.WithElementFocusHandler(func(id string) {
			log.Info("focus", logger.Path(id))
		}),
	)
	if o.data != "" {
		data, err := loadData(o.data)
		if err != nil {
			log.Error("failed to load form data", logger.File(o.data), logger.Error(err))
			return exitUsage
		}
		opts = append(opts, form.WithInitialData(data))
	}

	f, err := form.New(opts...)
	if f == nil {
		log.Error("invalid rules", logger.File(o.rules), logger.Error(err))
		return exitUsage
	}
	if err != nil {
		log.Warn("rules applied with configuration errors", logger.File(o.rules), logger.Error(err))
	}
	defer observe(log, f.ID())()

	if err := apply(f, o); err != nil {
		log.Error("failed to apply input", logger.Error(err))
		return exitUsage
	}

	// Start watching before the first report so no change is missed.
	var changes <-chan []byte
	if o.watch {
		changes, err = watchFile(ctx, o.rules)
		if err != nil {
			log.Error("watch failed", logger.File(o.rules), logger.Error(err))
			return exitUsage
		}
	}

	if err := writeReport(stdout, f); err != nil {
		log.Error("failed to write report", logger.Error(err))
		return exitUsage
	}

	if changes != nil {
		if err := watchRules(log, o.rules, changes, f, stdout); err != nil {
			log.Error("watch failed", logger.File(o.rules), logger.Error(err))
			return exitUsage
		}
	}

	if !f.IsValid() {
		return exitInvalid
	}
	return exitValid
}

// apply replays the command-line interactions in order: writes, blurs, submit.
// Configuration errors from rule evaluation are logged by the form and do not
// stop the replay.
func apply(f *form.Form, o options) error {
	for _, kv := range o.set {
		path, raw, ok := strings.Cut(kv, "=")
		if !ok || path == "" {
			return fmt.Errorf("-set %q: expected path=value", kv)
		}
		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			return fmt.Errorf("-set %q: %w", kv, err)
		}
		// Rule evaluation problems are logged by the form; the write still applied.
		if err := f.SetPathValue(path, value); err != nil && !validator.IsConfigError(err) {
			return fmt.Errorf("-set %q: %w", kv, err)
		}
	}
	for _, path := range o.blur {
		if err := f.SetPathIsBlurred(path); err != nil {
			return fmt.Errorf("-blur %q: %w", path, err)
		}
	}
	if o.submit {
		f.SetFormIsSubmitted()
	}
	return nil
}

func loadData(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}
	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse data file: %w", err)
	}
	return data, nil
}

// observe logs the lifecycle signals of the form with the given ID and returns
// a function that stops listening.
func observe(log *slog.Logger, formID string) func() {
	mine := func(e *capitan.Event) bool {
		id, _ := form.KeyFormID.From(e)
		return id == formID
	}
	closers := []func(){
		capitan.Hook(form.FormSubmitted, func(_ context.Context, e *capitan.Event) {
			if mine(e) {
				log.Info("form submitted", logger.FormID(formID))
			}
		}).Close,
		capitan.Hook(form.FormSubmitRejected, func(_ context.Context, e *capitan.Event) {
			if mine(e) {
				path, _ := form.KeyPath.From(e)
				count, _ := form.KeyErrorCount.From(e)
				log.Info("form submit rejected", logger.FormID(formID), logger.Path(path), logger.Count(count))
			}
		}).Close,
		capitan.Hook(form.FormRulesReplaced, func(_ context.Context, e *capitan.Event) {
			if mine(e) {
				count, _ := form.KeyErrorCount.From(e)
				log.Info("rules reloaded", logger.FormID(formID), logger.Count(count))
			}
		}).Close,
	}
	return func() {
		for _, c := range closers {
			c()
		}
	}
}
