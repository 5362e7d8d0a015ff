package main

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/formstate/pkg/form"
	"github.com/dmitrymomot/formstate/pkg/logger"
)

// settings is read from the environment (and a .env file) before flags are
// applied. Flags win over the environment.
type settings struct {
	Log       logger.Config
	RulesFile string   `env:"FORMCHECK_RULES"`
	Blur      []string `env:"FORMCHECK_BLUR" envSeparator:","`

	// Display flags from the environment can only switch a flag on; the rule
	// file decides otherwise.
	Form form.Config
}

func (s settings) logger(w io.Writer) (*slog.Logger, error) {
	opts, err := s.Log.Options("formcheck")
	if err != nil {
		return nil, err
	}
	return logger.New(append(opts, logger.WithOutput(w))...), nil
}

func mergeConfig(doc, env form.Config) form.Config {
	return form.Config{
		HideBeforeSubmit:        doc.HideBeforeSubmit || env.HideBeforeSubmit,
		ShowAfterBlur:           doc.ShowAfterBlur || env.ShowAfterBlur,
		FocusToErrorAfterSubmit: doc.FocusToErrorAfterSubmit || env.FocusToErrorAfterSubmit,
		ReportAllFailures:       doc.ReportAllFailures || env.ReportAllFailures,
	}
}
