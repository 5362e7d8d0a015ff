package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dmitrymomot/formstate/pkg/form"
)

type report struct {
	Valid        bool                `json:"valid"`
	Submitted    bool                `json:"submitted"`
	Blurred      []string            `json:"blurred,omitempty"`
	Errors       map[string][]string `json:"errors"`
	ConfigErrors map[string]string   `json:"configErrors,omitempty"`
	FormData     map[string]any      `json:"formData"`
}

func newReport(f *form.Form) report {
	r := report{
		Valid:     f.IsValid(),
		Submitted: f.IsSubmitted(),
		Blurred:   f.BlurredPaths(),
		Errors:    make(map[string][]string),
		FormData:  f.FormData(),
	}
	for path, errs := range f.ValidationError() {
		for _, e := range errs {
			r.Errors[path] = append(r.Errors[path], e.Message)
		}
	}
	if cerrs := f.ConfigErrors(); len(cerrs) > 0 {
		r.ConfigErrors = make(map[string]string, len(cerrs))
		for path, err := range cerrs {
			r.ConfigErrors[path] = err.Error()
		}
	}
	return r
}

func writeReport(w io.Writer, f *form.Form) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(newReport(f)); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
