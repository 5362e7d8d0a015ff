package form

import "github.com/zoobzio/capitan"

// Form lifecycle signals. They are emitted after the state change completed.
var (
	// FormSubmitted is emitted when a submit succeeds.
	FormSubmitted = capitan.NewSignal(
		"formstate.form.submitted",
		"Form submitted with valid data",
	)

	// FormSubmitRejected is emitted when a submit is attempted on an invalid form.
	FormSubmitRejected = capitan.NewSignal(
		"formstate.form.submit.rejected",
		"Form submit rejected",
	)

	// FormReset is emitted after ResetForm.
	FormReset = capitan.NewSignal(
		"formstate.form.reset",
		"Form reset to initial data",
	)

	// FormRulesReplaced is emitted after SetRules installed new bindings.
	FormRulesReplaced = capitan.NewSignal(
		"formstate.form.rules.replaced",
		"Form rule bindings replaced",
	)
)

// Signal field keys.
var (
	// KeyFormID is the form identifier.
	KeyFormID = capitan.NewStringKey("form_id")

	// KeyPath is the first failing path of a rejected submit.
	KeyPath = capitan.NewStringKey("path")

	// KeyErrorCount is the number of failing paths.
	KeyErrorCount = capitan.NewIntKey("error_count")
)
