package interaction

import (
	"maps"
	"slices"
)

// Submission states.
const (
	StateEditing   State = "editing"
	StateAttempted State = "attempted"
	StateSubmitted State = "submitted"
)

// Submission events. The submit payload is the form's validity as a bool.
const (
	EventSubmit Event = "submit"
	EventReset  Event = "reset"
)

// Tracker records which paths the user has left (blurred) and how far the form
// got through submission. Blurring is one-directional until Reset.
type Tracker struct {
	blurred map[string]struct{}
	machine *Machine
}

// NewTracker returns a tracker in the editing state with nothing blurred.
func NewTracker() *Tracker {
	t := &Tracker{blurred: make(map[string]struct{})}

	clearBlurred := WithAction(func(State, State, Event, any) error {
		t.blurred = make(map[string]struct{})
		return nil
	})

	t.machine = MustNewMachine(StateEditing,
		WithTransition(StateEditing, StateSubmitted, EventSubmit, WithGuard(isValid)),
		WithTransition(StateEditing, StateAttempted, EventSubmit),
		WithTransition(StateAttempted, StateSubmitted, EventSubmit, WithGuard(isValid)),
		WithTransition(StateAttempted, StateAttempted, EventSubmit),
		WithTransition(StateSubmitted, StateSubmitted, EventSubmit),
		WithTransition(StateEditing, StateEditing, EventReset, clearBlurred),
		WithTransition(StateAttempted, StateEditing, EventReset, clearBlurred),
		WithTransition(StateSubmitted, StateEditing, EventReset, clearBlurred),
	)
	return t
}

func isValid(_ State, _ Event, data any) bool {
	valid, _ := data.(bool)
	return valid
}

// Blur marks path as blurred.
func (t *Tracker) Blur(path string) {
	t.blurred[path] = struct{}{}
}

// BlurAll marks every path as blurred.
func (t *Tracker) BlurAll(paths []string) {
	for _, p := range paths {
		t.blurred[p] = struct{}{}
	}
}

func (t *Tracker) IsBlurred(path string) bool {
	_, ok := t.blurred[path]
	return ok
}

// Blurred returns the blurred paths in sorted order.
func (t *Tracker) Blurred() []string {
	return slices.Sorted(maps.Keys(t.blurred))
}

// Submit records a submit attempt and reports whether it succeeded, which is
// the case only when valid is true. An invalid attempt never marks the form
// submitted; once submitted, the form stays submitted until Reset.
func (t *Tracker) Submit(valid bool) bool {
	// Every state has a catch-all submit transition, so Fire cannot fail here.
	_ = t.machine.Fire(EventSubmit, valid)
	return valid && t.Submitted()
}

// Submitted reports whether a submit succeeded.
func (t *Tracker) Submitted() bool {
	return t.machine.Current() == StateSubmitted
}

// SubmitAttempted reports whether Submit was called since the last Reset.
func (t *Tracker) SubmitAttempted() bool {
	return t.machine.Current() != StateEditing
}

// State returns the submission state.
func (t *Tracker) State() State {
	return t.machine.Current()
}

// Reset clears blurred paths and returns to editing.
func (t *Tracker) Reset() {
	_ = t.machine.Fire(EventReset, nil)
}
