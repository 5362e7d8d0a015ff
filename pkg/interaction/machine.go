package interaction

import "fmt"

// State is a node of a Machine.
type State string

// Event triggers a transition between states.
type Event string

// Guard decides whether a transition may proceed for the given event payload.
type Guard func(from State, event Event, data any) bool

// Action runs after all guards pass and before the state changes. Returning an
// error aborts the transition.
type Action func(from, to State, event Event, data any) error

// Transition is a state change triggered by an event.
type Transition struct {
	From    State
	To      State
	Event   Event
	Guards  []Guard
	Actions []Action
}

// Machine is a small finite state machine. Transitions sharing a state and event
// are tried in declaration order and the first one whose guards all pass wins.
// A Machine has a single owner and is not safe for concurrent use.
type Machine struct {
	current     State
	transitions map[State]map[Event][]Transition
}

// Option configures a Machine during construction.
type Option func(*Machine) error

// TransitionOption attaches guards or actions to a transition.
type TransitionOption func(*Transition)

// NewMachine creates a machine in the initial state.
func NewMachine(initial State, opts ...Option) (*Machine, error) {
	if initial == "" {
		return nil, fmt.Errorf("initial state cannot be empty")
	}

	m := &Machine{
		current:     initial,
		transitions: make(map[State]map[Event][]Transition),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNewMachine is like NewMachine but panics on error.
func MustNewMachine(initial State, opts ...Option) *Machine {
	m, err := NewMachine(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return m
}

// WithTransition adds a transition.
func WithTransition(from, to State, event Event, opts ...TransitionOption) Option {
	return func(m *Machine) error {
		t := Transition{From: from, To: to, Event: event}
		for _, opt := range opts {
			opt(&t)
		}
		return m.AddTransition(t)
	}
}

// WithGuard adds a guard to a transition.
func WithGuard(guard Guard) TransitionOption {
	return func(t *Transition) {
		if guard != nil {
			t.Guards = append(t.Guards, guard)
		}
	}
}

// WithAction adds an action to a transition.
func WithAction(action Action) TransitionOption {
	return func(t *Transition) {
		if action != nil {
			t.Actions = append(t.Actions, action)
		}
	}
}

// AddTransition registers t after any existing transitions for the same state and event.
func (m *Machine) AddTransition(t Transition) error {
	if t.From == "" || t.To == "" || t.Event == "" {
		return ErrInvalidTransition
	}
	if _, ok := m.transitions[t.From]; !ok {
		m.transitions[t.From] = make(map[Event][]Transition)
	}
	m.transitions[t.From][t.Event] = append(m.transitions[t.From][t.Event], t)
	return nil
}

// Current returns the current state.
func (m *Machine) Current() State {
	return m.current
}

// Fire applies the first eligible transition for event.
func (m *Machine) Fire(event Event, data any) error {
	t, err := m.match(event, data)
	if err != nil {
		return err
	}

	for _, action := range t.Actions {
		if err := action(m.current, t.To, event, data); err != nil {
			return fmt.Errorf("action failed: %w", err)
		}
	}

	m.current = t.To
	return nil
}

func (m *Machine) match(event Event, data any) (*Transition, error) {
	if event == "" {
		return nil, ErrInvalidEvent
	}

	candidates := m.transitions[m.current][event]
	if len(candidates) == 0 {
		return nil, &ErrNoTransition{State: m.current, Event: event}
	}

	for i, t := range candidates {
		if guardsPass(t.Guards, m.current, event, data) {
			return &candidates[i], nil
		}
	}
	return nil, &ErrTransitionRejected{State: m.current, Event: event}
}

func guardsPass(guards []Guard, from State, event Event, data any) bool {
	for _, guard := range guards {
		if !guard(from, event, data) {
			return false
		}
	}
	return true
}
