package fsm

import "errors"

// StateID is a unique identifier for a state within one machine
type StateID int

const (
	StateNone     StateID = 0  // no state; as a transition target it means "stay"
	StateTerminal StateID = -1 // distinguished terminal state, no outgoing transitions
)

// EventType tags an event so transitions can filter on it
type EventType int

// EventAny matches every event type
const EventAny EventType = 0

// Event is a typed value delivered to a machine, one per tick
type Event interface {
	Type() EventType
}

// GuardFunc returns true if the transition should occur
// Guards must be deterministic and free of side effects
type GuardFunc[E Event] func(e E) bool

// ActionFunc executes the transition's side effect, typically emitting an intent
type ActionFunc[E Event] func(e E)

// Transition defines a guarded edge out of a state
type Transition[E Event] struct {
	TargetID StateID      // StateNone = internal transition, state is kept
	Event    EventType    // EventAny = every event
	Guard    GuardFunc[E] // nil = always true
	Action   ActionFunc[E]
}

// Node represents a state in the machine
type Node[E Event] struct {
	ID   StateID
	Name string

	// Transitions sorted by evaluation priority
	Transitions []Transition[E]

	// Sub is set for composite states; events unmatched at this level are delegated to it
	Sub Submachine[E]
	// DoneTarget is entered when Sub reaches its terminal state
	DoneTarget StateID
}

// Result reports what a single Process call did
type Result struct {
	From  StateID
	To    StateID
	Fired bool // a transition at this level matched

	// Nested is set when the event was delegated into a composite state's machine
	Nested *Result
}

// Changed reports whether the machine left its state
func (r Result) Changed() bool { return r.Fired && r.From != r.To }

// Handled reports whether any level of the machine matched a transition
func (r Result) Handled() bool {
	return r.Fired || (r.Nested != nil && r.Nested.Handled())
}

var (
	ErrNotInitialized = errors.New("fsm: machine not initialized")
	ErrUnknownState   = errors.New("fsm: unknown state")
)
