package fsm

import (
	"fmt"
	"strings"
)

// Machine is the generic hierarchical finite state machine runtime.
// E is the event type delivered by the owning behavior each tick.
//
// A state is either simple or composite. A composite state owns an
// independent machine (see Nest); events that match no transition of the
// composite state itself are delegated to that machine, and when it reaches
// its terminal state the composite state's DoneTarget is entered on the same
// event. Process therefore applies at most one outer and one nested
// transition, nested first.
type Machine[E Event] struct {
	name string

	// Graph data, immutable after Init
	nodes          map[StateID]*Node[E]
	InitialStateID StateID

	// Runtime state
	activeStateID StateID
	ticksInState  int
	ready         bool
}

// NewMachine creates an empty machine; build it with AddState/AddComposite/AddTransition then Init
func NewMachine[E Event](name string) *Machine[E] {
	return &Machine[E]{
		name:  name,
		nodes: make(map[StateID]*Node[E]),
	}
}

func (m *Machine[E]) Name() string { return m.name }

// Process delivers one event and applies at most one transition per level.
// Events in the terminal state, or before Init, are a no-op
func (m *Machine[E]) Process(e E) Result {
	res := Result{From: m.activeStateID, To: m.activeStateID}
	if !m.ready || m.activeStateID == StateTerminal {
		return res
	}

	node := m.nodes[m.activeStateID]
	m.ticksInState++

	for _, trans := range node.Transitions {
		if trans.Event != EventAny && trans.Event != e.Type() {
			continue
		}
		if trans.Guard != nil && !trans.Guard(e) {
			continue
		}
		if trans.Action != nil {
			trans.Action(e)
		}
		res.Fired = true
		if trans.TargetID != StateNone && trans.TargetID != m.activeStateID {
			m.enter(trans.TargetID)
			res.To = trans.TargetID
		}
		return res
	}

	if node.Sub != nil {
		nested := node.Sub.deliver(e)
		res.Nested = &nested
		if node.Sub.Done() {
			m.enter(node.DoneTarget)
			res.Fired = true
			res.To = node.DoneTarget
		}
	}
	return res
}

// enter switches the active state, restarting a composite state's machine
func (m *Machine[E]) enter(id StateID) {
	m.activeStateID = id
	m.ticksInState = 0
	if n, ok := m.nodes[id]; ok && n.Sub != nil {
		n.Sub.Reset()
	}
}

// Reset returns the machine to its initial state, nested machines included
func (m *Machine[E]) Reset() {
	if !m.ready {
		return
	}
	m.enter(m.InitialStateID)
}

// Is reports whether the machine is in the given state. Further ids qualify
// into the composite state's nested machine: Is(Outer, Inner)
func (m *Machine[E]) Is(path ...StateID) bool {
	if len(path) == 0 || !m.ready {
		return false
	}
	if m.activeStateID != path[0] {
		return false
	}
	if len(path) == 1 {
		return true
	}
	node, ok := m.nodes[m.activeStateID]
	if !ok || node.Sub == nil {
		return false
	}
	return node.Sub.Is(path[1:]...)
}

// Done reports whether the terminal state has been reached
func (m *Machine[E]) Done() bool {
	return m.ready && m.activeStateID == StateTerminal
}

// State returns the active top-level state
func (m *Machine[E]) State() StateID { return m.activeStateID }

// TicksInState counts events processed since the active state was entered
func (m *Machine[E]) TicksInState() int { return m.ticksInState }

// StateName returns the active state's name
func (m *Machine[E]) StateName() string {
	return m.nameOf(m.activeStateID)
}

// Path returns the active state names from this machine down through nested machines
func (m *Machine[E]) Path() []string {
	out := []string{m.StateName()}
	if node, ok := m.nodes[m.activeStateID]; ok && node.Sub != nil {
		out = append(out, node.Sub.Path()...)
	}
	return out
}

// String renders the active path, e.g. "chip:GetBehindBall/Positioning"
func (m *Machine[E]) String() string {
	return fmt.Sprintf("%s:%s", m.name, strings.Join(m.Path(), "/"))
}

func (m *Machine[E]) nameOf(id StateID) string {
	switch id {
	case StateTerminal:
		return "Terminal"
	case StateNone:
		return "None"
	}
	if n, ok := m.nodes[id]; ok {
		return n.Name
	}
	return fmt.Sprintf("State(%d)", int(id))
}
