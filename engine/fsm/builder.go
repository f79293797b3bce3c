package fsm

import "fmt"

// AddState adds a simple state node to the machine
func (m *Machine[E]) AddState(id StateID, name string) *Node[E] {
	node := &Node[E]{
		ID:          id,
		Name:        name,
		Transitions: make([]Transition[E], 0),
	}
	m.nodes[id] = node
	m.ready = false
	return node
}

// AddComposite adds a state that runs sub and moves to doneTarget once sub terminates
func (m *Machine[E]) AddComposite(id StateID, name string, sub Submachine[E], doneTarget StateID) *Node[E] {
	node := m.AddState(id, name)
	node.Sub = sub
	node.DoneTarget = doneTarget
	return node
}

// AddTransition appends a transition to a state, order is evaluation priority
func (m *Machine[E]) AddTransition(sourceID StateID, t Transition[E]) {
	if node, ok := m.nodes[sourceID]; ok {
		node.Transitions = append(node.Transitions, t)
	}
}

// Init validates the graph and enters the initial state
func (m *Machine[E]) Init(initial StateID) error {
	if _, ok := m.nodes[initial]; !ok {
		return fmt.Errorf("machine '%s': initial state %d: %w", m.name, initial, ErrUnknownState)
	}

	for id, node := range m.nodes {
		if id == StateNone || id == StateTerminal {
			return fmt.Errorf("machine '%s': state id %d is reserved", m.name, id)
		}
		for i, trans := range node.Transitions {
			if err := m.checkTarget(trans.TargetID); err != nil {
				return fmt.Errorf("machine '%s': state '%s' transition %d: %w", m.name, node.Name, i, err)
			}
		}
		if node.Sub != nil {
			if !node.Sub.initialized() {
				return fmt.Errorf("machine '%s': composite state '%s': nested %w", m.name, node.Name, ErrNotInitialized)
			}
			if node.DoneTarget == StateNone {
				return fmt.Errorf("machine '%s': composite state '%s' has no done target", m.name, node.Name)
			}
			if err := m.checkTarget(node.DoneTarget); err != nil {
				return fmt.Errorf("machine '%s': composite state '%s' done target: %w", m.name, node.Name, err)
			}
		}
	}

	m.InitialStateID = initial
	m.ready = true
	m.enter(initial)
	return nil
}

// MustInit is Init for static tables; it panics on a malformed graph
func (m *Machine[E]) MustInit(initial StateID) *Machine[E] {
	if err := m.Init(initial); err != nil {
		panic(err)
	}
	return m
}

func (m *Machine[E]) checkTarget(id StateID) error {
	if id == StateNone || id == StateTerminal {
		return nil
	}
	if _, ok := m.nodes[id]; !ok {
		return fmt.Errorf("target %d: %w", id, ErrUnknownState)
	}
	return nil
}
