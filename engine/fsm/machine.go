package fsm

import (
	"fmt"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes: make(map[StateID]*Node[T]),
	}
}

// AddState registers a node; re-adding an ID replaces the node
func (m *Machine[T]) AddState(node *Node[T]) {
	if node.ID == StateNone {
		panic("FSM: StateNone cannot be registered")
	}
	m.nodes[node.ID] = node
}

// AddTransition appends a guarded transition from one registered state to another
func (m *Machine[T]) AddTransition(from, to StateID, guard GuardFunc[T]) {
	node, ok := m.nodes[from]
	if !ok {
		panic(fmt.Sprintf("FSM: transition from unknown state ID %d", from))
	}
	node.Transitions = append(node.Transitions, Transition[T]{TargetID: to, Guard: guard})
}

// Init enters the initial state
func (m *Machine[T]) Init(ctx T, initialID StateID) error {
	node, ok := m.nodes[initialID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", initialID)
	}

	m.activeStateID = initialID
	m.timeInState = 0
	m.transitions = 0

	for _, action := range node.OnEnter {
		action(ctx)
	}
	return nil
}

// Update advances the active state and evaluates its tick transitions
// At most one transition fires per Update
func (m *Machine[T]) Update(ctx T, dt float64) {
	if m.activeStateID == StateNone {
		return
	}

	m.timeInState += dt

	node := m.nodes[m.activeStateID]
	before := m.transitions
	for _, action := range node.OnUpdate {
		action(ctx, dt)
		// OnUpdate may have transitioned explicitly
		if m.transitions != before {
			return
		}
	}

	for _, trans := range node.Transitions {
		if trans.Guard == nil || trans.Guard(ctx) {
			m.Transition(ctx, trans.TargetID)
			return
		}
	}
}

// Transition performs a state change: OnExit of the current state, then OnEnter of the target
// Transitioning to the active state re-enters it
func (m *Machine[T]) Transition(ctx T, targetID StateID) {
	target, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: Attempted transition to unknown state ID %d", targetID))
	}

	if current, ok := m.nodes[m.activeStateID]; ok {
		for _, action := range current.OnExit {
			action(ctx)
		}
	}

	m.activeStateID = targetID
	m.timeInState = 0
	m.transitions++

	for _, action := range target.OnEnter {
		action(ctx)
	}
}

// Active returns the current state ID
func (m *Machine[T]) Active() StateID {
	return m.activeStateID
}

// ActiveName returns the current state name, empty before Init
func (m *Machine[T]) ActiveName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// TimeInState returns simulated seconds since the last transition
func (m *Machine[T]) TimeInState() float64 {
	return m.timeInState
}

// Transitions returns the number of transitions since Init
func (m *Machine[T]) Transitions() int {
	return m.transitions
}
