package fsm

// StateID is a unique identifier for a node
type StateID int

const (
	StateNone StateID = 0
)

// Machine is the generic flat Finite State Machine runtime
// T is the context type passed to actions and guards (e.g., *jump.Cycle)
type Machine[T any] struct {
	// Graph Data (immutable after setup)
	nodes map[StateID]*Node[T]

	// Runtime State
	activeStateID StateID // The current state
	timeInState   float64 // Simulated seconds in current state
	transitions   int     // Completed transitions since Init
}

// Node represents one state
type Node[T any] struct {
	ID   StateID
	Name string

	// Lifecycle Actions, run in slice order
	OnEnter  []ActionFunc[T]
	OnUpdate []UpdateFunc[T]
	OnExit   []ActionFunc[T]

	// Transitions in evaluation priority, checked after OnUpdate each tick
	Transitions []Transition[T]
}

// Transition defines a guarded link between states
type Transition[T any] struct {
	TargetID StateID
	Guard    GuardFunc[T] // nil = Always true
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect on enter or exit
type ActionFunc[T any] func(ctx T)

// UpdateFunc advances the active state by dt simulated seconds
type UpdateFunc[T any] func(ctx T, dt float64)
