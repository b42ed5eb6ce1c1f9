package fsm

import (
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/oerror"
)

// ID identifies a state registered with a Machine.
type ID string

// Payload is the typed data handed from whoever requests a transition to the state being entered. Each
// state declares the concrete payload type it accepts, and Target must name that state.
type Payload interface {
	Target() ID
}

// Transition is a predicate paired with the state it leads to. The first transition in declaration order
// whose predicate returns true fires.
type Transition struct {
	// Target is the state entered when Predicate returns true.
	Target ID
	// Predicate is evaluated once per update tick. It should not have side effects.
	Predicate func() bool
	// Payload, if set, builds the payload handed to Target when the transition fires.
	Payload func() Payload
}

// State is a single state of a Machine.
type State interface {
	// ID returns the identifier the state was registered with.
	ID() ID
	// Transitions returns the automatic transitions of the state, in priority order. The slice is built
	// once when the state is constructed and may be empty.
	Transitions() []Transition
	// CheckPayload validates a payload before the state is entered. A non-nil error aborts the
	// transition and leaves the machine unchanged.
	CheckPayload(p Payload) error
	// OnStateEnter is called after the state becomes current.
	OnStateEnter(p Payload)
	// OnStateUpdate is called once per variable-rate tick while the state is current.
	OnStateUpdate(dt float32)
	// OnStateFixedUpdate is called once per fixed-rate tick while the state is current.
	OnStateFixedUpdate(dt float32)
	// OnStateExit is called before another state becomes current.
	OnStateExit()
}

// Factory constructs a state. It is called at most once per Machine, the first time the state is needed.
type Factory func() State

// Base implements the bookkeeping parts of State. Concrete states embed it and override the lifecycle
// methods they need.
type Base struct {
	id          ID
	transitions []Transition
	payload     Payload
}

// NewBase returns a Base for the state with the given ID. transitions is invoked exactly once, here, so
// it may close over the embedding state as long as that state was allocated beforehand.
func NewBase(id ID, transitions func() []Transition) Base {
	b := Base{id: id}
	if transitions != nil {
		b.transitions = transitions()
	}
	return b
}

// ID ...
func (b *Base) ID() ID {
	return b.id
}

// Transitions ...
func (b *Base) Transitions() []Transition {
	return b.transitions
}

// Payload returns the payload the state was last entered with, or nil.
func (b *Base) Payload() Payload {
	return b.payload
}

// CheckPayload accepts only a nil payload. States that require data override it.
func (b *Base) CheckPayload(p Payload) error {
	if p != nil {
		return oerror.New(game.ErrorUnexpectedPayload, b.id, p)
	}
	return nil
}

// OnStateEnter binds the payload to the state.
func (b *Base) OnStateEnter(p Payload) {
	b.payload = p
}

func (b *Base) OnStateUpdate(float32)      {}
func (b *Base) OnStateFixedUpdate(float32) {}

// OnStateExit releases the payload bound on entry.
func (b *Base) OnStateExit() {
	b.payload = nil
}
