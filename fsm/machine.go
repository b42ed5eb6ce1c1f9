package fsm

import (
	"errors"
	"fmt"
	"io"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/locomotion/assert"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/oerror"
	"github.com/oomph-ac/locomotion/utils"
	"github.com/sirupsen/logrus"
)

// HistorySize is the amount of transitions remembered by a Machine.
const HistorySize = 32

// ErrNotStarted is returned when a Machine is ticked or transitioned before Start was called.
var ErrNotStarted = errors.New(game.ErrorMachineNotStarted)

// Record describes a transition that happened.
type Record struct {
	From, To ID
	// Tick is the machine tick the transition happened on.
	Tick uint64
}

// String ...
func (r Record) String() string {
	return utils.OrderedMapToString(utils.KeyValsToMap("from", r.From, "to", r.To, "tick", r.Tick))
}

// Hook is called on every transition after the new state has become current but before it is entered.
// from is nil for the transition performed by Start.
type Hook func(from, to State)

// Machine runs a set of registered states. Exactly one state is current once the machine is started. A
// Machine is not safe for concurrent use; each character owns its own.
type Machine struct {
	log logrus.FieldLogger

	factories *orderedmap.OrderedMap[ID, Factory]
	pool      map[ID]State

	current  State
	previous State

	tick         uint64
	ticksInState uint64

	hooks   []Hook
	history *utils.CircularQueue[Record]
}

// NewMachine returns an empty Machine. A nil logger discards all output.
func NewMachine(log logrus.FieldLogger) *Machine {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Machine{
		log:       log,
		factories: orderedmap.NewOrderedMap[ID, Factory](),
		pool:      make(map[ID]State),
		history:   utils.NewCircularQueue[Record](HistorySize),
	}
}

// Register registers a state factory under id. Registering the same id twice panics.
func (m *Machine) Register(id ID, f Factory) {
	assert.IsTrue(f != nil, "nil factory registered for %q", id)
	_, exists := m.factories.Get(id)
	assert.IsTrue(!exists, game.ErrorDuplicateState, id)
	m.factories.Set(id, f)
}

// Registered returns the IDs of all registered states in registration order.
func (m *Machine) Registered() []ID {
	return m.factories.Keys()
}

// OnTransition adds a hook called on every transition.
func (m *Machine) OnTransition(h Hook) {
	m.hooks = append(m.hooks, h)
}

// Start makes id the current state and enters it with the payload given. Start does not count as a
// transition from another state: no state is exited.
func (m *Machine) Start(id ID, p Payload) error {
	if m.current != nil {
		return oerror.New(game.ErrorMachineStarted, m.current.ID())
	}
	next, err := m.prepare(id, p)
	if err != nil {
		return err
	}
	m.current = next
	m.ticksInState = 0
	m.history.Append(Record{To: id, Tick: m.tick})
	for _, h := range m.hooks {
		h(nil, next)
	}
	next.OnStateEnter(p)
	return nil
}

// Current returns the current state, or nil if the machine was not started.
func (m *Machine) Current() State {
	return m.current
}

// Previous returns the state that was current before the last transition, or nil.
func (m *Machine) Previous() State {
	return m.previous
}

// CurrentID returns the ID of the current state, or an empty ID if the machine was not started.
func (m *Machine) CurrentID() ID {
	if m.current == nil {
		return ""
	}
	return m.current.ID()
}

// Tick returns the amount of update ticks the machine has run.
func (m *Machine) Tick() uint64 {
	return m.tick
}

// TicksInState returns the amount of update ticks run since the current state was entered.
func (m *Machine) TicksInState() uint64 {
	return m.ticksInState
}

// History returns the most recent transitions, oldest first.
func (m *Machine) History() []Record {
	records := make([]Record, 0, m.history.Len())
	for r := range m.history.Iter() {
		records = append(records, r)
	}
	return records
}

// Update runs the variable-rate tick of the current state and then evaluates its transitions in
// declaration order. The first transition whose predicate holds fires; a transition to the current
// state ends the scan without doing anything. Update reports whether a transition happened.
func (m *Machine) Update(dt float32) (bool, error) {
	if m.current == nil {
		return false, ErrNotStarted
	}
	m.current.OnStateUpdate(dt)
	m.tick++
	m.ticksInState++

	for _, t := range m.current.Transitions() {
		if t.Predicate == nil || !t.Predicate() {
			continue
		}
		if t.Target == m.current.ID() {
			return false, nil
		}
		var p Payload
		if t.Payload != nil {
			p = t.Payload()
		}
		if err := m.ChangeState(t.Target, p); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// FixedUpdate runs the fixed-rate tick of the current state. Transitions are not evaluated.
func (m *Machine) FixedUpdate(dt float32) error {
	if m.current == nil {
		return ErrNotStarted
	}
	m.current.OnStateFixedUpdate(dt)
	return nil
}

// ChangeState transitions to id with the payload given. The payload is validated before the current
// state is exited, so a rejected payload leaves the machine unchanged. Changing to the current state
// is a no-op.
func (m *Machine) ChangeState(id ID, p Payload) error {
	if m.current == nil {
		return ErrNotStarted
	}
	if id == m.current.ID() {
		return nil
	}
	next, err := m.prepare(id, p)
	if err != nil {
		m.log.WithFields(logrus.Fields{"from": m.current.ID(), "to": id}).Errorf("transition rejected: %v", err)
		return err
	}

	from := m.current
	from.OnStateExit()
	m.previous = from
	m.current = next
	m.ticksInState = 0

	record := Record{From: from.ID(), To: id, Tick: m.tick}
	m.history.Append(record)
	m.log.WithFields(logrus.Fields{"from": record.From, "to": record.To, "tick": record.Tick}).Debug("state transition")

	for _, h := range m.hooks {
		h(from, next)
	}
	next.OnStateEnter(p)
	return nil
}

// prepare returns the pooled instance of id, constructing it if needed, after validating p against it.
func (m *Machine) prepare(id ID, p Payload) (State, error) {
	s, err := m.instance(id)
	if err != nil {
		return nil, err
	}
	if p != nil && p.Target() != id {
		return nil, oerror.NewMissingTransitionData(string(id), fmt.Sprintf("payload for %s", id), p)
	}
	if err := s.CheckPayload(p); err != nil {
		return nil, fmt.Errorf("enter %s: %w", id, err)
	}
	return s, nil
}

func (m *Machine) instance(id ID) (State, error) {
	if s, ok := m.pool[id]; ok {
		return s, nil
	}
	f, ok := m.factories.Get(id)
	if !ok {
		return nil, &oerror.UnknownStateError{State: string(id)}
	}
	s := f()
	assert.IsTrue(s != nil && s.ID() == id, "factory for %q returned a mismatched state", id)
	m.pool[id] = s
	return s, nil
}
