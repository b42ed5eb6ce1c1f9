package fsm

import (
	"errors"
	"testing"

	"github.com/oomph-ac/locomotion/oerror"
	"github.com/oomph-ac/locomotion/utils"
)

type eventLog []string

func (l *eventLog) add(ev string) {
	*l = append(*l, ev)
}

type testPayload struct {
	target ID
	valid  bool
}

func (p *testPayload) Target() ID {
	return p.target
}

// recordingState logs every lifecycle call it receives.
type recordingState struct {
	Base
	log         *eventLog
	needPayload bool
	entered     Payload
	updates     int
	fixed       int
}

func newRecordingState(id ID, log *eventLog, transitions func() []Transition) *recordingState {
	s := &recordingState{log: log}
	s.Base = NewBase(id, transitions)
	return s
}

func (s *recordingState) CheckPayload(p Payload) error {
	if !s.needPayload {
		return s.Base.CheckPayload(p)
	}
	tp, ok := p.(*testPayload)
	if !ok {
		return oerror.NewMissingTransitionData(string(s.ID()), "*testPayload", p)
	}
	if !tp.valid {
		return oerror.NewInvalidTransitionData(string(s.ID()), "payload marked invalid")
	}
	return nil
}

func (s *recordingState) OnStateEnter(p Payload) {
	s.Base.OnStateEnter(p)
	s.entered = p
	s.log.add("enter " + string(s.ID()))
}

func (s *recordingState) OnStateUpdate(float32) {
	s.updates++
}

func (s *recordingState) OnStateFixedUpdate(float32) {
	s.fixed++
}

func (s *recordingState) OnStateExit() {
	s.Base.OnStateExit()
	s.log.add("exit " + string(s.ID()))
}

type flags struct {
	a, b bool
}

func newTestMachine(t *testing.T, log *eventLog, f *flags) *Machine {
	t.Helper()
	m := NewMachine(nil)
	m.Register("Walk", func() State {
		return newRecordingState("Walk", log, func() []Transition {
			return []Transition{
				{Target: "Crouch", Predicate: func() bool { return f.a }},
				{Target: "Ladder", Predicate: func() bool { return f.b }},
			}
		})
	})
	m.Register("Crouch", func() State {
		return newRecordingState("Crouch", log, func() []Transition {
			return []Transition{{Target: "Walk", Predicate: func() bool { return !f.a }}}
		})
	})
	m.Register("Ladder", func() State {
		s := newRecordingState("Ladder", log, nil)
		s.needPayload = true
		return s
	})
	if err := m.Start("Walk", nil); err != nil {
		t.Fatalf("start: %v", err)
	}
	return m
}

func TestMachineNoMatchIsStable(t *testing.T) {
	var log eventLog
	m := newTestMachine(t, &log, &flags{})
	before := m.Current()

	for range 10 {
		changed, err := m.Update(0.016)
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if changed {
			t.Fatalf("expected no transition")
		}
	}
	if m.Current() != before {
		t.Fatalf("current state changed without a matching predicate")
	}
	if len(log) != 1 || log[0] != "enter Walk" {
		t.Fatalf("unexpected lifecycle calls: %v", log)
	}
	if m.TicksInState() != 10 {
		t.Fatalf("expected 10 ticks in state, got %d", m.TicksInState())
	}
}

func TestMachinePriority(t *testing.T) {
	var log eventLog
	f := &flags{a: true, b: true}
	m := newTestMachine(t, &log, f)

	changed, err := m.Update(0.016)
	if err != nil || !changed {
		t.Fatalf("expected a transition, got changed=%v err=%v", changed, err)
	}
	if m.CurrentID() != "Crouch" {
		t.Fatalf("expected the earlier declared transition to win, got %q", m.CurrentID())
	}
}

func TestMachineExitBeforeEnter(t *testing.T) {
	var log eventLog
	f := &flags{}
	m := newTestMachine(t, &log, f)

	f.a = true
	if _, err := m.Update(0.016); err != nil {
		t.Fatalf("update: %v", err)
	}
	f.a = false
	if _, err := m.Update(0.016); err != nil {
		t.Fatalf("update: %v", err)
	}

	want := []string{"enter Walk", "exit Walk", "enter Crouch", "exit Crouch", "enter Walk"}
	if len(log) != len(want) {
		t.Fatalf("expected events %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("expected events %v, got %v", want, log)
		}
	}
	if m.Previous() == nil || m.Previous().ID() != "Crouch" {
		t.Fatalf("expected previous state Crouch")
	}
}

func TestMachinePoolsInstances(t *testing.T) {
	var log eventLog
	f := &flags{a: true}
	m := newTestMachine(t, &log, f)
	walk := m.Current()

	_, _ = m.Update(0.016)
	f.a = false
	_, _ = m.Update(0.016)
	if m.Current() != walk {
		t.Fatalf("expected the pooled Walk instance to be reused")
	}
}

func TestMachineRejectedPayloadLeavesStateUnchanged(t *testing.T) {
	var log eventLog
	m := newTestMachine(t, &log, &flags{})
	walk := m.Current()

	err := m.ChangeState("Ladder", nil)
	var missing *oerror.MissingTransitionDataError
	if !errors.As(err, &missing) {
		t.Fatalf("expected missing transition data error, got %v", err)
	}
	if missing.State != "Ladder" {
		t.Fatalf("expected error for Ladder, got %q", missing.State)
	}

	err = m.ChangeState("Ladder", &testPayload{target: "Ladder"})
	var invalid *oerror.InvalidTransitionDataError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected invalid transition data error, got %v", err)
	}

	err = m.ChangeState("Ladder", &testPayload{target: "Crouch", valid: true})
	if !errors.As(err, &missing) {
		t.Fatalf("expected payload for another state to be rejected, got %v", err)
	}

	if m.Current() != walk || len(log) != 1 {
		t.Fatalf("rejected transitions must not exit or enter states: %v", log)
	}

	p := &testPayload{target: "Ladder", valid: true}
	if err := m.ChangeState("Ladder", p); err != nil {
		t.Fatalf("change state: %v", err)
	}
	ladder := m.Current().(*recordingState)
	if ladder.entered != p || ladder.Payload() != p {
		t.Fatalf("expected payload to be bound on entry")
	}
}

func TestMachineUnexpectedPayload(t *testing.T) {
	var log eventLog
	m := newTestMachine(t, &log, &flags{})
	if err := m.ChangeState("Crouch", &testPayload{target: "Crouch"}); err == nil {
		t.Fatalf("expected a payload for a state without data to be rejected")
	}
}

func TestMachineUnknownState(t *testing.T) {
	var log eventLog
	m := newTestMachine(t, &log, &flags{})
	err := m.ChangeState("Swim", nil)
	var unknown *oerror.UnknownStateError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected unknown state error, got %v", err)
	}
}

func TestMachineSelfTransitionIsNoop(t *testing.T) {
	var log eventLog
	m := NewMachine(nil)
	m.Register("Idle", func() State {
		return newRecordingState("Idle", &log, func() []Transition {
			return []Transition{
				{Target: "Idle", Predicate: func() bool { return true }},
				{Target: "Other", Predicate: func() bool { return true }},
			}
		})
	})
	m.Register("Other", func() State { return newRecordingState("Other", &log, nil) })
	if err := m.Start("Idle", nil); err != nil {
		t.Fatalf("start: %v", err)
	}
	changed, err := m.Update(0.016)
	if err != nil || changed {
		t.Fatalf("expected no transition, got changed=%v err=%v", changed, err)
	}
	if m.CurrentID() != "Idle" || len(log) != 1 {
		t.Fatalf("self transition must end the scan without lifecycle calls: %v", log)
	}
}

func TestMachineNotStarted(t *testing.T) {
	m := NewMachine(nil)
	if _, err := m.Update(0.016); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("expected ErrNotStarted, got %v", err)
	}
	if err := m.FixedUpdate(0.02); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("expected ErrNotStarted, got %v", err)
	}
	if err := m.ChangeState("Walk", nil); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("expected ErrNotStarted, got %v", err)
	}
}

func TestMachineFixedUpdateDoesNotTransition(t *testing.T) {
	var log eventLog
	m := newTestMachine(t, &log, &flags{a: true})
	if err := m.FixedUpdate(0.02); err != nil {
		t.Fatalf("fixed update: %v", err)
	}
	if m.CurrentID() != "Walk" {
		t.Fatalf("fixed update must not evaluate transitions")
	}
	if m.Current().(*recordingState).fixed != 1 {
		t.Fatalf("expected one fixed update")
	}
}

func TestMachineHooksAndHistory(t *testing.T) {
	var log eventLog
	f := &flags{}
	m := NewMachine(nil)
	var hooked []string
	m.OnTransition(func(from, to State) {
		name := "<nil>"
		if from != nil {
			name = string(from.ID())
		}
		hooked = append(hooked, name+"->"+string(to.ID()))
		log.add("hook")
	})
	m.Register("Walk", func() State {
		return newRecordingState("Walk", &log, func() []Transition {
			return []Transition{{Target: "Crouch", Predicate: func() bool { return f.a }}}
		})
	})
	m.Register("Crouch", func() State {
		return newRecordingState("Crouch", &log, func() []Transition {
			return []Transition{{Target: "Walk", Predicate: func() bool { return !f.a }}}
		})
	})
	_ = m.Start("Walk", nil)

	for i := range HistorySize + 4 {
		f.a = i%2 == 0
		if _, err := m.Update(0.016); err != nil {
			t.Fatalf("update: %v", err)
		}
	}
	if len(hooked) != HistorySize+5 || hooked[0] != "<nil>->Walk" || hooked[1] != "Walk->Crouch" {
		t.Fatalf("unexpected hook calls: %v", hooked[:2])
	}
	if log[0] != "hook" || log[1] != "enter Walk" || log[2] != "exit Walk" || log[3] != "hook" || log[4] != "enter Crouch" {
		t.Fatalf("hooks must run between exit and enter: %v", log[:5])
	}

	history := m.History()
	if len(history) != HistorySize {
		t.Fatalf("expected %d history records, got %d", HistorySize, len(history))
	}
	last := history[len(history)-1]
	if last.To != m.CurrentID() || last.Tick != m.Tick() {
		t.Fatalf("unexpected last record %v", last)
	}
	if last.String() != utils.OrderedMapToString(utils.KeyValsToMap("from", last.From, "to", last.To, "tick", last.Tick)) {
		t.Fatalf("unexpected record format %q", last.String())
	}
}

func TestMachineDuplicateRegistrationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected duplicate registration to panic")
		}
	}()
	m := NewMachine(nil)
	m.Register("Walk", func() State { return newRecordingState("Walk", nil, nil) })
	m.Register("Walk", func() State { return newRecordingState("Walk", nil, nil) })
}
