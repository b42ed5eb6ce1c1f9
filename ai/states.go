package ai

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/fsm"
	"github.com/oomph-ac/locomotion/oerror"
)

const (
	StateIdle   fsm.ID = "Idle"
	StatePatrol fsm.ID = "Patrol"
	StateChase  fsm.ID = "Chase"
	StateDead   fsm.ID = "Dead"
)

// PatrolPayload is the data required to enter StatePatrol.
type PatrolPayload struct {
	// Waypoints are visited in order, looping back to the first.
	Waypoints []mgl32.Vec3
}

// Target ...
func (*PatrolPayload) Target() fsm.ID { return StatePatrol }

type state struct {
	fsm.Base
	a *Agent
}

func (s *state) toDead() fsm.Transition {
	return fsm.Transition{Target: StateDead, Predicate: func() bool { return s.a.dead }}
}

func (s *state) toChase() fsm.Transition {
	return fsm.Transition{Target: StateChase, Predicate: func() bool {
		_, ok := s.a.sees()
		return ok
	}}
}

// idle waits before patrolling the route of the agent.
type idle struct {
	state
	timer float32
}

func newIdle(a *Agent) fsm.State {
	s := &idle{state: state{a: a}}
	s.Base = fsm.NewBase(StateIdle, func() []fsm.Transition {
		return []fsm.Transition{
			s.toDead(),
			s.toChase(),
			{
				Target:    StatePatrol,
				Predicate: func() bool { return s.timer <= 0 && len(a.route) > 0 },
				Payload:   func() fsm.Payload { return &PatrolPayload{Waypoints: a.route} },
			},
		}
	})
	return s
}

func (s *idle) OnStateEnter(p fsm.Payload) {
	s.Base.OnStateEnter(p)
	s.timer = s.a.settings.IdleTime
}

func (s *idle) OnStateUpdate(dt float32) {
	s.timer -= dt
}

// patrol walks along a list of waypoints.
type patrol struct {
	state
	waypoints []mgl32.Vec3
	next      int
}

func newPatrol(a *Agent) fsm.State {
	s := &patrol{state: state{a: a}}
	s.Base = fsm.NewBase(StatePatrol, func() []fsm.Transition {
		return []fsm.Transition{s.toDead(), s.toChase()}
	})
	return s
}

func (s *patrol) CheckPayload(p fsm.Payload) error {
	payload, ok := p.(*PatrolPayload)
	if !ok || payload == nil {
		return oerror.NewMissingTransitionData(string(StatePatrol), "*PatrolPayload", p)
	}
	if len(payload.Waypoints) == 0 {
		return oerror.NewInvalidTransitionData(string(StatePatrol), "no waypoints")
	}
	return nil
}

func (s *patrol) OnStateEnter(p fsm.Payload) {
	s.Base.OnStateEnter(p)
	s.waypoints = p.(*PatrolPayload).Waypoints
	s.next = 0
}

func (s *patrol) OnStateFixedUpdate(dt float32) {
	if s.a.moveToward(s.waypoints[s.next], s.a.settings.WalkSpeed, dt) {
		s.next = (s.next + 1) % len(s.waypoints)
	}
}

// Waypoint returns the index of the waypoint the agent is walking to.
func (s *patrol) Waypoint() int {
	return s.next
}

// chase runs toward the last seen position of the target until it stays unseen for too long.
type chase struct {
	state
	lastSeen mgl32.Vec3
	lost     float32
}

func newChase(a *Agent) fsm.State {
	s := &chase{state: state{a: a}}
	s.Base = fsm.NewBase(StateChase, func() []fsm.Transition {
		return []fsm.Transition{
			s.toDead(),
			{Target: StateIdle, Predicate: func() bool { return s.lost <= 0 }},
		}
	})
	return s
}

func (s *chase) OnStateEnter(p fsm.Payload) {
	s.Base.OnStateEnter(p)
	s.lost = s.a.settings.LoseTime
	s.lastSeen, _ = s.a.sees()
}

func (s *chase) OnStateUpdate(dt float32) {
	if target, ok := s.a.sees(); ok {
		s.lastSeen = target
		s.lost = s.a.settings.LoseTime
		return
	}
	s.lost -= dt
}

func (s *chase) OnStateFixedUpdate(dt float32) {
	s.a.moveToward(s.lastSeen, s.a.settings.ChaseSpeed, dt)
}

type dead struct {
	state
}

func newDead(a *Agent) fsm.State {
	s := &dead{state: state{a: a}}
	s.Base = fsm.NewBase(StateDead, nil)
	return s
}
