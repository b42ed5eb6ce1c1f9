package player

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/fsm"
	"github.com/oomph-ac/locomotion/game"
)

// push moves the player and an object together along the direction the player faces.
type push struct {
	state
	entry

	payload *PushPayload
}

func newPush(p *Player) fsm.State {
	s := &push{state: state{p: p}}
	s.Base = fsm.NewBase(StatePush, func() []fsm.Transition {
		return []fsm.Transition{
			s.toDead(),
			{Target: StateWalk, Predicate: s.released},
			{Target: StateWalk, Predicate: s.outOfReach},
		}
	})
	return s
}

func (s *push) CheckPayload(pl fsm.Payload) error {
	_, err := checkPayload[*PushPayload](StatePush, "*PushPayload", pl)
	return err
}

func (s *push) OnStateEnter(pl fsm.Payload) {
	s.state.OnStateEnter(pl)
	s.payload = pl.(*PushPayload)

	grip := s.grip()
	look := game.LookAt(grip, s.payload.Object.Position())
	s.begin(s.p, grip, mgl32.Vec3{0, look.Y(), 0}, nil)
	s.p.jumpQueued = false
}

func (s *push) OnStateUpdate(dt float32) {
	s.update(s.p, dt)
}

func (s *push) OnStateFixedUpdate(dt float32) {
	if !s.active() {
		return
	}
	delta := s.p.forward().Mul(s.p.input.Move.Y() * s.p.settings.Movement.PushSpeed * dt)
	s.payload.Object.Push(delta)
	s.p.position = s.p.position.Add(delta)
	s.p.velocity = mgl32.Vec3{}
}

func (s *push) OnStateExit() {
	s.payload = nil
	s.state.OnStateExit()
}

// grip returns the world position the feet of the player hold the object from.
func (s *push) grip() mgl32.Vec3 {
	return s.payload.Object.Position().Add(s.payload.Grip)
}

func (s *push) released() bool {
	return s.active() && s.p.interactPressed()
}

func (s *push) outOfReach() bool {
	return s.active() && s.p.position.Sub(s.grip()).Len() > s.payload.MaxDistance
}
