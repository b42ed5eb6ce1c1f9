package player

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/fsm"
)

// cutscene moves the player into the pose of a sequence and plays it. Input is ignored until the
// sequence finishes.
type cutscene struct {
	state
	entry

	payload *CutscenePayload
}

func newCutscene(p *Player) fsm.State {
	s := &cutscene{state: state{p: p}}
	s.Base = fsm.NewBase(StateCutscene, func() []fsm.Transition {
		return []fsm.Transition{
			{Target: StateWalk, Predicate: s.finished},
		}
	})
	return s
}

func (s *cutscene) CheckPayload(pl fsm.Payload) error {
	_, err := checkPayload[*CutscenePayload](StateCutscene, "*CutscenePayload", pl)
	return err
}

func (s *cutscene) OnStateEnter(pl fsm.Payload) {
	s.state.OnStateEnter(pl)
	s.payload = pl.(*CutscenePayload)
	s.begin(s.p, s.payload.Position, s.payload.Look, nil)
	s.p.jumpQueued = false
}

func (s *cutscene) OnStateUpdate(dt float32) {
	if !s.update(s.p, dt) {
		return
	}
	s.payload.Sequence.Update(dt)
}

func (s *cutscene) OnStateFixedUpdate(float32) {
	s.p.velocity = mgl32.Vec3{}
}

func (s *cutscene) OnStateExit() {
	if s.finished() && s.payload.OnComplete != nil {
		s.payload.OnComplete()
	}
	s.payload = nil
	s.state.OnStateExit()
}

func (s *cutscene) finished() bool {
	return s.active() && s.payload.Sequence.Finished()
}
