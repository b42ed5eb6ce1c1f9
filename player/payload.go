package player

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/fsm"
	"github.com/oomph-ac/locomotion/oerror"
)

// LadderPayload is the data required to enter StateLadder.
type LadderPayload struct {
	// Start and End are the positions of the feet at the bottom and the top of the ladder.
	Start, End mgl32.Vec3
	// Exit is where the player is placed after climbing off the top of the ladder.
	Exit mgl32.Vec3
	// Arc is the control point of the curve the player follows from its position onto Start.
	Arc mgl32.Vec3
	// Facing is the yaw the player faces while climbing.
	Facing float32
	// LimitLook limits the yaw of the player to YawLimit degrees around Facing while climbing.
	LimitLook bool
	YawLimit  float32
}

// Target ...
func (*LadderPayload) Target() fsm.ID { return StateLadder }

func (l *LadderPayload) check() error {
	if l == nil {
		return oerror.NewMissingTransitionData(string(StateLadder), "*LadderPayload", l)
	}
	if l.Start.ApproxEqual(l.End) {
		return oerror.NewInvalidTransitionData(string(StateLadder), "ladder start and end are the same point")
	}
	if l.LimitLook && l.YawLimit < 0 {
		return oerror.NewInvalidTransitionData(string(StateLadder), "negative yaw limit")
	}
	return nil
}

// Pushable is an object a player can push.
type Pushable interface {
	// Position returns the position of the object.
	Position() mgl32.Vec3
	// Push moves the object by delta.
	Push(delta mgl32.Vec3)
}

// PushPayload is the data required to enter StatePush.
type PushPayload struct {
	Object Pushable
	// Grip is where the feet of the player are placed relative to the position of the object.
	Grip mgl32.Vec3
	// MaxDistance is how far the player may get from the grip point before letting go.
	MaxDistance float32
}

// Target ...
func (*PushPayload) Target() fsm.ID { return StatePush }

func (p *PushPayload) check() error {
	if p == nil {
		return oerror.NewMissingTransitionData(string(StatePush), "*PushPayload", p)
	}
	if p.Object == nil {
		return oerror.NewInvalidTransitionData(string(StatePush), "no object to push")
	}
	if p.MaxDistance <= 0 {
		return oerror.NewInvalidTransitionData(string(StatePush), "max distance must be positive")
	}
	return nil
}

// Sequence is a cutscene played by StateCutscene.
type Sequence interface {
	// Update advances the sequence by dt seconds.
	Update(dt float32)
	// Finished returns true once the sequence is over.
	Finished() bool
}

// CutscenePayload is the data required to enter StateCutscene.
type CutscenePayload struct {
	// Position and Look are the pose the player is moved into before the sequence starts.
	Position mgl32.Vec3
	Look     mgl32.Vec3
	Sequence Sequence
	// OnComplete, if set, is called when the sequence finishes.
	OnComplete func()
}

// Target ...
func (*CutscenePayload) Target() fsm.ID { return StateCutscene }

func (c *CutscenePayload) check() error {
	if c == nil {
		return oerror.NewMissingTransitionData(string(StateCutscene), "*CutscenePayload", c)
	}
	if c.Sequence == nil {
		return oerror.NewInvalidTransitionData(string(StateCutscene), "no sequence to play")
	}
	return nil
}

// DeathPayload is the data required to enter StateDead.
type DeathPayload struct {
	// LookAt is the point the death camera turns toward, usually the killer.
	LookAt mgl32.Vec3
	// Drop is how far the camera sinks. The configured default is used if zero.
	Drop float32
}

// Target ...
func (*DeathPayload) Target() fsm.ID { return StateDead }

func (d *DeathPayload) check() error {
	if d == nil {
		return oerror.NewMissingTransitionData(string(StateDead), "*DeathPayload", d)
	}
	if d.Drop < 0 {
		return oerror.NewInvalidTransitionData(string(StateDead), "negative camera drop")
	}
	return nil
}

// payloadChecker is implemented by every payload with fields to validate.
type payloadChecker interface {
	fsm.Payload
	check() error
}

// checkPayload asserts that p is of type T and passes its own checks.
func checkPayload[T fsm.Payload](state fsm.ID, want string, p fsm.Payload) (T, error) {
	typed, ok := p.(T)
	if !ok || p == nil {
		var zero T
		return zero, oerror.NewMissingTransitionData(string(state), want, p)
	}
	if c, ok := p.(payloadChecker); ok {
		if err := c.check(); err != nil {
			return typed, err
		}
	}
	return typed, nil
}
