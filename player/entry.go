package player

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/spring"
)

// Phase is the phase of a state entered with a two-phase entry.
type Phase uint8

const (
	// PhaseApproach is the phase during which the player is smoothed into the pose of the state.
	PhaseApproach Phase = iota
	// PhaseActive is the phase during which the state controls the player.
	PhaseActive
)

func (p Phase) String() string {
	if p == PhaseActive {
		return "active"
	}
	return "approach"
}

// entry moves a player from its pose on entering a state to the pose the state needs, then flips to
// PhaseActive.
type entry struct {
	phase    Phase
	smoother spring.Smoother

	fromPos, toPos   mgl32.Vec3
	fromLook, toLook mgl32.Vec3
	arc              *mgl32.Vec3
}

// begin starts the approach from the current pose of p. If arc is non-nil the position follows a
// quadratic curve with arc as control point.
func (e *entry) begin(p *Player, toPos, toLook mgl32.Vec3, arc *mgl32.Vec3) {
	e.phase = PhaseApproach
	e.smoother = spring.Smoother{TimeConstant: p.settings.Movement.EntryTimeConstant}
	e.smoother.Reset(0)
	e.fromPos, e.toPos = p.position, toPos
	e.fromLook, e.toLook = p.look, toLook
	e.arc = arc
}

// update advances the approach and moves p along it. It returns true once the entry is active.
func (e *entry) update(p *Player, dt float32) bool {
	if e.phase == PhaseActive {
		return true
	}
	f := game.ClampFloat(e.smoother.Step(1, dt), 0, 1)
	if f >= 1-game.EntryCompletionThreshold {
		f = 1
		e.phase = PhaseActive
	}
	if e.arc != nil {
		p.position = game.QuadraticBezier(e.fromPos, *e.arc, e.toPos, f)
	} else {
		p.position = game.LerpVec3(e.fromPos, e.toPos, f)
	}
	p.look = game.LerpLook(e.fromLook, e.toLook, f)
	p.look[1] = game.WrapYawDelta(p.look[1])
	p.velocity = mgl32.Vec3{}
	return e.phase == PhaseActive
}

// active ...
func (e *entry) active() bool {
	return e.phase == PhaseActive
}
