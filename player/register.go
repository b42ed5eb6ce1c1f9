package player

import (
	"github.com/oomph-ac/locomotion/assert"
	"github.com/oomph-ac/locomotion/fsm"
	"github.com/oomph-ac/locomotion/motion"
)

// Register installs the states and the procedural motions of the player and starts its state machine.
func Register(p *Player) {
	m := p.machine
	m.Register(StateWalk, func() fsm.State { return newWalk(p) })
	m.Register(StateCrouch, func() fsm.State { return newCrouch(p) })
	m.Register(StateAirborne, func() fsm.State { return newAirborne(p) })
	m.Register(StateLadder, func() fsm.State { return newLadder(p) })
	m.Register(StatePush, func() fsm.State { return newPush(p) })
	m.Register(StateCutscene, func() fsm.State { return newCutscene(p) })
	m.Register(StateDead, func() fsm.State { return newDead(p) })

	ms := p.settings.Motions
	p.blender.Register(motion.DefaultState,
		motion.NewLean(ms.Lean),
		motion.NewLookSway(ms.LookSway),
		motion.NewBreathing(ms.Breathing),
		motion.NewLanding(ms.Landing),
	)
	p.blender.Register(string(StateWalk), motion.NewHeadBob(ms.HeadBob))
	p.blender.Register(string(StateCrouch), motion.NewHeadBob(ms.CrouchBob))

	start := StateWalk
	if !p.onGround {
		start = StateAirborne
	}
	err := m.Start(start, nil)
	assert.IsTrue(err == nil, "start %s: %v", start, err)
}
