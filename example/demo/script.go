package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/player"
)

// step is an input held for a duration.
type step struct {
	input    player.Input
	duration float32
	// respawn respawns the player at the start of the step if it is dead.
	respawn bool
}

// scripted feeds a player a list of steps.
type scripted struct {
	p      *player.Player
	script []step
	index  int
	held   float32
}

// advance sets the input of the current step. It returns false while steps remain.
func (s *scripted) advance(dt float32) bool {
	if s.index >= len(s.script) {
		s.p.SetInput(player.Input{})
		return true
	}
	st := s.script[s.index]
	if s.held == 0 && st.respawn && s.p.Dead() {
		if err := s.p.Respawn(mgl32.Vec3{}); err != nil {
			s.p.Log().Errorf("respawn: %v", err)
		}
	}
	s.p.SetInput(st.input)
	s.held += dt
	if s.held >= st.duration {
		s.index++
		s.held = 0
	}
	return false
}

func forward(d float32) step {
	return step{input: player.Input{Move: mgl32.Vec2{0, 1}}, duration: d}
}

// climber walks onto the ladder and climbs it.
func climber() []step {
	return []step{
		{input: player.Input{}, duration: 1},
		forward(6),
		{input: player.Input{Crouch: true, Move: mgl32.Vec2{0.5, 0}}, duration: 2},
		{input: player.Input{Jump: true}, duration: 0.1},
		{input: player.Input{}, duration: 1},
	}
}

// wanderer looks around, walks into the intro cutscene, turns around and walks into the pit.
func wanderer() []step {
	return []step{
		{input: player.Input{LookDelta: mgl32.Vec2{1.5, 0}}, duration: 1},
		{input: player.Input{LookDelta: mgl32.Vec2{-1.5, 0}}, duration: 1},
		{input: player.Input{Move: mgl32.Vec2{1, 0}}, duration: 2.2},
		{input: player.Input{}, duration: 5},
		{input: player.Input{LookDelta: mgl32.Vec2{-3, 0}}, duration: 1},
		forward(8),
		{input: player.Input{}, duration: 3},
		{input: player.Input{}, duration: 1, respawn: true},
	}
}

// timedSequence is a cutscene that plays for a fixed amount of time.
type timedSequence struct {
	remaining float32
}

func (t *timedSequence) Update(dt float32) {
	t.remaining -= dt
}

func (t *timedSequence) Finished() bool {
	return t.remaining <= 0
}
