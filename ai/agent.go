package ai

import (
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/assert"
	"github.com/oomph-ac/locomotion/fsm"
	"github.com/oomph-ac/locomotion/game"
	"github.com/sirupsen/logrus"
)

// Senses reports where the target of an agent is and whether the agent can currently see it.
type Senses func() (target mgl32.Vec3, visible bool)

// Settings configures the behaviour of an agent.
type Settings struct {
	WalkSpeed  float32 `toml:"walk_speed"`
	ChaseSpeed float32 `toml:"chase_speed"`
	// SightRange is the distance up to which a visible target is noticed.
	SightRange float32 `toml:"sight_range"`
	// LoseTime is how long a chased target may stay unseen before the agent gives up.
	LoseTime float32 `toml:"lose_time"`
	// IdleTime is how long an agent idles before patrolling again.
	IdleTime float32 `toml:"idle_time"`
	// ArriveDistance is the distance at which a waypoint counts as reached.
	ArriveDistance float32 `toml:"arrive_distance"`
}

// DefaultSettings ...
func DefaultSettings() Settings {
	return Settings{
		WalkSpeed:      1.8,
		ChaseSpeed:     game.DefaultWalkSpeed,
		SightRange:     16,
		LoseTime:       3,
		IdleTime:       2,
		ArriveDistance: 0.25,
	}
}

// Agent is a non-player character driven by its own state machine. An Agent must only be used from one
// goroutine at a time.
type Agent struct {
	name     string
	log      logrus.FieldLogger
	settings Settings

	machine *fsm.Machine
	senses  Senses
	route   []mgl32.Vec3

	position mgl32.Vec3
	yaw      float32
	dead     bool
}

// New creates an agent at pos that patrols route when idle. senses may be nil for an agent that never
// notices anything.
func New(name string, log logrus.FieldLogger, s Settings, pos mgl32.Vec3, route []mgl32.Vec3, senses Senses) *Agent {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	if senses == nil {
		senses = func() (mgl32.Vec3, bool) { return mgl32.Vec3{}, false }
	}
	log = log.WithField("agent", name)
	a := &Agent{
		name:     name,
		log:      log,
		settings: s,
		machine:  fsm.NewMachine(log),
		senses:   senses,
		route:    route,
		position: pos,
	}
	a.machine.Register(StateIdle, func() fsm.State { return newIdle(a) })
	a.machine.Register(StatePatrol, func() fsm.State { return newPatrol(a) })
	a.machine.Register(StateChase, func() fsm.State { return newChase(a) })
	a.machine.Register(StateDead, func() fsm.State { return newDead(a) })
	err := a.machine.Start(StateIdle, nil)
	assert.IsTrue(err == nil, "start %s: %v", StateIdle, err)
	return a
}

// Name ...
func (a *Agent) Name() string {
	return a.name
}

// ActiveState returns the name of the current state of the agent.
func (a *Agent) ActiveState() string {
	return string(a.machine.CurrentID())
}

// Machine returns the state machine of the agent.
func (a *Agent) Machine() *fsm.Machine {
	return a.machine
}

// Position ...
func (a *Agent) Position() mgl32.Vec3 {
	return a.position
}

// Yaw returns the yaw the agent faces in degrees.
func (a *Agent) Yaw() float32 {
	return a.yaw
}

// Kill kills the agent. It enters the dead state on its next update.
func (a *Agent) Kill() {
	a.dead = true
}

// Update runs the variable-rate tick of the agent.
func (a *Agent) Update(dt float32) error {
	_, err := a.machine.Update(dt)
	return err
}

// FixedUpdate runs the fixed-rate tick of the agent.
func (a *Agent) FixedUpdate(dt float32) error {
	return a.machine.FixedUpdate(dt)
}

// sees returns the position of the target if it is visible and in range.
func (a *Agent) sees() (mgl32.Vec3, bool) {
	target, visible := a.senses()
	if !visible {
		return target, false
	}
	return target, target.Sub(a.position).Len() <= a.settings.SightRange
}

// moveToward moves the agent toward target by at most speed*dt and returns true once it is within
// the arrive distance.
func (a *Agent) moveToward(target mgl32.Vec3, speed, dt float32) bool {
	diff := target.Sub(a.position)
	diff[1] = 0
	dist := diff.Len()
	if dist <= a.settings.ArriveDistance {
		return true
	}
	a.yaw = game.LookAt(a.position, mgl32.Vec3{target.X(), a.position.Y(), target.Z()}).Y()
	step := speed * dt
	if step >= dist {
		a.position = mgl32.Vec3{target.X(), a.position.Y(), target.Z()}
		return true
	}
	a.position = a.position.Add(diff.Mul(step / dist))
	return false
}
