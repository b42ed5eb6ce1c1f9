package player

import (
	"io"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/fsm"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/motion"
	"github.com/oomph-ac/locomotion/settings"
	"github.com/oomph-ac/locomotion/spring"
	"github.com/sirupsen/logrus"
)

// FloorFunc returns the height of the floor below pos. ok is false if there is no floor.
type FloorFunc func(pos mgl32.Vec3) (height float32, ok bool)

// Camera is the final transform handed to the presentation layer.
type Camera struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// Player is a first-person character. It owns the state machine deciding what the character is doing and
// the motion blender adding procedural motion to its camera. A Player must only be used from one goroutine
// at a time.
type Player struct {
	name     string
	log      logrus.FieldLogger
	settings settings.Settings

	machine *fsm.Machine
	blender *motion.Blender

	state    string
	stateKey uint64

	position mgl32.Vec3
	velocity mgl32.Vec3
	// look is the look rotation: pitch, yaw and roll in degrees.
	look     mgl32.Vec3
	onGround bool
	floor    FloorFunc

	input, prevInput Input
	jumpQueued       bool

	dead        bool
	deathLookAt mgl32.Vec3

	eye       spring.Smoother
	eyeTarget float32
	// eyeDrop is lowered from the eye position, used by the death camera.
	eyeDrop float32
}

// New creates a new Player with the given name. Its states and motions must be installed with Register
// before it is updated. A nil logger discards all output.
func New(name string, log logrus.FieldLogger, s settings.Settings) *Player {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	log = log.WithField("character", name)

	p := &Player{
		name:     name,
		log:      log,
		settings: s,
		machine:  fsm.NewMachine(log),
		onGround: true,
		eye:      spring.Smoother{TimeConstant: 0.1},
	}
	p.eye.Reset(s.Movement.EyeHeight)
	p.eyeTarget = s.Movement.EyeHeight
	p.blender = motion.NewBlender(p)
	p.blender.SetWeight(s.Blender.Weight)
	p.machine.OnTransition(func(_, to fsm.State) {
		p.state = string(to.ID())
		p.stateKey = motion.StateKey(p.state)
		p.blender.NotifyStateChange(p.state)
	})
	return p
}

// Name returns the name of the player.
func (p *Player) Name() string {
	return p.name
}

// Log returns the logger of the player.
func (p *Player) Log() logrus.FieldLogger {
	return p.log
}

// Settings returns the settings the player was created with.
func (p *Player) Settings() settings.Settings {
	return p.settings
}

// Machine returns the state machine of the player.
func (p *Player) Machine() *fsm.Machine {
	return p.machine
}

// Blender returns the motion blender of the player.
func (p *Player) Blender() *motion.Blender {
	return p.blender
}

// ActiveState ...
func (p *Player) ActiveState() string {
	return p.state
}

// ActiveStateKey ...
func (p *Player) ActiveStateKey() uint64 {
	return p.stateKey
}

// Input ...
func (p *Player) Input() mgl32.Vec2 {
	return p.input.Move
}

// Velocity ...
func (p *Player) Velocity() mgl32.Vec3 {
	return p.velocity
}

// LookRotation ...
func (p *Player) LookRotation() mgl32.Vec3 {
	return p.look
}

// OnGround ...
func (p *Player) OnGround() bool {
	return p.onGround
}

// Position returns the position of the feet of the player.
func (p *Player) Position() mgl32.Vec3 {
	return p.position
}

// Teleport moves the player to pos without changing its state.
func (p *Player) Teleport(pos mgl32.Vec3) {
	p.position = pos
}

// SetLook sets the look rotation of the player.
func (p *Player) SetLook(look mgl32.Vec3) {
	p.look = look
}

// BBox returns the bounding box of the player in world space.
func (p *Player) BBox() cube.BBox {
	return game.AABBFromDimensions(p.settings.Movement.Width, p.settings.Movement.Height).Translate(p.position)
}

// Dead returns true if the player has been killed and not yet respawned.
func (p *Player) Dead() bool {
	return p.dead
}

// SetInput sets the input of the player for the next update. Button edges are detected against the
// input of the previous update.
func (p *Player) SetInput(in Input) {
	p.input = in
}

// SetOnGround overrides the grounded flag of the player. It is used when the ground is resolved outside
// of the player; see SetFloor otherwise.
func (p *Player) SetOnGround(onGround bool) {
	p.onGround = onGround
}

// SetFloor sets the function the player resolves its grounded flag with on every fixed update.
func (p *Player) SetFloor(f FloorFunc) {
	p.floor = f
}

// Kill marks the player as dead. The death camera turns toward lookAt once the current state lets the
// player die, which is checked on the next update.
func (p *Player) Kill(lookAt mgl32.Vec3) {
	p.dead = true
	p.deathLookAt = lookAt
}

// Respawn brings a dead player back at pos in the walking state.
func (p *Player) Respawn(pos mgl32.Vec3) error {
	p.dead = false
	p.position = pos
	p.velocity = mgl32.Vec3{}
	p.eyeDrop = 0
	p.look[2] = 0
	return p.machine.ChangeState(StateWalk, nil)
}

// ChangeState requests a transition to the state given. The payload must be the one documented for the
// target state.
func (p *Player) ChangeState(id fsm.ID, payload fsm.Payload) error {
	return p.machine.ChangeState(id, payload)
}

// Update runs the variable-rate tick of the player: the current state is updated, its transitions are
// evaluated and the procedural motions are blended. The camera is still blended and the input latched
// when a transition is rejected.
func (p *Player) Update(dt float32) error {
	_, err := p.machine.Update(dt)
	p.eye.Step(p.eyeTarget, dt)
	p.blender.BlendMotions(dt)
	p.prevInput = p.input
	return err
}

// FixedUpdate runs the fixed-rate tick of the player: the current state computes the velocity which
// is then integrated into the position.
func (p *Player) FixedUpdate(dt float32) error {
	if err := p.machine.FixedUpdate(dt); err != nil {
		return err
	}
	p.position = p.position.Add(p.velocity.Mul(dt))
	if p.floor == nil {
		return nil
	}
	if h, ok := p.floor(p.position); ok && p.position.Y() <= h && p.velocity.Y() <= 0 {
		p.position[1] = h
		p.velocity[1] = 0
		p.onGround = true
	} else {
		p.onGround = false
	}
	return nil
}

// Camera returns the camera transform of the player, with the blended procedural motion applied in
// the local frame of the look rotation.
func (p *Player) Camera() Camera {
	lookRot := game.EulerToQuat(p.look)
	eye := p.position.Add(mgl32.Vec3{0, p.eye.Value() - p.eyeDrop, 0})
	return Camera{
		Position: eye.Add(lookRot.Rotate(p.blender.Position())),
		Rotation: lookRot.Mul(p.blender.Rotation()),
	}
}

// EyePosition returns the eye position of the player, without procedural motion.
func (p *Player) EyePosition() mgl32.Vec3 {
	return p.position.Add(mgl32.Vec3{0, p.eye.Value() - p.eyeDrop, 0})
}

func (p *Player) forward() mgl32.Vec3 {
	return game.DirectionVector(p.look.Y(), 0)
}

// applyLook applies the look delta of the input, keeping the pitch within straight up and down.
func (p *Player) applyLook() {
	p.look[1] = game.WrapYawDelta(p.look[1] + p.input.LookDelta.X())
	p.look[0] = game.ClampFloat(p.look[0]+p.input.LookDelta.Y(), -89, 89)
}
