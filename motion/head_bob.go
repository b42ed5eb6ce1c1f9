package motion

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/spring"
)

// HeadBobSettings configures the bob of the camera while moving over the ground.
type HeadBobSettings struct {
	// Frequency is the phase advanced per metre travelled, in radians.
	Frequency float32 `toml:"frequency"`
	// HorizontalAmplitude is the sideways travel in metres.
	HorizontalAmplitude float32 `toml:"horizontal_amplitude"`
	// VerticalAmplitude is the vertical travel in metres.
	VerticalAmplitude float32 `toml:"vertical_amplitude"`
	// RollAmplitude is the roll travel in degrees.
	RollAmplitude float32 `toml:"roll_amplitude"`
	// MinSpeed is the horizontal speed under which the bob settles.
	MinSpeed float32         `toml:"min_speed"`
	Spring   spring.Settings `toml:"spring"`
}

// HeadBob bobs the camera with the distance travelled, usually bound to a locomotion state. Its phase
// restarts every time its state is entered.
type HeadBob struct {
	Base

	settings HeadBobSettings
	phase    float32
}

// NewHeadBob returns a spring driven head bob.
func NewHeadBob(settings HeadBobSettings) *HeadBob {
	return &HeadBob{Base: NewBase(SpringOutput(settings.Spring, settings.Spring)), settings: settings}
}

// Phase returns the current bob phase in radians.
func (h *HeadBob) Phase() float32 {
	return h.phase
}

// MotionUpdate ...
func (h *HeadBob) MotionUpdate(dt float32) {
	if !h.IsUpdatable() {
		return
	}
	ctx := h.Context()
	speed := math32.Sqrt(game.Vec3HzDistSqr(ctx.Velocity()))
	if !ctx.OnGround() || speed < h.settings.MinSpeed {
		h.SetTargetPosition(mgl32.Vec3{})
		h.SetTargetRotation(mgl32.Vec3{})
		return
	}

	h.phase = math32.Mod(h.phase+speed*dt*h.settings.Frequency, 4*math32.Pi)
	s := math32.Sin(h.phase)
	h.SetTargetPosition(mgl32.Vec3{
		s * h.settings.HorizontalAmplitude,
		(math32.Cos(2*h.phase) - 1) * 0.5 * h.settings.VerticalAmplitude,
		0,
	})
	h.SetTargetRotation(mgl32.Vec3{0, 0, s * h.settings.RollAmplitude})
}

// OnStateChange ...
func (h *HeadBob) OnStateChange(state string) {
	h.Base.OnStateChange(state)
	if state == h.State() {
		h.phase = 0
	}
}
