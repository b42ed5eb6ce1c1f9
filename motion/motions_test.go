package motion

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestHeadBobFollowsSpeed(t *testing.T) {
	ctx := &fakeContext{state: "Walk", ground: true}
	bob := NewHeadBob(HeadBobSettings{
		Frequency:           2,
		HorizontalAmplitude: 0.05,
		VerticalAmplitude:   0.08,
		RollAmplitude:       1,
		MinSpeed:            0.1,
		Spring:              testSpring(),
	})
	bob.Initialize(ctx, "Walk")

	bob.MotionUpdate(frame)
	if bob.Phase() != 0 {
		t.Fatalf("expected a standing character not to advance the bob, got phase %v", bob.Phase())
	}

	ctx.velocity = mgl32.Vec3{0, 0, 4}
	for i := 0; i < 10; i++ {
		bob.MotionUpdate(frame)
	}
	if bob.Phase() <= 0 {
		t.Fatalf("expected a moving character to advance the bob")
	}
	if pos, _ := bob.Targets(); pos.Y() > 0 {
		t.Fatalf("expected the bob to only dip below the resting height, got %v", pos)
	}

	ctx.ground = false
	phase := bob.Phase()
	bob.MotionUpdate(frame)
	if bob.Phase() != phase {
		t.Fatalf("expected the bob to hold its phase in the air")
	}
	if pos, _ := bob.Targets(); pos != (mgl32.Vec3{}) {
		t.Fatalf("expected the bob to settle in the air, got %v", pos)
	}

	bob.OnStateChange("Walk")
	if bob.Phase() != 0 {
		t.Fatalf("expected re-entering the state to restart the phase")
	}
}

func TestHeadBobInactiveStateDoesNotAdvance(t *testing.T) {
	ctx := &fakeContext{state: "Walk", ground: true, velocity: mgl32.Vec3{3, 0, 0}}
	bob := NewHeadBob(HeadBobSettings{Frequency: 2, VerticalAmplitude: 0.1, Spring: testSpring()})
	bob.Initialize(ctx, "Crouch")
	for i := 0; i < 10; i++ {
		bob.MotionUpdate(frame)
	}
	if bob.Phase() != 0 {
		t.Fatalf("expected a crouch bob not to advance while walking, got phase %v", bob.Phase())
	}
}

func TestLeanFollowsStrafe(t *testing.T) {
	ctx := &fakeContext{state: "Walk", input: mgl32.Vec2{1, 0}}
	lean := NewLean(LeanSettings{MaxAngle: 4, Offset: 0.1})
	lean.Initialize(ctx, DefaultState)
	lean.SetWeight(0.5)

	lean.MotionUpdate(frame)
	pos, rot := lean.Targets()
	if !nearVec(rot, mgl32.Vec3{0, 0, -2}, 1e-5) {
		t.Fatalf("expected a weighted roll of -2 degrees, got %v", rot)
	}
	if !nearVec(pos, mgl32.Vec3{0.05, 0, 0}, 1e-5) {
		t.Fatalf("expected a weighted shift of 0.05, got %v", pos)
	}
	if got := lean.Position(frame); got != pos {
		t.Fatalf("expected a direct module to output its target verbatim, got %v", got)
	}
}

func TestLookSwayTrailsLook(t *testing.T) {
	ctx := &fakeContext{state: "Walk"}
	sway := NewLookSway(LookSwaySettings{Lag: 0.05, MaxAngle: 5, PositionFactor: 0.01, Spring: testSpring()})
	sway.Initialize(ctx, DefaultState)

	sway.MotionUpdate(frame)
	if _, rot := sway.Targets(); rot != (mgl32.Vec3{}) {
		t.Fatalf("expected no sway without look movement, got %v", rot)
	}

	ctx.look = mgl32.Vec3{0, 1, 0}
	sway.MotionUpdate(frame)
	_, rot := sway.Targets()
	if rot.Y() >= 0 {
		t.Fatalf("expected the view to trail behind a yaw to the right, got %v", rot)
	}
	if rot.Y() < -5 {
		t.Fatalf("expected the sway to be clamped to 5 degrees, got %v", rot)
	}

	// Crossing the -180/180 boundary must not produce a full turn of sway.
	ctx.look = mgl32.Vec3{0, 179, 0}
	sway.MotionUpdate(frame)
	ctx.look = mgl32.Vec3{0, -179, 0}
	sway.MotionUpdate(frame)
	if _, rot := sway.Targets(); rot.Y() > 0 {
		t.Fatalf("expected wrapped yaw delta to sway the same way, got %v", rot)
	}
}

func TestLandingDipsOnImpact(t *testing.T) {
	ctx := &fakeContext{state: "Walk", ground: true}
	landing := NewLanding(LandingSettings{Scale: 0.02, MaxDrop: 0.1, PitchScale: 20, Duration: 0.1, Spring: testSpring()})
	landing.Initialize(ctx, DefaultState)

	landing.MotionUpdate(frame)
	if landing.Drop() != 0 {
		t.Fatalf("expected no landing while standing")
	}

	ctx.ground = false
	ctx.velocity = mgl32.Vec3{0, -3, 0}
	landing.MotionUpdate(frame)
	ctx.velocity = mgl32.Vec3{0, -20, 0}
	landing.MotionUpdate(frame)

	ctx.ground = true
	ctx.velocity = mgl32.Vec3{}
	landing.MotionUpdate(frame)
	if landing.Drop() != 0.1 {
		t.Fatalf("expected the drop to be clamped to 0.1, got %v", landing.Drop())
	}
	if pos, _ := landing.Targets(); pos.Y() >= 0 {
		t.Fatalf("expected the landing to dip the camera, got %v", pos)
	}

	for i := 0; i < 10; i++ {
		landing.MotionUpdate(frame)
	}
	if pos, _ := landing.Targets(); pos != (mgl32.Vec3{}) {
		t.Fatalf("expected the camera to recover after the landing, got %v", pos)
	}
}

func TestBreathingAlwaysRuns(t *testing.T) {
	ctx := &fakeContext{state: "Cutscene"}
	breathing := NewBreathing(BreathingSettings{Rate: 0.25, Amplitude: 0.01, PitchAmplitude: 0.5, MovingScale: 0.5, Spring: testSpring()})
	breathing.Initialize(ctx, DefaultState)

	breathing.MotionUpdate(0.5)
	pos, _ := breathing.Targets()
	if pos.Y() <= 0 {
		t.Fatalf("expected breathing to rise during the first half cycle, got %v", pos)
	}

	ctx.input = mgl32.Vec2{0, 1}
	breathing.MotionUpdate(0)
	moving, _ := breathing.Targets()
	if moving.Y() >= pos.Y() {
		t.Fatalf("expected breathing to be scaled down while moving, got %v then %v", pos, moving)
	}
}

func TestKindString(t *testing.T) {
	if KindDirect.String() != "direct" || KindSpring.String() != "spring" || Kind(9).String() != "unknown" {
		t.Fatalf("unexpected kind names")
	}
	if NewLean(LeanSettings{}).Kind() != KindDirect || NewLanding(LandingSettings{}).Kind() != KindSpring {
		t.Fatalf("unexpected module kinds")
	}
}
