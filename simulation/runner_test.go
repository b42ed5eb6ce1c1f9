package simulation

import (
	"errors"
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/player"
	"github.com/oomph-ac/locomotion/settings"
	"github.com/oomph-ac/locomotion/trigger"
)

// Binary fractions keep the accumulator exact.
const (
	fixedStep = float32(1.0 / 64.0)
	frame     = float32(3.0 / 128.0)
)

type countingCharacter struct {
	name    string
	fixed   int
	updates int
	lastDt  float32
	err     error
	panics  bool
}

func (c *countingCharacter) Name() string        { return c.name }
func (c *countingCharacter) ActiveState() string { return "Counting" }

func (c *countingCharacter) FixedUpdate(dt float32) error {
	c.fixed++
	return nil
}

func (c *countingCharacter) Update(dt float32) error {
	if c.panics {
		panic("character exploded")
	}
	c.updates++
	c.lastDt = dt
	return c.err
}

func TestRunnerRejectsDegenerateFixedStep(t *testing.T) {
	for _, step := range []float32{0, -fixedStep} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected NewRunner to panic on fixed step %v", step)
				}
			}()
			NewRunner(nil, step, 0.25)
		}()
	}

	r := NewRunner(nil, fixedStep, 0.25)
	r.FixedStep = 0
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Step to panic on a zero fixed step")
		}
	}()
	_ = r.Step(frame)
}

func TestRunnerAccumulatesFixedSteps(t *testing.T) {
	r := NewRunner(nil, fixedStep, 0.25)
	c := &countingCharacter{name: "a"}
	r.Add(c)

	if err := r.Step(frame); err != nil {
		t.Fatalf("step: %v", err)
	}
	if c.fixed != 1 || c.updates != 1 {
		t.Fatalf("expected 1 fixed update and 1 update, got %d and %d", c.fixed, c.updates)
	}
	if err := r.Step(frame); err != nil {
		t.Fatalf("step: %v", err)
	}
	if c.fixed != 3 || c.updates != 2 {
		t.Fatalf("expected 3 fixed updates and 2 updates, got %d and %d", c.fixed, c.updates)
	}
	if r.Alpha() != 0 || r.Frames() != 2 {
		t.Fatalf("unexpected accumulator state: alpha %v frames %d", r.Alpha(), r.Frames())
	}
}

func TestRunnerCapsFrameTime(t *testing.T) {
	r := NewRunner(nil, fixedStep, 0.25)
	c := &countingCharacter{name: "a"}
	r.Add(c)
	if err := r.Step(10); err != nil {
		t.Fatalf("step: %v", err)
	}
	if c.fixed != 16 || c.lastDt != 0.25 {
		t.Fatalf("expected the frame to be capped, got %d fixed updates and dt %v", c.fixed, c.lastDt)
	}
}

func TestRunnerParksCrashedCharacters(t *testing.T) {
	r := NewRunner(nil, fixedStep, 0.25)
	bad := &countingCharacter{name: "bad", panics: true}
	good := &countingCharacter{name: "good"}
	r.Add(bad)
	r.Add(good)

	for range 3 {
		if err := r.Step(frame); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	if !r.Faulted("bad") || r.Faulted("good") {
		t.Fatalf("expected only the crashing character to be faulted")
	}
	if bad.fixed != 1 {
		t.Fatalf("expected the crashed character to stop being ticked, got %d fixed updates", bad.fixed)
	}
	if good.updates != 3 {
		t.Fatalf("expected the healthy character to keep running, got %d updates", good.updates)
	}
}

func TestRunnerJoinsErrors(t *testing.T) {
	r := NewRunner(nil, fixedStep, 0.25)
	want := errors.New("no floor")
	r.Add(&countingCharacter{name: "a", err: want})
	r.Add(&countingCharacter{name: "b"})
	if err := r.Step(frame); !errors.Is(err, want) {
		t.Fatalf("expected the character error, got %v", err)
	}
	if r.Faulted("a") {
		t.Fatalf("returned errors must not park characters")
	}
}

func TestRunnerRemove(t *testing.T) {
	r := NewRunner(nil, fixedStep, 0.25)
	c := &countingCharacter{name: "a"}
	r.Add(c)
	if !r.Remove("a") || r.Remove("a") {
		t.Fatalf("expected the character to be removed once")
	}
	_ = r.Step(frame)
	if c.updates != 0 {
		t.Fatalf("removed characters must not be ticked")
	}
}

func TestRunnerChecksTriggers(t *testing.T) {
	r := NewRunner(nil, fixedStep, 0.25)
	p := player.New("p", nil, settings.DefaultSettings())
	player.Register(p)
	r.Add(p)
	r.SetTriggers(trigger.NewSet(trigger.KillZone("pit", cube.Box(-1, -1, -1, 1, 1, 1), mgl32.Vec3{0, 5, 0})))

	if err := r.Step(frame); err != nil {
		t.Fatalf("step: %v", err)
	}
	if !p.Dead() {
		t.Fatalf("expected the kill zone to kill the player")
	}
}
