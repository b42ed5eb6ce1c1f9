package simulation

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/chewxy/math32"
	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/locomotion/assert"
	"github.com/oomph-ac/locomotion/player"
	"github.com/oomph-ac/locomotion/trigger"
	"github.com/oomph-ac/locomotion/worker"
	"github.com/sirupsen/logrus"
)

// Character is anything the runner can tick: players and agents.
type Character interface {
	Name() string
	ActiveState() string
	Update(dt float32) error
	FixedUpdate(dt float32) error
}

// character is a Character tracked by the runner.
type character struct {
	c       Character
	faulted bool
}

// Runner ticks characters every frame: a variable-rate update once per frame and as many fixed-rate
// updates as the accumulated frame time allows. Characters are ticked in parallel, each one on a single
// goroutine per frame.
type Runner struct {
	// FixedStep is the delta time of a fixed-rate update.
	FixedStep float32
	// MaxFrameTime caps the frame time fed into the accumulator so a long stall does not cause a burst
	// of fixed updates.
	MaxFrameTime float32

	log logrus.FieldLogger
	hub *sentry.Hub

	mu          sync.Mutex
	characters  []*character
	triggers    *trigger.Set
	accumulator float32
	frames      uint64
}

// NewRunner returns a runner without characters. A nil logger discards all output. NewRunner panics if
// fixedStep or maxFrameTime is not positive.
func NewRunner(log logrus.FieldLogger, fixedStep, maxFrameTime float32) *Runner {
	assert.IsTrue(fixedStep > 0, "simulation: fixed step must be positive, got %v", fixedStep)
	assert.IsTrue(maxFrameTime > 0, "simulation: max frame time must be positive, got %v", maxFrameTime)
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Runner{
		FixedStep:    fixedStep,
		MaxFrameTime: maxFrameTime,
		log:          log,
		hub:          sentry.CurrentHub().Clone(),
	}
}

// Add adds a character to the runner.
func (r *Runner) Add(c Character) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.characters = append(r.characters, &character{c: c})
}

// Remove removes the character with the name given. It returns false if there is no such character.
func (r *Runner) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, ch := range r.characters {
		if ch.c.Name() == name {
			r.characters = append(r.characters[:i], r.characters[i+1:]...)
			return true
		}
	}
	return false
}

// SetTriggers sets the trigger volumes checked for every player after its update.
func (r *Runner) SetTriggers(s *trigger.Set) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.triggers = s
}

// Faulted returns true if the character with the name given crashed and is no longer ticked.
func (r *Runner) Faulted(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ch := range r.characters {
		if ch.c.Name() == name {
			return ch.faulted
		}
	}
	return false
}

// Frames returns the amount of frames stepped.
func (r *Runner) Frames() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// Alpha returns how far the simulation is between the last fixed update and the next one, in [0, 1).
func (r *Runner) Alpha() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.accumulator / r.FixedStep
}

// Step advances every character by a frame of dt seconds. Errors returned by characters are joined
// together; a character that panics is reported to Sentry and parked.
func (r *Runner) Step(dt float32) error {
	assert.IsTrue(r.FixedStep > 0, "simulation: fixed step must be positive, got %v", r.FixedStep)
	r.mu.Lock()
	if dt > r.MaxFrameTime {
		dt = r.MaxFrameTime
	}
	r.accumulator += dt
	ticks := int(math32.Floor(r.accumulator / r.FixedStep))
	r.accumulator -= float32(ticks) * r.FixedStep
	r.frames++

	characters := make([]*character, 0, len(r.characters))
	for _, ch := range r.characters {
		if !ch.faulted {
			characters = append(characters, ch)
		}
	}
	triggers := r.triggers
	r.mu.Unlock()

	errs := make([]error, len(characters))
	var g worker.Group
	for i, ch := range characters {
		g.Go(func() {
			errs[i] = r.tick(ch, ticks, dt, triggers)
		})
	}
	g.Wait()
	return errors.Join(errs...)
}

// tick runs a single character for one frame.
func (r *Runner) tick(ch *character, ticks int, dt float32, triggers *trigger.Set) (err error) {
	defer func() {
		if v := recover(); v != nil {
			r.fault(ch, v)
			err = nil
		}
	}()

	for range ticks {
		if err := ch.c.FixedUpdate(r.FixedStep); err != nil {
			return fmt.Errorf("%s: fixed update: %w", ch.c.Name(), err)
		}
	}
	if err := ch.c.Update(dt); err != nil {
		return fmt.Errorf("%s: update: %w", ch.c.Name(), err)
	}
	if p, ok := ch.c.(*player.Player); ok && triggers != nil {
		if err := triggers.Check(p); err != nil {
			return fmt.Errorf("%s: %w", p.Name(), err)
		}
	}
	return nil
}

// fault parks a character that panicked and reports the panic with the character and its state as tags.
func (r *Runner) fault(ch *character, v any) {
	name, state := ch.c.Name(), ch.c.ActiveState()
	hub := r.hub.Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("character", name)
		scope.SetTag("state", state)
	})
	hub.Recover(v)

	r.mu.Lock()
	ch.faulted = true
	r.mu.Unlock()
	r.log.WithFields(logrus.Fields{"character": name, "state": state}).Errorf("character crashed: %v", v)
}
