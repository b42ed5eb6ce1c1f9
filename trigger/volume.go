package trigger

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/fsm"
	"github.com/oomph-ac/locomotion/player"
)

// Volume is a box in the world that moves players into a state when they walk into it.
type Volume struct {
	// Name identifies the volume in logs and errors.
	Name string
	Box  cube.BBox
	// Target is the state players entering the volume are moved to.
	Target fsm.ID
	// Payload builds the payload handed to Target. It may be nil for states that take no payload.
	Payload func(p *player.Player) fsm.Payload
	// Require, if set, must return true for the volume to fire.
	Require func(p *player.Player) bool
	// Once disables the volume after it fired for the first time.
	Once bool
}

// Set is a group of volumes checked together. It tracks which players are inside which volume so that
// volumes only fire when a player enters them. A Set is safe for concurrent use.
type Set struct {
	mu      sync.Mutex
	volumes []*Volume
	inside  map[*Volume]map[*player.Player]struct{}
	fired   map[*Volume]struct{}
}

// NewSet returns a set of the volumes given.
func NewSet(volumes ...*Volume) *Set {
	s := &Set{
		inside: make(map[*Volume]map[*player.Player]struct{}),
		fired:  make(map[*Volume]struct{}),
	}
	for _, v := range volumes {
		s.Add(v)
	}
	return s
}

// Add adds a volume to the set.
func (s *Set) Add(v *Volume) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volumes = append(s.volumes, v)
	s.inside[v] = make(map[*player.Player]struct{})
}

// Check fires every volume p has entered since the last check. A volume whose requirement is not met
// is checked again on the next call for as long as p stays inside it. The errors of rejected
// transitions are joined together.
func (s *Set) Check(p *player.Player) error {
	bb := p.BBox()

	s.mu.Lock()
	var entered []*Volume
	for _, v := range s.volumes {
		_, was := s.inside[v][p]
		is := v.Box.IntersectsWith(bb)
		if !is {
			delete(s.inside[v], p)
			continue
		}
		if _, done := s.fired[v]; !was && !done {
			entered = append(entered, v)
		}
	}
	s.mu.Unlock()

	var errs []error
	for _, v := range entered {
		if v.Require != nil && !v.Require(p) {
			continue
		}
		s.mu.Lock()
		s.inside[v][p] = struct{}{}
		s.mu.Unlock()

		var payload fsm.Payload
		if v.Payload != nil {
			payload = v.Payload(p)
		}
		if err := p.ChangeState(v.Target, payload); err != nil {
			errs = append(errs, fmt.Errorf("trigger %s: %w", v.Name, err))
			continue
		}
		p.Log().WithField("trigger", v.Name).Debugf("entered %s", v.Target)
		if v.Once {
			s.mu.Lock()
			s.fired[v] = struct{}{}
			s.mu.Unlock()
		}
	}
	return errors.Join(errs...)
}

// Forget drops everything the set remembers about p.
func (s *Set) Forget(p *player.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, in := range s.inside {
		delete(in, p)
	}
}

// Ladder returns a volume that puts players on a ladder when they walk into it while moving forward.
func Ladder(name string, box cube.BBox, ladder player.LadderPayload) *Volume {
	return &Volume{
		Name:   name,
		Box:    box,
		Target: player.StateLadder,
		Payload: func(*player.Player) fsm.Payload {
			l := ladder
			return &l
		},
		Require: func(p *player.Player) bool {
			return !p.Dead() && p.Input().Y() > 0
		},
	}
}

// Cutscene returns a volume that plays a cutscene the first time a player walks into it.
func Cutscene(name string, box cube.BBox, cutscene func(p *player.Player) *player.CutscenePayload) *Volume {
	return &Volume{
		Name:   name,
		Box:    box,
		Target: player.StateCutscene,
		Payload: func(p *player.Player) fsm.Payload {
			return cutscene(p)
		},
		Require: func(p *player.Player) bool {
			return !p.Dead()
		},
		Once: true,
	}
}

// KillZone returns a volume that kills players walking into it. The death camera looks at lookAt.
func KillZone(name string, box cube.BBox, lookAt mgl32.Vec3) *Volume {
	return &Volume{
		Name:   name,
		Box:    box,
		Target: player.StateDead,
		Payload: func(*player.Player) fsm.Payload {
			return &player.DeathPayload{LookAt: lookAt}
		},
		Require: func(p *player.Player) bool {
			return !p.Dead()
		},
	}
}
