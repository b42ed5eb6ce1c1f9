package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/motion"
	"github.com/oomph-ac/locomotion/spring"
	"github.com/pelletier/go-toml"
)

// Settings contains everything that can be configured for the characters driven by the locomotion core.
type Settings struct {
	Blender struct {
		// Weight is the master weight of every character's motion blender.
		Weight float32 `toml:"weight"`
	} `toml:"blender"`
	Movement Movement `toml:"movement"`
	Motions  Motions  `toml:"motions"`
	Death    struct {
		// FadeDuration is how long the death camera takes to settle on the killer.
		FadeDuration float32 `toml:"fade_duration"`
		// CameraDrop is how far the camera sinks toward the ground on death.
		CameraDrop float32 `toml:"camera_drop"`
	} `toml:"death"`
	Simulation struct {
		// FixedStep is the delta time of the fixed-rate physics tick.
		FixedStep float32 `toml:"fixed_step"`
		// MaxFrameTime caps the frame time fed into the fixed-rate accumulator.
		MaxFrameTime float32 `toml:"max_frame_time"`
	} `toml:"simulation"`
	Sentry struct {
		// DSN is the Sentry DSN crash reports are sent to. Reporting is disabled if empty.
		DSN         string `toml:"dsn"`
		Environment string `toml:"environment"`
	} `toml:"sentry"`
}

// Movement configures how characters move in each of their states.
type Movement struct {
	WalkSpeed    float32 `toml:"walk_speed"`
	CrouchSpeed  float32 `toml:"crouch_speed"`
	ClimbSpeed   float32 `toml:"climb_speed"`
	PushSpeed    float32 `toml:"push_speed"`
	JumpVelocity float32 `toml:"jump_velocity"`
	Gravity      float32 `toml:"gravity"`

	Width           float32 `toml:"width"`
	Height          float32 `toml:"height"`
	EyeHeight       float32 `toml:"eye_height"`
	CrouchEyeHeight float32 `toml:"crouch_eye_height"`

	// EntryTimeConstant is the time constant of the smoothing toward the pose of a ladder, pushed object
	// or cutscene before control is handed to the state.
	EntryTimeConstant float32 `toml:"entry_time_constant"`
	// LadderReach is the distance from the end of a ladder at which climbing is finished.
	LadderReach float32 `toml:"ladder_reach"`
}

// Motions configures the procedural motions registered for every character.
type Motions struct {
	Breathing motion.BreathingSettings `toml:"breathing"`
	HeadBob   motion.HeadBobSettings   `toml:"head_bob"`
	CrouchBob motion.HeadBobSettings   `toml:"crouch_bob"`
	Lean      motion.LeanSettings      `toml:"lean"`
	LookSway  motion.LookSwaySettings  `toml:"look_sway"`
	Landing   motion.LandingSettings   `toml:"landing"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	s := Settings{}
	s.Blender.Weight = 1

	s.Movement = Movement{
		WalkSpeed:         game.DefaultWalkSpeed,
		CrouchSpeed:       game.DefaultCrouchSpeed,
		ClimbSpeed:        game.DefaultClimbSpeed,
		PushSpeed:         game.DefaultPushSpeed,
		JumpVelocity:      game.DefaultJumpVelocity,
		Gravity:           game.DefaultGravity,
		Width:             game.DefaultPlayerWidth,
		Height:            game.DefaultPlayerHeight,
		EyeHeight:         game.DefaultEyeHeight,
		CrouchEyeHeight:   game.CrouchingEyeHeight,
		EntryTimeConstant: game.DefaultEntryTimeConstant,
		LadderReach:       game.DefaultLadderReachDistance,
	}

	soft := spring.Settings{Stiffness: 60, Damping: 12, Mass: 1, Speed: 1}
	s.Motions.Breathing = motion.BreathingSettings{
		Rate:           0.25,
		Amplitude:      0.01,
		PitchAmplitude: 0.3,
		MovingScale:    0.4,
		Spring:         soft,
	}
	s.Motions.HeadBob = motion.HeadBobSettings{
		Frequency:           1.9,
		HorizontalAmplitude: 0.03,
		VerticalAmplitude:   0.05,
		RollAmplitude:       0.6,
		MinSpeed:            0.1,
		Spring:              spring.DefaultSettings(),
	}
	s.Motions.CrouchBob = s.Motions.HeadBob
	s.Motions.CrouchBob.Frequency = 1.2
	s.Motions.CrouchBob.VerticalAmplitude = 0.02
	s.Motions.Lean = motion.LeanSettings{MaxAngle: 2.5, Offset: 0.02}
	s.Motions.LookSway = motion.LookSwaySettings{
		Lag:            0.02,
		MaxAngle:       4,
		PositionFactor: 0.005,
		Spring:         spring.DefaultSettings(),
	}
	s.Motions.Landing = motion.LandingSettings{
		Scale:      0.015,
		MaxDrop:    0.15,
		PitchScale: 20,
		Duration:   0.12,
		Spring:     spring.Settings{Stiffness: 150, Damping: 14, Mass: 1, Speed: 1},
	}

	s.Death.FadeDuration = game.DefaultDeathFadeDuration
	s.Death.CameraDrop = game.DefaultDeathCameraDrop

	s.Simulation.FixedStep = 1.0 / 50.0
	s.Simulation.MaxFrameTime = 0.25
	s.Sentry.Environment = "development"
	return s
}

// Validate returns an error if any setting would make the simulation degenerate.
func (s Settings) Validate() error {
	if s.Blender.Weight < 0 || s.Blender.Weight > 1 {
		return fmt.Errorf("blender: weight must be within [0, 1], got %v", s.Blender.Weight)
	}
	if s.Simulation.FixedStep <= 0 {
		return fmt.Errorf("simulation: fixed step must be positive, got %v", s.Simulation.FixedStep)
	}
	if s.Simulation.MaxFrameTime < s.Simulation.FixedStep {
		return fmt.Errorf("simulation: max frame time %v is below the fixed step", s.Simulation.MaxFrameTime)
	}
	if s.Movement.EntryTimeConstant <= 0 {
		return fmt.Errorf("movement: entry time constant must be positive, got %v", s.Movement.EntryTimeConstant)
	}
	if s.Movement.Width <= 0 || s.Movement.Height <= 0 {
		return fmt.Errorf("movement: character dimensions must be positive")
	}
	springs := map[string]spring.Settings{
		"breathing":  s.Motions.Breathing.Spring,
		"head_bob":   s.Motions.HeadBob.Spring,
		"crouch_bob": s.Motions.CrouchBob.Spring,
		"look_sway":  s.Motions.LookSway.Spring,
		"landing":    s.Motions.Landing.Spring,
	}
	for name, sp := range springs {
		if err := sp.Validate(); err != nil {
			return fmt.Errorf("motions.%s: %w", name, err)
		}
	}
	return nil
}

// SaveDefault saves the default settings to the path given if no file exists there yet.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error checking config: %w", err)
	}
	data, err := toml.Marshal(DefaultSettings())
	if err != nil {
		return fmt.Errorf("error encoding default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing default config: %w", err)
	}
	return nil
}

// Load loads the settings at the path given. Values missing from the file keep their defaults.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %w", err)
	}

	settings := DefaultSettings()
	if err = toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err = settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid config: %w", err)
	}
	return settings, nil
}
