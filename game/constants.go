package game

const (
	// SpringSubStep is the largest integration step a spring simulator takes.
	SpringSubStep = float32(0.01)
	// SpringSubStepEpsilon keeps the sub-step strictly below the frame step.
	SpringSubStepEpsilon = float32(0.001)
	// SpringMaxSubSteps bounds the work done by a single spring evaluation.
	SpringMaxSubSteps = 1024
	// SpringIdleThreshold is the squared acceleration under which a spring is considered at rest.
	SpringIdleThreshold = float32(1e-12)

	DefaultWalkSpeed    = float32(4.3)
	DefaultCrouchSpeed  = float32(1.3)
	DefaultClimbSpeed   = float32(2.0)
	DefaultPushSpeed    = float32(1.5)
	DefaultJumpVelocity = float32(4.2)
	DefaultGravity      = float32(9.81)

	DefaultPlayerWidth         = float32(0.6)
	DefaultPlayerHeight        = float32(1.8)
	DefaultEyeHeight           = float32(1.62)
	CrouchingEyeHeight         = float32(1.27)
	DefaultEntryTimeConstant   = float32(0.25)
	EntryCompletionThreshold   = float32(1e-3)
	DefaultDeathFadeDuration   = float32(1.5)
	DefaultDeathCameraDrop     = float32(1.2)
	DefaultLadderReachDistance = float32(0.05)
)
