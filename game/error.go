package game

const (
	ErrorMissingTransitionData = "%s: missing required transition data (want %s, got %T)"
	ErrorInvalidTransitionData = "%s: invalid transition data: %s"
	ErrorUnknownState          = "unknown state %q"
	ErrorDuplicateState        = "state %q registered twice"
	ErrorMachineNotStarted     = "state machine has not been started"
	ErrorMachineStarted        = "state machine already started in %q"
	ErrorUnexpectedPayload     = "%s: unexpected transition data %T"
	ErrorNilModule             = "motion module registered for %q is nil"
)
