package oerror

import (
	"fmt"

	"github.com/oomph-ac/locomotion/game"
)

// Error is a plain message error raised by the locomotion core.
type Error struct {
	Err string
}

// New returns a new Error formatted from the given message and arguments.
func New(message string, args ...any) *Error {
	return &Error{Err: fmt.Sprintf(message, args...)}
}

func (e *Error) Error() string {
	return e.Err
}

// MissingTransitionDataError is returned when a state is entered without the payload it requires,
// or with a payload meant for another state.
type MissingTransitionDataError struct {
	// State is the state that rejected the payload.
	State string
	// Want names the payload type the state expects.
	Want string
	// Got is the payload that was supplied, possibly nil.
	Got any
}

// NewMissingTransitionData returns a MissingTransitionDataError.
func NewMissingTransitionData(state, want string, got any) *MissingTransitionDataError {
	return &MissingTransitionDataError{State: state, Want: want, Got: got}
}

func (e *MissingTransitionDataError) Error() string {
	return fmt.Sprintf(game.ErrorMissingTransitionData, e.State, e.Want, e.Got)
}

// InvalidTransitionDataError is returned when a payload of the right type carries unusable values.
type InvalidTransitionDataError struct {
	State  string
	Reason string
}

// NewInvalidTransitionData returns an InvalidTransitionDataError.
func NewInvalidTransitionData(state, reason string) *InvalidTransitionDataError {
	return &InvalidTransitionDataError{State: state, Reason: reason}
}

func (e *InvalidTransitionDataError) Error() string {
	return fmt.Sprintf(game.ErrorInvalidTransitionData, e.State, e.Reason)
}

// UnknownStateError is returned when a transition targets a state that was never registered.
type UnknownStateError struct {
	State string
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf(game.ErrorUnknownState, e.State)
}
