package app

import (
	"errors"
	"fmt"
)

var ErrInvalidTransition = errors.New("invalid phase transition")

// Phase is where the player is in the application, independent of the
// simulation's own running/paused/game-over status.
type Phase int

const (
	PhaseMainMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMainMenu:
		return "main menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	}
	return "unknown"
}

type Transition int

const (
	TransitionStart Transition = iota
	TransitionGameOver
	TransitionRetry
	TransitionExit
)

func (t Transition) String() string {
	switch t {
	case TransitionStart:
		return "start"
	case TransitionGameOver:
		return "game over"
	case TransitionRetry:
		return "retry"
	case TransitionExit:
		return "exit"
	}
	return "unknown"
}

var transitions = map[Transition]map[Phase]Phase{
	TransitionStart: {
		PhaseMainMenu: PhasePlaying,
	},
	TransitionGameOver: {
		PhasePlaying: PhaseGameOver,
	},
	TransitionRetry: {
		PhasePlaying:  PhasePlaying,
		PhaseGameOver: PhasePlaying,
	},
	TransitionExit: {
		PhasePlaying:  PhaseMainMenu,
		PhaseGameOver: PhaseMainMenu,
	},
}

// StateMachine holds the current phase. It is not synchronized; App guards
// it with its own lock.
type StateMachine struct {
	phase Phase
}

func NewStateMachine() *StateMachine {
	return &StateMachine{phase: PhaseMainMenu}
}

func (sm *StateMachine) Phase() Phase {
	return sm.phase
}

func (sm *StateMachine) Can(t Transition) bool {
	_, ok := transitions[t][sm.phase]
	return ok
}

// Fire applies t and returns the phase it left.
func (sm *StateMachine) Fire(t Transition) (Phase, error) {
	next, ok := transitions[t][sm.phase]
	if !ok {
		return sm.phase, fmt.Errorf("%w: %v from %v", ErrInvalidTransition, t, sm.phase)
	}
	prev := sm.phase
	sm.phase = next
	return prev, nil
}
