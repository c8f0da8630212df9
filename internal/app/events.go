package app

import "snake/internal/domain"

type AppEventType int

const (
	AppEventPhaseChanged AppEventType = iota
	AppEventStateUpdated
)

type AppEvent struct {
	Type    AppEventType
	Payload interface{}
}

type PhasePayload struct {
	From      Phase
	To        Phase
	SessionID string
	Score     int
	BestScore int
}

type StatePayload struct {
	SessionID string
	Snapshot  domain.Snapshot
}
