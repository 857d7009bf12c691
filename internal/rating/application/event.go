package application

import (
	"github.com/mydrtv/backend/pkg/domain"
)

const ProgramRatedEventName = "program.rated"

// ProgramRatedEvent records one accepted (already clamped) rating.
type ProgramRatedEvent struct {
	ProgramID string `json:"program_id"`
	UserID    string `json:"user_id"`
	Stars     int    `json:"stars"`
}

func (e ProgramRatedEvent) EventName() string {
	return ProgramRatedEventName
}

func NewProgramRatedEvent(programID, userID string, stars int) domain.Event {
	return ProgramRatedEvent{ProgramID: programID, UserID: userID, Stars: stars}
}
