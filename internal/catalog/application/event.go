package application

import (
	"github.com/mydrtv/backend/pkg/domain"
)

const ProgramAddedEventName = "program.added"

// ProgramAddedEvent records a program added to the catalog.
type ProgramAddedEvent struct {
	ProgramID string `json:"program_id"`
	Title     string `json:"title"`
	Year      int    `json:"year"`
	Genre     string `json:"genre"`
}

func (e ProgramAddedEvent) EventName() string {
	return ProgramAddedEventName
}

func NewProgramAddedEvent(programID, title string, year int, genre string) domain.Event {
	return ProgramAddedEvent{ProgramID: programID, Title: title, Year: year, Genre: genre}
}
