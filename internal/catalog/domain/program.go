package domain

import (
	"context"
	"errors"
)

var (
	ErrProgramAlreadyExists = errors.New("program already exists")
	ErrProgramNotFound      = errors.New("program not found")
)

// Program is a catalog entry. Tags and Genre are stored lowercased so
// matching against them is case-insensitive.
type Program struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
	Year  int      `json:"year"`
	Genre string   `json:"genre"`
}

type ProgramRepository interface {
	Save(ctx context.Context, program Program) error
	FindByID(ctx context.Context, id string) (Program, error)
	FindAll(ctx context.Context) ([]Program, error)
}
