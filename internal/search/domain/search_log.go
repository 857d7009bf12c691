package domain

import (
	"context"
	"time"
)

// SearchLogEntry records one executed search, hit or miss. The log is
// append-only.
type SearchLogEntry struct {
	ID     string    `json:"id"`
	UserID string    `json:"user_id"`
	Query  string    `json:"query"`
	Year   int       `json:"year"`
	Genre  string    `json:"genre"`
	Hits   int       `json:"hits"`
	At     time.Time `json:"at"`
}

type SearchLogRepository interface {
	Append(ctx context.Context, entry SearchLogEntry) error
	FindAll(ctx context.Context) ([]SearchLogEntry, error)
}
