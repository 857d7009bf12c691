package application

import (
	"github.com/mydrtv/backend/pkg/domain"
)

const CatalogSearchedEventName = "catalog.searched"

// CatalogSearchedEvent records an executed search, including searches with
// zero hits or no query text.
type CatalogSearchedEvent struct {
	UserID string `json:"user_id"`
	Query  string `json:"query"`
	Year   int    `json:"year"`
	Genre  string `json:"genre"`
	Hits   int    `json:"hits"`
}

func (e CatalogSearchedEvent) EventName() string {
	return CatalogSearchedEventName
}

func NewCatalogSearchedEvent(userID, query string, year int, genre string, hits int) domain.Event {
	return CatalogSearchedEvent{UserID: userID, Query: query, Year: year, Genre: genre, Hits: hits}
}
