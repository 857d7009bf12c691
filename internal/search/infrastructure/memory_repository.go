package infrastructure

import (
	"context"
	"sync"

	"github.com/mydrtv/backend/internal/search/domain"
	pkgApp "github.com/mydrtv/backend/pkg/application"
)

type InMemorySearchLogRepository struct {
	mu     sync.RWMutex
	data   []domain.SearchLogEntry
	logger pkgApp.AppLogger
}

func NewInMemorySearchLogRepository(logger pkgApp.AppLogger) *InMemorySearchLogRepository {
	return &InMemorySearchLogRepository{logger: logger}
}

func (r *InMemorySearchLogRepository) Append(ctx context.Context, entry domain.SearchLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, entry)

	pkgApp.LogDebug(ctx, r.logger, "search log entry appended", map[string]interface{}{
		"entry_id": entry.ID,
		"query":    entry.Query,
	})
	return nil
}

func (r *InMemorySearchLogRepository) FindAll(ctx context.Context) ([]domain.SearchLogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]domain.SearchLogEntry, len(r.data))
	copy(entries, r.data)
	return entries, nil
}
