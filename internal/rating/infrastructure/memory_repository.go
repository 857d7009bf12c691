package infrastructure

import (
	"context"
	"sync"

	"github.com/mydrtv/backend/internal/rating/domain"
	pkgApp "github.com/mydrtv/backend/pkg/application"
)

type InMemoryRatingRepository struct {
	mu     sync.RWMutex
	data   map[string][]domain.Rating
	logger pkgApp.AppLogger
}

func NewInMemoryRatingRepository(logger pkgApp.AppLogger) *InMemoryRatingRepository {
	return &InMemoryRatingRepository{
		data:   make(map[string][]domain.Rating),
		logger: logger,
	}
}

func (r *InMemoryRatingRepository) Append(ctx context.Context, programID string, rating domain.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[programID] = append(r.data[programID], rating)

	pkgApp.LogDebug(ctx, r.logger, "rating appended", map[string]interface{}{
		"program_id": programID,
		"stars":      rating.Stars,
	})
	return nil
}

func (r *InMemoryRatingRepository) FindByProgramID(ctx context.Context, programID string) ([]domain.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ratings := make([]domain.Rating, len(r.data[programID]))
	copy(ratings, r.data[programID])
	return ratings, nil
}
