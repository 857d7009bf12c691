package application

import (
	"context"
	"fmt"
	"sync"

	pkgApp "github.com/mydrtv/backend/pkg/application"
	pkgDomain "github.com/mydrtv/backend/pkg/domain"
)

type averageRatingHandler struct {
	service *RatingService
}

func (h *averageRatingHandler) Handle(ctx context.Context, query pkgDomain.Query[AverageRatingData]) (float64, error) {
	return h.service.AverageRating(ctx, query.Payload().ProgramID)
}

func NewAverageRatingHandler(service *RatingService) pkgApp.QueryHandler[pkgDomain.Query[AverageRatingData], AverageRatingData, float64] {
	return &averageRatingHandler{service: service}
}

// RatingStatsProjector consumes program.rated and keeps running per-program
// totals, so reads never touch the rating log. It trails the repository by
// whatever is still queued on the bus.
type RatingStatsProjector struct {
	logger pkgApp.AppLogger

	mu     sync.RWMutex
	counts map[string]int
	sums   map[string]int
}

func NewRatingStatsProjector(logger pkgApp.AppLogger) *RatingStatsProjector {
	return &RatingStatsProjector{
		logger: logger,
		counts: make(map[string]int),
		sums:   make(map[string]int),
	}
}

func (p *RatingStatsProjector) Handle(ctx context.Context, event pkgDomain.Event) error {
	rated, ok := event.(ProgramRatedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T for %s", event, ProgramRatedEventName)
	}

	p.mu.Lock()
	p.counts[rated.ProgramID]++
	p.sums[rated.ProgramID] += rated.Stars
	p.mu.Unlock()

	pkgApp.LogDebug(ctx, p.logger, "rating stats updated", map[string]interface{}{
		"program_id": rated.ProgramID,
		"stars":      rated.Stars,
	})
	return nil
}

// Average returns the projected mean for the program, 0.0 when no rating
// has been consumed yet.
func (p *RatingStatsProjector) Average(programID string) float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()

	count := p.counts[programID]
	if count == 0 {
		return 0
	}
	return float64(p.sums[programID]) / float64(count)
}
