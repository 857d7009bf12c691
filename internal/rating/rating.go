package rating

import (
	catalogDomain "github.com/mydrtv/backend/internal/catalog/domain"
	"github.com/mydrtv/backend/internal/rating/application"
	"github.com/mydrtv/backend/internal/rating/domain"
	pkgApp "github.com/mydrtv/backend/pkg/application"
	pkgDomain "github.com/mydrtv/backend/pkg/domain"
)

type RatingSlice struct {
	service   *application.RatingService
	projector *application.RatingStatsProjector
}

func NewRatingSlice(
	queryBus pkgApp.QueryBus[pkgDomain.Query[application.AverageRatingData], application.AverageRatingData, float64],
	eventBus pkgApp.EventBus,
	logger pkgApp.AppLogger,
	ratings domain.RatingRepository,
	programs catalogDomain.ProgramRepository,
) *RatingSlice {
	service := application.NewRatingService(ratings, programs, eventBus, logger)
	projector := application.NewRatingStatsProjector(logger)

	queryBus.RegisterHandler(application.AverageRatingQueryName, application.NewAverageRatingHandler(service))
	eventBus.Subscribe(application.ProgramRatedEventName, projector)

	return &RatingSlice{service: service, projector: projector}
}

func (s *RatingSlice) Service() *application.RatingService {
	return s.service
}

func (s *RatingSlice) Projector() *application.RatingStatsProjector {
	return s.projector
}
