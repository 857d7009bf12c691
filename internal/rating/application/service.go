package application

import (
	"context"

	catalogDomain "github.com/mydrtv/backend/internal/catalog/domain"
	"github.com/mydrtv/backend/internal/rating/domain"
	pkgApp "github.com/mydrtv/backend/pkg/application"
)

type RatingService struct {
	ratings  domain.RatingRepository
	programs catalogDomain.ProgramRepository
	eventBus pkgApp.EventBus
	logger   pkgApp.AppLogger
}

func NewRatingService(ratings domain.RatingRepository, programs catalogDomain.ProgramRepository, eventBus pkgApp.EventBus, logger pkgApp.AppLogger) *RatingService {
	return &RatingService{
		ratings:  ratings,
		programs: programs,
		eventBus: eventBus,
		logger:   logger,
	}
}

// RateProgram appends a clamped rating for the program and publishes
// program.rated. Rating an unknown program is an error; the stars value is
// never one.
func (s *RatingService) RateProgram(ctx context.Context, userID, programID string, stars int) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if _, err := s.programs.FindByID(ctx, programID); err != nil {
		pkgApp.LogError(ctx, s.logger, "could not rate program", err, map[string]interface{}{"program_id": programID})
		return err
	}

	rating := domain.Rating{
		UserID: userID,
		Stars:  domain.Clamp(stars),
	}

	if err := s.ratings.Append(ctx, programID, rating); err != nil {
		pkgApp.LogError(ctx, s.logger, "could not append rating", err, map[string]interface{}{"program_id": programID})
		return err
	}

	if err := s.eventBus.Publish(ctx, NewProgramRatedEvent(programID, userID, rating.Stars)); err != nil {
		pkgApp.LogError(ctx, s.logger, "could not publish program.rated", err, map[string]interface{}{"program_id": programID})
		return err
	}

	s.logger.Info(ctx, "program rated", map[string]interface{}{
		"program_id": programID,
		"user_id":    userID,
		"stars":      rating.Stars,
	})
	return nil
}

// AverageRating returns the mean of all ratings for the program, 0.0 when
// the program has none.
func (s *RatingService) AverageRating(ctx context.Context, programID string) (float64, error) {
	ratings, err := s.ratings.FindByProgramID(ctx, programID)
	if err != nil {
		return 0, err
	}
	if len(ratings) == 0 {
		return 0, nil
	}

	sum := 0
	for _, rating := range ratings {
		sum += rating.Stars
	}
	return float64(sum) / float64(len(ratings)), nil
}
