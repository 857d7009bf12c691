package application

import (
	"context"
	"strings"

	"github.com/mydrtv/backend/internal/catalog/domain"
	pkgApp "github.com/mydrtv/backend/pkg/application"
	pkgDomain "github.com/mydrtv/backend/pkg/domain"
)

type CatalogService struct {
	repository  domain.ProgramRepository
	eventBus    pkgApp.EventBus
	idGenerator pkgDomain.IDGenerator[string]
	logger      pkgApp.AppLogger
}

func NewCatalogService(repository domain.ProgramRepository, eventBus pkgApp.EventBus, idGenerator pkgDomain.IDGenerator[string], logger pkgApp.AppLogger) *CatalogService {
	return &CatalogService{
		repository:  repository,
		eventBus:    eventBus,
		idGenerator: idGenerator,
		logger:      logger,
	}
}

// AddProgram stores a new catalog entry and publishes program.added. Tags
// and genre are lowercased before storage so lookups stay case-insensitive.
func (s *CatalogService) AddProgram(ctx context.Context, title string, tags []string, year int, genre string) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	normalizedTags := make([]string, len(tags))
	for i, tag := range tags {
		normalizedTags[i] = strings.ToLower(tag)
	}

	program := domain.Program{
		ID:    s.idGenerator(),
		Title: title,
		Tags:  normalizedTags,
		Year:  year,
		Genre: strings.ToLower(genre),
	}

	if err := s.repository.Save(ctx, program); err != nil {
		pkgApp.LogError(ctx, s.logger, "could not save program", err, map[string]interface{}{"title": title})
		return "", err
	}

	if err := s.eventBus.Publish(ctx, NewProgramAddedEvent(program.ID, program.Title, program.Year, program.Genre)); err != nil {
		pkgApp.LogError(ctx, s.logger, "could not publish program.added", err, map[string]interface{}{"program_id": program.ID})
		return "", err
	}

	s.logger.Info(ctx, "program added", map[string]interface{}{"program_id": program.ID, "title": title})
	return program.ID, nil
}

func (s *CatalogService) GetProgram(ctx context.Context, programID string) (domain.Program, error) {
	return s.repository.FindByID(ctx, programID)
}
