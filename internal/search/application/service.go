package application

import (
	"context"
	"strings"
	"time"

	catalogDomain "github.com/mydrtv/backend/internal/catalog/domain"
	"github.com/mydrtv/backend/internal/search/domain"
	pkgApp "github.com/mydrtv/backend/pkg/application"
	pkgDomain "github.com/mydrtv/backend/pkg/domain"
)

type SearchService struct {
	searchLog   domain.SearchLogRepository
	programs    catalogDomain.ProgramRepository
	eventBus    pkgApp.EventBus
	idGenerator pkgDomain.IDGenerator[string]
	logger      pkgApp.AppLogger
	now         func() time.Time
}

func NewSearchService(searchLog domain.SearchLogRepository, programs catalogDomain.ProgramRepository, eventBus pkgApp.EventBus, idGenerator pkgDomain.IDGenerator[string], logger pkgApp.AppLogger) *SearchService {
	return &SearchService{
		searchLog:   searchLog,
		programs:    programs,
		eventBus:    eventBus,
		idGenerator: idGenerator,
		logger:      logger,
		now:         time.Now,
	}
}

// SearchPrograms scans the catalog: case-insensitive substring match of
// query against title and tags, optional exact filters on year and genre.
// Zero values disable a filter; an empty query matches every program. Every
// search, including empty ones, is appended to the search log and published
// as catalog.searched.
func (s *SearchService) SearchPrograms(ctx context.Context, userID, query string, year int, genre string) ([]catalogDomain.Program, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	programs, err := s.programs.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	normalizedQuery := strings.ToLower(query)
	normalizedGenre := strings.ToLower(genre)

	var results []catalogDomain.Program
	for _, program := range programs {
		if year != 0 && program.Year != year {
			continue
		}
		if normalizedGenre != "" && program.Genre != normalizedGenre {
			continue
		}
		if !matchesQuery(program, normalizedQuery) {
			continue
		}
		results = append(results, program)
	}

	entry := domain.SearchLogEntry{
		ID:     s.idGenerator(),
		UserID: userID,
		Query:  query,
		Year:   year,
		Genre:  genre,
		Hits:   len(results),
		At:     s.now(),
	}
	if err := s.searchLog.Append(ctx, entry); err != nil {
		pkgApp.LogError(ctx, s.logger, "could not append search log entry", err, map[string]interface{}{"user_id": userID})
		return nil, err
	}

	if err := s.eventBus.Publish(ctx, NewCatalogSearchedEvent(userID, query, year, genre, len(results))); err != nil {
		pkgApp.LogError(ctx, s.logger, "could not publish catalog.searched", err, map[string]interface{}{"user_id": userID})
		return nil, err
	}

	s.logger.Debug(ctx, "catalog searched", map[string]interface{}{
		"user_id": userID,
		"query":   query,
		"hits":    len(results),
	})
	return results, nil
}

// matchesQuery reports whether the lowercased query is a substring of the
// program title or any tag. Tags are stored lowercased already.
func matchesQuery(program catalogDomain.Program, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(program.Title), query) {
		return true
	}
	for _, tag := range program.Tags {
		if strings.Contains(tag, query) {
			return true
		}
	}
	return false
}
