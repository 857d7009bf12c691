package search

import (
	catalogDomain "github.com/mydrtv/backend/internal/catalog/domain"
	"github.com/mydrtv/backend/internal/search/application"
	"github.com/mydrtv/backend/internal/search/domain"
	pkgApp "github.com/mydrtv/backend/pkg/application"
	pkgDomain "github.com/mydrtv/backend/pkg/domain"
)

type SearchSlice struct {
	service *application.SearchService
}

func NewSearchSlice(
	queryBus pkgApp.QueryBus[pkgDomain.Query[application.SearchProgramsData], application.SearchProgramsData, []catalogDomain.Program],
	eventBus pkgApp.EventBus,
	idGenerator pkgDomain.IDGenerator[string],
	logger pkgApp.AppLogger,
	searchLog domain.SearchLogRepository,
	programs catalogDomain.ProgramRepository,
) *SearchSlice {
	service := application.NewSearchService(searchLog, programs, eventBus, idGenerator, logger)

	queryBus.RegisterHandler(application.SearchProgramsQueryName, application.NewSearchProgramsHandler(service))
	eventBus.Subscribe(application.CatalogSearchedEventName, application.NewCatalogSearchedEventHandler(logger))

	return &SearchSlice{service: service}
}

func (s *SearchSlice) Service() *application.SearchService {
	return s.service
}
