package application

import (
	"context"
	"fmt"

	catalogDomain "github.com/mydrtv/backend/internal/catalog/domain"
	pkgApp "github.com/mydrtv/backend/pkg/application"
	pkgDomain "github.com/mydrtv/backend/pkg/domain"
)

type searchProgramsHandler struct {
	service *SearchService
}

func (h *searchProgramsHandler) Handle(ctx context.Context, query pkgDomain.Query[SearchProgramsData]) ([]catalogDomain.Program, error) {
	data := query.Payload()
	return h.service.SearchPrograms(ctx, data.UserID, data.Query, data.Year, data.Genre)
}

func NewSearchProgramsHandler(service *SearchService) pkgApp.QueryHandler[pkgDomain.Query[SearchProgramsData], SearchProgramsData, []catalogDomain.Program] {
	return &searchProgramsHandler{service: service}
}

type catalogSearchedEventHandler struct {
	logger pkgApp.AppLogger
}

func (h *catalogSearchedEventHandler) Handle(ctx context.Context, event pkgDomain.Event) error {
	searched, ok := event.(CatalogSearchedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T for %s", event, CatalogSearchedEventName)
	}

	pkgApp.LogInfo(ctx, h.logger, "search recorded", map[string]interface{}{
		"user_id": searched.UserID,
		"query":   searched.Query,
		"year":    searched.Year,
		"genre":   searched.Genre,
		"hits":    searched.Hits,
	})
	return nil
}

func NewCatalogSearchedEventHandler(logger pkgApp.AppLogger) pkgApp.EventHandler {
	return &catalogSearchedEventHandler{logger: logger}
}
