package catalog

import (
	"github.com/mydrtv/backend/internal/catalog/application"
	"github.com/mydrtv/backend/internal/catalog/domain"
	pkgApp "github.com/mydrtv/backend/pkg/application"
	pkgDomain "github.com/mydrtv/backend/pkg/domain"
)

type CatalogSlice struct {
	service *application.CatalogService
}

func NewCatalogSlice(
	eventBus pkgApp.EventBus,
	idGenerator pkgDomain.IDGenerator[string],
	logger pkgApp.AppLogger,
	repository domain.ProgramRepository,
) *CatalogSlice {
	service := application.NewCatalogService(repository, eventBus, idGenerator, logger)

	eventBus.Subscribe(application.ProgramAddedEventName, application.NewProgramAddedEventHandler(logger))

	return &CatalogSlice{service: service}
}

func (s *CatalogSlice) Service() *application.CatalogService {
	return s.service
}
