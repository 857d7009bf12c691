package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogDomain "github.com/mydrtv/backend/internal/catalog/domain"
	catalogInfra "github.com/mydrtv/backend/internal/catalog/infrastructure"
	"github.com/mydrtv/backend/internal/search"
	searchApp "github.com/mydrtv/backend/internal/search/application"
	searchInfra "github.com/mydrtv/backend/internal/search/infrastructure"
	pkgDomain "github.com/mydrtv/backend/pkg/domain"
	pkgInfra "github.com/mydrtv/backend/pkg/infrastructure"
	zapAdapter "github.com/mydrtv/backend/pkg/infrastructure/zaplogger/adapter"
)

func TestSearchSliceAnswersQueriesOverTheQueryBus(t *testing.T) {
	logger := zapAdapter.NewNopAppLogger()
	eventBus := pkgInfra.NewQueuedEventBus(logger, pkgInfra.WithPollInterval(5*time.Millisecond))
	t.Cleanup(eventBus.Stop)

	programs := catalogInfra.NewInMemoryProgramRepository(logger)
	ctx := context.Background()
	require.NoError(t, programs.Save(ctx, catalogDomain.Program{
		ID: "p1", Title: "Borgen", Tags: []string{"drama"}, Year: 2010, Genre: "drama",
	}))

	queryBus := pkgInfra.NewSimpleQueryBus[pkgDomain.Query[searchApp.SearchProgramsData], searchApp.SearchProgramsData, []catalogDomain.Program]()
	search.NewSearchSlice(
		queryBus,
		eventBus,
		pkgDomain.IDGenerator[string](pkgInfra.GenerateUUID),
		logger,
		searchInfra.NewInMemorySearchLogRepository(logger),
		programs,
	)

	results, err := queryBus.Dispatch(ctx, searchApp.NewSearchProgramsQuery(searchApp.SearchProgramsData{
		UserID: "u1",
		Query:  "drama",
	}))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Borgen", results[0].Title)
}

func TestQueryBusWithoutHandler(t *testing.T) {
	queryBus := pkgInfra.NewSimpleQueryBus[pkgDomain.Query[searchApp.SearchProgramsData], searchApp.SearchProgramsData, []catalogDomain.Program]()

	_, err := queryBus.Dispatch(context.Background(), searchApp.NewSearchProgramsQuery(searchApp.SearchProgramsData{}))
	assert.Error(t, err)
}
