package application_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogDomain "github.com/mydrtv/backend/internal/catalog/domain"
	catalogInfra "github.com/mydrtv/backend/internal/catalog/infrastructure"
	"github.com/mydrtv/backend/internal/search/application"
	searchInfra "github.com/mydrtv/backend/internal/search/infrastructure"
	pkgApp "github.com/mydrtv/backend/pkg/application"
	pkgDomain "github.com/mydrtv/backend/pkg/domain"
	pkgInfra "github.com/mydrtv/backend/pkg/infrastructure"
	zapAdapter "github.com/mydrtv/backend/pkg/infrastructure/zaplogger/adapter"
)

type searchFixture struct {
	service   *application.SearchService
	searchLog *searchInfra.InMemorySearchLogRepository
	bus       pkgApp.EventBus

	mu     sync.Mutex
	events []pkgDomain.Event
}

func newSearchFixture(t *testing.T) *searchFixture {
	t.Helper()

	logger := zapAdapter.NewNopAppLogger()
	bus := pkgInfra.NewQueuedEventBus(logger, pkgInfra.WithPollInterval(5*time.Millisecond))
	t.Cleanup(bus.Stop)

	searchLog := searchInfra.NewInMemorySearchLogRepository(logger)
	programs := catalogInfra.NewInMemoryProgramRepository(logger)

	ctx := context.Background()
	require.NoError(t, programs.Save(ctx, catalogDomain.Program{
		ID: "p1", Title: "Borgen", Tags: []string{"drama", "politics"}, Year: 2010, Genre: "drama",
	}))
	require.NoError(t, programs.Save(ctx, catalogDomain.Program{
		ID: "p2", Title: "Forbrydelsen", Tags: []string{"crime", "thriller"}, Year: 2007, Genre: "crime",
	}))

	fixture := &searchFixture{
		service:   application.NewSearchService(searchLog, programs, bus, pkgDomain.IDGenerator[string](pkgInfra.GenerateUUID), logger),
		searchLog: searchLog,
		bus:       bus,
	}
	bus.Subscribe(application.CatalogSearchedEventName, pkgApp.EventHandlerFunc(func(_ context.Context, event pkgDomain.Event) error {
		fixture.mu.Lock()
		defer fixture.mu.Unlock()
		fixture.events = append(fixture.events, event)
		return nil
	}))
	return fixture
}

func (f *searchFixture) publishedEvents() []pkgDomain.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	events := make([]pkgDomain.Event, len(f.events))
	copy(events, f.events)
	return events
}

func TestSearchProgramsMatchesTitleAndTags(t *testing.T) {
	fixture := newSearchFixture(t)

	results, err := fixture.service.SearchPrograms(context.Background(), "u1", "drama", 0, "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Borgen", results[0].Title)
}

func TestSearchProgramsIsCaseInsensitive(t *testing.T) {
	fixture := newSearchFixture(t)

	results, err := fixture.service.SearchPrograms(context.Background(), "u1", "FORBRYD", 0, "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Forbrydelsen", results[0].Title)
}

func TestSearchProgramsEmptyQueryMatchesAll(t *testing.T) {
	fixture := newSearchFixture(t)

	results, err := fixture.service.SearchPrograms(context.Background(), "u1", "", 0, "")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearchProgramsFiltersByYear(t *testing.T) {
	fixture := newSearchFixture(t)

	results, err := fixture.service.SearchPrograms(context.Background(), "u1", "", 2007, "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Forbrydelsen", results[0].Title)
}

func TestSearchProgramsFiltersByGenre(t *testing.T) {
	fixture := newSearchFixture(t)

	results, err := fixture.service.SearchPrograms(context.Background(), "u1", "", 0, "Drama")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Borgen", results[0].Title)
}

func TestSearchProgramsLogsAndPublishesOnZeroHits(t *testing.T) {
	fixture := newSearchFixture(t)

	ctx := context.Background()
	results, err := fixture.service.SearchPrograms(ctx, "u1", "matador", 0, "")
	require.NoError(t, err)
	assert.Empty(t, results)

	entries, err := fixture.searchLog.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "matador", entries[0].Query)
	assert.Equal(t, 0, entries[0].Hits)
	assert.NotEmpty(t, entries[0].ID)

	assert.Eventually(t, func() bool { return len(fixture.publishedEvents()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, application.CatalogSearchedEvent{
		UserID: "u1",
		Query:  "matador",
		Hits:   0,
	}, fixture.publishedEvents()[0])
}
