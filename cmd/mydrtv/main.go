package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/mydrtv/backend/internal/catalog"
	catalogDomain "github.com/mydrtv/backend/internal/catalog/domain"
	catalogInfra "github.com/mydrtv/backend/internal/catalog/infrastructure"
	"github.com/mydrtv/backend/internal/rating"
	ratingApp "github.com/mydrtv/backend/internal/rating/application"
	ratingInfra "github.com/mydrtv/backend/internal/rating/infrastructure"
	"github.com/mydrtv/backend/internal/search"
	searchApp "github.com/mydrtv/backend/internal/search/application"
	searchInfra "github.com/mydrtv/backend/internal/search/infrastructure"
	"github.com/mydrtv/backend/internal/users"
	usersInfra "github.com/mydrtv/backend/internal/users/infrastructure"
	pkgApp "github.com/mydrtv/backend/pkg/application"
	pkgDomain "github.com/mydrtv/backend/pkg/domain"
	pkgInfra "github.com/mydrtv/backend/pkg/infrastructure"
	channelsAdapter "github.com/mydrtv/backend/pkg/infrastructure/channels/adapter"
	zapAdapter "github.com/mydrtv/backend/pkg/infrastructure/zaplogger/adapter"
)

type config struct {
	// Bus selects the event bus implementation: "queued" (single worker,
	// global FIFO) or "gochannel" (watermill, ordered per event name).
	Bus             string        `envconfig:"BUS" default:"queued"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"1s"`
	PollInterval    time.Duration `envconfig:"POLL_INTERVAL" default:"100ms"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	appLogger, err := zapAdapter.NewZapAppLogger()
	if err != nil {
		panic(err)
	}

	var cfg config
	if err := envconfig.Process("mydrtv", &cfg); err != nil {
		pkgApp.LogError(ctx, appLogger, "could not load config", err, nil)
		return
	}

	var eventBus pkgApp.EventBus
	switch cfg.Bus {
	case "gochannel":
		eventBus = channelsAdapter.NewGoChannelEventBus(appLogger)
	default:
		eventBus = pkgInfra.NewQueuedEventBus(appLogger,
			pkgInfra.WithShutdownTimeout(cfg.ShutdownTimeout),
			pkgInfra.WithPollInterval(cfg.PollInterval),
		)
	}
	defer eventBus.Stop()

	idGenerator := pkgDomain.IDGenerator[string](pkgInfra.GenerateUUID)

	userRepo := usersInfra.NewInMemoryUserRepository(appLogger)
	programRepo := catalogInfra.NewInMemoryProgramRepository(appLogger)
	ratingRepo := ratingInfra.NewInMemoryRatingRepository(appLogger)
	searchLogRepo := searchInfra.NewInMemorySearchLogRepository(appLogger)

	averageRatingBus := pkgInfra.NewSimpleQueryBus[pkgDomain.Query[ratingApp.AverageRatingData], ratingApp.AverageRatingData, float64]()
	searchBus := pkgInfra.NewSimpleQueryBus[pkgDomain.Query[searchApp.SearchProgramsData], searchApp.SearchProgramsData, []catalogDomain.Program]()

	userSlice := users.NewUserSlice(eventBus, idGenerator, appLogger, userRepo)
	catalogSlice := catalog.NewCatalogSlice(eventBus, idGenerator, appLogger, programRepo)
	ratingSlice := rating.NewRatingSlice(averageRatingBus, eventBus, appLogger, ratingRepo, programRepo)
	search.NewSearchSlice(searchBus, eventBus, idGenerator, appLogger, searchLogRepo, programRepo)

	// Demo scenario: two users, two programs, some ratings, one search.
	anna, err := userSlice.Service().RegisterUser(ctx, "anna", "anna@example.com")
	if err != nil {
		pkgApp.LogError(ctx, appLogger, "could not register user", err, nil)
		return
	}
	bo, err := userSlice.Service().RegisterUser(ctx, "bo", "bo@example.com")
	if err != nil {
		pkgApp.LogError(ctx, appLogger, "could not register user", err, nil)
		return
	}

	borgen, err := catalogSlice.Service().AddProgram(ctx, "Borgen", []string{"Drama", "Politics"}, 2010, "Drama")
	if err != nil {
		pkgApp.LogError(ctx, appLogger, "could not add program", err, nil)
		return
	}
	forbrydelsen, err := catalogSlice.Service().AddProgram(ctx, "Forbrydelsen", []string{"Crime", "Thriller"}, 2007, "Crime")
	if err != nil {
		pkgApp.LogError(ctx, appLogger, "could not add program", err, nil)
		return
	}

	for _, r := range []struct {
		userID    string
		programID string
		stars     int
	}{
		{anna, borgen, 5},
		{bo, borgen, 4},
		{anna, forbrydelsen, 9}, // clamped to 5
	} {
		if err := ratingSlice.Service().RateProgram(ctx, r.userID, r.programID, r.stars); err != nil {
			pkgApp.LogError(ctx, appLogger, "could not rate program", err, nil)
		}
	}

	results, err := searchBus.Dispatch(ctx, searchApp.NewSearchProgramsQuery(searchApp.SearchProgramsData{
		UserID: anna,
		Query:  "drama",
	}))
	if err != nil {
		pkgApp.LogError(ctx, appLogger, "search failed", err, nil)
	} else {
		titles := make([]string, 0, len(results))
		for _, program := range results {
			titles = append(titles, program.Title)
		}
		appLogger.Info(ctx, "search results", map[string]interface{}{"query": "drama", "titles": titles})
	}

	average, err := averageRatingBus.Dispatch(ctx, ratingApp.NewAverageRatingQuery(ratingApp.AverageRatingData{ProgramID: borgen}))
	if err != nil {
		pkgApp.LogError(ctx, appLogger, "average rating query failed", err, nil)
	} else {
		appLogger.Info(ctx, "average rating", map[string]interface{}{"program_id": borgen, "average": average})
	}

	// Give the bus a moment to deliver the tail of the demo's events before
	// the deferred Stop drains and exits.
	select {
	case <-ctx.Done():
	case <-time.After(200 * time.Millisecond):
	}
}
