package application_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mydrtv/backend/internal/users/application"
	"github.com/mydrtv/backend/internal/users/domain"
	usersInfra "github.com/mydrtv/backend/internal/users/infrastructure"
	pkgDomain "github.com/mydrtv/backend/pkg/domain"
	pkgInfra "github.com/mydrtv/backend/pkg/infrastructure"
	zapAdapter "github.com/mydrtv/backend/pkg/infrastructure/zaplogger/adapter"
)

type recorder struct {
	mu     sync.Mutex
	events []pkgDomain.Event
}

func (r *recorder) Handle(_ context.Context, event pkgDomain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recorder) Events() []pkgDomain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	events := make([]pkgDomain.Event, len(r.events))
	copy(events, r.events)
	return events
}

func TestRegisterUserStoresUserAndPublishesEvent(t *testing.T) {
	logger := zapAdapter.NewNopAppLogger()
	bus := pkgInfra.NewQueuedEventBus(logger, pkgInfra.WithPollInterval(5*time.Millisecond))
	t.Cleanup(bus.Stop)

	registered := &recorder{}
	bus.Subscribe(application.UserRegisteredEventName, registered)

	repo := usersInfra.NewInMemoryUserRepository(logger)
	service := application.NewUserService(repo, bus, pkgDomain.IDGenerator[string](pkgInfra.GenerateUUID), logger)

	ctx := context.Background()
	userID, err := service.RegisterUser(ctx, "anna", "anna@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, userID)

	user, err := repo.FindByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "anna", user.Username)
	assert.Equal(t, "anna@example.com", user.Email)

	assert.Eventually(t, func() bool { return len(registered.Events()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []pkgDomain.Event{
		application.UserRegisteredEvent{UserID: userID, Username: "anna", Email: "anna@example.com"},
	}, registered.Events())
}

func TestRegisterUserGeneratesDistinctIDs(t *testing.T) {
	logger := zapAdapter.NewNopAppLogger()
	bus := pkgInfra.NewQueuedEventBus(logger, pkgInfra.WithPollInterval(5*time.Millisecond))
	t.Cleanup(bus.Stop)

	repo := usersInfra.NewInMemoryUserRepository(logger)
	service := application.NewUserService(repo, bus, pkgDomain.IDGenerator[string](pkgInfra.GenerateUUID), logger)

	ctx := context.Background()
	first, err := service.RegisterUser(ctx, "anna", "anna@example.com")
	require.NoError(t, err)
	second, err := service.RegisterUser(ctx, "bo", "bo@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestInMemoryUserRepositoryRejectsDuplicateSave(t *testing.T) {
	repo := usersInfra.NewInMemoryUserRepository(zapAdapter.NewNopAppLogger())

	ctx := context.Background()
	user := domain.User{ID: "u1", Username: "anna", Email: "anna@example.com"}
	require.NoError(t, repo.Save(ctx, user))
	assert.ErrorIs(t, repo.Save(ctx, user), domain.ErrUserAlreadyExists)
}

func TestInMemoryUserRepositoryFindUnknown(t *testing.T) {
	repo := usersInfra.NewInMemoryUserRepository(zapAdapter.NewNopAppLogger())

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
