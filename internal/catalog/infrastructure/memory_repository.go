package infrastructure

import (
	"context"
	"sync"

	"github.com/mydrtv/backend/internal/catalog/domain"
	pkgApp "github.com/mydrtv/backend/pkg/application"
)

type InMemoryProgramRepository struct {
	mu     sync.RWMutex
	data   map[string]domain.Program
	order  []string
	logger pkgApp.AppLogger
}

func NewInMemoryProgramRepository(logger pkgApp.AppLogger) *InMemoryProgramRepository {
	return &InMemoryProgramRepository{
		data:   make(map[string]domain.Program),
		logger: logger,
	}
}

func (r *InMemoryProgramRepository) Save(ctx context.Context, program domain.Program) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[program.ID]; exists {
		return domain.ErrProgramAlreadyExists
	}
	r.data[program.ID] = program
	r.order = append(r.order, program.ID)

	pkgApp.LogDebug(ctx, r.logger, "program saved", map[string]interface{}{"program_id": program.ID})
	return nil
}

func (r *InMemoryProgramRepository) FindByID(ctx context.Context, id string) (domain.Program, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	program, exists := r.data[id]
	if !exists {
		return domain.Program{}, domain.ErrProgramNotFound
	}
	return program, nil
}

// FindAll returns programs in insertion order.
func (r *InMemoryProgramRepository) FindAll(ctx context.Context) ([]domain.Program, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	programs := make([]domain.Program, 0, len(r.order))
	for _, id := range r.order {
		programs = append(programs, r.data[id])
	}
	return programs, nil
}
