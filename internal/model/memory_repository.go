package model

import (
	"context"
	"sync"
)

var _ Repository = &MemoryRepository{}

// MemoryRepository holds models in process memory only; contents are lost on
// restart. It never fails to initialize. Its own lock keeps the map safe when
// the repository is used directly, mirroring the statement-level lock of the
// durable variant.
type MemoryRepository struct {
	mu     sync.RWMutex
	models map[string]Model
}

func (r *MemoryRepository) Insert(_ context.Context, m Model) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.models[m.ID] = m
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.models, id)
	return nil
}

func (r *MemoryRepository) List(_ context.Context) ([]Model, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	models := make([]Model, 0, len(r.models))
	for _, m := range r.models {
		models = append(models, m)
	}
	return models, nil
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{models: make(map[string]Model)}
}
