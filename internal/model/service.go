package model

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository is the interface for model persistence.
type Repository interface {
	Insert(ctx context.Context, m Model) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Model, error)
}

// Service owns the model collection and mediates all access to it. A single
// process-wide reader/writer lock admits any number of concurrent Lists while
// Create and Delete hold exclusive access, so a List never observes a
// partially-written record.
type service struct {
	mu   sync.RWMutex
	repo Repository
}

// Create assigns a fresh id and creation timestamp to the given params and
// inserts the resulting record. Duplicate name/version pairs are allowed.
func (s *service) Create(ctx context.Context, params CreateParams) (Model, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := Model{
		ID:         uuid.NewString(),
		Name:       params.Name,
		Version:    params.Version,
		Data:       params.Data,
		CreateTime: time.Now().UnixMilli(),
	}

	if err := s.repo.Insert(ctx, m); err != nil {
		return Model{}, fmt.Errorf("insert model: %w", err)
	}

	return m, nil
}

// Delete removes the record with the given id. A missing id is not an error.
func (s *service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete model %s: %w", id, err)
	}

	return nil
}

// List returns a snapshot of all current records.
func (s *service) List(ctx context.Context) ([]Model, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	models, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}

	return models, nil
}

func NewService(repo Repository) *service {
	return &service{repo: repo}
}
