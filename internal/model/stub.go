package model

import (
	"context"
	"errors"
)

type StubService struct {
	CreateFunc func(ctx context.Context, params CreateParams) (Model, error)
	DeleteFunc func(ctx context.Context, id string) error
	ListFunc   func(ctx context.Context) ([]Model, error)
}

var _ Service = &StubService{}

func (s *StubService) Create(ctx context.Context, params CreateParams) (Model, error) {
	if s.CreateFunc == nil {
		return Model{}, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, params)
}

func (s *StubService) Delete(ctx context.Context, id string) error {
	if s.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return s.DeleteFunc(ctx, id)
}

func (s *StubService) List(ctx context.Context) ([]Model, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx)
}

type StubRepository struct {
	InsertFunc func(ctx context.Context, m Model) error
	DeleteFunc func(ctx context.Context, id string) error
	ListFunc   func(ctx context.Context) ([]Model, error)
}

var _ Repository = &StubRepository{}

func (r *StubRepository) Insert(ctx context.Context, m Model) error {
	if r.InsertFunc == nil {
		return errors.New("Insert() not implemented by stub")
	}
	return r.InsertFunc(ctx, m)
}

func (r *StubRepository) Delete(ctx context.Context, id string) error {
	if r.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return r.DeleteFunc(ctx, id)
}

func (r *StubRepository) List(ctx context.Context) ([]Model, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx)
}
