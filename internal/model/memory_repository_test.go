package model_test

import (
	"context"
	"testing"

	"github.com/ferdiebergado/modelstore/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_InsertAndList(t *testing.T) {
	t.Parallel()

	repo := model.NewMemoryRepository()
	ctx := context.Background()

	m := model.Model{ID: "1", Name: "m1", Version: "v1", Data: "hello", CreateTime: 1}
	require.NoError(t, repo.Insert(ctx, m))

	models, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, m, models[0])
}

func TestMemoryRepository_Delete(t *testing.T) {
	t.Parallel()

	repo := model.NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, model.Model{ID: "1", Name: "m1", Version: "v1", Data: "a", CreateTime: 1}))
	require.NoError(t, repo.Insert(ctx, model.Model{ID: "2", Name: "m2", Version: "v1", Data: "b", CreateTime: 2}))

	require.NoError(t, repo.Delete(ctx, "1"))

	models, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, "2", models[0].ID)
}

func TestMemoryRepository_DeleteMissingID(t *testing.T) {
	t.Parallel()

	repo := model.NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, "no-such-id"))

	models, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, models)
}

func TestMemoryRepository_ListReturnsSnapshot(t *testing.T) {
	t.Parallel()

	repo := model.NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, model.Model{ID: "1", Name: "m1", Version: "v1", Data: "a", CreateTime: 1}))

	first, err := repo.List(ctx)
	require.NoError(t, err)

	// Mutating the snapshot must not touch the store.
	first[0].Name = "mutated"

	second, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "m1", second[0].Name)
}
