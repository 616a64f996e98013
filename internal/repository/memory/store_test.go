package memory

import (
	"context"
	"testing"

	ierr "github.com/facturio/facturio/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID   string
	Name string
}

func TestInMemoryStoreCreate(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore[*widget]()

	err := store.Create(ctx, "w1", &widget{ID: "w1", Name: "first"})
	require.NoError(t, err)

	err = store.Create(ctx, "w1", &widget{ID: "w1", Name: "dup"})
	require.Error(t, err)
	assert.True(t, ierr.IsAlreadyExists(err))
}

func TestInMemoryStoreGet(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore[*widget]()

	require.NoError(t, store.Create(ctx, "w1", &widget{ID: "w1", Name: "first"}))

	got, err := store.Get(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Name)

	_, err = store.Get(ctx, "missing")
	require.Error(t, err)
	assert.True(t, ierr.IsNotFound(err))
}

func TestInMemoryStoreListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore[*widget]()

	ids := []string{"c", "a", "b", "e", "d"}
	for _, id := range ids {
		require.NoError(t, store.Create(ctx, id, &widget{ID: id}))
	}

	items, err := store.List(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, items, len(ids))
	for i, item := range items {
		assert.Equal(t, ids[i], item.ID)
	}
}

func TestInMemoryStoreListFilter(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore[*widget]()

	require.NoError(t, store.Create(ctx, "w1", &widget{ID: "w1", Name: "keep"}))
	require.NoError(t, store.Create(ctx, "w2", &widget{ID: "w2", Name: "drop"}))
	require.NoError(t, store.Create(ctx, "w3", &widget{ID: "w3", Name: "keep"}))

	items, err := store.List(ctx, func(_ context.Context, w *widget) bool {
		return w.Name == "keep"
	}, nil)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "w1", items[0].ID)
	assert.Equal(t, "w3", items[1].ID)
}

func TestInMemoryStoreUpdate(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore[*widget]()

	require.NoError(t, store.Create(ctx, "w1", &widget{ID: "w1", Name: "first"}))
	require.NoError(t, store.Update(ctx, "w1", &widget{ID: "w1", Name: "renamed"}))

	got, err := store.Get(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)

	// Update never creates records
	err = store.Update(ctx, "missing", &widget{ID: "missing"})
	require.Error(t, err)
	assert.True(t, ierr.IsNotFound(err))
	_, err = store.Get(ctx, "missing")
	assert.True(t, ierr.IsNotFound(err))
}

func TestInMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore[*widget]()

	require.NoError(t, store.Create(ctx, "w1", &widget{ID: "w1"}))
	require.NoError(t, store.Delete(ctx, "w1"))

	_, err := store.Get(ctx, "w1")
	assert.True(t, ierr.IsNotFound(err))

	// Deleting an absent record is a no-op
	require.NoError(t, store.Delete(ctx, "w1"))
	require.NoError(t, store.Delete(ctx, "never-existed"))
}

func TestInMemoryStoreUpdateKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore[*widget]()

	require.NoError(t, store.Create(ctx, "w1", &widget{ID: "w1"}))
	require.NoError(t, store.Create(ctx, "w2", &widget{ID: "w2"}))
	require.NoError(t, store.Update(ctx, "w1", &widget{ID: "w1", Name: "renamed"}))

	items, err := store.List(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "w1", items[0].ID)
	assert.Equal(t, "w2", items[1].ID)
}
