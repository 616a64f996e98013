package memory

import (
	"context"
	"sort"
	"sync"

	ierr "github.com/facturio/facturio/internal/errors"
)

// FilterFunc is a generic filter function type
type FilterFunc[T any] func(ctx context.Context, item T) bool

// SortFunc is a generic sort function type
type SortFunc[T any] func(i, j T) bool

type entry[T any] struct {
	item T
	seq  uint64
}

// InMemoryStore implements a generic in-memory store. Writers take the
// exclusive lock, so readers always observe a consistent snapshot and never
// a collection mid-mutation. The store is non-persistent: a process restart
// loses all mutations.
type InMemoryStore[T any] struct {
	mu    sync.RWMutex
	items map[string]*entry[T]
	seq   uint64
}

// NewInMemoryStore creates a new InMemoryStore
func NewInMemoryStore[T any]() *InMemoryStore[T] {
	return &InMemoryStore[T]{
		items: make(map[string]*entry[T]),
	}
}

// Create adds a new item to the store
func (s *InMemoryStore[T]) Create(ctx context.Context, id string, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; exists {
		return ierr.NewError("item already exists").
			WithHintf("A record with id %s already exists", id).
			Mark(ierr.ErrAlreadyExists)
	}

	s.seq++
	s.items[id] = &entry[T]{item: item, seq: s.seq}
	return nil
}

// Get retrieves an item by ID
func (s *InMemoryStore[T]) Get(ctx context.Context, id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if e, exists := s.items[id]; exists {
		return e.item, nil
	}

	var zero T
	return zero, ierr.NewError("item not found").
		WithHintf("No record found with id %s", id).
		Mark(ierr.ErrNotFound)
}

// List retrieves items matching the filter, in insertion order unless a sort
// function is given.
func (s *InMemoryStore[T]) List(ctx context.Context, filterFn FilterFunc[T], sortFn SortFunc[T]) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*entry[T], 0, len(s.items))
	for _, e := range s.items {
		if filterFn == nil || filterFn(ctx, e.item) {
			entries = append(entries, e)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].seq < entries[j].seq
	})

	result := make([]T, len(entries))
	for i, e := range entries {
		result[i] = e.item
	}

	if sortFn != nil {
		sort.SliceStable(result, func(i, j int) bool {
			return sortFn(result[i], result[j])
		})
	}

	return result, nil
}

// Count returns the total number of items matching the filter
func (s *InMemoryStore[T]) Count(ctx context.Context, filterFn FilterFunc[T]) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, e := range s.items {
		if filterFn == nil || filterFn(ctx, e.item) {
			count++
		}
	}

	return count, nil
}

// Update replaces an existing item. It never creates a record as a side
// effect of an update.
func (s *InMemoryStore[T]) Update(ctx context.Context, id string, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.items[id]
	if !exists {
		return ierr.NewError("item not found").
			WithHintf("No record found with id %s", id).
			Mark(ierr.ErrNotFound)
	}

	e.item = item
	return nil
}

// Delete removes an item from the store. Deleting an absent record is a
// no-op, not an error.
func (s *InMemoryStore[T]) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, id)
	return nil
}

// Clear removes all items from the store
func (s *InMemoryStore[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]*entry[T])
	s.seq = 0
}
