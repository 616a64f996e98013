package memory

import (
	"context"

	"github.com/facturio/facturio/internal/domain/customer"
	ierr "github.com/facturio/facturio/internal/errors"
	"github.com/facturio/facturio/internal/types"
)

// InMemoryCustomerStore implements customer.Repository
type InMemoryCustomerStore struct {
	*InMemoryStore[*customer.Customer]
}

// NewInMemoryCustomerStore creates a new in-memory customer store
func NewInMemoryCustomerStore() *InMemoryCustomerStore {
	return &InMemoryCustomerStore{
		InMemoryStore: NewInMemoryStore[*customer.Customer](),
	}
}

func copyCustomer(c *customer.Customer) *customer.Customer {
	if c == nil {
		return nil
	}

	out := *c
	return &out
}

func (s *InMemoryCustomerStore) Create(ctx context.Context, c *customer.Customer) error {
	return s.InMemoryStore.Create(ctx, c.ID, copyCustomer(c))
}

// Get returns the customer only when it belongs to the tenant in the context.
// A cross-tenant id behaves exactly like an unknown id.
func (s *InMemoryCustomerStore) Get(ctx context.Context, id string) (*customer.Customer, error) {
	c, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("customer not found").
			WithHintf("No customer found with id %s", id).
			Mark(ierr.ErrNotFound)
	}

	return copyCustomer(c), nil
}

func (s *InMemoryCustomerStore) List(ctx context.Context) ([]*customer.Customer, error) {
	items, err := s.InMemoryStore.List(ctx, customerTenantFilter, nil)
	if err != nil {
		return nil, err
	}

	result := make([]*customer.Customer, len(items))
	for i, c := range items {
		result[i] = copyCustomer(c)
	}
	return result, nil
}

func (s *InMemoryCustomerStore) Update(ctx context.Context, c *customer.Customer) error {
	if _, err := s.Get(ctx, c.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, c.ID, copyCustomer(c))
}

func (s *InMemoryCustomerStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}

func customerTenantFilter(ctx context.Context, c *customer.Customer) bool {
	return c.TenantID == types.GetTenantID(ctx)
}
