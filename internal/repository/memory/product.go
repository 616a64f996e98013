package memory

import (
	"context"

	"github.com/facturio/facturio/internal/domain/product"
	ierr "github.com/facturio/facturio/internal/errors"
	"github.com/facturio/facturio/internal/types"
)

// InMemoryProductStore implements product.Repository
type InMemoryProductStore struct {
	*InMemoryStore[*product.Product]
}

// NewInMemoryProductStore creates a new in-memory product store
func NewInMemoryProductStore() *InMemoryProductStore {
	return &InMemoryProductStore{
		InMemoryStore: NewInMemoryStore[*product.Product](),
	}
}

func copyProduct(p *product.Product) *product.Product {
	if p == nil {
		return nil
	}

	out := *p
	return &out
}

func (s *InMemoryProductStore) Create(ctx context.Context, p *product.Product) error {
	return s.InMemoryStore.Create(ctx, p.ID, copyProduct(p))
}

// Get returns the product only when it belongs to the tenant in the context.
func (s *InMemoryProductStore) Get(ctx context.Context, id string) (*product.Product, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("product not found").
			WithHintf("No product found with id %s", id).
			Mark(ierr.ErrNotFound)
	}

	return copyProduct(p), nil
}

func (s *InMemoryProductStore) List(ctx context.Context) ([]*product.Product, error) {
	items, err := s.InMemoryStore.List(ctx, productTenantFilter, nil)
	if err != nil {
		return nil, err
	}

	result := make([]*product.Product, len(items))
	for i, p := range items {
		result[i] = copyProduct(p)
	}
	return result, nil
}

func (s *InMemoryProductStore) Update(ctx context.Context, p *product.Product) error {
	if _, err := s.Get(ctx, p.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, p.ID, copyProduct(p))
}

func (s *InMemoryProductStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}

func productTenantFilter(ctx context.Context, p *product.Product) bool {
	return p.TenantID == types.GetTenantID(ctx)
}
