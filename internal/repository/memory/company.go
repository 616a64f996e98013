package memory

import (
	"context"

	"github.com/facturio/facturio/internal/domain/company"
)

// InMemoryCompanyStore implements company.Repository
type InMemoryCompanyStore struct {
	*InMemoryStore[*company.Company]
}

// NewInMemoryCompanyStore creates a new in-memory company store
func NewInMemoryCompanyStore() *InMemoryCompanyStore {
	return &InMemoryCompanyStore{
		InMemoryStore: NewInMemoryStore[*company.Company](),
	}
}

func copyCompany(c *company.Company) *company.Company {
	if c == nil {
		return nil
	}

	out := *c
	out.Series = append([]string(nil), c.Series...)
	return &out
}

func (s *InMemoryCompanyStore) Create(ctx context.Context, c *company.Company) error {
	return s.InMemoryStore.Create(ctx, c.ID, copyCompany(c))
}

func (s *InMemoryCompanyStore) Get(ctx context.Context, id string) (*company.Company, error) {
	c, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyCompany(c), nil
}

// List returns all companies. Companies are the tenant root, so there is no
// tenant filter here.
func (s *InMemoryCompanyStore) List(ctx context.Context) ([]*company.Company, error) {
	items, err := s.InMemoryStore.List(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	result := make([]*company.Company, len(items))
	for i, c := range items {
		result[i] = copyCompany(c)
	}
	return result, nil
}

func (s *InMemoryCompanyStore) Update(ctx context.Context, c *company.Company) error {
	return s.InMemoryStore.Update(ctx, c.ID, copyCompany(c))
}
