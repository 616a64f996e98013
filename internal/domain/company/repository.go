package company

import (
	"context"
)

// Repository defines the interface for company data access. Companies are the
// tenant root, so List is intentionally unscoped.
type Repository interface {
	Create(ctx context.Context, company *Company) error
	Get(ctx context.Context, id string) (*Company, error)
	List(ctx context.Context) ([]*Company, error)
	Update(ctx context.Context, company *Company) error
}
