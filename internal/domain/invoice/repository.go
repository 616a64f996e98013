package invoice

import (
	"context"
	"time"
)

// Repository defines the interface for invoice data access. All reads are
// scoped to the tenant carried in the context.
type Repository interface {
	Create(ctx context.Context, invoice *Invoice) error
	Get(ctx context.Context, id string) (*Invoice, error)

	// List returns the tenant's invoices sorted by issue date descending;
	// drafts without an issue date sort last.
	List(ctx context.Context) ([]*Invoice, error)

	Update(ctx context.Context, invoice *Invoice) error
	Delete(ctx context.Context, id string) error

	// Issue performs the one-way draft->issued transition: it scans the
	// invoices sharing the invoice's (tenant, series) pair for the maximum
	// assigned number, assigns max+1 (1 for a fresh series), sets the status
	// to issued and stamps issuedAt. The scan and the assignment execute as a
	// single atomic step with respect to other Issue calls, so two concurrent
	// issuances in the same series can never share a number. Fails with an
	// invalid-operation error if the invoice is not currently a draft.
	Issue(ctx context.Context, id string, issuedAt time.Time) (*Invoice, error)
}
