package memory

import (
	"context"
	"time"

	"github.com/facturio/facturio/internal/domain/invoice"
	ierr "github.com/facturio/facturio/internal/errors"
	"github.com/facturio/facturio/internal/types"
	"github.com/samber/lo"
)

// InMemoryInvoiceStore implements invoice.Repository
type InMemoryInvoiceStore struct {
	*InMemoryStore[*invoice.Invoice]
}

// NewInMemoryInvoiceStore creates a new in-memory invoice store
func NewInMemoryInvoiceStore() *InMemoryInvoiceStore {
	return &InMemoryInvoiceStore{
		InMemoryStore: NewInMemoryStore[*invoice.Invoice](),
	}
}

func copyInvoice(inv *invoice.Invoice) *invoice.Invoice {
	if inv == nil {
		return nil
	}

	out := *inv
	if inv.Number != nil {
		out.Number = lo.ToPtr(*inv.Number)
	}
	if inv.IssueDate != nil {
		out.IssueDate = lo.ToPtr(*inv.IssueDate)
	}
	out.Lines = make([]*invoice.Line, len(inv.Lines))
	for i, line := range inv.Lines {
		lineCopy := *line
		out.Lines[i] = &lineCopy
	}
	return &out
}

func (s *InMemoryInvoiceStore) Create(ctx context.Context, inv *invoice.Invoice) error {
	return s.InMemoryStore.Create(ctx, inv.ID, copyInvoice(inv))
}

// Get returns the invoice only when it belongs to the tenant in the context.
func (s *InMemoryInvoiceStore) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	inv, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if inv.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("invoice not found").
			WithHintf("No invoice found with id %s", id).
			Mark(ierr.ErrNotFound)
	}

	return copyInvoice(inv), nil
}

// List returns the tenant's invoices sorted by issue date descending. Drafts
// have no issue date and sort last.
func (s *InMemoryInvoiceStore) List(ctx context.Context) ([]*invoice.Invoice, error) {
	items, err := s.InMemoryStore.List(ctx, invoiceTenantFilter, invoiceSortFn)
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(inv *invoice.Invoice, _ int) *invoice.Invoice {
		return copyInvoice(inv)
	}), nil
}

func (s *InMemoryInvoiceStore) Update(ctx context.Context, inv *invoice.Invoice) error {
	if _, err := s.Get(ctx, inv.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, inv.ID, copyInvoice(inv))
}

func (s *InMemoryInvoiceStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}

// Issue allocates the next sequence number for the invoice's (tenant, series)
// pair and flips the invoice to issued. The whole read-check-write runs under
// the store's exclusive lock, so the scan-max-then-assign sequence cannot
// interleave with another issuance in the same series.
func (s *InMemoryInvoiceStore) Issue(ctx context.Context, id string, issuedAt time.Time) (*invoice.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.items[id]
	if !exists || e.item.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("invoice not found").
			WithHintf("No invoice found with id %s", id).
			Mark(ierr.ErrNotFound)
	}

	inv := e.item
	if !inv.IsDraft() {
		return nil, ierr.NewError("invoice is not a draft").
			WithHintf("Only draft invoices can be issued; invoice %s is %s", id, inv.Status).
			Mark(ierr.ErrInvalidOperation)
	}

	var max int64
	for _, other := range s.items {
		o := other.item
		if o.TenantID != inv.TenantID || o.Series != inv.Series {
			continue
		}
		if o.Number != nil && *o.Number > max {
			max = *o.Number
		}
	}

	inv.Number = lo.ToPtr(max + 1)
	inv.Status = types.InvoiceStatusIssued
	inv.IssueDate = lo.ToPtr(issuedAt)
	inv.UpdatedAt = time.Now().UTC()
	inv.UpdatedBy = types.GetUserID(ctx)

	return copyInvoice(inv), nil
}

func invoiceTenantFilter(ctx context.Context, inv *invoice.Invoice) bool {
	return inv.TenantID == types.GetTenantID(ctx)
}

// invoiceSortFn orders by issue date descending with undated drafts last.
func invoiceSortFn(a, b *invoice.Invoice) bool {
	switch {
	case a.IssueDate == nil:
		return false
	case b.IssueDate == nil:
		return true
	default:
		return a.IssueDate.After(*b.IssueDate)
	}
}
