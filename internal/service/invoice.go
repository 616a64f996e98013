package service

import (
	"context"
	"time"

	"github.com/facturio/facturio/internal/api/dto"
	"github.com/facturio/facturio/internal/domain/invoice"
	ierr "github.com/facturio/facturio/internal/errors"
	"github.com/facturio/facturio/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// InvoiceService is the invoice lifecycle manager. Drafts are mutable and
// recalculated on every save; issuance is a one-way transition that freezes
// the series, number and totals; issued invoices may only move on to sent.
type InvoiceService interface {
	CreateDraftInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	ListInvoices(ctx context.Context) (*dto.ListInvoicesResponse, error)
	UpdateDraftInvoice(ctx context.Context, id string, req dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error)
	IssueInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	MarkInvoiceSent(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	RemoveDraftInvoice(ctx context.Context, id string) error
	GetInvoiceSummary(ctx context.Context) (*dto.InvoiceSummaryResponse, error)
}

type invoiceService struct {
	ServiceParams
}

func NewInvoiceService(params ServiceParams) InvoiceService {
	return &invoiceService{
		ServiceParams: params,
	}
}

func (s *invoiceService) CreateDraftInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := types.ValidateTenantContext(ctx); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inv := req.ToInvoice(ctx)
	if err := s.validateTenantReferences(ctx, inv.CustomerID, inv.Series); err != nil {
		return nil, err
	}

	inv.Recalculate()
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	if err := s.InvoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	s.Logger.Infow("created draft invoice",
		"invoice_id", inv.ID,
		"tenant_id", inv.TenantID,
		"series", inv.Series,
		"total", inv.Total)

	return &dto.InvoiceResponse{Invoice: inv}, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	if err := types.ValidateTenantContext(ctx); err != nil {
		return nil, err
	}

	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.InvoiceResponse{Invoice: inv}, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context) (*dto.ListInvoicesResponse, error) {
	if err := types.ValidateTenantContext(ctx); err != nil {
		return nil, err
	}

	invoices, err := s.InvoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := lo.Map(invoices, func(inv *invoice.Invoice, _ int) *dto.InvoiceResponse {
		return &dto.InvoiceResponse{Invoice: inv}
	})
	resp := types.NewListResponse(items)
	return &resp, nil
}

// UpdateDraftInvoice merges a partial payload onto an existing draft and
// recomputes the totals against the resulting line list before persisting.
// Idempotent: the same payload twice stores the same totals.
func (s *invoiceService) UpdateDraftInvoice(ctx context.Context, id string, req dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := types.ValidateTenantContext(ctx); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !inv.IsDraft() {
		return nil, ierr.NewError("invoice is not a draft").
			WithHintf("Only draft invoices can be updated; invoice %s is %s", id, inv.Status).
			Mark(ierr.ErrInvalidOperation)
	}

	if req.CustomerID != nil {
		inv.CustomerID = *req.CustomerID
	}
	if req.Series != nil {
		inv.Series = *req.Series
	}
	if req.Notes != nil {
		inv.Notes = *req.Notes
	}
	if req.Lines != nil {
		lines := make([]*invoice.Line, len(*req.Lines))
		for i := range *req.Lines {
			lines[i] = (*req.Lines)[i].ToLine()
		}
		inv.Lines = lines
	}

	if err := s.validateTenantReferences(ctx, inv.CustomerID, inv.Series); err != nil {
		return nil, err
	}

	inv.Recalculate()
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	inv.UpdatedAt = time.Now().UTC()
	inv.UpdatedBy = types.GetUserID(ctx)

	if err := s.InvoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}

	return &dto.InvoiceResponse{Invoice: inv}, nil
}

// IssueInvoice performs the one-way draft->issued transition. The repository
// allocates the next number for the (tenant, series) pair atomically; a
// second call on the same invoice fails loudly instead of re-numbering.
func (s *invoiceService) IssueInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	if err := types.ValidateTenantContext(ctx); err != nil {
		return nil, err
	}

	inv, err := s.InvoiceRepo.Issue(ctx, id, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("issued invoice",
		"invoice_id", inv.ID,
		"tenant_id", inv.TenantID,
		"series", inv.Series,
		"number", lo.FromPtr(inv.Number))

	return &dto.InvoiceResponse{Invoice: inv}, nil
}

// MarkInvoiceSent transitions an issued invoice to sent. Status-only: no
// effect on totals, numbering or the issue date.
func (s *invoiceService) MarkInvoiceSent(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	if err := types.ValidateTenantContext(ctx); err != nil {
		return nil, err
	}

	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if inv.Status != types.InvoiceStatusIssued {
		return nil, ierr.NewError("invoice is not issued").
			WithHintf("Only issued invoices can be marked sent; invoice %s is %s", id, inv.Status).
			Mark(ierr.ErrInvalidOperation)
	}

	inv.Status = types.InvoiceStatusSent
	inv.UpdatedAt = time.Now().UTC()
	inv.UpdatedBy = types.GetUserID(ctx)

	if err := s.InvoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}

	return &dto.InvoiceResponse{Invoice: inv}, nil
}

// RemoveDraftInvoice deletes a draft. Issued invoices are part of the ledger
// and cannot be removed.
func (s *invoiceService) RemoveDraftInvoice(ctx context.Context, id string) error {
	if err := types.ValidateTenantContext(ctx); err != nil {
		return err
	}

	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if !inv.IsDraft() {
		return ierr.NewError("invoice is not a draft").
			WithHintf("Only draft invoices can be removed; invoice %s is %s", id, inv.Status).
			Mark(ierr.ErrInvalidOperation)
	}

	return s.InvoiceRepo.Delete(ctx, id)
}

// GetInvoiceSummary aggregates the tenant's invoices into dashboard KPIs.
func (s *invoiceService) GetInvoiceSummary(ctx context.Context) (*dto.InvoiceSummaryResponse, error) {
	if err := types.ValidateTenantContext(ctx); err != nil {
		return nil, err
	}

	invoices, err := s.InvoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &dto.InvoiceSummaryResponse{
		IssuedRevenue: decimal.Zero,
		DraftTotal:    decimal.Zero,
		Currency:      types.CurrencyEUR,
	}

	for _, inv := range invoices {
		summary.InvoiceCount++
		switch inv.Status {
		case types.InvoiceStatusDraft:
			summary.DraftCount++
			summary.DraftTotal = summary.DraftTotal.Add(inv.Total)
		case types.InvoiceStatusIssued:
			summary.IssuedCount++
			summary.IssuedRevenue = summary.IssuedRevenue.Add(inv.Total)
		case types.InvoiceStatusSent:
			summary.SentCount++
			summary.IssuedRevenue = summary.IssuedRevenue.Add(inv.Total)
		}
	}

	return summary, nil
}

// validateTenantReferences checks that the customer belongs to the tenant and
// the series is one of the tenant company's declared series. Both are
// validation failures, rejected before any mutation.
func (s *invoiceService) validateTenantReferences(ctx context.Context, customerID, series string) error {
	if _, err := s.CustomerRepo.Get(ctx, customerID); err != nil {
		if ierr.IsNotFound(err) {
			return ierr.WithError(err).
				WithHint("Customer does not belong to this tenant").
				Mark(ierr.ErrValidation)
		}
		return err
	}

	comp, err := s.CompanyRepo.Get(ctx, types.GetTenantID(ctx))
	if err != nil {
		if ierr.IsNotFound(err) {
			return ierr.WithError(err).
				WithHint("Unknown tenant").
				Mark(ierr.ErrValidation)
		}
		return err
	}

	if !comp.HasSeries(series) {
		return ierr.NewError("series not declared by tenant").
			WithHintf("Series %q is not one of the company's series %v", series, comp.Series).
			Mark(ierr.ErrValidation)
	}

	return nil
}
