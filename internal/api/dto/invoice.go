package dto

import (
	"context"

	"github.com/facturio/facturio/internal/domain/invoice"
	"github.com/facturio/facturio/internal/types"
	"github.com/facturio/facturio/internal/validator"
	"github.com/shopspring/decimal"
)

type InvoiceLineRequest struct {
	Description string          `json:"description" validate:"required,max=255"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
}

// ToLine builds a domain line with a fresh line-local identifier. The line
// total is derived later by recalculation, never taken from the request.
func (r *InvoiceLineRequest) ToLine() *invoice.Line {
	return &invoice.Line{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE_LINE),
		Description: r.Description,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		TaxRate:     r.TaxRate,
	}
}

type CreateInvoiceRequest struct {
	CustomerID string               `json:"customer_id" validate:"required"`
	Series     string               `json:"series" validate:"required"`
	Notes      string               `json:"notes" validate:"omitempty,max=1024"`
	Lines      []InvoiceLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// UpdateInvoiceRequest is a partial draft update. A nil Lines leaves the line
// list untouched; a present Lines replaces it wholesale.
type UpdateInvoiceRequest struct {
	CustomerID *string               `json:"customer_id"`
	Series     *string               `json:"series"`
	Notes      *string               `json:"notes" validate:"omitempty,max=1024"`
	Lines      *[]InvoiceLineRequest `json:"lines" validate:"omitempty,min=1,dive"`
}

type InvoiceResponse struct {
	*invoice.Invoice
}

// ListInvoicesResponse represents the response for listing invoices
type ListInvoicesResponse = types.ListResponse[*InvoiceResponse]

// InvoiceSummaryResponse carries the dashboard KPIs for a tenant.
type InvoiceSummaryResponse struct {
	InvoiceCount  int             `json:"invoice_count"`
	DraftCount    int             `json:"draft_count"`
	IssuedCount   int             `json:"issued_count"`
	SentCount     int             `json:"sent_count"`
	IssuedRevenue decimal.Decimal `json:"issued_revenue"`
	DraftTotal    decimal.Decimal `json:"draft_total"`
	Currency      string          `json:"currency"`
}

func (r *CreateInvoiceRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateInvoiceRequest) ToInvoice(ctx context.Context) *invoice.Invoice {
	lines := make([]*invoice.Line, len(r.Lines))
	for i := range r.Lines {
		lines[i] = r.Lines[i].ToLine()
	}

	return &invoice.Invoice{
		ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		CustomerID: r.CustomerID,
		Status:     types.InvoiceStatusDraft,
		Series:     r.Series,
		Currency:   types.CurrencyEUR,
		Lines:      lines,
		Notes:      r.Notes,
		BaseModel:  types.GetDefaultBaseModel(ctx),
	}
}

func (r *UpdateInvoiceRequest) Validate() error {
	return validator.ValidateRequest(r)
}
