package types

import (
	ierr "github.com/facturio/facturio/internal/errors"
)

// InvoiceStatus represents the current state of an invoice in its lifecycle
type InvoiceStatus string

const (
	// InvoiceStatusDraft indicates the invoice is mutable and carries no number
	InvoiceStatusDraft InvoiceStatus = "draft"
	// InvoiceStatusIssued indicates the invoice has been assigned a sequence
	// number and issue date; series, number and totals are frozen
	InvoiceStatusIssued InvoiceStatus = "issued"
	// InvoiceStatusSent indicates the issued invoice was delivered to the
	// customer; a status-only change with no effect on totals or numbering
	InvoiceStatusSent InvoiceStatus = "sent"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) Validate() error {
	allowed := []InvoiceStatus{
		InvoiceStatusDraft,
		InvoiceStatusIssued,
		InvoiceStatusSent,
	}
	for _, status := range allowed {
		if s == status {
			return nil
		}
	}
	return ierr.NewError("invalid invoice status").
		WithHintf("Invoice status must be one of %v", allowed).
		Mark(ierr.ErrValidation)
}

// CurrencyEUR is the only supported invoice currency. Multi-currency support
// is out of scope; every invoice is stamped with this value.
const CurrencyEUR = "EUR"

// Tax rates are a flat percentage bounded by the jurisdiction's maximum.
const (
	MinTaxRate = 0
	MaxTaxRate = 21
)
