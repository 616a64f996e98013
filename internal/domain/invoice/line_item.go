package invoice

import (
	ierr "github.com/facturio/facturio/internal/errors"
	"github.com/facturio/facturio/internal/types"
	"github.com/shopspring/decimal"
)

// Line represents a single invoice line. Lines copy the unit price and tax
// rate from the product at add-time; there is no foreign key back to the
// product catalog.
type Line struct {
	// ID is unique within the owning invoice
	ID string `json:"id"`

	Description string `json:"description"`

	// Quantity must be positive
	Quantity decimal.Decimal `json:"quantity"`

	// UnitPrice must be non-negative
	UnitPrice decimal.Decimal `json:"unit_price"`

	// TaxRate is a flat percentage, 0-21 inclusive
	TaxRate decimal.Decimal `json:"tax_rate"`

	// LineTotal = quantity x unitPrice x (1 + taxRate/100), rounded half-up
	// to the cent. Derived; rewritten on every recalculation.
	LineTotal decimal.Decimal `json:"line_total"`
}

// Validate checks the line invariants at the validation boundary. The totals
// calculator itself trusts its input.
func (l *Line) Validate() error {
	if l.Description == "" {
		return ierr.NewError("line description is required").
			WithHint("Every invoice line needs a description").
			Mark(ierr.ErrValidation)
	}

	if !l.Quantity.IsPositive() {
		return ierr.NewError("line quantity must be positive").
			WithHintf("Line %q has quantity %s", l.Description, l.Quantity).
			Mark(ierr.ErrValidation)
	}

	if l.UnitPrice.IsNegative() {
		return ierr.NewError("line unit price must be non-negative").
			WithHintf("Line %q has unit price %s", l.Description, l.UnitPrice).
			Mark(ierr.ErrValidation)
	}

	minRate := decimal.NewFromInt(types.MinTaxRate)
	maxRate := decimal.NewFromInt(types.MaxTaxRate)
	if l.TaxRate.LessThan(minRate) || l.TaxRate.GreaterThan(maxRate) {
		return ierr.NewError("line tax rate out of range").
			WithHintf("Tax rate must be between %d and %d", types.MinTaxRate, types.MaxTaxRate).
			Mark(ierr.ErrValidation)
	}

	return nil
}
