package product

import (
	"github.com/facturio/facturio/internal/types"
	"github.com/shopspring/decimal"
)

// Product acts as a template for invoice lines: lines copy the unit price and
// tax rate at add-time, so later product edits never rewrite past invoices.
type Product struct {
	// ID is the unique identifier for the product
	ID string `json:"id"`

	// Name is the display name of the product
	Name string `json:"name"`

	// UnitPrice is the non-negative price per unit
	UnitPrice decimal.Decimal `json:"unit_price"`

	// TaxRate is the flat tax percentage, 0-21 inclusive
	TaxRate decimal.Decimal `json:"tax_rate"`

	types.BaseModel
}
