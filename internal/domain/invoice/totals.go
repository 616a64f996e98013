package invoice

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// LineInput is the trusted input to the totals calculator: quantity, unit
// price and tax rate of a single line. Validation happens at the caller's
// boundary; the calculator itself performs none.
type LineInput struct {
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	TaxRate   decimal.Decimal
}

// Totals holds the three derived invoice amounts.
type Totals struct {
	Subtotal decimal.Decimal
	TaxTotal decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals folds the lines into subtotal, tax total and total. Each of
// the three accumulators is independently rounded to 2 decimal places after
// every addition step, not once at the end. Step-wise rounding can diverge
// from round-once-at-the-end by cents on multi-line invoices; it is the
// compatibility-relevant policy and must not be "simplified" to batch
// rounding. Pure and safe for concurrent use.
func ComputeTotals(lines []LineInput) Totals {
	totals := Totals{
		Subtotal: decimal.Zero,
		TaxTotal: decimal.Zero,
		Total:    decimal.Zero,
	}

	for _, line := range lines {
		base := line.Quantity.Mul(line.UnitPrice)
		tax := base.Mul(line.TaxRate).Div(hundred)

		totals.Subtotal = totals.Subtotal.Add(base).Round(2)
		totals.TaxTotal = totals.TaxTotal.Add(tax).Round(2)
		totals.Total = totals.Total.Add(base).Add(tax).Round(2)
	}

	return totals
}

// ComputeLineTotal returns quantity x unitPrice x (1 + taxRate/100) rounded
// half-up to the cent.
func ComputeLineTotal(quantity, unitPrice, taxRate decimal.Decimal) decimal.Decimal {
	base := quantity.Mul(unitPrice)
	tax := base.Mul(taxRate).Div(hundred)
	return base.Add(tax).Round(2)
}
