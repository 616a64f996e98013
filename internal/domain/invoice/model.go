package invoice

import (
	"time"

	ierr "github.com/facturio/facturio/internal/errors"
	"github.com/facturio/facturio/internal/types"
	"github.com/shopspring/decimal"
)

// Invoice represents the invoice domain model. Subtotal, TaxTotal and Total
// are always the deterministic function of the current lines; no code path
// may set them independently of Recalculate.
type Invoice struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customer_id"`
	Status     types.InvoiceStatus `json:"status"`

	// Series is the numbering namespace, one of the owning company's declared
	// series codes. Frozen once the invoice is issued.
	Series string `json:"series"`

	// Number is assigned exactly once, at the draft->issued transition.
	// Within a (tenant, series) pair numbers are strictly increasing and
	// gapless, starting at 1.
	Number *int64 `json:"number,omitempty"`

	// IssueDate is stamped at issuance and absent while draft.
	IssueDate *time.Time `json:"issue_date,omitempty"`

	Subtotal decimal.Decimal `json:"subtotal"`
	TaxTotal decimal.Decimal `json:"tax_total"`
	Total    decimal.Decimal `json:"total"`
	Currency string          `json:"currency"`

	Lines []*Line `json:"lines"`
	Notes string  `json:"notes,omitempty"`

	types.BaseModel
}

// IsDraft reports whether the invoice is still mutable.
func (i *Invoice) IsDraft() bool {
	return i.Status == types.InvoiceStatusDraft
}

// Recalculate recomputes every line total and the invoice totals from the
// current lines. Idempotent: calling it twice yields identical amounts.
func (i *Invoice) Recalculate() {
	inputs := make([]LineInput, len(i.Lines))
	for idx, line := range i.Lines {
		line.LineTotal = ComputeLineTotal(line.Quantity, line.UnitPrice, line.TaxRate)
		inputs[idx] = LineInput{
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			TaxRate:   line.TaxRate,
		}
	}

	totals := ComputeTotals(inputs)
	i.Subtotal = totals.Subtotal
	i.TaxTotal = totals.TaxTotal
	i.Total = totals.Total
}

// Validate checks the invoice's structural invariants. Tenant-level checks
// (customer ownership, series membership) belong to the lifecycle service.
func (i *Invoice) Validate() error {
	if err := i.Status.Validate(); err != nil {
		return err
	}

	if i.CustomerID == "" {
		return ierr.NewError("customer id is required").
			WithHint("An invoice must reference a customer").
			Mark(ierr.ErrValidation)
	}

	if i.Series == "" {
		return ierr.NewError("series is required").
			WithHint("An invoice must belong to a numbering series").
			Mark(ierr.ErrValidation)
	}

	if len(i.Lines) == 0 {
		return ierr.NewError("invoice has no lines").
			WithHint("An invoice must have at least one line").
			Mark(ierr.ErrValidation)
	}

	for _, line := range i.Lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	if i.IsDraft() {
		if i.Number != nil {
			return ierr.NewError("draft invoice cannot carry a number").
				WithHint("Numbers are assigned at issuance").
				Mark(ierr.ErrValidation)
		}
		if i.IssueDate != nil {
			return ierr.NewError("draft invoice cannot carry an issue date").
				WithHint("Issue dates are stamped at issuance").
				Mark(ierr.ErrValidation)
		}
	}

	return nil
}
