package company

import (
	"time"

	"github.com/facturio/facturio/internal/types"
	"github.com/samber/lo"
)

// Company represents a tenant: the isolation boundary that owns customers,
// products and invoices. Companies are created at onboarding and are
// read-mostly afterwards.
type Company struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Country string `json:"country"`

	// Series is the ordered set of invoice numbering prefixes declared by the
	// company, e.g. ["AC", "ACR"]. Invoice numbers are unique only within a
	// (company, series) pair.
	Series []string `json:"series"`

	Status    types.Status `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// HasSeries reports whether code is one of the company's declared series.
func (c *Company) HasSeries(code string) bool {
	return lo.Contains(c.Series, code)
}
