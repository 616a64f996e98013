package customer

import (
	"github.com/facturio/facturio/internal/types"
)

// Customer represents a billing counterparty owned exclusively by its tenant.
// A customer can never be referenced by an invoice of a different tenant.
type Customer struct {
	// ID is the unique identifier for the customer
	ID string `json:"id"`

	// Name is the display name of the customer
	Name string `json:"name"`

	// TaxID is the customer's tax identifier
	TaxID string `json:"tax_id"`

	// Country is the customer's country code (ISO 3166-1 alpha-2)
	Country string `json:"country"`

	// Email is optional
	Email string `json:"email,omitempty"`

	types.BaseModel
}
