package dto

import (
	"context"

	"github.com/facturio/facturio/internal/domain/customer"
	"github.com/facturio/facturio/internal/types"
	"github.com/facturio/facturio/internal/validator"
)

type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	TaxID   string `json:"tax_id" validate:"required,max=32"`
	Country string `json:"country" validate:"required,len=2,iso3166_1_alpha2"`
	Email   string `json:"email" validate:"omitempty,email"`
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name" validate:"omitempty,max=255"`
	TaxID   *string `json:"tax_id" validate:"omitempty,max=32"`
	Country *string `json:"country" validate:"omitempty,len=2,iso3166_1_alpha2"`
	Email   *string `json:"email" validate:"omitempty,email"`
}

type CustomerResponse struct {
	*customer.Customer
}

// ListCustomersResponse represents the response for listing customers
type ListCustomersResponse = types.ListResponse[*CustomerResponse]

func (r *CreateCustomerRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateCustomerRequest) ToCustomer(ctx context.Context) *customer.Customer {
	return &customer.Customer{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CUSTOMER),
		Name:      r.Name,
		TaxID:     r.TaxID,
		Country:   r.Country,
		Email:     r.Email,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}

func (r *UpdateCustomerRequest) Validate() error {
	return validator.ValidateRequest(r)
}
