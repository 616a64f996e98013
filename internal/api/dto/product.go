package dto

import (
	"context"

	"github.com/facturio/facturio/internal/domain/product"
	ierr "github.com/facturio/facturio/internal/errors"
	"github.com/facturio/facturio/internal/types"
	"github.com/facturio/facturio/internal/validator"
	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Name      string          `json:"name" validate:"required,max=255"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
}

type UpdateProductRequest struct {
	Name      *string          `json:"name" validate:"omitempty,max=255"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
	TaxRate   *decimal.Decimal `json:"tax_rate"`
}

type ProductResponse struct {
	*product.Product
}

// ListProductsResponse represents the response for listing products
type ListProductsResponse = types.ListResponse[*ProductResponse]

func (r *CreateProductRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return validateProductAmounts(r.UnitPrice, r.TaxRate)
}

func (r *CreateProductRequest) ToProduct(ctx context.Context) *product.Product {
	return &product.Product{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PRODUCT),
		Name:      r.Name,
		UnitPrice: r.UnitPrice,
		TaxRate:   r.TaxRate,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}

func (r *UpdateProductRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}

	unitPrice := decimal.Zero
	if r.UnitPrice != nil {
		unitPrice = *r.UnitPrice
	}
	taxRate := decimal.Zero
	if r.TaxRate != nil {
		taxRate = *r.TaxRate
	}
	return validateProductAmounts(unitPrice, taxRate)
}

// validateProductAmounts enforces the amount bounds the struct tags cannot
// express for decimal fields.
func validateProductAmounts(unitPrice, taxRate decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return ierr.NewError("unit price must be non-negative").
			WithHint("Product unit price cannot be negative").
			Mark(ierr.ErrValidation)
	}

	minRate := decimal.NewFromInt(types.MinTaxRate)
	maxRate := decimal.NewFromInt(types.MaxTaxRate)
	if taxRate.LessThan(minRate) || taxRate.GreaterThan(maxRate) {
		return ierr.NewError("tax rate out of range").
			WithHintf("Tax rate must be between %d and %d", types.MinTaxRate, types.MaxTaxRate).
			Mark(ierr.ErrValidation)
	}

	return nil
}
