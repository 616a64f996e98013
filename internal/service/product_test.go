package service

import (
	"testing"

	"github.com/facturio/facturio/internal/api/dto"
	ierr "github.com/facturio/facturio/internal/errors"
	"github.com/facturio/facturio/internal/repository/memory"
	"github.com/facturio/facturio/internal/testutil"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ProductServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ProductService
}

func TestProductService(t *testing.T) {
	suite.Run(t, new(ProductServiceSuite))
}

func (s *ProductServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	stores := s.GetStores()
	s.service = NewProductService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		CompanyRepo:  stores.Companies,
		CustomerRepo: stores.Customers,
		ProductRepo:  stores.Products,
		InvoiceRepo:  stores.Invoices,
	})
}

func (s *ProductServiceSuite) TestCreateProduct() {
	req := dto.CreateProductRequest{
		Name:      "Soporte premium",
		UnitPrice: decimal.RequireFromString("349.99"),
		TaxRate:   decimal.NewFromInt(21),
	}

	resp, err := s.service.CreateProduct(s.GetContext(), req)
	s.NoError(err)
	s.NotEmpty(resp.ID)
	s.Equal(memory.CompanyAcmeID, resp.TenantID)
	s.True(resp.UnitPrice.Equal(decimal.RequireFromString("349.99")))
}

func (s *ProductServiceSuite) TestCreateProductValidation() {
	testCases := []struct {
		name string
		req  dto.CreateProductRequest
	}{
		{
			name: "missing_name",
			req: dto.CreateProductRequest{
				UnitPrice: decimal.NewFromInt(10),
				TaxRate:   decimal.NewFromInt(21),
			},
		},
		{
			name: "negative_unit_price",
			req: dto.CreateProductRequest{
				Name:      "Broken",
				UnitPrice: decimal.NewFromInt(-1),
				TaxRate:   decimal.NewFromInt(21),
			},
		},
		{
			name: "tax_rate_above_maximum",
			req: dto.CreateProductRequest{
				Name:      "Broken",
				UnitPrice: decimal.NewFromInt(10),
				TaxRate:   decimal.NewFromInt(22),
			},
		},
		{
			name: "negative_tax_rate",
			req: dto.CreateProductRequest{
				Name:      "Broken",
				UnitPrice: decimal.NewFromInt(10),
				TaxRate:   decimal.NewFromInt(-5),
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.service.CreateProduct(s.GetContext(), tc.req)
			s.Error(err)
			s.Nil(resp)
			s.True(ierr.IsValidation(err))
		})
	}
}

func (s *ProductServiceSuite) TestListProductsTenantIsolation() {
	acme, err := s.service.ListProducts(s.GetContext())
	s.NoError(err)
	s.Equal(2, acme.Total)

	globex, err := s.service.ListProducts(s.ContextForTenant(memory.CompanyGlobexID))
	s.NoError(err)
	s.Equal(1, globex.Total)
	s.Equal(memory.ProductSaaSID, globex.Items[0].ID)
}

func (s *ProductServiceSuite) TestUpdateProduct() {
	req := dto.UpdateProductRequest{
		UnitPrice: lo.ToPtr(decimal.NewFromInt(1500)),
	}

	resp, err := s.service.UpdateProduct(s.GetContext(), memory.ProductConsultingID, req)
	s.NoError(err)
	s.True(resp.UnitPrice.Equal(decimal.NewFromInt(1500)))
	s.Equal("Consultoría mensual", resp.Name)
}

func (s *ProductServiceSuite) TestDeleteProduct() {
	err := s.service.DeleteProduct(s.GetContext(), memory.ProductConsultingID)
	s.NoError(err)

	_, err = s.service.GetProduct(s.GetContext(), memory.ProductConsultingID)
	s.True(ierr.IsNotFound(err))
}

func (s *ProductServiceSuite) TestDeleteProductCrossTenant() {
	err := s.service.DeleteProduct(s.ContextForTenant(memory.CompanyGlobexID), memory.ProductConsultingID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
