package service

import (
	"testing"

	"github.com/facturio/facturio/internal/api/dto"
	ierr "github.com/facturio/facturio/internal/errors"
	"github.com/facturio/facturio/internal/repository/memory"
	"github.com/facturio/facturio/internal/testutil"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type CustomerServiceSuite struct {
	testutil.BaseServiceTestSuite
	service CustomerService
}

func TestCustomerService(t *testing.T) {
	suite.Run(t, new(CustomerServiceSuite))
}

func (s *CustomerServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	stores := s.GetStores()
	s.service = NewCustomerService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		CompanyRepo:  stores.Companies,
		CustomerRepo: stores.Customers,
		ProductRepo:  stores.Products,
		InvoiceRepo:  stores.Invoices,
	})
}

func (s *CustomerServiceSuite) TestCreateCustomer() {
	req := dto.CreateCustomerRequest{
		Name:    "Wayne Enterprises",
		TaxID:   "US11-2233445",
		Country: "US",
		Email:   "ap@wayne.example",
	}

	resp, err := s.service.CreateCustomer(s.GetContext(), req)
	s.NoError(err)
	s.NotEmpty(resp.ID)
	s.Equal(memory.CompanyAcmeID, resp.TenantID)
	s.Equal("Wayne Enterprises", resp.Name)
}

func (s *CustomerServiceSuite) TestCreateCustomerValidation() {
	testCases := []struct {
		name string
		req  dto.CreateCustomerRequest
	}{
		{
			name: "missing_name",
			req:  dto.CreateCustomerRequest{TaxID: "X1", Country: "ES"},
		},
		{
			name: "bad_country_code",
			req:  dto.CreateCustomerRequest{Name: "N", TaxID: "X1", Country: "ESP"},
		},
		{
			name: "bad_email",
			req:  dto.CreateCustomerRequest{Name: "N", TaxID: "X1", Country: "ES", Email: "not-an-email"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.service.CreateCustomer(s.GetContext(), tc.req)
			s.Error(err)
			s.Nil(resp)
			s.True(ierr.IsValidation(err))
		})
	}
}

func (s *CustomerServiceSuite) TestCreateCustomerUnknownTenant() {
	req := dto.CreateCustomerRequest{Name: "N", TaxID: "X1", Country: "ES"}

	resp, err := s.service.CreateCustomer(s.ContextForTenant("comp_ghost"), req)
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsValidation(err))
}

func (s *CustomerServiceSuite) TestListCustomersTenantIsolation() {
	acme, err := s.service.ListCustomers(s.GetContext())
	s.NoError(err)
	s.Equal(2, acme.Total)
	for _, c := range acme.Items {
		s.Equal(memory.CompanyAcmeID, c.TenantID)
	}

	globex, err := s.service.ListCustomers(s.ContextForTenant(memory.CompanyGlobexID))
	s.NoError(err)
	s.Equal(1, globex.Total)
	s.Equal(memory.CustomerNorthwindID, globex.Items[0].ID)
}

func (s *CustomerServiceSuite) TestGetCustomerCrossTenant() {
	resp, err := s.service.GetCustomer(s.ContextForTenant(memory.CompanyGlobexID), memory.CustomerInnovaID)
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsNotFound(err))
}

func (s *CustomerServiceSuite) TestUpdateCustomer() {
	req := dto.UpdateCustomerRequest{
		Email: lo.ToPtr("billing@innova.studio"),
	}

	resp, err := s.service.UpdateCustomer(s.GetContext(), memory.CustomerInnovaID, req)
	s.NoError(err)
	s.Equal("billing@innova.studio", resp.Email)
	// Untouched fields survive the merge
	s.Equal("Innova Studio", resp.Name)
}

func (s *CustomerServiceSuite) TestDeleteCustomer() {
	err := s.service.DeleteCustomer(s.GetContext(), memory.CustomerInnovaID)
	s.NoError(err)

	_, err = s.service.GetCustomer(s.GetContext(), memory.CustomerInnovaID)
	s.True(ierr.IsNotFound(err))
}

func (s *CustomerServiceSuite) TestDeleteCustomerCrossTenant() {
	err := s.service.DeleteCustomer(s.ContextForTenant(memory.CompanyGlobexID), memory.CustomerInnovaID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))

	// Still present for its own tenant
	_, err = s.service.GetCustomer(s.GetContext(), memory.CustomerInnovaID)
	s.NoError(err)
}
