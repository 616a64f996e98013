package service

import (
	"testing"

	ierr "github.com/facturio/facturio/internal/errors"
	"github.com/facturio/facturio/internal/repository/memory"
	"github.com/facturio/facturio/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type CompanyServiceSuite struct {
	testutil.BaseServiceTestSuite
	service CompanyService
}

func TestCompanyService(t *testing.T) {
	suite.Run(t, new(CompanyServiceSuite))
}

func (s *CompanyServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	stores := s.GetStores()
	s.service = NewCompanyService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		CompanyRepo:  stores.Companies,
		CustomerRepo: stores.Customers,
		ProductRepo:  stores.Products,
		InvoiceRepo:  stores.Invoices,
	})
}

func (s *CompanyServiceSuite) TestGetCompany() {
	resp, err := s.service.GetCompany(s.GetContext(), memory.CompanyAcmeID)
	s.NoError(err)
	s.Equal("Acme Labs", resp.Name)
	s.Equal([]string{"AC", "ACR"}, resp.Series)

	_, err = s.service.GetCompany(s.GetContext(), "comp_missing")
	s.True(ierr.IsNotFound(err))
}

func (s *CompanyServiceSuite) TestListCompanies() {
	resp, err := s.service.ListCompanies(s.GetContext())
	s.NoError(err)
	s.Equal(2, resp.Total)
	// Insertion order from the seed
	s.Equal(memory.CompanyAcmeID, resp.Items[0].ID)
	s.Equal(memory.CompanyGlobexID, resp.Items[1].ID)
}
