package dto

import (
	"github.com/facturio/facturio/internal/domain/company"
	"github.com/facturio/facturio/internal/types"
)

type CompanyResponse struct {
	*company.Company
}

// ListCompaniesResponse represents the response for listing companies
type ListCompaniesResponse = types.ListResponse[*CompanyResponse]
