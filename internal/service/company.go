package service

import (
	"context"

	"github.com/facturio/facturio/internal/api/dto"
	"github.com/samber/lo"

	"github.com/facturio/facturio/internal/domain/company"
	"github.com/facturio/facturio/internal/types"
)

// CompanyService exposes the tenant roots. Companies are created at
// onboarding, outside this engine, and are read-only here.
type CompanyService interface {
	GetCompany(ctx context.Context, id string) (*dto.CompanyResponse, error)
	ListCompanies(ctx context.Context) (*dto.ListCompaniesResponse, error)
}

type companyService struct {
	ServiceParams
}

func NewCompanyService(params ServiceParams) CompanyService {
	return &companyService{
		ServiceParams: params,
	}
}

func (s *companyService) GetCompany(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	c, err := s.CompanyRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.CompanyResponse{Company: c}, nil
}

func (s *companyService) ListCompanies(ctx context.Context) (*dto.ListCompaniesResponse, error) {
	companies, err := s.CompanyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := lo.Map(companies, func(c *company.Company, _ int) *dto.CompanyResponse {
		return &dto.CompanyResponse{Company: c}
	})
	resp := types.NewListResponse(items)
	return &resp, nil
}
