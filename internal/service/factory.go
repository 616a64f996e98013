package service

import (
	"github.com/facturio/facturio/internal/config"
	"github.com/facturio/facturio/internal/domain/company"
	"github.com/facturio/facturio/internal/domain/customer"
	"github.com/facturio/facturio/internal/domain/invoice"
	"github.com/facturio/facturio/internal/domain/product"
	"github.com/facturio/facturio/internal/logger"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	// Repositories
	CompanyRepo  company.Repository
	CustomerRepo customer.Repository
	ProductRepo  product.Repository
	InvoiceRepo  invoice.Repository
}

// NewServiceParams builds the common service dependency bundle
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	companyRepo company.Repository,
	customerRepo customer.Repository,
	productRepo product.Repository,
	invoiceRepo invoice.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:       logger,
		Config:       config,
		CompanyRepo:  companyRepo,
		CustomerRepo: customerRepo,
		ProductRepo:  productRepo,
		InvoiceRepo:  invoiceRepo,
	}
}
