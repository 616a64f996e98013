package memory

import (
	"context"
	"time"

	"github.com/facturio/facturio/internal/domain/company"
	"github.com/facturio/facturio/internal/domain/customer"
	"github.com/facturio/facturio/internal/domain/invoice"
	"github.com/facturio/facturio/internal/domain/product"
	"github.com/facturio/facturio/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Fixed identifiers for the initial dataset. The store is non-persistent, so
// every process start (and every Reset) rebuilds exactly this dataset.
const (
	CompanyAcmeID   = "comp_acme"
	CompanyGlobexID = "comp_globex"

	CustomerInnovaID    = "cust_innova"
	CustomerBlueOceanID = "cust_blueocean"
	CustomerNorthwindID = "cust_northwind"

	ProductConsultingID  = "prod_consulting"
	ProductMaintenanceID = "prod_maintenance"
	ProductSaaSID        = "prod_saas"

	InvoiceAcmeIssuedID = "inv_acme_0001"
	InvoiceAcmeDraftID  = "inv_acme_draft"
)

// Stores bundles the four in-memory collections behind their repository
// interfaces and owns reseeding.
type Stores struct {
	Companies *InMemoryCompanyStore
	Customers *InMemoryCustomerStore
	Products  *InMemoryProductStore
	Invoices  *InMemoryInvoiceStore
}

// NewStores creates empty in-memory stores.
func NewStores() *Stores {
	return &Stores{
		Companies: NewInMemoryCompanyStore(),
		Customers: NewInMemoryCustomerStore(),
		Products:  NewInMemoryProductStore(),
		Invoices:  NewInMemoryInvoiceStore(),
	}
}

// Reset clears every collection and reloads the fixed initial dataset.
func (s *Stores) Reset(ctx context.Context) error {
	s.Companies.Clear()
	s.Customers.Clear()
	s.Products.Clear()
	s.Invoices.Clear()
	return s.Seed(ctx)
}

// Seed loads the fixed initial dataset: two companies with their customers,
// products and a couple of Acme invoices (one issued, one draft).
func (s *Stores) Seed(ctx context.Context) error {
	now := time.Now().UTC()

	companies := []*company.Company{
		{
			ID:        CompanyAcmeID,
			Name:      "Acme Labs",
			TaxID:     "ESB12345678",
			Country:   "ES",
			Series:    []string{"AC", "ACR"},
			Status:    types.StatusPublished,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        CompanyGlobexID,
			Name:      "Globex Corp",
			TaxID:     "ESA87654321",
			Country:   "ES",
			Series:    []string{"GL", "GLS"},
			Status:    types.StatusPublished,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	for _, c := range companies {
		if err := s.Companies.Create(ctx, c); err != nil {
			return err
		}
	}

	customers := []*customer.Customer{
		{
			ID:        CustomerInnovaID,
			Name:      "Innova Studio",
			TaxID:     "ES12345678A",
			Country:   "ES",
			Email:     "hola@innova.studio",
			BaseModel: seedBaseModel(CompanyAcmeID, now),
		},
		{
			ID:        CustomerBlueOceanID,
			Name:      "Blue Ocean LLC",
			TaxID:     "US98-1234567",
			Country:   "US",
			Email:     "finance@blueocean.com",
			BaseModel: seedBaseModel(CompanyAcmeID, now),
		},
		{
			ID:        CustomerNorthwindID,
			Name:      "Northwind",
			TaxID:     "ES87654321B",
			Country:   "ES",
			Email:     "accounting@northwind.es",
			BaseModel: seedBaseModel(CompanyGlobexID, now),
		},
	}
	for _, c := range customers {
		if err := s.Customers.Create(ctx, c); err != nil {
			return err
		}
	}

	products := []*product.Product{
		{
			ID:        ProductConsultingID,
			Name:      "Consultoría mensual",
			UnitPrice: decimal.NewFromInt(1200),
			TaxRate:   decimal.NewFromInt(21),
			BaseModel: seedBaseModel(CompanyAcmeID, now),
		},
		{
			ID:        ProductMaintenanceID,
			Name:      "Mantenimiento anual",
			UnitPrice: decimal.NewFromInt(4800),
			TaxRate:   decimal.NewFromInt(21),
			BaseModel: seedBaseModel(CompanyAcmeID, now),
		},
		{
			ID:        ProductSaaSID,
			Name:      "Suscripción SaaS",
			UnitPrice: decimal.NewFromInt(89),
			TaxRate:   decimal.NewFromInt(21),
			BaseModel: seedBaseModel(CompanyGlobexID, now),
		},
	}
	for _, p := range products {
		if err := s.Products.Create(ctx, p); err != nil {
			return err
		}
	}

	issuedAt := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
	issued := &invoice.Invoice{
		ID:         InvoiceAcmeIssuedID,
		CustomerID: CustomerInnovaID,
		Status:     types.InvoiceStatusIssued,
		Series:     "AC",
		Number:     lo.ToPtr(int64(1)),
		IssueDate:  lo.ToPtr(issuedAt),
		Currency:   types.CurrencyEUR,
		Lines: []*invoice.Line{
			{
				ID:          "line_seed_1",
				Description: "Consultoría mensual",
				Quantity:    decimal.NewFromInt(1),
				UnitPrice:   decimal.NewFromInt(1200),
				TaxRate:     decimal.NewFromInt(21),
			},
		},
		BaseModel: seedBaseModel(CompanyAcmeID, now),
	}
	issued.Recalculate()

	draft := &invoice.Invoice{
		ID:         InvoiceAcmeDraftID,
		CustomerID: CustomerBlueOceanID,
		Status:     types.InvoiceStatusDraft,
		Series:     "AC",
		Currency:   types.CurrencyEUR,
		Notes:      "Pending review",
		Lines: []*invoice.Line{
			{
				ID:          "line_seed_2",
				Description: "Mantenimiento anual",
				Quantity:    decimal.NewFromInt(1),
				UnitPrice:   decimal.NewFromInt(4800),
				TaxRate:     decimal.NewFromInt(21),
			},
		},
		BaseModel: seedBaseModel(CompanyAcmeID, now),
	}
	draft.Recalculate()

	for _, inv := range []*invoice.Invoice{issued, draft} {
		if err := s.Invoices.Create(ctx, inv); err != nil {
			return err
		}
	}

	return nil
}

func seedBaseModel(tenantID string, now time.Time) types.BaseModel {
	return types.BaseModel{
		TenantID:  tenantID,
		Status:    types.StatusPublished,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
