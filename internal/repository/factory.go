package repository

import (
	"github.com/facturio/facturio/internal/domain/company"
	"github.com/facturio/facturio/internal/domain/customer"
	"github.com/facturio/facturio/internal/domain/invoice"
	"github.com/facturio/facturio/internal/domain/product"
	"github.com/facturio/facturio/internal/repository/memory"
)

// NewStores builds the in-memory store bundle. The engine is backed by a
// single non-persistent store per process.
func NewStores() *memory.Stores {
	return memory.NewStores()
}

func NewCompanyRepository(stores *memory.Stores) company.Repository {
	return stores.Companies
}

func NewCustomerRepository(stores *memory.Stores) customer.Repository {
	return stores.Customers
}

func NewProductRepository(stores *memory.Stores) product.Repository {
	return stores.Products
}

func NewInvoiceRepository(stores *memory.Stores) invoice.Repository {
	return stores.Invoices
}
