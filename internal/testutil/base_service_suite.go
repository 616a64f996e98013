package testutil

import (
	"context"
	"time"

	"github.com/facturio/facturio/internal/config"
	"github.com/facturio/facturio/internal/logger"
	"github.com/facturio/facturio/internal/repository/memory"
	"github.com/facturio/facturio/internal/types"
	"github.com/facturio/facturio/internal/validator"
	"github.com/stretchr/testify/suite"
)

// BaseServiceTestSuite provides common functionality for all service test
// suites: fresh isolated in-memory stores per test, the fixed seed dataset
// and a tenant context pointing at the seeded Acme company.
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores *memory.Stores
	logger *logger.Logger
	config *config.Configuration
	now    time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	// Initialize validator
	validator.NewValidator()

	cfg := config.GetDefaultConfig()
	s.config = cfg

	var err error
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext()
	s.setupStores()
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupContext() {
	s.ctx = context.Background()
	s.ctx = types.SetTenantID(s.ctx, memory.CompanyAcmeID)
	s.ctx = types.SetUserID(s.ctx, "user_test")
	s.ctx = types.SetRequestID(s.ctx, types.GenerateUUID())
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = memory.NewStores()
	if err := s.stores.Seed(s.ctx); err != nil {
		s.T().Fatalf("failed to seed stores: %v", err)
	}
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.Companies.Clear()
	s.stores.Customers.Clear()
	s.stores.Products.Clear()
	s.stores.Invoices.Clear()
}

// GetContext returns the test context, scoped to the Acme tenant
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// ContextForTenant returns a context scoped to the given tenant
func (s *BaseServiceTestSuite) ContextForTenant(tenantID string) context.Context {
	return types.SetTenantID(context.Background(), tenantID)
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns the test store bundle
func (s *BaseServiceTestSuite) GetStores() *memory.Stores {
	return s.stores
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the current test time
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}
