package main

import (
	"context"
	"time"

	"github.com/facturio/facturio/internal/api"
	v1 "github.com/facturio/facturio/internal/api/v1"
	"github.com/facturio/facturio/internal/config"
	"github.com/facturio/facturio/internal/logger"
	"github.com/facturio/facturio/internal/repository"
	"github.com/facturio/facturio/internal/repository/memory"
	"github.com/facturio/facturio/internal/service"
	"github.com/facturio/facturio/internal/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	fx.New(
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Stores
			repository.NewStores,
			repository.NewCompanyRepository,
			repository.NewCustomerRepository,
			repository.NewProductRepository,
			repository.NewInvoiceRepository,

			// Services
			service.NewServiceParams,
			service.NewCompanyService,
			service.NewCustomerService,
			service.NewProductService,
			service.NewInvoiceService,

			// Handlers
			v1.NewHealthHandler,
			v1.NewCompanyHandler,
			v1.NewCustomerHandler,
			v1.NewProductHandler,
			v1.NewInvoiceHandler,
			provideHandlers,

			// Router
			api.NewRouter,
		),
		fx.Invoke(
			seedStores,
			startServer,
		),
	).Run()
}

func provideHandlers(
	health *v1.HealthHandler,
	company *v1.CompanyHandler,
	customer *v1.CustomerHandler,
	product *v1.ProductHandler,
	invoice *v1.InvoiceHandler,
) api.Handlers {
	return api.Handlers{
		Health:   health,
		Company:  company,
		Customer: customer,
		Product:  product,
		Invoice:  invoice,
	}
}

// seedStores loads the fixed initial dataset when enabled. The store is
// in-memory, so every process start begins from this dataset.
func seedStores(
	stores *memory.Stores,
	cfg *config.Configuration,
	log *logger.Logger,
) error {
	if !cfg.Store.Seed {
		return nil
	}

	if err := stores.Seed(context.Background()); err != nil {
		return err
	}

	log.Infow("seeded in-memory store",
		"tenants", []string{memory.CompanyAcmeID, memory.CompanyGlobexID})
	return nil
}

func startServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infof("Starting API server on %s", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
