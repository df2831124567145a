// Package wire provides dependency injection for the chemist application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/chemist4u/internal/adapters/cli"
	"github.com/example/chemist4u/internal/adapters/csvfile"
	"github.com/example/chemist4u/internal/adapters/filesystem"
	"github.com/example/chemist4u/internal/app"
	"github.com/example/chemist4u/internal/config"
	"github.com/example/chemist4u/internal/logging"
	"github.com/example/chemist4u/internal/ports/primary"
	"github.com/example/chemist4u/internal/ports/secondary"
)

var (
	cfg              *config.Config
	catalogService   primary.CatalogService
	cartService      primary.CartService
	billingService   primary.BillingService
	bootstrapService primary.BootstrapService
	doctorService    primary.DoctorService
	instructions     secondary.InstructionsStore
	once             sync.Once
)

// Config returns the loaded configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// CatalogService returns the singleton CatalogService instance.
func CatalogService() primary.CatalogService {
	once.Do(initServices)
	return catalogService
}

// CartService returns the singleton CartService instance.
func CartService() primary.CartService {
	once.Do(initServices)
	return cartService
}

// BillingService returns the singleton BillingService instance.
func BillingService() primary.BillingService {
	once.Do(initServices)
	return billingService
}

// BootstrapService returns the singleton BootstrapService instance.
func BootstrapService() primary.BootstrapService {
	once.Do(initServices)
	return bootstrapService
}

// DoctorService returns the singleton DoctorService instance.
func DoctorService() primary.DoctorService {
	once.Do(initServices)
	return doctorService
}

// Instructions returns the instructions store.
func Instructions() secondary.InstructionsStore {
	once.Do(initServices)
	return instructions
}

// OrderWorkflow returns a fresh workflow for one interactive order session.
func OrderWorkflow() primary.OrderWorkflow {
	once.Do(initServices)
	return app.NewOrderWorkflow(catalogService, cartService, billingService)
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := logging.New(cfg.LogLevel)

	catalogStore := csvfile.NewCatalogStore(cfg.CatalogPath())
	cartStore := csvfile.NewCartStore(cfg.CartPath())
	receiptStore := filesystem.NewReceiptStore(cfg.OutputDir)
	instructions = filesystem.NewInstructionsStore(cfg.InstructionsPath())

	catalogService = app.NewCatalogService(catalogStore, logger)
	cartService = app.NewCartService(cartStore, catalogService, logger)
	billingService = app.NewBillingService(cartStore, receiptStore, logger)
	bootstrapService = app.NewBootstrapService(catalogStore, cartStore, instructions, logger)
	doctorService = app.NewDoctorService(catalogStore, cartStore)
}

// CatalogAdapter returns a new CatalogAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func CatalogAdapter() *cliadapter.CatalogAdapter {
	return CatalogAdapterWithOutput(os.Stdout)
}

// CatalogAdapterWithOutput returns a new CatalogAdapter writing to the given
// output, for tests or alternate destinations.
func CatalogAdapterWithOutput(out io.Writer) *cliadapter.CatalogAdapter {
	once.Do(initServices)
	return cliadapter.NewCatalogAdapter(catalogService, out)
}

// CartAdapter returns a new CartAdapter writing to stdout.
func CartAdapter() *cliadapter.CartAdapter {
	return CartAdapterWithOutput(os.Stdout)
}

// CartAdapterWithOutput returns a new CartAdapter writing to the given output.
func CartAdapterWithOutput(out io.Writer) *cliadapter.CartAdapter {
	once.Do(initServices)
	return cliadapter.NewCartAdapter(cartService, out)
}

// BillingAdapter returns a new BillingAdapter writing to stdout.
func BillingAdapter() *cliadapter.BillingAdapter {
	return BillingAdapterWithOutput(os.Stdout)
}

// BillingAdapterWithOutput returns a new BillingAdapter writing to the given output.
func BillingAdapterWithOutput(out io.Writer) *cliadapter.BillingAdapter {
	once.Do(initServices)
	return cliadapter.NewBillingAdapter(billingService, out)
}
