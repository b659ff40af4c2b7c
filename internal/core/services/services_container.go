package services

import (
	portsprov "github.com/pocketfin/pocketfin_app/internal/core/ports/providers"
	portsrepo "github.com/pocketfin/pocketfin_app/internal/core/ports/repositories"
	portssvc "github.com/pocketfin/pocketfin_app/internal/core/ports/services"
	"github.com/pocketfin/pocketfin_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, priceProvider portsprov.PriceProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The price cache feeds investment balances, so it goes first.
	container.Price = NewPriceCacheService(
		repos.StockPriceRepo,
		priceProvider,
		WithFreshness(cfg.PriceFreshnessTTL),
	)

	container.Balance = NewBalanceCalculatorService()

	container.Account = NewAccountService(
		repos.AccountRepo,
		WithPocketRepository(repos.PocketRepo),
		WithPriceService(container.Price),
		WithBalanceCalculator(container.Balance),
	)

	container.CascadeDelete = NewCascadeDeleteService(
		repos.AccountRepo,
		repos.PocketRepo,
		repos.SubPocketRepo,
		repos.MovementRepo,
	)

	return container
}
