package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/pocketfin/pocketfin_app/internal/apperrors"
	"github.com/pocketfin/pocketfin_app/internal/core/domain"
	portsprov "github.com/pocketfin/pocketfin_app/internal/core/ports/providers"
	portsrepo "github.com/pocketfin/pocketfin_app/internal/core/ports/repositories"
	portssvc "github.com/pocketfin/pocketfin_app/internal/core/ports/services"
)

// priceCacheService resolves quotes through three tiers in increasing cost
// order: the in-process map, the persistent store, then the remote
// provider. A hit at a cheaper tier suppresses every more expensive call.
type priceCacheService struct {
	BaseService
	priceRepo portsrepo.StockPriceRepositoryFacade
	provider  portsprov.PriceProvider
	freshness time.Duration
	now       func() time.Time

	mu    sync.RWMutex
	local map[string]domain.StockPrice
}

// PriceCacheOption is a functional option for configuring the price cache
type PriceCacheOption func(*priceCacheService)

// WithClock injects the time source used for freshness checks and stamping
// new quotes. Tests use this to pin the clock.
func WithClock(now func() time.Time) PriceCacheOption {
	return func(s *priceCacheService) {
		s.now = now
	}
}

// WithFreshness overrides the freshness window (default 24h).
func WithFreshness(d time.Duration) PriceCacheOption {
	return func(s *priceCacheService) {
		if d > 0 {
			s.freshness = d
		}
	}
}

// NewPriceCacheService creates the tiered price service with the provided options
func NewPriceCacheService(priceRepo portsrepo.StockPriceRepositoryFacade, provider portsprov.PriceProvider, options ...PriceCacheOption) portssvc.PriceSvcFacade {
	svc := &priceCacheService{
		priceRepo: priceRepo,
		provider:  provider,
		freshness: domain.DefaultPriceFreshness,
		now:       time.Now,
		local:     make(map[string]domain.StockPrice),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure priceCacheService implements the PriceSvcFacade interface
var _ portssvc.PriceSvcFacade = (*priceCacheService)(nil)

// GetPrice resolves a fresh quote for the symbol. The tier order is fixed:
// memory, then store, then provider, populating the cheaper tiers on the
// way back.
func (s *priceCacheService) GetPrice(ctx context.Context, symbol string) (domain.StockPrice, error) {
	normalized := strings.ToUpper(strings.TrimSpace(symbol))

	if cached, ok := s.lookupLocal(normalized); ok {
		s.LogDebug(ctx, "Price served from local cache", slog.String("symbol", normalized))
		return cached.WithSource(domain.PriceSourceCache), nil
	}

	stored, err := s.priceRepo.FindStockPriceBySymbol(ctx, normalized)
	if err == nil && s.isFresh(*stored) {
		fromStore := stored.WithSource(domain.PriceSourceStore)
		s.storeLocal(fromStore)
		s.LogDebug(ctx, "Price served from persistent store", slog.String("symbol", normalized))
		return fromStore, nil
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to read persisted price", slog.String("symbol", normalized))
		return domain.StockPrice{}, fmt.Errorf("failed to read persisted price for %s: %w", normalized, err)
	}

	value, err := s.provider.FetchPrice(ctx, normalized)
	if err != nil {
		s.LogWarn(ctx, "Remote price fetch failed", slog.String("symbol", normalized), slog.String("error", err.Error()))
		return domain.StockPrice{}, fmt.Errorf("fetching %s: %w", normalized, err)
	}

	fresh, err := domain.NewStockPrice(normalized, value, s.now(), domain.PriceSourceRemote)
	if err != nil {
		return domain.StockPrice{}, err
	}

	if err := s.priceRepo.SaveStockPrice(ctx, fresh); err != nil {
		// The local map is only populated after the persist succeeds, so a
		// failure here leaves no partial state behind.
		s.LogError(ctx, err, "Failed to persist fetched price", slog.String("symbol", normalized))
		return domain.StockPrice{}, fmt.Errorf("failed to persist price for %s: %w", normalized, err)
	}
	s.storeLocal(fresh)

	s.LogInfo(ctx, "Price fetched from remote provider",
		slog.String("symbol", normalized),
		slog.String("price", value.String()))
	return fresh, nil
}

// ClearLocalCache empties the in-process tier.
func (s *priceCacheService) ClearLocalCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.local = make(map[string]domain.StockPrice)
}

// CacheStats returns the number of symbols held in the in-process tier.
func (s *priceCacheService) CacheStats() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.local)
}

// lookupLocal returns the in-process entry when present and fresh.
func (s *priceCacheService) lookupLocal(symbol string) (domain.StockPrice, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cached, ok := s.local[symbol]
	if !ok || !s.isFresh(cached) {
		return domain.StockPrice{}, false
	}
	return cached, true
}

// isFresh applies the configured freshness window. Expiry uses strict
// greater-than on the age, so a quote aged exactly the window is fresh.
func (s *priceCacheService) isFresh(p domain.StockPrice) bool {
	return p.Age(s.now()) <= s.freshness
}

// storeLocal writes an entry into the in-process map. Concurrent callers
// racing for the same symbol are fine: entries are idempotent snapshots and
// last write wins.
func (s *priceCacheService) storeLocal(price domain.StockPrice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.local[price.Symbol] = price
}
