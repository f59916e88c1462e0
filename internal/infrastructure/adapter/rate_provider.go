package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/firsthome/affordability-service/internal/domain/port"
	"github.com/firsthome/affordability-service/internal/observability"
)

// ---------------------------------------------------------------------------
// Composite and cached rate providers
// ---------------------------------------------------------------------------

// CompositeRateProvider resolves the benchmark rate through a fallback
// chain: scrape, then AI estimate, then the configured default. It never
// fails; the default rate is always available.
type CompositeRateProvider struct {
	scraper     port.RateProvider
	ai          port.RateProvider // nil when no API key is configured
	defaultRate float64
	logger      *slog.Logger
}

// NewCompositeRateProvider wires the fallback chain.
func NewCompositeRateProvider(
	scraper, ai port.RateProvider,
	defaultRate float64,
	logger *slog.Logger,
) *CompositeRateProvider {
	return &CompositeRateProvider{
		scraper:     scraper,
		ai:          ai,
		defaultRate: defaultRate,
		logger:      logger,
	}
}

// CurrentRate implements port.RateProvider.
func (p *CompositeRateProvider) CurrentRate(ctx context.Context) (float64, error) {
	if p.scraper != nil {
		rate, err := p.scraper.CurrentRate(ctx)
		if err == nil {
			observability.RateResolutionsTotal.WithLabelValues("scrape").Inc()
			return rate, nil
		}
		p.logger.Warn("rate scrape failed, trying AI fallback", "error", err)
	}

	if p.ai != nil {
		rate, err := p.ai.CurrentRate(ctx)
		if err == nil {
			observability.RateResolutionsTotal.WithLabelValues("ai").Inc()
			return rate, nil
		}
		p.logger.Warn("AI rate fallback failed, using default", "error", err)
	}

	observability.RateResolutionsTotal.WithLabelValues("default").Inc()
	return p.defaultRate, nil
}

// CachedRateProvider decorates a RateProvider with a shared cache on a
// 24-hour cycle, so one upstream resolution serves a day of calculations.
type CachedRateProvider struct {
	inner port.RateProvider
	cache port.Cache
	ttl   time.Duration
}

const rateCacheKey = "affordability:rate:fha30"

// NewCachedRateProvider wraps the inner provider with a 24h cache.
func NewCachedRateProvider(inner port.RateProvider, cache port.Cache) *CachedRateProvider {
	return &CachedRateProvider{
		inner: inner,
		cache: cache,
		ttl:   24 * time.Hour,
	}
}

// CurrentRate implements port.RateProvider.
func (p *CachedRateProvider) CurrentRate(ctx context.Context) (float64, error) {
	if val, ok := p.cache.Get(ctx, rateCacheKey); ok {
		if rate, err := strconv.ParseFloat(val, 64); err == nil {
			observability.RateResolutionsTotal.WithLabelValues("cache").Inc()
			return rate, nil
		}
	}

	rate, err := p.inner.CurrentRate(ctx)
	if err != nil {
		return 0, fmt.Errorf("resolve rate: %w", err)
	}

	// Cache write failures are non-fatal: the rate is already in hand.
	_ = p.cache.Set(ctx, rateCacheKey, strconv.FormatFloat(rate, 'f', -1, 64), p.ttl)
	return rate, nil
}
