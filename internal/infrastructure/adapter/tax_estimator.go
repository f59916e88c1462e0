package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/firsthome/affordability-service/internal/domain/port"
	"github.com/firsthome/affordability-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Property-tax estimator – regional effective rates with caching
// ---------------------------------------------------------------------------

// Effective annual property-tax rates by census region, as fractions of home
// price. Region-level medians; per-locality precision belongs to the AI
// pipeline upstream of this service.
var regionalTaxRates = map[valueobject.Region]float64{
	valueobject.RegionNortheast: 0.0168,
	valueobject.RegionMidwest:   0.0141,
	valueobject.RegionSouth:     0.0090,
	valueobject.RegionWest:      0.0073,
}

// nationalTaxRate applies when no region tag is supplied.
const nationalTaxRate = 0.0110

// RegionalTaxEstimator derives a monthly property-tax figure from the
// region's effective rate.
type RegionalTaxEstimator struct{}

// NewRegionalTaxEstimator creates a new estimator.
func NewRegionalTaxEstimator() *RegionalTaxEstimator {
	return &RegionalTaxEstimator{}
}

// MonthlyTax implements port.PropertyTaxEstimator.
func (e *RegionalTaxEstimator) MonthlyTax(
	_ context.Context,
	region valueobject.Region,
	homePrice decimal.Decimal,
) (decimal.Decimal, error) {
	if homePrice.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("home price must be positive")
	}

	rate, ok := regionalTaxRates[region]
	if !ok {
		rate = nationalTaxRate
	}

	annual := homePrice.Mul(decimal.NewFromFloat(rate))
	return annual.Div(decimal.NewFromInt(12)).Round(2), nil
}

// CachedTaxEstimator decorates a PropertyTaxEstimator with a long-lived
// cache. Effective tax rates move on assessment cycles, not daily, so
// entries live for 90 days keyed by region and price band.
type CachedTaxEstimator struct {
	inner port.PropertyTaxEstimator
	cache port.Cache
	ttl   time.Duration
}

// NewCachedTaxEstimator wraps the inner estimator with a 90-day cache.
func NewCachedTaxEstimator(inner port.PropertyTaxEstimator, cache port.Cache) *CachedTaxEstimator {
	return &CachedTaxEstimator{
		inner: inner,
		cache: cache,
		ttl:   90 * 24 * time.Hour,
	}
}

// MonthlyTax implements port.PropertyTaxEstimator.
func (e *CachedTaxEstimator) MonthlyTax(
	ctx context.Context,
	region valueobject.Region,
	homePrice decimal.Decimal,
) (decimal.Decimal, error) {
	key := taxCacheKey(region, homePrice)

	if val, ok := e.cache.Get(ctx, key); ok {
		if tax, err := decimal.NewFromString(val); err == nil {
			return tax, nil
		}
	}

	tax, err := e.inner.MonthlyTax(ctx, region, homePrice)
	if err != nil {
		return decimal.Zero, err
	}

	_ = e.cache.Set(ctx, key, tax.String(), e.ttl)
	return tax, nil
}

// taxCacheKey buckets prices into $25K bands so nearby estimates share an
// entry.
func taxCacheKey(region valueobject.Region, homePrice decimal.Decimal) string {
	band := homePrice.Div(decimal.NewFromInt(25_000)).Floor()
	regionKey := region.String()
	if region.IsZero() {
		regionKey = "NATIONAL"
	}
	return fmt.Sprintf("affordability:tax:%s:%s", regionKey, band)
}
