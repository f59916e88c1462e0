package adapter

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firsthome/affordability-service/internal/domain/valueobject"
)

func mustRegion(t *testing.T, name string) valueobject.Region {
	t.Helper()
	region, err := valueobject.NewRegion(name)
	require.NoError(t, err)
	return region
}

func TestRegionalTaxEstimator_RegionalRates(t *testing.T) {
	estimator := NewRegionalTaxEstimator()
	price := decimal.NewFromInt(300_000)

	tests := []struct {
		region  string
		monthly string
	}{
		{"NORTHEAST", "420"},  // 300000 * 0.0168 / 12
		{"MIDWEST", "352.5"},  // 300000 * 0.0141 / 12
		{"SOUTH", "225"},      // 300000 * 0.0090 / 12
		{"WEST", "182.5"},     // 300000 * 0.0073 / 12
	}
	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			tax, err := estimator.MonthlyTax(context.Background(), mustRegion(t, tt.region), price)
			require.NoError(t, err)
			assert.True(t, tax.Equal(decimal.RequireFromString(tt.monthly)),
				"got %s, want %s", tax, tt.monthly)
		})
	}
}

func TestRegionalTaxEstimator_NationalFallback(t *testing.T) {
	estimator := NewRegionalTaxEstimator()

	tax, err := estimator.MonthlyTax(context.Background(), valueobject.Region{}, decimal.NewFromInt(300_000))

	require.NoError(t, err)
	// 300000 * 0.0110 / 12
	assert.True(t, tax.Equal(decimal.NewFromInt(275)), "got %s", tax)
}

func TestRegionalTaxEstimator_RejectsNonPositivePrice(t *testing.T) {
	estimator := NewRegionalTaxEstimator()

	_, err := estimator.MonthlyTax(context.Background(), valueobject.Region{}, decimal.Zero)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "home price must be positive")
}

type countingTaxEstimator struct {
	monthly decimal.Decimal
	calls   int
}

func (e *countingTaxEstimator) MonthlyTax(
	_ context.Context,
	_ valueobject.Region,
	_ decimal.Decimal,
) (decimal.Decimal, error) {
	e.calls++
	return e.monthly, nil
}

func TestCachedTaxEstimator_SharesEntriesWithinPriceBand(t *testing.T) {
	inner := &countingTaxEstimator{monthly: decimal.NewFromInt(225)}
	cached := NewCachedTaxEstimator(inner, newFakeCache())
	region := mustRegion(t, "SOUTH")

	// 310000 and 320000 both floor into the 12th $25K band.
	first, err := cached.MonthlyTax(context.Background(), region, decimal.NewFromInt(310_000))
	require.NoError(t, err)
	second, err := cached.MonthlyTax(context.Background(), region, decimal.NewFromInt(320_000))
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
	assert.Equal(t, 1, inner.calls, "same band must hit the cache")
}

func TestCachedTaxEstimator_SeparatesRegionsAndBands(t *testing.T) {
	inner := &countingTaxEstimator{monthly: decimal.NewFromInt(300)}
	cached := NewCachedTaxEstimator(inner, newFakeCache())

	_, err := cached.MonthlyTax(context.Background(), mustRegion(t, "SOUTH"), decimal.NewFromInt(300_000))
	require.NoError(t, err)
	_, err = cached.MonthlyTax(context.Background(), mustRegion(t, "WEST"), decimal.NewFromInt(300_000))
	require.NoError(t, err)
	_, err = cached.MonthlyTax(context.Background(), mustRegion(t, "SOUTH"), decimal.NewFromInt(400_000))
	require.NoError(t, err)

	assert.Equal(t, 3, inner.calls)
}

func TestTaxCacheKey_ZeroRegionUsesNationalKey(t *testing.T) {
	key := taxCacheKey(valueobject.Region{}, decimal.NewFromInt(310_000))

	assert.Equal(t, "affordability:tax:NATIONAL:12", key)
}
