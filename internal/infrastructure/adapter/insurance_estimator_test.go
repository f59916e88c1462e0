package adapter

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firsthome/affordability-service/internal/domain/valueobject"
)

func TestRiskAdjustedInsuranceEstimator_RegionalMultipliers(t *testing.T) {
	estimator := NewRiskAdjustedInsuranceEstimator()
	price := decimal.NewFromInt(400_000)

	tests := []struct {
		region  string
		monthly string
	}{
		{"NORTHEAST", "105"}, // 400000 * 0.0030 * 1.05 / 12
		{"MIDWEST", "100"},   // 400000 * 0.0030 * 1.00 / 12
		{"SOUTH", "130"},     // 400000 * 0.0030 * 1.30 / 12
		{"WEST", "125"},      // 400000 * 0.0030 * 1.25 / 12
	}
	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			premium, err := estimator.MonthlyPremium(context.Background(), mustRegion(t, tt.region), price)
			require.NoError(t, err)
			assert.True(t, premium.Equal(decimal.RequireFromString(tt.monthly)),
				"got %s, want %s", premium, tt.monthly)
		})
	}
}

func TestRiskAdjustedInsuranceEstimator_UnknownRegionUsesBaseRate(t *testing.T) {
	estimator := NewRiskAdjustedInsuranceEstimator()

	premium, err := estimator.MonthlyPremium(context.Background(), valueobject.Region{}, decimal.NewFromInt(400_000))

	require.NoError(t, err)
	assert.True(t, premium.Equal(decimal.NewFromInt(100)), "got %s", premium)
}

func TestRiskAdjustedInsuranceEstimator_RejectsNonPositivePrice(t *testing.T) {
	estimator := NewRiskAdjustedInsuranceEstimator()

	_, err := estimator.MonthlyPremium(context.Background(), valueobject.Region{}, decimal.NewFromInt(-1))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "home price must be positive")
}
