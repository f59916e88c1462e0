package adapter

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/firsthome/affordability-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Insurance estimator – risk-adjusted flat model
// ---------------------------------------------------------------------------

// baseInsuranceRate is the national baseline annual premium as a fraction of
// home price.
const baseInsuranceRate = 0.0030

// Regional risk multipliers: coastal wind exposure in the South, wildfire
// and seismic exposure in the West.
var regionalRiskMultipliers = map[valueobject.Region]float64{
	valueobject.RegionNortheast: 1.05,
	valueobject.RegionMidwest:   1.00,
	valueobject.RegionSouth:     1.30,
	valueobject.RegionWest:      1.25,
}

// RiskAdjustedInsuranceEstimator computes a monthly homeowner's premium from
// the base rate and the region's risk multiplier. No network calls.
type RiskAdjustedInsuranceEstimator struct{}

// NewRiskAdjustedInsuranceEstimator creates a new estimator.
func NewRiskAdjustedInsuranceEstimator() *RiskAdjustedInsuranceEstimator {
	return &RiskAdjustedInsuranceEstimator{}
}

// MonthlyPremium implements port.InsuranceEstimator.
func (e *RiskAdjustedInsuranceEstimator) MonthlyPremium(
	_ context.Context,
	region valueobject.Region,
	homePrice decimal.Decimal,
) (decimal.Decimal, error) {
	if homePrice.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("home price must be positive")
	}

	multiplier, ok := regionalRiskMultipliers[region]
	if !ok {
		multiplier = 1.00
	}

	annual := homePrice.
		Mul(decimal.NewFromFloat(baseInsuranceRate)).
		Mul(decimal.NewFromFloat(multiplier))
	return annual.Div(decimal.NewFromInt(12)).Round(2), nil
}
