package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/firsthome/affordability-service/internal/domain/valueobject"
)

// Development/test adapters returning deterministic values, so the service
// can run without Redis, a rates page, or an OpenAI key.

// StubRateProvider always returns a fixed annual rate.
type StubRateProvider struct {
	Rate float64
}

// NewStubRateProvider creates a provider pinned to the given rate.
func NewStubRateProvider(rate float64) *StubRateProvider {
	return &StubRateProvider{Rate: rate}
}

// CurrentRate implements port.RateProvider.
func (p *StubRateProvider) CurrentRate(_ context.Context) (float64, error) {
	return p.Rate, nil
}

// StubTaxEstimator returns a flat 1.2%/yr of home price.
type StubTaxEstimator struct{}

// MonthlyTax implements port.PropertyTaxEstimator.
func (StubTaxEstimator) MonthlyTax(
	_ context.Context,
	_ valueobject.Region,
	homePrice decimal.Decimal,
) (decimal.Decimal, error) {
	return homePrice.Mul(decimal.NewFromFloat(0.012)).Div(decimal.NewFromInt(12)).Round(2), nil
}

// StubInsuranceEstimator returns a flat 0.3%/yr of home price.
type StubInsuranceEstimator struct{}

// MonthlyPremium implements port.InsuranceEstimator.
func (StubInsuranceEstimator) MonthlyPremium(
	_ context.Context,
	_ valueobject.Region,
	homePrice decimal.Decimal,
) (decimal.Decimal, error) {
	return homePrice.Mul(decimal.NewFromFloat(0.003)).Div(decimal.NewFromInt(12)).Round(2), nil
}
