package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/firsthome/affordability-service/internal/domain/event"
	"github.com/firsthome/affordability-service/internal/domain/model"
	"github.com/firsthome/affordability-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// ScenarioRepository persists and retrieves saved affordability scenarios.
type ScenarioRepository interface {
	Save(ctx context.Context, s model.Scenario) error
	FindByID(ctx context.Context, tenantID, id string) (model.Scenario, error)
	FindByUserID(ctx context.Context, tenantID, userID string) ([]model.Scenario, error)
	Delete(ctx context.Context, tenantID, id string) error
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// External estimation ports
// ---------------------------------------------------------------------------

// RateProvider supplies the current benchmark annual FHA interest rate as a
// percentage. The engine holds no rate cache of its own; staleness and
// refresh policy belong entirely to the implementation behind this port.
type RateProvider interface {
	CurrentRate(ctx context.Context) (float64, error)
}

// PropertyTaxEstimator produces a monthly property-tax figure for a home in
// the given region.
type PropertyTaxEstimator interface {
	MonthlyTax(ctx context.Context, region valueobject.Region, homePrice decimal.Decimal) (decimal.Decimal, error)
}

// InsuranceEstimator produces a monthly homeowner's-insurance premium.
type InsuranceEstimator interface {
	MonthlyPremium(ctx context.Context, region valueobject.Region, homePrice decimal.Decimal) (decimal.Decimal, error)
}

// ---------------------------------------------------------------------------
// Cache port
// ---------------------------------------------------------------------------

// Cache is a string key/value store with per-entry TTL, used to memoise
// expensive external lookups (scraped rates, AI tax estimates).
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
