package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DomainEvent is implemented by every event raised inside the affordability
// domain. Events are serialised to JSON by the publisher.
type DomainEvent interface {
	EventID() string
	EventType() string
	AggregateID() string
	TenantID() string
	OccurredAt() time.Time
}

// BaseEvent provides the common DomainEvent plumbing.
type BaseEvent struct {
	ID         string    `json:"event_id"`
	Type       string    `json:"event_type"`
	Aggregate  string    `json:"aggregate_id"`
	Tenant     string    `json:"tenant_id"`
	OccurredOn time.Time `json:"occurred_at"`
}

// NewBaseEvent creates a BaseEvent with a generated UUID and the current time.
func NewBaseEvent(eventType, aggregateID, tenantID string) BaseEvent {
	return BaseEvent{
		ID:         uuid.New().String(),
		Type:       eventType,
		Aggregate:  aggregateID,
		Tenant:     tenantID,
		OccurredOn: time.Now().UTC(),
	}
}

func (e BaseEvent) EventID() string       { return e.ID }
func (e BaseEvent) EventType() string     { return e.Type }
func (e BaseEvent) AggregateID() string   { return e.Aggregate }
func (e BaseEvent) TenantID() string      { return e.Tenant }
func (e BaseEvent) OccurredAt() time.Time { return e.OccurredOn }

// ---------------------------------------------------------------------------
// Scenario events
// ---------------------------------------------------------------------------

// ScenarioSaved is raised when a calculated scenario is persisted.
type ScenarioSaved struct {
	BaseEvent
	UserID        string          `json:"user_id"`
	Name          string          `json:"name"`
	MaxLoanAmount decimal.Decimal `json:"max_loan_amount"`
	MaxHomePrice  decimal.Decimal `json:"max_home_price"`
	ConvergedDTI  float64         `json:"converged_dti"`
	Converged     bool            `json:"converged"`
}

// NewScenarioSaved constructs a ScenarioSaved event.
func NewScenarioSaved(
	scenarioID, tenantID, userID, name string,
	maxLoan, maxPrice decimal.Decimal,
	convergedDTI float64,
	converged bool,
) ScenarioSaved {
	return ScenarioSaved{
		BaseEvent:     NewBaseEvent("affordability.scenario.saved", scenarioID, tenantID),
		UserID:        userID,
		Name:          name,
		MaxLoanAmount: maxLoan,
		MaxHomePrice:  maxPrice,
		ConvergedDTI:  convergedDTI,
		Converged:     converged,
	}
}

// ScenarioDeleted is raised when a scenario is removed.
type ScenarioDeleted struct {
	BaseEvent
	UserID string `json:"user_id"`
}

// NewScenarioDeleted constructs a ScenarioDeleted event.
func NewScenarioDeleted(scenarioID, tenantID, userID string) ScenarioDeleted {
	return ScenarioDeleted{
		BaseEvent: NewBaseEvent("affordability.scenario.deleted", scenarioID, tenantID),
		UserID:    userID,
	}
}
