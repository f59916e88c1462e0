package model

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/firsthome/affordability-service/internal/domain/event"
)

// ---------------------------------------------------------------------------
// Scenario aggregate root
// ---------------------------------------------------------------------------

// Scenario is an immutable aggregate holding a named affordability
// calculation: the borrower inputs and the result snapshot produced by the
// engine. Every mutation returns a new copy.
type Scenario struct {
	id           string
	tenantID     string
	userID       string
	name         string
	parameters   LoanParameters
	factorInputs CompensatingFactorInputs
	result       FHALoanResult
	version      int
	createdAt    time.Time
	updatedAt    time.Time
	domainEvents []event.DomainEvent
}

// NewScenario creates a new scenario from a completed calculation.
func NewScenario(
	tenantID, userID, name string,
	params LoanParameters,
	inputs CompensatingFactorInputs,
	result FHALoanResult,
	now time.Time,
) (Scenario, error) {
	if tenantID == "" {
		return Scenario{}, errors.New("tenant ID is required")
	}
	if userID == "" {
		return Scenario{}, errors.New("user ID is required")
	}
	if name == "" {
		return Scenario{}, errors.New("scenario name is required")
	}

	id := uuid.New().String()
	s := Scenario{
		id:           id,
		tenantID:     tenantID,
		userID:       userID,
		name:         name,
		parameters:   params,
		factorInputs: inputs,
		result:       result,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}

	s.domainEvents = append(s.domainEvents, event.NewScenarioSaved(
		id, tenantID, userID, name,
		result.MaxLoanAmount, result.MaxHomePrice,
		result.ConvergedDTI, result.Converged,
	))
	return s, nil
}

// ReconstructScenario rebuilds an aggregate from persistence without
// side-effects.
func ReconstructScenario(
	id, tenantID, userID, name string,
	params LoanParameters,
	inputs CompensatingFactorInputs,
	result FHALoanResult,
	version int,
	createdAt, updatedAt time.Time,
) Scenario {
	return Scenario{
		id:           id,
		tenantID:     tenantID,
		userID:       userID,
		name:         name,
		parameters:   params,
		factorInputs: inputs,
		result:       result,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Recalculate replaces the stored result with a fresh calculation, bumping
// the updated timestamp. Returns a new copy.
func (s Scenario) Recalculate(result FHALoanResult, now time.Time) Scenario {
	next := s
	next.result = result
	next.updatedAt = now
	next.domainEvents = copyEvents(s.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewScenarioSaved(
		s.id, s.tenantID, s.userID, s.name,
		result.MaxLoanAmount, result.MaxHomePrice,
		result.ConvergedDTI, result.Converged,
	))
	return next
}

// MarkDeleted records a deletion event. The repository performs the actual
// removal; the event rides along for publication.
func (s Scenario) MarkDeleted() Scenario {
	next := s
	next.domainEvents = copyEvents(s.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewScenarioDeleted(
		s.id, s.tenantID, s.userID,
	))
	return next
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (s Scenario) ID() string                              { return s.id }
func (s Scenario) TenantID() string                        { return s.tenantID }
func (s Scenario) UserID() string                          { return s.userID }
func (s Scenario) Name() string                            { return s.name }
func (s Scenario) Parameters() LoanParameters              { return s.parameters }
func (s Scenario) FactorInputs() CompensatingFactorInputs  { return s.factorInputs }
func (s Scenario) Result() FHALoanResult                   { return s.result }
func (s Scenario) Version() int                            { return s.version }
func (s Scenario) CreatedAt() time.Time                    { return s.createdAt }
func (s Scenario) UpdatedAt() time.Time                    { return s.updatedAt }

// DomainEvents returns the events recorded on this aggregate instance.
func (s Scenario) DomainEvents() []event.DomainEvent { return s.domainEvents }

func copyEvents(src []event.DomainEvent) []event.DomainEvent {
	if len(src) == 0 {
		return nil
	}
	dst := make([]event.DomainEvent, len(src))
	copy(dst, src)
	return dst
}
