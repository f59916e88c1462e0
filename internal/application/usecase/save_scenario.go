package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/firsthome/affordability-service/internal/application/dto"
	"github.com/firsthome/affordability-service/internal/domain/model"
	"github.com/firsthome/affordability-service/internal/domain/port"
)

// SaveScenarioUseCase calculates a borrower's affordability and persists the
// outcome as a named scenario.
type SaveScenarioUseCase struct {
	calculate *CalculateAffordabilityUseCase
	repo      port.ScenarioRepository
	publisher port.EventPublisher
	validate  *validator.Validate
}

// NewSaveScenarioUseCase wires dependencies.
func NewSaveScenarioUseCase(
	calculate *CalculateAffordabilityUseCase,
	repo port.ScenarioRepository,
	publisher port.EventPublisher,
) *SaveScenarioUseCase {
	return &SaveScenarioUseCase{
		calculate: calculate,
		repo:      repo,
		publisher: publisher,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Execute calculates, persists, and publishes the scenario events.
func (uc *SaveScenarioUseCase) Execute(
	ctx context.Context,
	req dto.SaveScenarioRequest,
) (dto.ScenarioResponse, error) {
	now := time.Now().UTC()

	// 1. Validate the scenario envelope; the calculation request is
	// re-validated by the inner use case.
	if err := uc.validate.Struct(req); err != nil {
		return dto.ScenarioResponse{}, fmt.Errorf("invalid request: %w", err)
	}

	// 2. Run the calculation.
	calcResp, err := uc.calculate.Execute(ctx, req.CalculateRequest)
	if err != nil {
		return dto.ScenarioResponse{}, fmt.Errorf("calculate: %w", err)
	}

	// 3. Build the aggregate.
	params, inputs, err := uc.calculate.buildParameters(req.CalculateRequest)
	if err != nil {
		return dto.ScenarioResponse{}, err
	}
	params.InterestRate = calcResp.AppliedRate

	scenario, err := model.NewScenario(
		req.TenantID, req.UserID, req.Name,
		params, inputs, calcResp.Result, now,
	)
	if err != nil {
		return dto.ScenarioResponse{}, fmt.Errorf("create scenario: %w", err)
	}

	// 4. Persist.
	if err := uc.repo.Save(ctx, scenario); err != nil {
		return dto.ScenarioResponse{}, fmt.Errorf("save scenario: %w", err)
	}

	// 5. Publish domain events.
	if err := uc.publisher.Publish(ctx, scenario.DomainEvents()...); err != nil {
		return dto.ScenarioResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toScenarioResponse(scenario), nil
}

func toScenarioResponse(s model.Scenario) dto.ScenarioResponse {
	return dto.ScenarioResponse{
		ID:        s.ID(),
		TenantID:  s.TenantID(),
		UserID:    s.UserID(),
		Name:      s.Name(),
		Result:    s.Result(),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}
}
