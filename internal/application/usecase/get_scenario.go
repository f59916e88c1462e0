package usecase

import (
	"context"
	"fmt"

	"github.com/firsthome/affordability-service/internal/application/dto"
	"github.com/firsthome/affordability-service/internal/domain/port"
)

// GetScenarioUseCase retrieves a single stored scenario.
type GetScenarioUseCase struct {
	repo port.ScenarioRepository
}

// NewGetScenarioUseCase wires dependencies.
func NewGetScenarioUseCase(repo port.ScenarioRepository) *GetScenarioUseCase {
	return &GetScenarioUseCase{repo: repo}
}

// Execute fetches the scenario by ID.
func (uc *GetScenarioUseCase) Execute(
	ctx context.Context,
	req dto.GetScenarioRequest,
) (dto.ScenarioResponse, error) {
	s, err := uc.repo.FindByID(ctx, req.TenantID, req.ScenarioID)
	if err != nil {
		return dto.ScenarioResponse{}, fmt.Errorf("find scenario: %w", err)
	}
	return toScenarioResponse(s), nil
}

// ListScenariosUseCase retrieves all scenarios stored for a user.
type ListScenariosUseCase struct {
	repo port.ScenarioRepository
}

// NewListScenariosUseCase wires dependencies.
func NewListScenariosUseCase(repo port.ScenarioRepository) *ListScenariosUseCase {
	return &ListScenariosUseCase{repo: repo}
}

// Execute fetches the user's scenarios, newest first.
func (uc *ListScenariosUseCase) Execute(
	ctx context.Context,
	req dto.ListScenariosRequest,
) ([]dto.ScenarioResponse, error) {
	scenarios, err := uc.repo.FindByUserID(ctx, req.TenantID, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}

	out := make([]dto.ScenarioResponse, 0, len(scenarios))
	for _, s := range scenarios {
		out = append(out, toScenarioResponse(s))
	}
	return out, nil
}

// DeleteScenarioUseCase removes a stored scenario and publishes the
// deletion event.
type DeleteScenarioUseCase struct {
	repo      port.ScenarioRepository
	publisher port.EventPublisher
}

// NewDeleteScenarioUseCase wires dependencies.
func NewDeleteScenarioUseCase(repo port.ScenarioRepository, publisher port.EventPublisher) *DeleteScenarioUseCase {
	return &DeleteScenarioUseCase{repo: repo, publisher: publisher}
}

// Execute deletes the scenario by ID.
func (uc *DeleteScenarioUseCase) Execute(
	ctx context.Context,
	req dto.DeleteScenarioRequest,
) error {
	s, err := uc.repo.FindByID(ctx, req.TenantID, req.ScenarioID)
	if err != nil {
		return fmt.Errorf("find scenario: %w", err)
	}

	if err := uc.repo.Delete(ctx, req.TenantID, req.ScenarioID); err != nil {
		return fmt.Errorf("delete scenario: %w", err)
	}

	deleted := s.MarkDeleted()
	if err := uc.publisher.Publish(ctx, deleted.DomainEvents()...); err != nil {
		return fmt.Errorf("publish events: %w", err)
	}
	return nil
}
