package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/firsthome/affordability-service/internal/domain/model"
	"github.com/firsthome/affordability-service/internal/infrastructure/persistence/postgres"
)

// ScenarioRepo is an in-memory port.ScenarioRepository for development and
// tests. Safe for concurrent use.
type ScenarioRepo struct {
	mu        sync.RWMutex
	scenarios map[string]model.Scenario
}

// NewScenarioRepo creates an empty in-memory repository.
func NewScenarioRepo() *ScenarioRepo {
	return &ScenarioRepo{scenarios: make(map[string]model.Scenario)}
}

// Save stores or replaces the scenario.
func (r *ScenarioRepo) Save(_ context.Context, s model.Scenario) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scenarios[s.ID()] = s
	return nil
}

// FindByID retrieves a single scenario.
func (r *ScenarioRepo) FindByID(_ context.Context, tenantID, id string) (model.Scenario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.scenarios[id]
	if !ok || s.TenantID() != tenantID {
		return model.Scenario{}, postgres.ErrScenarioNotFound
	}
	return s, nil
}

// FindByUserID retrieves the user's scenarios, newest first.
func (r *ScenarioRepo) FindByUserID(_ context.Context, tenantID, userID string) ([]model.Scenario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []model.Scenario
	for _, s := range r.scenarios {
		if s.TenantID() == tenantID && s.UserID() == userID {
			result = append(result, s)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt().After(result[j].CreatedAt())
	})
	return result, nil
}

// Delete removes a scenario.
func (r *ScenarioRepo) Delete(_ context.Context, tenantID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.scenarios[id]
	if !ok || s.TenantID() != tenantID {
		return postgres.ErrScenarioNotFound
	}
	delete(r.scenarios, id)
	return nil
}
