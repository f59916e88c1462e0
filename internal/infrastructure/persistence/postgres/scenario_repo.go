package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/firsthome/affordability-service/internal/domain/model"
)

// ErrScenarioNotFound is returned when no scenario matches the lookup.
var ErrScenarioNotFound = errors.New("scenario not found")

// ScenarioRepo implements port.ScenarioRepository backed by PostgreSQL.
// Inputs and the result snapshot are stored as JSONB documents; the
// identifying columns stay relational for querying.
type ScenarioRepo struct {
	pool *pgxpool.Pool
}

// NewScenarioRepo creates a new repository backed by PostgreSQL.
func NewScenarioRepo(pool *pgxpool.Pool) *ScenarioRepo {
	return &ScenarioRepo{pool: pool}
}

// Save persists a scenario (upsert by ID with optimistic locking).
func (r *ScenarioRepo) Save(ctx context.Context, s model.Scenario) error {
	paramsJSON, err := json.Marshal(s.Parameters())
	if err != nil {
		return fmt.Errorf("marshal parameters: %w", err)
	}
	inputsJSON, err := json.Marshal(s.FactorInputs())
	if err != nil {
		return fmt.Errorf("marshal factor inputs: %w", err)
	}
	resultJSON, err := json.Marshal(s.Result())
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	query := `
		INSERT INTO scenarios (
			id, tenant_id, user_id, name,
			parameters, factor_inputs, result,
			version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (id) DO UPDATE SET
			name       = EXCLUDED.name,
			parameters = EXCLUDED.parameters,
			factor_inputs = EXCLUDED.factor_inputs,
			result     = EXCLUDED.result,
			version    = scenarios.version + 1,
			updated_at = EXCLUDED.updated_at
		WHERE scenarios.version = $8
	`
	tag, err := r.pool.Exec(ctx, query,
		s.ID(), s.TenantID(), s.UserID(), s.Name(),
		paramsJSON, inputsJSON, resultJSON,
		s.Version(), s.CreatedAt(), s.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save scenario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on scenario")
	}
	return nil
}

// FindByID retrieves a single scenario.
func (r *ScenarioRepo) FindByID(ctx context.Context, tenantID, id string) (model.Scenario, error) {
	query := `
		SELECT id, tenant_id, user_id, name,
		       parameters, factor_inputs, result,
		       version, created_at, updated_at
		FROM scenarios
		WHERE tenant_id = $1 AND id = $2
	`
	row := r.pool.QueryRow(ctx, query, tenantID, id)
	s, err := scanScenario(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Scenario{}, ErrScenarioNotFound
	}
	return s, err
}

// FindByUserID retrieves all scenarios for a user, newest first.
func (r *ScenarioRepo) FindByUserID(ctx context.Context, tenantID, userID string) ([]model.Scenario, error) {
	query := `
		SELECT id, tenant_id, user_id, name,
		       parameters, factor_inputs, result,
		       version, created_at, updated_at
		FROM scenarios
		WHERE tenant_id = $1 AND user_id = $2
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, tenantID, userID)
	if err != nil {
		return nil, fmt.Errorf("query scenarios: %w", err)
	}
	defer rows.Close()

	var result []model.Scenario
	for rows.Next() {
		s, err := scanScenario(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// Delete removes a scenario.
func (r *ScenarioRepo) Delete(ctx context.Context, tenantID, id string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM scenarios WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete scenario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrScenarioNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// scan helpers
// ---------------------------------------------------------------------------

type scannable interface {
	Scan(dest ...any) error
}

func scanScenario(row scannable) (model.Scenario, error) {
	var (
		id, tenantID, userID, name string
		paramsJSON, inputsJSON     []byte
		resultJSON                 []byte
		version                    int
		createdAt, updatedAt       time.Time
	)

	if err := row.Scan(
		&id, &tenantID, &userID, &name,
		&paramsJSON, &inputsJSON, &resultJSON,
		&version, &createdAt, &updatedAt,
	); err != nil {
		return model.Scenario{}, err
	}

	var params model.LoanParameters
	if err := json.Unmarshal(paramsJSON, &params); err != nil {
		return model.Scenario{}, fmt.Errorf("unmarshal parameters: %w", err)
	}
	var inputs model.CompensatingFactorInputs
	if err := json.Unmarshal(inputsJSON, &inputs); err != nil {
		return model.Scenario{}, fmt.Errorf("unmarshal factor inputs: %w", err)
	}
	var result model.FHALoanResult
	if err := json.Unmarshal(resultJSON, &result); err != nil {
		return model.Scenario{}, fmt.Errorf("unmarshal result: %w", err)
	}

	return model.ReconstructScenario(
		id, tenantID, userID, name,
		params, inputs, result,
		version, createdAt, updatedAt,
	), nil
}
