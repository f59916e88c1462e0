package rest_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firsthome/affordability-service/internal/application/dto"
	"github.com/firsthome/affordability-service/internal/application/usecase"
	"github.com/firsthome/affordability-service/internal/domain/service"
	"github.com/firsthome/affordability-service/internal/infrastructure/adapter"
	"github.com/firsthome/affordability-service/internal/infrastructure/messaging"
	"github.com/firsthome/affordability-service/internal/infrastructure/persistence/memory"
	"github.com/firsthome/affordability-service/internal/presentation/rest"
)

// newTestRouter wires the full REST surface against in-memory infrastructure.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := memory.NewScenarioRepo()
	publisher := messaging.NewNopEventPublisher(logger)
	engine := service.NewBorrowingPowerEngine()

	calculate := usecase.NewCalculateAffordabilityUseCase(
		adapter.NewStubRateProvider(6.5),
		adapter.StubTaxEstimator{},
		adapter.StubInsuranceEstimator{},
		engine,
		logger,
	)
	handler := rest.NewAffordabilityHandler(
		calculate,
		usecase.NewSaveScenarioUseCase(calculate, repo, publisher),
		usecase.NewGetScenarioUseCase(repo),
		usecase.NewListScenariosUseCase(repo),
		usecase.NewDeleteScenarioUseCase(repo, publisher),
		logger,
	)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	return mux
}

func calculateBody() map[string]any {
	return map[string]any{
		"annual_income":        75_000,
		"monthly_debts":        300,
		"fico_score":           680,
		"down_payment_percent": 3.5,
		"term_years":           30,
		"household_size":       4,
	}
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("X-Tenant-ID", "tenant-001")
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRESTCalculate(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/affordability/calculate", calculateBody())

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp dto.CalculateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 6.5, resp.AppliedRate)
	assert.True(t, resp.Result.Converged)
	assert.True(t, resp.Result.MaxLoanAmount.IsPositive())
}

func TestRESTCalculate_BadJSON(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/affordability/calculate", bytes.NewBufferString("{"))
	req.Header.Set("X-Tenant-ID", "tenant-001")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid JSON body")
}

func TestRESTCalculate_MissingTenant(t *testing.T) {
	router := newTestRouter(t)

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(calculateBody()))
	req := httptest.NewRequest(http.MethodPost, "/v1/affordability/calculate", &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRESTScenarioLifecycle(t *testing.T) {
	router := newTestRouter(t)

	body := calculateBody()
	body["user_id"] = "user-42"
	body["name"] = "First condo"

	// Save.
	rec := doJSON(t, router, http.MethodPost, "/v1/scenarios", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var saved dto.ScenarioResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	require.NotEmpty(t, saved.ID)
	assert.Equal(t, "First condo", saved.Name)

	// Get.
	rec = doJSON(t, router, http.MethodGet, "/v1/scenarios/"+saved.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched dto.ScenarioResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, saved.ID, fetched.ID)

	// List.
	rec = doJSON(t, router, http.MethodGet, "/v1/scenarios?user_id=user-42", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listing struct {
		Scenarios []dto.ScenarioResponse `json:"scenarios"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.Len(t, listing.Scenarios, 1)

	// Delete.
	rec = doJSON(t, router, http.MethodDelete, "/v1/scenarios/"+saved.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/v1/scenarios/"+saved.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRESTGetScenario_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/scenarios/no-such-id", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "scenario not found")
}

func TestRateLimiterMiddleware(t *testing.T) {
	limiter := rest.NewRateLimiter(1, 2)
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	var rejected int
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/v1/scenarios", nil)
		req.RemoteAddr = "10.0.0.1:54321"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code == http.StatusTooManyRequests {
			rejected++
		}
	}
	assert.GreaterOrEqual(t, rejected, 1, "burst of 2 must not absorb 5 instant requests")

	// A different client gets its own bucket.
	req := httptest.NewRequest(http.MethodGet, "/v1/scenarios", nil)
	req.RemoteAddr = "10.0.0.2:54321"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	limiter := rest.NewRateLimiter(1, 1)

	limiter.Stop()
	limiter.Stop()

	// A stopped limiter still throttles; only the eviction loop ends.
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/v1/scenarios", nil)
	req.RemoteAddr = "10.0.0.3:54321"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestLogger_PropagatesStatus(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := rest.RequestLogger(logger, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		fmt.Fprint(w, "short and stout")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout", rec.Body.String())
}
