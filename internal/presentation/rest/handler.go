package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/firsthome/affordability-service/internal/application/dto"
	"github.com/firsthome/affordability-service/internal/application/usecase"
	"github.com/firsthome/affordability-service/internal/infrastructure/persistence/postgres"
)

// tenantHeader carries the caller's tenant, resolved upstream by the gateway.
const tenantHeader = "X-Tenant-ID"

// AffordabilityHandler exposes affordability operations over REST.
type AffordabilityHandler struct {
	calculate *usecase.CalculateAffordabilityUseCase
	save      *usecase.SaveScenarioUseCase
	get       *usecase.GetScenarioUseCase
	list      *usecase.ListScenariosUseCase
	delete    *usecase.DeleteScenarioUseCase
	logger    *slog.Logger
}

// NewAffordabilityHandler creates an HTTP handler with all use-case dependencies.
func NewAffordabilityHandler(
	calculate *usecase.CalculateAffordabilityUseCase,
	save *usecase.SaveScenarioUseCase,
	get *usecase.GetScenarioUseCase,
	list *usecase.ListScenariosUseCase,
	del *usecase.DeleteScenarioUseCase,
	logger *slog.Logger,
) *AffordabilityHandler {
	return &AffordabilityHandler{
		calculate: calculate,
		save:      save,
		get:       get,
		list:      list,
		delete:    del,
		logger:    logger,
	}
}

// RegisterRoutes attaches affordability routes to the given mux.
func (h *AffordabilityHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/affordability/calculate", h.handleCalculate)
	mux.HandleFunc("POST /v1/scenarios", h.handleSaveScenario)
	mux.HandleFunc("GET /v1/scenarios", h.handleListScenarios)
	mux.HandleFunc("GET /v1/scenarios/{id}", h.handleGetScenario)
	mux.HandleFunc("DELETE /v1/scenarios/{id}", h.handleDeleteScenario)
}

func (h *AffordabilityHandler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req dto.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.TenantID == "" {
		req.TenantID = r.Header.Get(tenantHeader)
	}

	resp, err := h.calculate.Execute(r.Context(), req)
	if err != nil {
		h.writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AffordabilityHandler) handleSaveScenario(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.TenantID == "" {
		req.TenantID = r.Header.Get(tenantHeader)
	}

	resp, err := h.save.Execute(r.Context(), req)
	if err != nil {
		h.writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *AffordabilityHandler) handleGetScenario(w http.ResponseWriter, r *http.Request) {
	resp, err := h.get.Execute(r.Context(), dto.GetScenarioRequest{
		TenantID:   r.Header.Get(tenantHeader),
		ScenarioID: r.PathValue("id"),
	})
	if err != nil {
		h.writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AffordabilityHandler) handleListScenarios(w http.ResponseWriter, r *http.Request) {
	resp, err := h.list.Execute(r.Context(), dto.ListScenariosRequest{
		TenantID: r.Header.Get(tenantHeader),
		UserID:   r.URL.Query().Get("user_id"),
	})
	if err != nil {
		h.writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"scenarios": resp})
}

func (h *AffordabilityHandler) handleDeleteScenario(w http.ResponseWriter, r *http.Request) {
	err := h.delete.Execute(r.Context(), dto.DeleteScenarioRequest{
		TenantID:   r.Header.Get(tenantHeader),
		ScenarioID: r.PathValue("id"),
	})
	if err != nil {
		h.writeUsecaseError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeUsecaseError maps application errors onto HTTP status codes.
func (h *AffordabilityHandler) writeUsecaseError(w http.ResponseWriter, err error) {
	var vErrs validator.ValidationErrors
	switch {
	case errors.Is(err, postgres.ErrScenarioNotFound):
		writeError(w, http.StatusNotFound, "scenario not found")
	case errors.As(err, &vErrs), strings.Contains(err.Error(), "invalid request"):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
