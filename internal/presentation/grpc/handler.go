package grpc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/firsthome/affordability-service/internal/application/dto"
	"github.com/firsthome/affordability-service/internal/application/usecase"
	"github.com/firsthome/affordability-service/internal/infrastructure/persistence/postgres"
)

// AffordabilityHandler exposes affordability operations over gRPC by mapping
// wire messages onto the application-layer DTOs.
type AffordabilityHandler struct {
	UnimplementedAffordabilityServiceServer

	calculate *usecase.CalculateAffordabilityUseCase
	save      *usecase.SaveScenarioUseCase
	get       *usecase.GetScenarioUseCase
	list      *usecase.ListScenariosUseCase
	delete    *usecase.DeleteScenarioUseCase
}

// NewAffordabilityHandler creates a new handler with all use-case dependencies.
func NewAffordabilityHandler(
	calculate *usecase.CalculateAffordabilityUseCase,
	save *usecase.SaveScenarioUseCase,
	get *usecase.GetScenarioUseCase,
	list *usecase.ListScenariosUseCase,
	del *usecase.DeleteScenarioUseCase,
) *AffordabilityHandler {
	return &AffordabilityHandler{
		calculate: calculate,
		save:      save,
		get:       get,
		list:      list,
		delete:    del,
	}
}

// Calculate runs one borrowing-power calculation.
func (h *AffordabilityHandler) Calculate(ctx context.Context, req *CalculateRequest) (*CalculateResponse, error) {
	resp, err := h.calculate.Execute(ctx, toCalculateDTO(req))
	if err != nil {
		return nil, statusFromError(err)
	}
	return toCalculateMessage(resp), nil
}

// SaveScenario calculates and persists a named scenario.
func (h *AffordabilityHandler) SaveScenario(ctx context.Context, req *SaveScenarioRequest) (*SaveScenarioResponse, error) {
	if req.Calculation == nil {
		return nil, status.Error(codes.InvalidArgument, "calculation is required")
	}
	resp, err := h.save.Execute(ctx, dto.SaveScenarioRequest{
		CalculateRequest: toCalculateDTO(req.Calculation),
		UserID:           req.UserID,
		Name:             req.Name,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &SaveScenarioResponse{Scenario: toScenarioMessage(resp)}, nil
}

// GetScenario retrieves a stored scenario by ID.
func (h *AffordabilityHandler) GetScenario(ctx context.Context, req *GetScenarioRequest) (*GetScenarioResponse, error) {
	resp, err := h.get.Execute(ctx, dto.GetScenarioRequest{
		TenantID:   req.TenantID,
		ScenarioID: req.ScenarioID,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &GetScenarioResponse{Scenario: toScenarioMessage(resp)}, nil
}

// ListScenarios retrieves a user's stored scenarios, newest first.
func (h *AffordabilityHandler) ListScenarios(ctx context.Context, req *ListScenariosRequest) (*ListScenariosResponse, error) {
	scenarios, err := h.list.Execute(ctx, dto.ListScenariosRequest{
		TenantID: req.TenantID,
		UserID:   req.UserID,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	out := make([]*Scenario, 0, len(scenarios))
	for _, s := range scenarios {
		out = append(out, toScenarioMessage(s))
	}
	return &ListScenariosResponse{Scenarios: out}, nil
}

// DeleteScenario removes a stored scenario.
func (h *AffordabilityHandler) DeleteScenario(ctx context.Context, req *DeleteScenarioRequest) (*DeleteScenarioResponse, error) {
	err := h.delete.Execute(ctx, dto.DeleteScenarioRequest{
		TenantID:   req.TenantID,
		ScenarioID: req.ScenarioID,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &DeleteScenarioResponse{Deleted: true}, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toCalculateDTO(in *CalculateRequest) dto.CalculateRequest {
	return dto.CalculateRequest{
		TenantID:              in.TenantID,
		AnnualIncome:          in.AnnualIncome,
		MonthlyDebts:          in.MonthlyDebts,
		FICOScore:             in.FICOScore,
		DownPaymentPercent:    in.DownPaymentPercent,
		TermYears:             in.TermYears,
		InterestRate:          in.InterestRate,
		LoanAmount:            in.LoanAmount,
		MonthlyPropertyTax:    in.MonthlyPropertyTax,
		MonthlyInsurance:      in.MonthlyInsurance,
		UseAUS:                in.UseAUS,
		PositiveRentHistory:   in.PositiveRentHistory,
		Region:                in.Region,
		MonthlyTaxWithholding: in.MonthlyTaxWithholding,
		ChildcareExpenses:     in.ChildcareExpenses,
		NecessaryMonthlyDebts: in.NecessaryMonthlyDebts,
		CashReserves:          in.CashReserves,
		CurrentHousingPayment: in.CurrentHousingPayment,
		HouseholdSize:         in.HouseholdSize,
	}
}

func toCalculateMessage(resp dto.CalculateResponse) *CalculateResponse {
	r := resp.Result
	factors := make([]string, 0, len(r.DTI.ActiveFactors))
	for _, f := range r.DTI.ActiveFactors {
		factors = append(factors, f.Name)
	}
	return &CalculateResponse{
		MaxLoanAmount:             r.MaxLoanAmount.StringFixed(2),
		MaxHomePrice:              r.MaxHomePrice.StringFixed(2),
		DownPaymentAmount:         r.DownPaymentAmount.StringFixed(2),
		PrincipalAndInterest:      r.Payment.PrincipalAndInterest.StringFixed(2),
		PropertyTax:               r.Payment.PropertyTax.StringFixed(2),
		Insurance:                 r.Payment.Insurance.StringFixed(2),
		MonthlyMIP:                r.Payment.MonthlyMIP.StringFixed(2),
		TotalMonthlyPayment:       r.Payment.Total.StringFixed(2),
		UpfrontMIP:                r.MIP.UpfrontMIP.StringFixed(2),
		AllowedDTI:                r.DTI.AllowedDTI,
		DTIPercent:                r.DTIPercent,
		LTVPercent:                r.LTVPercent,
		ActiveFactors:             factors,
		MeetsMinimumRequirements:  r.MeetsMinimumRequirements,
		Converged:                 r.Converged,
		Iterations:                r.Iterations,
		Warnings:                  r.Warnings,
		AppliedRate:               resp.AppliedRate,
		EstimatedMonthlyTax:       resp.EstimatedMonthlyTax.StringFixed(2),
		EstimatedMonthlyInsurance: resp.EstimatedMonthlyInsurance.StringFixed(2),
	}
}

func toScenarioMessage(s dto.ScenarioResponse) *Scenario {
	return &Scenario{
		ID:            s.ID,
		TenantID:      s.TenantID,
		UserID:        s.UserID,
		Name:          s.Name,
		MaxLoanAmount: s.Result.MaxLoanAmount.StringFixed(2),
		MaxHomePrice:  s.Result.MaxHomePrice.StringFixed(2),
		AllowedDTI:    s.Result.DTI.AllowedDTI,
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     s.UpdatedAt.Format(time.RFC3339),
	}
}

// statusFromError maps application errors onto gRPC status codes.
func statusFromError(err error) error {
	var vErrs validator.ValidationErrors
	switch {
	case errors.Is(err, postgres.ErrScenarioNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.As(err, &vErrs), strings.Contains(err.Error(), "invalid request"):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
