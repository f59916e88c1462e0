package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/firsthome/affordability-service/internal/application/dto"
	"github.com/firsthome/affordability-service/internal/domain/model"
	"github.com/firsthome/affordability-service/internal/domain/port"
	"github.com/firsthome/affordability-service/internal/domain/service"
	"github.com/firsthome/affordability-service/internal/domain/valueobject"
	"github.com/firsthome/affordability-service/internal/observability"
)

// CalculateAffordabilityUseCase orchestrates one borrowing-power calculation:
// it resolves the benchmark rate and the tax/insurance estimates from their
// collaborators, then runs the pure engine. Nothing is persisted.
type CalculateAffordabilityUseCase struct {
	rates     port.RateProvider
	taxes     port.PropertyTaxEstimator
	insurance port.InsuranceEstimator
	engine    *service.BorrowingPowerEngine
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewCalculateAffordabilityUseCase wires dependencies.
func NewCalculateAffordabilityUseCase(
	rates port.RateProvider,
	taxes port.PropertyTaxEstimator,
	insurance port.InsuranceEstimator,
	engine *service.BorrowingPowerEngine,
	logger *slog.Logger,
) *CalculateAffordabilityUseCase {
	return &CalculateAffordabilityUseCase{
		rates:     rates,
		taxes:     taxes,
		insurance: insurance,
		engine:    engine,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}
}

// Execute validates the request, resolves collaborator inputs, and solves.
func (uc *CalculateAffordabilityUseCase) Execute(
	ctx context.Context,
	req dto.CalculateRequest,
) (dto.CalculateResponse, error) {
	// 1. Validate the caller contract.
	if err := uc.validate.Struct(req); err != nil {
		return dto.CalculateResponse{}, fmt.Errorf("invalid request: %w", err)
	}

	params, inputs, err := uc.buildParameters(req)
	if err != nil {
		return dto.CalculateResponse{}, err
	}

	// 2. Resolve the benchmark rate unless the caller pinned one.
	if params.InterestRate <= 0 {
		rate, err := uc.rates.CurrentRate(ctx)
		if err != nil {
			return dto.CalculateResponse{}, fmt.Errorf("resolve interest rate: %w", err)
		}
		params.InterestRate = rate
	}

	// 3. Resolve tax/insurance estimates against a provisional home price
	// solved at the base ceiling. Estimator failures are soft: the engine
	// falls back to flat percentages of home price.
	resp := dto.CalculateResponse{AppliedRate: params.InterestRate}
	uc.resolveEstimates(ctx, &params, &resp)

	// 4. Run the engine.
	result, err := uc.engine.Solve(params, inputs)
	if err != nil {
		return dto.CalculateResponse{}, fmt.Errorf("solve borrowing power: %w", err)
	}

	observability.CalculationsTotal.Inc()
	if !result.Converged {
		observability.NonConvergedTotal.Inc()
	}

	resp.Result = result
	return resp, nil
}

// buildParameters maps the request DTO onto the engine's input types.
func (uc *CalculateAffordabilityUseCase) buildParameters(
	req dto.CalculateRequest,
) (model.LoanParameters, model.CompensatingFactorInputs, error) {
	var region valueobject.Region
	if req.Region != "" {
		var err error
		region, err = valueobject.NewRegion(req.Region)
		if err != nil {
			return model.LoanParameters{}, model.CompensatingFactorInputs{}, fmt.Errorf("invalid request: %w", err)
		}
	}

	params := model.LoanParameters{
		AnnualIncome:          req.AnnualIncome,
		MonthlyDebts:          req.MonthlyDebts,
		FICOScore:             req.FICOScore,
		DownPaymentPercent:    req.DownPaymentPercent,
		InterestRate:          req.InterestRate,
		TermYears:             req.TermYears,
		LoanAmount:            req.LoanAmount,
		MonthlyPropertyTax:    req.MonthlyPropertyTax,
		MonthlyInsurance:      req.MonthlyInsurance,
		UseAUS:                req.UseAUS,
		PositiveRentHistory:   req.PositiveRentHistory,
		Region:                region,
		MonthlyTaxWithholding: req.MonthlyTaxWithholding,
		ChildcareExpenses:     req.ChildcareExpenses,
	}

	inputs := model.CompensatingFactorInputs{
		NecessaryMonthlyDebts: req.NecessaryMonthlyDebts,
		CashReserves:          req.CashReserves,
		CurrentHousingPayment: req.CurrentHousingPayment,
		HouseholdSize:         req.HouseholdSize,
	}
	return params, inputs, nil
}

// resolveEstimates fills missing tax/insurance figures from the external
// estimators, using a provisional price solved at the base DTI ceiling.
func (uc *CalculateAffordabilityUseCase) resolveEstimates(
	ctx context.Context,
	params *model.LoanParameters,
	resp *dto.CalculateResponse,
) {
	if params.MonthlyPropertyTax > 0 && params.MonthlyInsurance > 0 {
		resp.EstimatedMonthlyTax = decimal.NewFromFloat(params.MonthlyPropertyTax)
		resp.EstimatedMonthlyInsurance = decimal.NewFromFloat(params.MonthlyInsurance)
		return
	}

	provisionalLoan := service.MaxLoanAmount(
		params.AnnualIncome, service.BaseDTI, params.MonthlyDebts,
		params.InterestRate, params.Term(),
	)
	if provisionalLoan <= 0 {
		return
	}
	downPct := params.DownPaymentPercent
	if downPct <= 0 {
		downPct = service.MinDownPaymentPct
	}
	provisionalPrice := decimal.NewFromFloat(provisionalLoan / (1 - downPct/100)).Round(0)

	if params.MonthlyPropertyTax <= 0 && uc.taxes != nil {
		tax, err := uc.taxes.MonthlyTax(ctx, params.Region, provisionalPrice)
		if err != nil {
			uc.logger.Warn("property tax estimate unavailable, using flat fallback", "error", err)
		} else {
			params.MonthlyPropertyTax, _ = tax.Float64()
			resp.EstimatedMonthlyTax = tax
		}
	}

	if params.MonthlyInsurance <= 0 && uc.insurance != nil {
		premium, err := uc.insurance.MonthlyPremium(ctx, params.Region, provisionalPrice)
		if err != nil {
			uc.logger.Warn("insurance estimate unavailable, using flat fallback", "error", err)
		} else {
			params.MonthlyInsurance, _ = premium.Float64()
			resp.EstimatedMonthlyInsurance = premium
		}
	}
}
