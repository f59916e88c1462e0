package service

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/firsthome/affordability-service/internal/domain/model"
	"github.com/firsthome/affordability-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// BorrowingPowerEngine – fixed-point convergence driver
// ---------------------------------------------------------------------------

// BorrowingPowerEngine computes the maximum FHA loan for a borrower.
//
// The DTI ceiling and the loan amount are circularly dependent: the ceiling
// depends on compensating factors judged against the actual housing payment,
// which depends on the loan amount, which depends on the ceiling. The engine
// resolves the cycle by fixed-point iteration between the max-loan solver and
// the factor evaluator, terminating when the ceiling stabilises or the
// iteration cap is hit.
//
// The engine is pure: no I/O, no shared state, and identical inputs always
// produce identical results. Concurrent calls need no locking.
type BorrowingPowerEngine struct {
	evaluator *FactorEvaluator
}

// NewBorrowingPowerEngine returns a new engine instance.
func NewBorrowingPowerEngine() *BorrowingPowerEngine {
	return &BorrowingPowerEngine{evaluator: NewFactorEvaluator()}
}

// Solve runs the full borrowing-power calculation. Business-rule violations
// (low FICO, thin down payment, non-convergence, degenerate capacity) are
// reported inside the result, never as errors; the only error is a caller
// contract violation in the input shape.
func (e *BorrowingPowerEngine) Solve(
	params model.LoanParameters,
	inputs model.CompensatingFactorInputs,
) (model.FHALoanResult, error) {
	if err := params.Validate(); err != nil {
		return model.FHALoanResult{}, fmt.Errorf("invalid loan parameters: %w", err)
	}

	eligibility := ValidateEligibility(params.FICOScore, params.DownPaymentPercent)
	warnings := append([]string(nil), eligibility.Warnings...)

	if !eligibility.IsEligible {
		return e.ineligibleResult(warnings), nil
	}

	// A zero down payment would put LTV at exactly 100%; substitute the
	// program minimum so the solved home price stays meaningful. The
	// eligibility warning above already tells the caller to raise it.
	downPct := params.DownPaymentPercent
	if downPct <= 0 {
		downPct = MinDownPaymentPct
	}

	term := params.Term()

	status := valueobject.ConvergenceStatusInitial
	ceiling := BaseDTI
	converged := false
	iterations := 0

	var (
		loan    float64
		price   float64
		payment model.PITIBreakdown
		dti     model.DTICalculationResult
	)

	for i := 1; i <= MaxIterations; i++ {
		status = valueobject.ConvergenceStatusIterating
		iterations = i

		loan = MaxLoanAmount(params.AnnualIncome, ceiling, params.MonthlyDebts, params.InterestRate, term)
		if loan <= 0 {
			warnings = append(warnings, "monthly debts consume the full housing capacity; no qualifying loan amount")
			return e.degenerateResult(ceiling, iterations, warnings), nil
		}

		price = loan / (1 - downPct/100)
		payment = ComputePITI(loan, price, params.InterestRate, params.MonthlyPropertyTax, params.MonthlyInsurance, term)

		// The factor rules must see the computed payment, not an estimate.
		total, _ := payment.Total.Float64()
		dti = e.evaluator.Evaluate(params, inputs, total)

		if math.Abs(dti.AllowedDTI-ceiling) < ConvergenceTolerance {
			ceiling = dti.AllowedDTI
			status = valueobject.ConvergenceStatusConverged
			converged = true
			break
		}
		ceiling = dti.AllowedDTI
	}

	if !converged {
		// Soft condition: settle at the last ceiling with one final solver
		// pass rather than erroring.
		status = valueobject.ConvergenceStatusMaxIterations
		loan = MaxLoanAmount(params.AnnualIncome, ceiling, params.MonthlyDebts, params.InterestRate, term)
		price = loan / (1 - downPct/100)
		payment = ComputePITI(loan, price, params.InterestRate, params.MonthlyPropertyTax, params.MonthlyInsurance, term)
		warnings = append(warnings, fmt.Sprintf(
			"DTI ceiling did not stabilise within %d iterations; using the last computed ceiling of %.2f%%",
			MaxIterations, ceiling*100,
		))
	}

	// An explicitly requested loan amount caps the result at the smaller of
	// the request and the solved maximum.
	if params.LoanAmount > 0 {
		if params.LoanAmount > loan {
			warnings = append(warnings, fmt.Sprintf(
				"requested loan amount $%.0f exceeds the calculated maximum of $%.0f",
				params.LoanAmount, loan,
			))
		} else {
			loan = params.LoanAmount
			price = loan / (1 - downPct/100)
			payment = ComputePITI(loan, price, params.InterestRate, params.MonthlyPropertyTax, params.MonthlyInsurance, term)
		}
	}

	mip := ComputeMIP(loan, price, term)

	ltv := loan / price * 100
	if ltv > MaxStandardLTVPct {
		warnings = append(warnings, fmt.Sprintf(
			"loan-to-value of %.1f%% exceeds the typical FHA maximum of %.1f%%", ltv, MaxStandardLTVPct,
		))
	}
	if loan > HighCostAreaCeiling {
		warnings = append(warnings, fmt.Sprintf(
			"estimated loan amount $%.0f exceeds the national high-cost-area limit of $%.0f",
			loan, HighCostAreaCeiling,
		))
	}

	total, _ := payment.Total.Float64()
	realizedDTI := (total + params.MonthlyDebts) / params.MonthlyIncome() * 100

	return model.FHALoanResult{
		MaxLoanAmount:            decimal.NewFromFloat(roundDollars(loan)),
		MaxHomePrice:             decimal.NewFromFloat(roundDollars(price)),
		DownPaymentAmount:        decimal.NewFromFloat(roundDollars(price - loan)),
		Payment:                  payment,
		MIP:                      mip,
		DTIPercent:               roundCents(realizedDTI),
		LTVPercent:               roundCents(ltv),
		DTI:                      dti,
		MeetsMinimumRequirements: true,
		Warnings:                 warnings,
		ConvergedDTI:             ceiling,
		Iterations:               iterations,
		Converged:                converged,
		Status:                   status,
	}, nil
}

// ineligibleResult builds the zeroed hard-failure result for borrowers below
// the FICO floor.
func (e *BorrowingPowerEngine) ineligibleResult(warnings []string) model.FHALoanResult {
	return model.FHALoanResult{
		MaxLoanAmount:            decimal.Zero,
		MaxHomePrice:             decimal.Zero,
		DownPaymentAmount:        decimal.Zero,
		DTI:                      model.DTICalculationResult{AllowedDTI: BaseDTI, RemainingIncrement: FactorIncrementCap},
		MeetsMinimumRequirements: false,
		Warnings:                 warnings,
		ConvergedDTI:             BaseDTI,
		Iterations:               0,
		Converged:                true,
		Status:                   valueobject.ConvergenceStatusConverged,
	}
}

// degenerateResult builds the zero-loan result for borrowers whose debts
// exhaust their housing capacity.
func (e *BorrowingPowerEngine) degenerateResult(ceiling float64, iterations int, warnings []string) model.FHALoanResult {
	return model.FHALoanResult{
		MaxLoanAmount:            decimal.Zero,
		MaxHomePrice:             decimal.Zero,
		DownPaymentAmount:        decimal.Zero,
		DTI:                      model.DTICalculationResult{AllowedDTI: ceiling, RemainingIncrement: FactorIncrementCap},
		MeetsMinimumRequirements: true,
		Warnings:                 warnings,
		ConvergedDTI:             ceiling,
		Iterations:               iterations,
		Converged:                true,
		Status:                   valueobject.ConvergenceStatusConverged,
	}
}
