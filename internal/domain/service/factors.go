package service

import (
	"math"

	"github.com/firsthome/affordability-service/internal/domain/model"
	"github.com/firsthome/affordability-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Compensating-factor evaluator – multi-factor DTI expansion
// ---------------------------------------------------------------------------

// FactorEvaluator applies the six compensating-factor rules and, when AUS
// mode is enabled, the automated-underwriting heuristic. Each rule either
// contributes its full fixed increment or nothing; there is no partial
// credit.
type FactorEvaluator struct{}

// NewFactorEvaluator returns a new evaluator instance.
func NewFactorEvaluator() *FactorEvaluator {
	return &FactorEvaluator{}
}

// Evaluate computes the allowed DTI ceiling for the borrower given the
// actual proposed monthly housing payment. The payment must be the computed
// PITI total, not an estimate, because the payment-shock and reserve-months
// rules depend on it.
func (e *FactorEvaluator) Evaluate(
	params model.LoanParameters,
	inputs model.CompensatingFactorInputs,
	proposedPayment float64,
) model.DTICalculationResult {
	factors := e.evaluateFactors(params, inputs, proposedPayment)

	var rawIncrement float64
	var active []model.CompensatingFactor
	for _, f := range factors {
		if f.Active {
			rawIncrement += f.Increment
			active = append(active, f)
		}
	}

	applied := math.Min(rawIncrement, FactorIncrementCap)
	ceiling := math.Min(BaseDTI+applied, MaxDTI)

	result := model.DTICalculationResult{
		AllowedDTI:         ceiling,
		ActiveFactors:      active,
		AppliedIncrement:   applied,
		RemainingIncrement: FactorIncrementCap - applied,
	}

	if params.UseAUS {
		score := e.ausScore(params, inputs, proposedPayment)
		ausCeiling := ausTierCeiling(score)

		result.AUSScore = score
		result.AUSCeiling = ausCeiling
		// AUS can only tighten the additive result, never loosen it.
		result.AllowedDTI = math.Min(ceiling, ausCeiling)
	}

	return result
}

// evaluateFactors runs the six independent rules.
func (e *FactorEvaluator) evaluateFactors(
	params model.LoanParameters,
	inputs model.CompensatingFactorInputs,
	proposedPayment float64,
) []model.CompensatingFactor {
	return []model.CompensatingFactor{
		{
			Name:        "cash_reserves",
			Description: "six or more months of the proposed payment held in liquid reserves",
			Category:    valueobject.FactorCategoryLiquidity,
			Increment:   0.03,
			Active:      reserveMonths(inputs.CashReserves, proposedPayment) >= ReserveMonthsRequired,
		},
		{
			Name:        "minimal_payment_increase",
			Description: "proposed payment within 5% of the current housing payment",
			Category:    valueobject.FactorCategoryStability,
			Increment:   0.02,
			Active:      e.minimalPaymentIncrease(inputs.CurrentHousingPayment, proposedPayment),
		},
		{
			Name:        "residual_income",
			Description: "income remaining after obligations clears the regional threshold",
			Category:    valueobject.FactorCategoryStability,
			Increment:   0.02,
			Active:      e.residualIncomeQualifies(params, inputs, proposedPayment),
		},
		{
			Name:        "low_discretionary_debt",
			Description: "discretionary debt is at most 10% of total monthly debts",
			Category:    valueobject.FactorCategoryCredit,
			Increment:   0.02,
			Active:      e.lowDiscretionaryDebt(params.MonthlyDebts, inputs.NecessaryMonthlyDebts),
		},
		{
			Name:        "high_credit_score",
			Description: "FICO score of 740 or above",
			Category:    valueobject.FactorCategoryCredit,
			Increment:   0.02,
			Active:      params.FICOScore >= HighCreditScoreFICO,
		},
		{
			Name:        "large_down_payment",
			Description: "down payment of 10% or more",
			Category:    valueobject.FactorCategoryEquity,
			Increment:   0.02,
			Active:      params.DownPaymentPercent >= LargeDownPaymentPct,
		},
	}
}

// minimalPaymentIncrease qualifies when the proposed payment is within 5%
// above the current housing payment. Lower payments also qualify. A missing
// current payment disqualifies the rule outright.
func (e *FactorEvaluator) minimalPaymentIncrease(currentPayment, proposedPayment float64) bool {
	if currentPayment <= 0 || proposedPayment <= 0 {
		return false
	}
	increase := (proposedPayment - currentPayment) / currentPayment
	return increase <= PaymentShockLimit
}

// residualIncomeQualifies checks whether income remaining after withholding,
// all obligations, and childcare clears the region/household threshold.
func (e *FactorEvaluator) residualIncomeQualifies(
	params model.LoanParameters,
	inputs model.CompensatingFactorInputs,
	proposedPayment float64,
) bool {
	monthlyIncome := params.MonthlyIncome()

	withholding := params.MonthlyTaxWithholding
	if withholding <= 0 {
		withholding = monthlyIncome * EstimatedWithholdingRate
	}

	obligations := params.MonthlyDebts + proposedPayment
	residual := monthlyIncome - withholding - obligations - params.ChildcareExpenses

	return residual >= ResidualIncomeThreshold(params.Region, inputs.HouseholdSize)
}

// lowDiscretionaryDebt qualifies when at most 10% of total debts are
// discretionary. Borrowers with no debts at all qualify trivially.
func (e *FactorEvaluator) lowDiscretionaryDebt(totalDebts, necessaryDebts float64) bool {
	if totalDebts <= 0 {
		return true
	}
	discretionary := totalDebts - necessaryDebts
	if discretionary < 0 {
		discretionary = 0
	}
	return discretionary/totalDebts <= DiscretionaryDebtLimit
}

// reserveMonths converts liquid reserves to months of the proposed payment.
func reserveMonths(reserves, proposedPayment float64) float64 {
	if proposedPayment <= 0 {
		return 0
	}
	return reserves / proposedPayment
}
