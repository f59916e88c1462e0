package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firsthome/affordability-service/internal/domain/model"
	"github.com/firsthome/affordability-service/internal/domain/service"
)

// neutralParams builds a borrower that activates none of the factor rules at
// a $3,000 proposed payment: mid FICO, thin down payment, all-discretionary
// debts, and a household large enough to fail the residual test.
func neutralParams() (model.LoanParameters, model.CompensatingFactorInputs) {
	params := model.LoanParameters{
		AnnualIncome:       96_000,
		MonthlyDebts:       500,
		FICOScore:          700,
		DownPaymentPercent: 5,
		InterestRate:       7.0,
	}
	inputs := model.CompensatingFactorInputs{
		HouseholdSize: 8,
	}
	return params, inputs
}

func TestFactorEvaluator_NoActiveFactors(t *testing.T) {
	evaluator := service.NewFactorEvaluator()
	params, inputs := neutralParams()

	result := evaluator.Evaluate(params, inputs, 3000)

	assert.Equal(t, service.BaseDTI, result.AllowedDTI)
	assert.Empty(t, result.ActiveFactors)
	assert.Zero(t, result.AppliedIncrement)
	assert.Equal(t, service.FactorIncrementCap, result.RemainingIncrement)
}

func TestFactorEvaluator_IndividualFactors(t *testing.T) {
	evaluator := service.NewFactorEvaluator()

	t.Run("cash reserves at six months", func(t *testing.T) {
		params, inputs := neutralParams()
		inputs.CashReserves = 18_000 // 6 months of a $3,000 payment

		result := evaluator.Evaluate(params, inputs, 3000)

		assert.InDelta(t, 0.46, result.AllowedDTI, 1e-9)
		require.Len(t, result.ActiveFactors, 1)
		assert.Equal(t, "cash_reserves", result.ActiveFactors[0].Name)
	})

	t.Run("reserves just under six months do not qualify", func(t *testing.T) {
		params, inputs := neutralParams()
		inputs.CashReserves = 17_900

		result := evaluator.Evaluate(params, inputs, 3000)

		assert.Equal(t, service.BaseDTI, result.AllowedDTI)
	})

	t.Run("minimal payment increase", func(t *testing.T) {
		params, inputs := neutralParams()
		inputs.CurrentHousingPayment = 2900 // 3.4% shock

		result := evaluator.Evaluate(params, inputs, 3000)

		assert.InDelta(t, 0.45, result.AllowedDTI, 1e-9)
		require.Len(t, result.ActiveFactors, 1)
		assert.Equal(t, "minimal_payment_increase", result.ActiveFactors[0].Name)
	})

	t.Run("payment shock above five percent disqualifies", func(t *testing.T) {
		params, inputs := neutralParams()
		inputs.CurrentHousingPayment = 2500 // 20% shock

		result := evaluator.Evaluate(params, inputs, 3000)

		assert.Equal(t, service.BaseDTI, result.AllowedDTI)
	})

	t.Run("no current payment disqualifies the shock rule", func(t *testing.T) {
		params, inputs := neutralParams()
		inputs.CurrentHousingPayment = 0

		result := evaluator.Evaluate(params, inputs, 3000)

		assert.Equal(t, service.BaseDTI, result.AllowedDTI)
	})

	t.Run("residual income clears the national threshold", func(t *testing.T) {
		params, inputs := neutralParams()
		inputs.HouseholdSize = 1 // $1,000 threshold vs ~$2,500 residual

		result := evaluator.Evaluate(params, inputs, 3000)

		assert.InDelta(t, 0.45, result.AllowedDTI, 1e-9)
		require.Len(t, result.ActiveFactors, 1)
		assert.Equal(t, "residual_income", result.ActiveFactors[0].Name)
	})

	t.Run("withholding override feeds the residual test", func(t *testing.T) {
		params, inputs := neutralParams()
		inputs.HouseholdSize = 1
		params.MonthlyTaxWithholding = 4600 // residual drops below $1,000

		result := evaluator.Evaluate(params, inputs, 3000)

		assert.Equal(t, service.BaseDTI, result.AllowedDTI)
	})

	t.Run("low discretionary debt", func(t *testing.T) {
		params, inputs := neutralParams()
		inputs.NecessaryMonthlyDebts = 500 // nothing discretionary

		result := evaluator.Evaluate(params, inputs, 3000)

		assert.InDelta(t, 0.45, result.AllowedDTI, 1e-9)
		require.Len(t, result.ActiveFactors, 1)
		assert.Equal(t, "low_discretionary_debt", result.ActiveFactors[0].Name)
	})

	t.Run("no debts at all qualify trivially", func(t *testing.T) {
		params, inputs := neutralParams()
		params.MonthlyDebts = 0

		result := evaluator.Evaluate(params, inputs, 3000)

		require.Len(t, result.ActiveFactors, 1)
		assert.Equal(t, "low_discretionary_debt", result.ActiveFactors[0].Name)
	})

	t.Run("high credit score", func(t *testing.T) {
		params, inputs := neutralParams()
		params.FICOScore = 740

		result := evaluator.Evaluate(params, inputs, 3000)

		require.Len(t, result.ActiveFactors, 1)
		assert.Equal(t, "high_credit_score", result.ActiveFactors[0].Name)
	})

	t.Run("large down payment", func(t *testing.T) {
		params, inputs := neutralParams()
		params.DownPaymentPercent = 10

		result := evaluator.Evaluate(params, inputs, 3000)

		require.Len(t, result.ActiveFactors, 1)
		assert.Equal(t, "large_down_payment", result.ActiveFactors[0].Name)
	})
}

func TestFactorEvaluator_AllFactorsStack(t *testing.T) {
	evaluator := service.NewFactorEvaluator()
	params, inputs := neutralParams()
	params.FICOScore = 760
	params.DownPaymentPercent = 10
	inputs.CashReserves = 18_000
	inputs.CurrentHousingPayment = 2900
	inputs.NecessaryMonthlyDebts = 500
	inputs.HouseholdSize = 1

	result := evaluator.Evaluate(params, inputs, 3000)

	assert.Len(t, result.ActiveFactors, 6)
	assert.InDelta(t, 0.13, result.AppliedIncrement, 1e-9)
	assert.InDelta(t, 0.56, result.AllowedDTI, 1e-9)
	assert.InDelta(t, 0.0099, result.RemainingIncrement, 1e-9)
}

func TestFactorEvaluator_AUSTiers(t *testing.T) {
	evaluator := service.NewFactorEvaluator()

	t.Run("weak profile is capped at the default tier", func(t *testing.T) {
		params, inputs := neutralParams()
		params.UseAUS = true
		params.FICOScore = 760 // one additive factor, one AUS signal

		result := evaluator.Evaluate(params, inputs, 3000)

		assert.Equal(t, 1, result.AUSScore)
		assert.Equal(t, service.AUSDefaultCeiling, result.AUSCeiling)
		assert.InDelta(t, 0.45, result.AllowedDTI, 1e-9)
	})

	t.Run("mid score tightens the additive ceiling to 50 percent", func(t *testing.T) {
		params, inputs := neutralParams()
		params.UseAUS = true
		params.FICOScore = 760
		params.DownPaymentPercent = 10
		inputs.CurrentHousingPayment = 2900 // positive shock within 5%: one point
		inputs.HouseholdSize = 1

		// Four additive factors would allow 0.51; the four-point AUS score
		// caps at 0.50.
		result := evaluator.Evaluate(params, inputs, 3000)

		assert.Equal(t, 4, result.AUSScore)
		assert.Equal(t, service.AUSMidCeiling, result.AUSCeiling)
		assert.InDelta(t, 0.50, result.AllowedDTI, 1e-9)
	})

	t.Run("top score leaves the additive ceiling untouched", func(t *testing.T) {
		params, inputs := neutralParams()
		params.UseAUS = true
		params.FICOScore = 760
		params.DownPaymentPercent = 10
		params.PositiveRentHistory = true
		inputs.CashReserves = 18_000
		inputs.CurrentHousingPayment = 3100 // payment goes down: two points
		inputs.NecessaryMonthlyDebts = 500
		inputs.HouseholdSize = 1

		result := evaluator.Evaluate(params, inputs, 3000)

		assert.GreaterOrEqual(t, result.AUSScore, service.AUSTopScore)
		assert.Equal(t, service.MaxDTI, result.AUSCeiling)
		assert.InDelta(t, 0.56, result.AllowedDTI, 1e-9)
	})

	t.Run("aus disabled leaves no score", func(t *testing.T) {
		params, inputs := neutralParams()
		params.FICOScore = 760

		result := evaluator.Evaluate(params, inputs, 3000)

		assert.Zero(t, result.AUSScore)
		assert.Zero(t, result.AUSCeiling)
	})
}
