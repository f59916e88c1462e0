package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firsthome/affordability-service/internal/domain/model"
	"github.com/firsthome/affordability-service/internal/domain/service"
	"github.com/firsthome/affordability-service/internal/domain/valueobject"
)

// baselineParams is a median first-time borrower whose household size keeps
// every compensating factor inactive, so the ceiling settles at the base DTI.
func baselineParams() (model.LoanParameters, model.CompensatingFactorInputs) {
	params := model.LoanParameters{
		AnnualIncome:       75_000,
		MonthlyDebts:       300,
		FICOScore:          680,
		DownPaymentPercent: 3.5,
		InterestRate:       7.0,
		TermYears:          30,
	}
	inputs := model.CompensatingFactorInputs{
		HouseholdSize: 4,
	}
	return params, inputs
}

func TestBorrowingPowerEngine_Baseline(t *testing.T) {
	engine := service.NewBorrowingPowerEngine()
	params, inputs := baselineParams()

	result, err := engine.Solve(params, inputs)

	require.NoError(t, err)
	assert.True(t, result.MeetsMinimumRequirements)
	assert.True(t, result.Converged)
	assert.Equal(t, 1, result.Iterations)
	assert.Equal(t, service.BaseDTI, result.DTI.AllowedDTI)
	assert.Empty(t, result.DTI.ActiveFactors)

	loan, _ := result.MaxLoanAmount.Float64()
	assert.InDelta(t, 337_715, loan, 100)

	price, _ := result.MaxHomePrice.Float64()
	assert.InDelta(t, 349_964, price, 100)

	down, _ := result.DownPaymentAmount.Float64()
	assert.InDelta(t, price-loan, down, 1)

	assert.True(t, result.Status.Equal(valueobject.ConvergenceStatusConverged))
	assert.True(t, result.Status.IsTerminal())
}

func TestBorrowingPowerEngine_OscillatingFactorHitsIterationCap(t *testing.T) {
	engine := service.NewBorrowingPowerEngine()
	params, inputs := baselineParams()

	// Reserves sit right at six months of the base-ceiling payment: the
	// cash-reserves factor fires at 0.43, lifting the ceiling to 0.46, where
	// the larger payment switches it off again. The ceiling flips between the
	// two values every pass and never stabilises.
	inputs.CashReserves = 17_100
	inputs.HouseholdSize = 8

	result, err := engine.Solve(params, inputs)

	require.NoError(t, err)
	assert.False(t, result.Converged)
	assert.Equal(t, service.MaxIterations, result.Iterations)
	assert.True(t, result.Status.Equal(valueobject.ConvergenceStatusMaxIterations))
	assert.True(t, result.Status.IsTerminal())

	// The final solver pass still yields a full result at the last ceiling.
	assert.True(t, result.MeetsMinimumRequirements)
	loan, _ := result.MaxLoanAmount.Float64()
	assert.Greater(t, loan, 0.0)
	assert.GreaterOrEqual(t, result.ConvergedDTI, service.BaseDTI)
	assert.LessOrEqual(t, result.ConvergedDTI, service.MaxDTI)

	var warned bool
	for _, w := range result.Warnings {
		if strings.Contains(w, "did not stabilise") {
			warned = true
		}
	}
	assert.True(t, warned, "expected a non-convergence warning, got %v", result.Warnings)
}

func TestBorrowingPowerEngine_StrongProfileStacksFactors(t *testing.T) {
	engine := service.NewBorrowingPowerEngine()
	params := model.LoanParameters{
		AnnualIncome:       100_000,
		MonthlyDebts:       300,
		FICOScore:          760,
		DownPaymentPercent: 10,
		InterestRate:       7.0,
		TermYears:          30,
		Region:             valueobject.RegionSouth,
	}
	inputs := model.CompensatingFactorInputs{
		NecessaryMonthlyDebts: 300,
		CashReserves:          50_000,
		CurrentHousingPayment: 5200,
		HouseholdSize:         1,
	}

	result, err := engine.Solve(params, inputs)

	require.NoError(t, err)
	assert.True(t, result.Converged)
	assert.Equal(t, 2, result.Iterations)
	assert.Len(t, result.DTI.ActiveFactors, 6)
	assert.InDelta(t, 0.56, result.DTI.AllowedDTI, 1e-9)

	loan, _ := result.MaxLoanAmount.Float64()
	assert.InDelta(t, 617_666, loan, 300)

	// The stacked ceiling buys materially more house than the baseline.
	baseline, _ := baselineParams()
	baseline.AnnualIncome = 100_000
	baseResult, err := engine.Solve(baseline, model.CompensatingFactorInputs{HouseholdSize: 8})
	require.NoError(t, err)
	baseLoan, _ := baseResult.MaxLoanAmount.Float64()
	assert.Greater(t, loan, baseLoan)
}

func TestBorrowingPowerEngine_AUSTightensCeiling(t *testing.T) {
	engine := service.NewBorrowingPowerEngine()
	params, inputs := baselineParams()
	params.UseAUS = true
	params.FICOScore = 760
	inputs.HouseholdSize = 6

	result, err := engine.Solve(params, inputs)

	require.NoError(t, err)
	assert.True(t, result.Converged)
	assert.Equal(t, 1, result.DTI.AUSScore)
	assert.Equal(t, service.AUSDefaultCeiling, result.DTI.AUSCeiling)
	assert.InDelta(t, 0.45, result.DTI.AllowedDTI, 1e-9)
}

func TestBorrowingPowerEngine_IneligibleFICO(t *testing.T) {
	engine := service.NewBorrowingPowerEngine()
	params, inputs := baselineParams()
	params.FICOScore = 499

	result, err := engine.Solve(params, inputs)

	require.NoError(t, err)
	assert.False(t, result.MeetsMinimumRequirements)
	assert.True(t, result.MaxLoanAmount.IsZero())
	assert.True(t, result.MaxHomePrice.IsZero())
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "below the FHA minimum")
}

func TestBorrowingPowerEngine_LowFICOWarnsOnThinDownPayment(t *testing.T) {
	engine := service.NewBorrowingPowerEngine()
	params, inputs := baselineParams()
	params.FICOScore = 550
	params.DownPaymentPercent = 5

	result, err := engine.Solve(params, inputs)

	require.NoError(t, err)
	assert.True(t, result.MeetsMinimumRequirements)
	assert.False(t, result.MaxLoanAmount.IsZero())
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "requires a down payment of at least 10.0%")
}

func TestBorrowingPowerEngine_DebtsExhaustCapacity(t *testing.T) {
	engine := service.NewBorrowingPowerEngine()
	params, inputs := baselineParams()
	params.AnnualIncome = 60_000
	params.MonthlyDebts = 5000

	result, err := engine.Solve(params, inputs)

	require.NoError(t, err)
	assert.True(t, result.MeetsMinimumRequirements)
	assert.True(t, result.MaxLoanAmount.IsZero())
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "no qualifying loan amount")
}

func TestBorrowingPowerEngine_ExplicitLoanAmount(t *testing.T) {
	engine := service.NewBorrowingPowerEngine()

	t.Run("requested amount below the maximum caps the result", func(t *testing.T) {
		params, inputs := baselineParams()
		params.LoanAmount = 200_000

		result, err := engine.Solve(params, inputs)

		require.NoError(t, err)
		loan, _ := result.MaxLoanAmount.Float64()
		assert.Equal(t, 200_000.0, loan)

		price, _ := result.MaxHomePrice.Float64()
		assert.InDelta(t, 207_254, price, 5)
	})

	t.Run("requested amount above the maximum warns", func(t *testing.T) {
		params, inputs := baselineParams()
		params.LoanAmount = 900_000

		result, err := engine.Solve(params, inputs)

		require.NoError(t, err)
		loan, _ := result.MaxLoanAmount.Float64()
		assert.InDelta(t, 337_715, loan, 100)

		found := false
		for _, w := range result.Warnings {
			if strings.Contains(w, "exceeds the calculated maximum") {
				found = true
			}
		}
		assert.True(t, found, "expected a requested-amount warning, got %v", result.Warnings)
	})
}

func TestBorrowingPowerEngine_ZeroDownPaymentUsesProgramMinimum(t *testing.T) {
	engine := service.NewBorrowingPowerEngine()
	params, inputs := baselineParams()
	params.DownPaymentPercent = 0

	result, err := engine.Solve(params, inputs)

	require.NoError(t, err)
	// LTV is pinned at 96.5% rather than 100%.
	assert.InDelta(t, 96.5, result.LTVPercent, 0.1)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "below the FHA minimum of 3.5%")
}

func TestBorrowingPowerEngine_Idempotent(t *testing.T) {
	engine := service.NewBorrowingPowerEngine()
	params, inputs := baselineParams()

	first, err := engine.Solve(params, inputs)
	require.NoError(t, err)
	second, err := engine.Solve(params, inputs)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBorrowingPowerEngine_IterationCapHolds(t *testing.T) {
	engine := service.NewBorrowingPowerEngine()

	// Sweep a grid of profiles; the driver must always terminate inside the
	// iteration cap without error.
	for _, income := range []float64{30_000, 75_000, 150_000, 400_000} {
		for _, fico := range []int{520, 620, 700, 800} {
			for _, down := range []float64{3.5, 10, 25} {
				params := model.LoanParameters{
					AnnualIncome:       income,
					MonthlyDebts:       400,
					FICOScore:          fico,
					DownPaymentPercent: down,
					InterestRate:       6.5,
				}
				inputs := model.CompensatingFactorInputs{
					CashReserves:  20_000,
					HouseholdSize: 2,
				}

				result, err := engine.Solve(params, inputs)

				require.NoError(t, err)
				assert.LessOrEqual(t, result.Iterations, service.MaxIterations)
				assert.True(t, result.Status.IsTerminal())
				assert.GreaterOrEqual(t, result.DTI.AllowedDTI, service.BaseDTI)
				assert.LessOrEqual(t, result.DTI.AllowedDTI, service.MaxDTI)
			}
		}
	}
}

func TestBorrowingPowerEngine_InvalidParameters(t *testing.T) {
	engine := service.NewBorrowingPowerEngine()

	tests := []struct {
		name   string
		mutate func(*model.LoanParameters)
	}{
		{"zero income", func(p *model.LoanParameters) { p.AnnualIncome = 0 }},
		{"negative debts", func(p *model.LoanParameters) { p.MonthlyDebts = -1 }},
		{"FICO out of range", func(p *model.LoanParameters) { p.FICOScore = 290 }},
		{"down payment at 100", func(p *model.LoanParameters) { p.DownPaymentPercent = 100 }},
		{"zero interest rate", func(p *model.LoanParameters) { p.InterestRate = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, inputs := baselineParams()
			tt.mutate(&params)

			_, err := engine.Solve(params, inputs)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid loan parameters")
		})
	}
}
