package service

import "github.com/firsthome/affordability-service/internal/domain/model"

// ---------------------------------------------------------------------------
// AUS heuristic – automated-underwriting signal scorer
// ---------------------------------------------------------------------------

// ausScore computes a weighted signal score approximating how an automated
// underwriting system would grade the borrower. Deep reserves and negative
// payment shock carry double weight; the remaining signals contribute one
// point each.
func (e *FactorEvaluator) ausScore(
	params model.LoanParameters,
	inputs model.CompensatingFactorInputs,
	proposedPayment float64,
) int {
	score := 0

	// Reserve depth, graded.
	months := reserveMonths(inputs.CashReserves, proposedPayment)
	switch {
	case months >= ReserveMonthsRequired:
		score += 2
	case months >= ReserveMonthsPartial:
		score++
	}

	// Payment shock, graded: a payment at or below the current one is the
	// strongest stability signal.
	if inputs.CurrentHousingPayment > 0 && proposedPayment > 0 {
		shock := (proposedPayment - inputs.CurrentHousingPayment) / inputs.CurrentHousingPayment
		switch {
		case shock <= 0:
			score += 2
		case shock <= PaymentShockLimit:
			score++
		}
	}

	if params.PositiveRentHistory {
		score++
	}
	if e.residualIncomeQualifies(params, inputs, proposedPayment) {
		score++
	}
	if params.FICOScore >= HighCreditScoreFICO {
		score++
	}
	if params.DownPaymentPercent >= LargeDownPaymentPct {
		score++
	}
	if e.lowDiscretionaryDebt(params.MonthlyDebts, inputs.NecessaryMonthlyDebts) {
		score++
	}

	return score
}

// ausTierCeiling maps the signal score to a DTI ceiling tier.
func ausTierCeiling(score int) float64 {
	switch {
	case score >= AUSTopScore:
		return MaxDTI
	case score >= AUSMidScore:
		return AUSMidCeiling
	default:
		return AUSDefaultCeiling
	}
}
