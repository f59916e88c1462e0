package service

import "math"

// ---------------------------------------------------------------------------
// Max-loan solver – annuity inversion with MIP drag
// ---------------------------------------------------------------------------

// MaxLoanAmount solves for the largest principal whose monthly payment fits
// inside the borrower's housing capacity at the given DTI ceiling.
//
// The solve is two inversions of the annuity formula: the first yields a
// principal from the raw capacity, which is only used to pick the estimated
// annual MIP rate tier; the second folds that MIP rate into the per-dollar
// payment so the returned principal already accounts for MIP drag on
// affordability. This is deliberately a one-shot approximation rather than an
// inner iterative solve: it keeps each outer fixed-point iteration cheap and
// deterministic, and the exact post-hoc MIP tier is intentionally not
// re-solved because downstream consumers rely on the resulting numbers.
//
// A non-positive capacity returns 0, signalling "no qualifying loan".
func MaxLoanAmount(annualIncome, dtiCeiling, monthlyDebts, annualRate float64, termYears int) float64 {
	monthlyIncome := annualIncome / 12
	capacity := monthlyIncome*dtiCeiling - monthlyDebts
	if capacity <= 0 {
		return 0
	}

	perDollar := paymentPerDollar(annualRate, termYears)
	if perDollar <= 0 {
		return 0
	}

	// First inversion: principal ignoring MIP, used only for tier selection.
	principal := capacity / perDollar

	mipRate := EstimatedMIPRateStandard
	if principal > MIPLoanThreshold {
		mipRate = EstimatedMIPRateJumbo
	}

	// Second inversion: capacity must cover P&I plus the monthly MIP.
	return capacity / (perDollar + mipRate/12)
}

// paymentPerDollar returns the monthly payment required per dollar of
// principal: r(1+r)^n / ((1+r)^n - 1).
func paymentPerDollar(annualRate float64, termYears int) float64 {
	n := float64(termYears * 12)
	if n <= 0 {
		return 0
	}

	r := annualRate / 100 / 12
	if r == 0 {
		return 1 / n
	}

	factor := math.Pow(1+r, n)
	return r * factor / (factor - 1)
}
