package service

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/firsthome/affordability-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// MIP rate table – static tiered lookup for FHA mortgage-insurance premiums
// ---------------------------------------------------------------------------

// ComputeMIP derives the upfront and monthly mortgage-insurance premiums for
// a loan. The upfront premium is a flat percentage of the loan amount across
// all terms and LTV tiers; the monthly premium rate depends on the loan term,
// whether the amount exceeds the national threshold, and the LTV band.
//
// Inputs are assumed positive; validation happens upstream.
func ComputeMIP(loanAmount, homePrice float64, termYears int) model.MIPRates {
	ltv := loanAmount / homePrice * 100

	annualRate := annualMIPRate(loanAmount, ltv, termYears)

	upfront := roundCents(loanAmount * UpfrontMIPRate)
	monthly := roundCents(loanAmount * annualRate / 12)

	return model.MIPRates{
		UpfrontMIP: decimal.NewFromFloat(upfront),
		MonthlyMIP: decimal.NewFromFloat(monthly),
		AnnualRate: annualRate,
	}
}

// annualMIPRate selects the annual premium rate from the tiered schedule.
func annualMIPRate(loanAmount, ltv float64, termYears int) float64 {
	if termYears <= 15 {
		if loanAmount <= MIPLoanThreshold {
			if ltv <= 90 {
				return 0.0015
			}
			return 0.0040
		}
		switch {
		case ltv <= 78:
			return 0.0015
		case ltv <= 90:
			return 0.0040
		default:
			return 0.0065
		}
	}

	if loanAmount <= MIPLoanThreshold {
		if ltv <= 95 {
			return 0.0050
		}
		return 0.0055
	}
	if ltv <= 95 {
		return 0.0070
	}
	return 0.0075
}

// roundCents rounds to two decimal places.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// roundDollars rounds to the nearest whole dollar.
func roundDollars(v float64) float64 {
	return math.Round(v)
}
