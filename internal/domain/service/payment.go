package service

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/firsthome/affordability-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// PITI payment calculator
// ---------------------------------------------------------------------------

// ComputePITI composes the full monthly housing payment: amortised principal
// and interest, property tax, homeowner's insurance, and the monthly MIP.
//
// When monthlyTax or monthlyInsurance are zero (the external estimators have
// not produced a value yet), flat annual-rate fallbacks based on home price
// are used instead. P&I, tax, and insurance are rounded to whole dollars; the
// MIP component keeps cents.
func ComputePITI(
	loanAmount, homePrice, annualRate, monthlyTax, monthlyInsurance float64,
	termYears int,
) model.PITIBreakdown {
	pi := monthlyPrincipalAndInterest(loanAmount, annualRate, termYears)

	if monthlyTax <= 0 {
		monthlyTax = homePrice * DefaultPropertyTaxRate / 12
	}
	if monthlyInsurance <= 0 {
		monthlyInsurance = homePrice * DefaultInsuranceRate / 12
	}

	mip := ComputeMIP(loanAmount, homePrice, termYears)

	pi = roundDollars(pi)
	monthlyTax = roundDollars(monthlyTax)
	monthlyInsurance = roundDollars(monthlyInsurance)
	mipMonthly, _ := mip.MonthlyMIP.Float64()

	total := pi + monthlyTax + monthlyInsurance + mipMonthly

	return model.PITIBreakdown{
		PrincipalAndInterest: decimal.NewFromFloat(pi),
		PropertyTax:          decimal.NewFromFloat(monthlyTax),
		Insurance:            decimal.NewFromFloat(monthlyInsurance),
		MonthlyMIP:           mip.MonthlyMIP,
		Total:                decimal.NewFromFloat(roundCents(total)),
	}
}

// monthlyPrincipalAndInterest applies the standard amortisation formula
// P * r(1+r)^n / ((1+r)^n - 1) with r the monthly rate and n the number of
// monthly periods.
func monthlyPrincipalAndInterest(principal, annualRate float64, termYears int) float64 {
	n := float64(termYears * 12)
	if n <= 0 || principal <= 0 {
		return 0
	}

	r := annualRate / 100 / 12
	if r == 0 {
		return principal / n
	}

	factor := math.Pow(1+r, n)
	return principal * r * factor / (factor - 1)
}
