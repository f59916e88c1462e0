package model

import (
	"errors"

	"github.com/firsthome/affordability-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Borrowing-power engine inputs
// ---------------------------------------------------------------------------

// LoanParameters carries the borrower and loan inputs for a single
// borrowing-power calculation. The struct is treated as immutable for the
// duration of one calculation; the engine never writes to it.
//
// Monetary figures are plain float64 dollars: the engine is pure rate math
// and converts to decimal only when constructing the final result.
type LoanParameters struct {
	// AnnualIncome is the borrower's gross annual income.
	AnnualIncome float64
	// MonthlyDebts is the sum of all recurring monthly debt obligations,
	// excluding the proposed housing payment.
	MonthlyDebts float64
	// FICOScore is the representative credit score.
	FICOScore int
	// DownPaymentPercent is the requested down payment as a percentage of
	// the home price (3.5 means 3.5%).
	DownPaymentPercent float64
	// InterestRate is the benchmark annual interest rate as a percentage
	// (7.0 means 7.0%), supplied by the rate-acquisition collaborator.
	InterestRate float64
	// TermYears is the loan term. Zero defaults to 30.
	TermYears int

	// LoanAmount, when positive, caps the result at an explicitly requested
	// loan amount instead of the solved maximum.
	LoanAmount float64
	// MonthlyPropertyTax is the externally estimated monthly property tax.
	// Zero means "not supplied": the payment calculator falls back to a
	// flat annual percentage of home price.
	MonthlyPropertyTax float64
	// MonthlyInsurance is the externally estimated monthly homeowner's
	// insurance, with the same fallback convention as MonthlyPropertyTax.
	MonthlyInsurance float64

	// UseAUS enables the automated-underwriting heuristic, which can only
	// tighten the additive compensating-factor ceiling.
	UseAUS bool
	// PositiveRentHistory records 12+ months of clean verified rent payments.
	PositiveRentHistory bool
	// Region selects the residual-income threshold table. Zero value falls
	// back to the national formula.
	Region valueobject.Region

	// MonthlyTaxWithholding overrides the estimated payroll withholding used
	// by the residual-income test. Zero means "estimate from gross income".
	MonthlyTaxWithholding float64
	// ChildcareExpenses is the monthly childcare cost used by the
	// residual-income test.
	ChildcareExpenses float64
}

// CompensatingFactorInputs carries the secondary borrower data consumed only
// by the compensating-factor evaluator.
type CompensatingFactorInputs struct {
	// NecessaryMonthlyDebts is the non-discretionary portion of MonthlyDebts
	// (minimum payments the borrower cannot shed).
	NecessaryMonthlyDebts float64
	// CashReserves is liquid cash available after closing.
	CashReserves float64
	// CurrentHousingPayment is the borrower's pre-purchase monthly housing
	// cost (rent or existing mortgage payment).
	CurrentHousingPayment float64
	// HouseholdSize is the number of household members, clamped to [1, 8]
	// by the residual-income lookup.
	HouseholdSize int
}

// Validate checks the caller contract: required numeric fields must be
// present and sane. Business-rule violations (low FICO, thin down payment)
// are NOT errors; they surface in the calculation result instead.
func (p LoanParameters) Validate() error {
	if p.AnnualIncome <= 0 {
		return errors.New("annual income must be positive")
	}
	if p.MonthlyDebts < 0 {
		return errors.New("monthly debts cannot be negative")
	}
	if p.FICOScore < 300 || p.FICOScore > 850 {
		return errors.New("FICO score must be within [300, 850]")
	}
	if p.DownPaymentPercent < 0 || p.DownPaymentPercent >= 100 {
		return errors.New("down payment percent must be within [0, 100)")
	}
	if p.InterestRate <= 0 {
		return errors.New("interest rate must be positive")
	}
	if p.TermYears < 0 {
		return errors.New("term years cannot be negative")
	}
	return nil
}

// Term returns the loan term in years, defaulting to 30 when unset.
func (p LoanParameters) Term() int {
	if p.TermYears == 0 {
		return 30
	}
	return p.TermYears
}

// MonthlyIncome returns the gross monthly income.
func (p LoanParameters) MonthlyIncome() float64 {
	return p.AnnualIncome / 12
}
