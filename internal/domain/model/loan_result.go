package model

import (
	"github.com/shopspring/decimal"

	"github.com/firsthome/affordability-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Borrowing-power engine outputs (immutable value objects)
// ---------------------------------------------------------------------------

// MIPRates holds the mortgage-insurance premiums derived for one calculation.
type MIPRates struct {
	// UpfrontMIP is the one-time premium financed at closing.
	UpfrontMIP decimal.Decimal `json:"upfront_mip"`
	// MonthlyMIP is the recurring monthly premium.
	MonthlyMIP decimal.Decimal `json:"monthly_mip"`
	// AnnualRate is the annual premium rate applied (0.0055 = 0.55%).
	AnnualRate float64 `json:"annual_rate"`
}

// PITIBreakdown decomposes the proposed monthly housing payment.
// Principal & interest, tax, and insurance are rounded to whole dollars;
// the MIP component keeps cents.
type PITIBreakdown struct {
	PrincipalAndInterest decimal.Decimal `json:"principal_and_interest"`
	PropertyTax          decimal.Decimal `json:"property_tax"`
	Insurance            decimal.Decimal `json:"insurance"`
	MonthlyMIP           decimal.Decimal `json:"monthly_mip"`
	Total                decimal.Decimal `json:"total"`
}

// CompensatingFactor is a named DTI-expansion rule realised for one
// calculation run. Factors are never persisted as templates.
type CompensatingFactor struct {
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	Category    valueobject.FactorCategory `json:"-"`
	Increment   float64                    `json:"increment"`
	Active      bool                       `json:"active"`
}

// DTICalculationResult is the outcome of one compensating-factor evaluation.
type DTICalculationResult struct {
	// AllowedDTI is the final ceiling: base plus the capped sum of active
	// increments, never above the program maximum, and further tightened by
	// the AUS tier when AUS mode is enabled.
	AllowedDTI float64 `json:"allowed_dti"`
	// ActiveFactors lists the factors that qualified on this run.
	ActiveFactors []CompensatingFactor `json:"active_factors"`
	// AppliedIncrement is the increment actually applied after capping.
	AppliedIncrement float64 `json:"applied_increment"`
	// RemainingIncrement is the unused headroom under the increment cap.
	RemainingIncrement float64 `json:"remaining_increment"`
	// AUSScore is the weighted signal score, populated only in AUS mode.
	AUSScore int `json:"aus_score,omitempty"`
	// AUSCeiling is the ceiling the AUS tier alone would allow, populated
	// only in AUS mode.
	AUSCeiling float64 `json:"aus_ceiling,omitempty"`
}

// EligibilityResult is the outcome of the FICO/down-payment gate.
type EligibilityResult struct {
	IsEligible bool `json:"is_eligible"`
	// MinDownPaymentPercent is the FICO-conditioned minimum down payment.
	MinDownPaymentPercent float64  `json:"min_down_payment_percent"`
	Warnings              []string `json:"warnings"`
}

// FHALoanResult is the terminal artifact of a borrowing-power calculation.
// It is constructed once per call and never mutated afterward.
type FHALoanResult struct {
	// MaxLoanAmount is the largest loan the borrower qualifies for.
	MaxLoanAmount decimal.Decimal `json:"max_loan_amount"`
	// MaxHomePrice is the corresponding purchase price given the down payment.
	MaxHomePrice decimal.Decimal `json:"max_home_price"`
	// DownPaymentAmount is the cash down payment at MaxHomePrice.
	DownPaymentAmount decimal.Decimal `json:"down_payment_amount"`

	Payment PITIBreakdown `json:"payment"`
	MIP     MIPRates      `json:"mip"`

	// DTIPercent is the realised back-end debt-to-income ratio in percent.
	DTIPercent float64 `json:"dti_percent"`
	// LTVPercent is the realised loan-to-value ratio in percent.
	LTVPercent float64 `json:"ltv_percent"`

	DTI DTICalculationResult `json:"dti"`

	// MeetsMinimumRequirements is false only for the hard FICO-floor gate.
	MeetsMinimumRequirements bool     `json:"meets_minimum_requirements"`
	Warnings                 []string `json:"warnings"`

	// Convergence metadata from the fixed-point driver.
	ConvergedDTI float64                       `json:"converged_dti"`
	Iterations   int                           `json:"iterations"`
	Converged    bool                          `json:"converged"`
	Status       valueobject.ConvergenceStatus `json:"-"`
}
