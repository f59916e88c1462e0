package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/firsthome/affordability-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// CalculateRequest carries the borrower profile for one affordability
// calculation. Validation tags are enforced by the application layer before
// the engine runs.
type CalculateRequest struct {
	TenantID           string  `json:"tenant_id" validate:"required"`
	AnnualIncome       float64 `json:"annual_income" validate:"required,gt=0"`
	MonthlyDebts       float64 `json:"monthly_debts" validate:"gte=0"`
	FICOScore          int     `json:"fico_score" validate:"required,gte=300,lte=850"`
	DownPaymentPercent float64 `json:"down_payment_percent" validate:"gte=0,lt=100"`
	TermYears          int     `json:"term_years" validate:"gte=0,lte=40"`

	// InterestRate overrides the rate provider when positive; zero means
	// "use the current benchmark rate".
	InterestRate float64 `json:"interest_rate" validate:"gte=0"`

	LoanAmount         float64 `json:"loan_amount" validate:"gte=0"`
	MonthlyPropertyTax float64 `json:"monthly_property_tax" validate:"gte=0"`
	MonthlyInsurance   float64 `json:"monthly_insurance" validate:"gte=0"`

	UseAUS              bool   `json:"use_aus"`
	PositiveRentHistory bool   `json:"positive_rent_history"`
	Region              string `json:"region" validate:"omitempty,oneof=NORTHEAST MIDWEST SOUTH WEST northeast midwest south west"`

	MonthlyTaxWithholding float64 `json:"monthly_tax_withholding" validate:"gte=0"`
	ChildcareExpenses     float64 `json:"childcare_expenses" validate:"gte=0"`

	NecessaryMonthlyDebts float64 `json:"necessary_monthly_debts" validate:"gte=0"`
	CashReserves          float64 `json:"cash_reserves" validate:"gte=0"`
	CurrentHousingPayment float64 `json:"current_housing_payment" validate:"gte=0"`
	HouseholdSize         int     `json:"household_size" validate:"gte=0,lte=20"`
}

// SaveScenarioRequest persists a named calculation for later comparison.
type SaveScenarioRequest struct {
	CalculateRequest
	UserID string `json:"user_id" validate:"required"`
	Name   string `json:"name" validate:"required,max=120"`
}

// GetScenarioRequest identifies a stored scenario.
type GetScenarioRequest struct {
	TenantID   string `json:"tenant_id" validate:"required"`
	ScenarioID string `json:"scenario_id" validate:"required"`
}

// ListScenariosRequest identifies a user's stored scenarios.
type ListScenariosRequest struct {
	TenantID string `json:"tenant_id" validate:"required"`
	UserID   string `json:"user_id" validate:"required"`
}

// DeleteScenarioRequest identifies a stored scenario to remove.
type DeleteScenarioRequest struct {
	TenantID   string `json:"tenant_id" validate:"required"`
	ScenarioID string `json:"scenario_id" validate:"required"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// CalculateResponse wraps the engine result with the inputs that external
// collaborators resolved for the run.
type CalculateResponse struct {
	Result model.FHALoanResult `json:"result"`
	// AppliedRate is the benchmark annual rate actually used, in percent.
	AppliedRate float64 `json:"applied_rate"`
	// EstimatedMonthlyTax and EstimatedMonthlyInsurance echo the estimator
	// outputs fed into the engine, when any were resolved.
	EstimatedMonthlyTax       decimal.Decimal `json:"estimated_monthly_tax"`
	EstimatedMonthlyInsurance decimal.Decimal `json:"estimated_monthly_insurance"`
}

// ScenarioResponse is the external representation of a stored scenario.
type ScenarioResponse struct {
	ID        string              `json:"id"`
	TenantID  string              `json:"tenant_id"`
	UserID    string              `json:"user_id"`
	Name      string              `json:"name"`
	Result    model.FHALoanResult `json:"result"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}
