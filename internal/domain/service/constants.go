package service

// FHA program constants used by the borrowing-power engine. Rates are
// expressed as fractions (0.43 = 43%) unless the name says Percent.
const (
	// BaseDTI is the standard back-end debt-to-income ceiling.
	BaseDTI = 0.43
	// MaxDTI is the absolute program ceiling regardless of factors.
	MaxDTI = 0.5699
	// FactorIncrementCap bounds the sum of compensating-factor increments.
	FactorIncrementCap = 0.1399

	// ConvergenceTolerance is the fixed-point stop condition on the ceiling.
	ConvergenceTolerance = 0.001
	// MaxIterations caps the fixed-point loop.
	MaxIterations = 10

	// UpfrontMIPRate applies to every FHA loan regardless of term or LTV.
	UpfrontMIPRate = 0.0175
	// MIPLoanThreshold is the national loan-amount threshold that splits the
	// annual MIP rate schedule.
	MIPLoanThreshold = 726_200.0
	// HighCostAreaCeiling is the national high-cost-area loan limit; loans
	// above it draw a warning, not a failure.
	HighCostAreaCeiling = 1_149_825.0

	// Estimated annual MIP rates folded into the max-loan inversion.
	EstimatedMIPRateStandard = 0.0050
	EstimatedMIPRateJumbo    = 0.0070

	// Flat fallbacks when the external tax/insurance estimates are absent,
	// as annual fractions of home price.
	DefaultPropertyTaxRate = 0.012
	DefaultInsuranceRate   = 0.003

	// Eligibility gates.
	FICOFloor            = 500
	FICOStandardMin      = 580
	MinDownPaymentPct    = 3.5
	LowFICODownPct       = 10.0
	HighCreditScoreFICO  = 740
	LargeDownPaymentPct  = 10.0
	MaxStandardLTVPct    = 96.5

	// Compensating-factor qualification thresholds.
	ReserveMonthsRequired     = 6.0
	ReserveMonthsPartial      = 3.0
	PaymentShockLimit         = 0.05
	DiscretionaryDebtLimit    = 0.10
	// EstimatedWithholdingRate approximates payroll withholding for the
	// residual-income test when no override is supplied.
	EstimatedWithholdingRate = 0.25

	// National residual-income fallback formula: base for the first
	// household member plus a per-additional-member increment.
	ResidualBaseAmount      = 1_000.0
	ResidualPerMemberAmount = 350.0
)

// AUS heuristic tiers: the weighted signal score maps to a ceiling that can
// only tighten the additive result.
const (
	AUSDefaultCeiling  = 0.45
	AUSMidCeiling      = 0.50
	AUSMidScore        = 3
	AUSTopScore        = 5
)
