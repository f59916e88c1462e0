package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// FactorCategory – immutable value object
// ---------------------------------------------------------------------------

// FactorCategory groups compensating factors by the kind of borrower
// strength they evidence.
type FactorCategory struct {
	value string
}

const (
	factorCategoryLiquidity = "LIQUIDITY"
	factorCategoryStability = "STABILITY"
	factorCategoryCredit    = "CREDIT"
	factorCategoryEquity    = "EQUITY"
)

var (
	FactorCategoryLiquidity = FactorCategory{value: factorCategoryLiquidity}
	FactorCategoryStability = FactorCategory{value: factorCategoryStability}
	FactorCategoryCredit    = FactorCategory{value: factorCategoryCredit}
	FactorCategoryEquity    = FactorCategory{value: factorCategoryEquity}
)

var validFactorCategories = map[string]FactorCategory{
	factorCategoryLiquidity: FactorCategoryLiquidity,
	factorCategoryStability: FactorCategoryStability,
	factorCategoryCredit:    FactorCategoryCredit,
	factorCategoryEquity:    FactorCategoryEquity,
}

// NewFactorCategory creates a FactorCategory from a raw string.
func NewFactorCategory(s string) (FactorCategory, error) {
	v, ok := validFactorCategories[s]
	if !ok {
		return FactorCategory{}, fmt.Errorf("invalid factor category: %q", s)
	}
	return v, nil
}

// String returns the string representation of the category.
func (c FactorCategory) String() string { return c.value }

// IsZero returns true when not initialised.
func (c FactorCategory) IsZero() bool { return c.value == "" }

// Equal returns true when both categories match.
func (c FactorCategory) Equal(other FactorCategory) bool { return c.value == other.value }
