package service

import "github.com/firsthome/affordability-service/internal/domain/valueobject"

// ---------------------------------------------------------------------------
// Residual-income thresholds
// ---------------------------------------------------------------------------

// residualThresholds maps census region and household size (1-8) to the
// minimum monthly residual income required for the compensating factor.
// Figures follow the VA-style regional tables for loans above $80,000.
var residualThresholds = map[valueobject.Region][8]float64{
	valueobject.RegionNortheast: {450, 755, 909, 1025, 1062, 1142, 1222, 1302},
	valueobject.RegionMidwest:   {441, 738, 889, 1003, 1039, 1119, 1199, 1279},
	valueobject.RegionSouth:     {441, 738, 889, 1003, 1039, 1119, 1199, 1279},
	valueobject.RegionWest:      {491, 823, 990, 1117, 1158, 1238, 1318, 1398},
}

// ResidualIncomeThreshold returns the monthly residual income a household
// must retain to qualify for the residual-income compensating factor.
// Household size is clamped to [1, 8]. Without a region tag a simplified
// national formula applies.
func ResidualIncomeThreshold(region valueobject.Region, householdSize int) float64 {
	if householdSize < 1 {
		householdSize = 1
	}
	if householdSize > 8 {
		householdSize = 8
	}

	if region.IsZero() {
		return ResidualBaseAmount + ResidualPerMemberAmount*float64(householdSize-1)
	}

	table, ok := residualThresholds[region]
	if !ok {
		return ResidualBaseAmount + ResidualPerMemberAmount*float64(householdSize-1)
	}
	return table[householdSize-1]
}
