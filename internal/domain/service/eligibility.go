package service

import (
	"fmt"

	"github.com/firsthome/affordability-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Eligibility validator – FICO / down-payment gating
// ---------------------------------------------------------------------------

// ValidateEligibility applies the FHA credit gates. Only a FICO score below
// the absolute floor is a hard failure; a down payment under the
// FICO-conditioned minimum produces a warning and the calculation proceeds.
func ValidateEligibility(fico int, downPaymentPercent float64) model.EligibilityResult {
	if fico < FICOFloor {
		return model.EligibilityResult{
			IsEligible:            false,
			MinDownPaymentPercent: LowFICODownPct,
			Warnings: []string{
				fmt.Sprintf("FICO score %d is below the FHA minimum of %d; no FHA loan is available", fico, FICOFloor),
			},
		}
	}

	if fico < FICOStandardMin {
		result := model.EligibilityResult{
			IsEligible:            true,
			MinDownPaymentPercent: LowFICODownPct,
		}
		if downPaymentPercent < LowFICODownPct {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"FICO score %d requires a down payment of at least %.1f%%; %.1f%% supplied",
				fico, LowFICODownPct, downPaymentPercent,
			))
		}
		return result
	}

	result := model.EligibilityResult{
		IsEligible:            true,
		MinDownPaymentPercent: MinDownPaymentPct,
	}
	if downPaymentPercent < MinDownPaymentPct {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"down payment %.1f%% is below the FHA minimum of %.1f%%",
			downPaymentPercent, MinDownPaymentPct,
		))
	}
	return result
}
