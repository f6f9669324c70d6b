package pricing

import (
	"fmt"
	"math"

	"nestcare/models"
)

// roundHalfUp rounds to the smallest currency unit, halves away from zero.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// commissionPercent resolves the platform percentage for a tier basis from
// the single ordered schedule: the entry with the largest Min not exceeding
// the basis wins.
func (s *DefaultPricingService) commissionPercent(basis float64) int {
	percent := 0
	for _, tier := range s.Rates.CommissionTiers {
		if basis >= tier.Min {
			percent = tier.Percent
		}
	}
	return percent
}

// CalculateFinancialSplit divides a booking total between the platform and
// the nanny and computes the long-term placement fee.
//
// Long-term bookings look their commission tier up by the monthly base rate
// when the caller supplies it; short-term bookings tier on the total itself.
// The placement fee applies to long-term bookings only.
func (s *DefaultPricingService) CalculateFinancialSplit(total float64, category models.BookingCategory, monthlyBaseRate float64) (*models.FinancialSplit, error) {
	if total <= 0 {
		return nil, NewValidationError("total", "must be greater than zero")
	}

	var basis float64
	var placementFee float64
	switch category {
	case models.CategoryLongTerm:
		basis = total
		feeBase := total
		if monthlyBaseRate > 0 {
			basis = monthlyBaseRate
			feeBase = monthlyBaseRate
		}
		placementFee = roundHalfUp(feeBase * s.Rates.PlacementFeePercent / 100)
	case models.CategoryShortTerm:
		basis = total
	default:
		return nil, NewConfigurationError("bookingCategory", fmt.Sprintf("unknown booking category %q", category))
	}

	percent := s.commissionPercent(basis)
	commission := roundHalfUp(total * float64(percent) / 100)
	earnings := total - commission

	return &models.FinancialSplit{
		CommissionPercent: percent,
		CommissionAmount:  commission,
		NannyEarnings:     earnings,
		PlacementFee:      placementFee,
		AdminTotalRevenue: commission + placementFee,
	}, nil
}
