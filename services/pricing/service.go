package pricing

import (
	"fmt"

	"nestcare/models"
)

// CalculatePricing resolves the base rate, prices add-ons and assembles the
// itemized result. It never falls back to a guessed price: any gap in the
// request or the rate card surfaces as a typed error.
func (s *DefaultPricingService) CalculatePricing(req models.BookingRequest) (*models.PricingResult, error) {
	rr, err := s.resolve(req)
	if err != nil {
		return nil, err
	}
	addOnTotal, addOnLines, err := s.PriceAddOns(req)
	if err != nil {
		return nil, err
	}

	breakdown := make([]models.BreakdownLine, 0, 1+len(addOnLines))
	switch {
	case rr.isHourly:
		breakdown = append(breakdown, models.BreakdownLine{
			Label:  fmt.Sprintf("%s care: %.0f/hr x %.1f hr", req.ShortTermSubType, rr.effRate, rr.hours),
			Amount: rr.base,
		})
	case req.BookingCategory == models.CategoryLongTerm:
		breakdown = append(breakdown, models.BreakdownLine{
			Label:  fmt.Sprintf("monthly base (%s, %s)", req.HomeSize, req.LivingArrangement),
			Amount: rr.base,
		})
	default:
		breakdown = append(breakdown, models.BreakdownLine{
			Label:  fmt.Sprintf("temporary support: %.0f/day x %d days", s.Rates.DayRate, rr.days),
			Amount: rr.base,
		})
	}
	breakdown = append(breakdown, addOnLines...)

	subtotal := rr.base + addOnTotal
	return &models.PricingResult{
		BaseRate:   rr.base,
		AddOnTotal: addOnTotal,
		Subtotal:   subtotal,
		Total:      subtotal,
		IsHourly:   rr.isHourly,
		Breakdown:  breakdown,
	}, nil
}
