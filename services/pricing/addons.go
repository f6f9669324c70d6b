package pricing

import (
	"fmt"

	"nestcare/models"
)

// PriceAddOns computes the incremental cost of the optional services on a
// request. Long-term bookings get flat monthly increments per service. Daily
// (temporary-support) bookings only carry the home-size-tiered housekeeping
// surcharge; any other requested service is rejected. Hourly bookings return
// a descriptive breakdown with a zero total, because their increments are
// already folded into the effective hourly rate by the rate resolver.
func (s *DefaultPricingService) PriceAddOns(req models.BookingRequest) (float64, []models.BreakdownLine, error) {
	switch {
	case req.BookingCategory == models.CategoryLongTerm:
		return s.priceMonthlyAddOns(req)
	case req.ShortTermSubType == models.SubTypeTemporarySupport:
		return s.priceDailyAddOns(req)
	default:
		return s.describeHourlyAddOns(req)
	}
}

func (s *DefaultPricingService) priceMonthlyAddOns(req models.BookingRequest) (float64, []models.BreakdownLine, error) {
	var total float64
	var lines []models.BreakdownLine
	for _, svc := range serviceOrder {
		if !req.HasService(svc) {
			continue
		}
		amount, ok := s.Rates.MonthlyServiceRates[svc]
		if !ok {
			return 0, nil, NewConfigurationError("services", fmt.Sprintf("no monthly rate defined for service %q", svc))
		}
		total += amount
		lines = append(lines, models.BreakdownLine{Label: string(svc), Amount: amount})
	}
	return total, lines, nil
}

func (s *DefaultPricingService) priceDailyAddOns(req models.BookingRequest) (float64, []models.BreakdownLine, error) {
	for _, svc := range req.Services {
		if !s.Rates.DailyAllowedServices[svc] {
			return 0, nil, NewValidationError("services", fmt.Sprintf("service %q is not offered on temporary-support bookings", svc))
		}
	}
	if !req.HasService(models.ServiceLightHousekeeping) {
		return 0, nil, nil
	}
	surcharge, ok := s.Rates.HousekeepingByHomeSize[req.HomeSize]
	if !ok {
		return 0, nil, NewConfigurationError("homeSize", fmt.Sprintf("no housekeeping surcharge defined for home size %q", req.HomeSize))
	}
	line := models.BreakdownLine{
		Label:  fmt.Sprintf("lightHousekeeping (%s)", req.HomeSize),
		Amount: surcharge,
	}
	return surcharge, []models.BreakdownLine{line}, nil
}

// describeHourlyAddOns lists the per-hour increments without amounts; the
// increments are already part of the base rate, so repeating them here would
// double count.
func (s *DefaultPricingService) describeHourlyAddOns(req models.BookingRequest) (float64, []models.BreakdownLine, error) {
	var lines []models.BreakdownLine
	for _, svc := range serviceOrder {
		if !req.HasService(svc) {
			continue
		}
		inc, ok := s.Rates.HourlyServiceRates[svc]
		if !ok {
			return 0, nil, NewConfigurationError("services", fmt.Sprintf("no hourly rate defined for service %q", svc))
		}
		lines = append(lines, models.BreakdownLine{
			Label: fmt.Sprintf("%s: +%.0f/hr (included in hourly rate)", svc, inc),
		})
	}
	return 0, lines, nil
}
