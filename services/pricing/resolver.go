package pricing

import (
	"fmt"

	"nestcare/models"
)

// resolvedRate carries the rate resolver's intermediate values so the
// breakdown assembly does not have to re-derive them.
type resolvedRate struct {
	base     float64
	isHourly bool
	hours    float64 // effective billed hours (hourly sub-types only)
	effRate  float64 // hourly rate including add-on increments
	days     int     // selected dates (daily sub-types only)
}

// ResolveBaseRate determines the base rate for a booking request.
func (s *DefaultPricingService) ResolveBaseRate(req models.BookingRequest) (float64, error) {
	rr, err := s.resolve(req)
	if err != nil {
		return 0, err
	}
	return rr.base, nil
}

func (s *DefaultPricingService) resolve(req models.BookingRequest) (*resolvedRate, error) {
	switch req.BookingCategory {
	case models.CategoryLongTerm:
		return s.resolveLongTerm(req)
	case models.CategoryShortTerm:
		switch req.ShortTermSubType {
		case models.SubTypeEmergency, models.SubTypeDateNight, models.SubTypeDateDay, models.SubTypeSchoolHoliday:
			return s.resolveHourly(req)
		case models.SubTypeTemporarySupport:
			return s.resolveDaily(req)
		default:
			return nil, NewConfigurationError("shortTermSubType", fmt.Sprintf("no rates defined for sub-type %q", req.ShortTermSubType))
		}
	default:
		return nil, NewConfigurationError("bookingCategory", fmt.Sprintf("unknown booking category %q", req.BookingCategory))
	}
}

// resolveLongTerm looks up the monthly base rate by home size and living
// arrangement, then adds the extra-child and extra-dependent surcharges.
func (s *DefaultPricingService) resolveLongTerm(req models.BookingRequest) (*resolvedRate, error) {
	byArrangement, ok := s.Rates.LongTermBase[req.HomeSize]
	if !ok {
		return nil, NewConfigurationError("homeSize", fmt.Sprintf("no long-term rates defined for home size %q", req.HomeSize))
	}
	if req.LivingArrangement == "" {
		return nil, NewValidationError("livingArrangement", "required for long-term bookings")
	}
	base, ok := byArrangement[req.LivingArrangement]
	if !ok {
		return nil, NewConfigurationError("livingArrangement", fmt.Sprintf("no rate defined for %q / %q", req.HomeSize, req.LivingArrangement))
	}
	if req.NumberOfChildren < 0 || req.OtherDependents < 0 {
		return nil, NewValidationError("dependents", "child and dependent counts must not be negative")
	}
	if extra := req.NumberOfChildren - s.Rates.IncludedChildren; extra > 0 {
		base += float64(extra) * s.Rates.ExtraChildRate
	}
	if extra := req.OtherDependents - s.Rates.IncludedDependents; extra > 0 {
		base += float64(extra) * s.Rates.ExtraDependentRate
	}
	return &resolvedRate{base: base}, nil
}

// resolveHourly prices emergency, date-night, date-day and school-holiday
// bookings: an hourly rate per sub-type plus per-hour service increments,
// multiplied by the hours summed from all selected time slots. Emergency
// bookings bill at least EmergencyMinHours once any dates exist; a request
// with no dates is rejected rather than floored.
func (s *DefaultPricingService) resolveHourly(req models.BookingRequest) (*resolvedRate, error) {
	rate, ok := s.Rates.HourlyBase[req.ShortTermSubType]
	if !ok {
		return nil, NewConfigurationError("shortTermSubType", fmt.Sprintf("no hourly rate defined for sub-type %q", req.ShortTermSubType))
	}
	if len(req.SelectedDates) == 0 {
		return nil, NewValidationError("selectedDates", "at least one date with a time slot is required")
	}
	hours, err := sumHours(req.SelectedDates)
	if err != nil {
		return nil, err
	}
	if hours <= 0 {
		return nil, NewValidationError("selectedDates", "selected dates carry no time slots")
	}
	for _, svc := range serviceOrder {
		if !req.HasService(svc) {
			continue
		}
		inc, ok := s.Rates.HourlyServiceRates[svc]
		if !ok {
			return nil, NewConfigurationError("services", fmt.Sprintf("no hourly rate defined for service %q", svc))
		}
		rate += inc
	}
	if req.ShortTermSubType == models.SubTypeEmergency && hours < s.Rates.EmergencyMinHours {
		hours = s.Rates.EmergencyMinHours
	}
	return &resolvedRate{
		base:     rate * hours,
		isHourly: true,
		hours:    hours,
		effRate:  rate,
	}, nil
}

// resolveDaily prices temporary-support bookings at a flat day rate per
// selected date. The housekeeping surcharge is handled by the add-on pricer.
func (s *DefaultPricingService) resolveDaily(req models.BookingRequest) (*resolvedRate, error) {
	if len(req.SelectedDates) == 0 {
		return nil, NewValidationError("selectedDates", "at least one date is required")
	}
	days := len(req.SelectedDates)
	return &resolvedRate{
		base: s.Rates.DayRate * float64(days),
		days: days,
	}, nil
}
