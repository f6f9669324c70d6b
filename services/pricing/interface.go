package pricing

import "nestcare/models"

// PricingService is the booking financials calculator exposed to the rest of
// the application. All methods are pure: identical inputs yield identical
// outputs, no state is kept between calls, and concurrent use needs no
// coordination.
type PricingService interface {
	// CalculatePricing resolves the base rate, prices add-ons, and assembles
	// the itemized total for a booking request.
	CalculatePricing(req models.BookingRequest) (*models.PricingResult, error)

	// CalculateFinancialSplit divides a booking total between the platform
	// and the nanny. For long-term bookings, monthlyBaseRate carries the
	// rate used for tier lookup and the placement fee; pass 0 to fall back
	// to the total.
	CalculateFinancialSplit(total float64, category models.BookingCategory, monthlyBaseRate float64) (*models.FinancialSplit, error)
}

// DefaultPricingService implements PricingService over a fixed rate card.
type DefaultPricingService struct {
	Rates RateConfig
}

// NewDefaultPricingService returns a calculator using the given rate card.
func NewDefaultPricingService(rates RateConfig) *DefaultPricingService {
	return &DefaultPricingService{Rates: rates}
}
