package pricing

import (
	"nestcare/config"
	"nestcare/models"
)

// CommissionTier maps a minimum tier basis to a platform percentage.
// Tiers are kept as one ordered table; both long-term and short-term
// bookings resolve their percentage against it.
type CommissionTier struct {
	Min     float64
	Percent int
}

// RateConfig holds every rate table and policy knob the calculator uses.
// Values are plain data so tests can construct their own configurations.
type RateConfig struct {
	// Long-term monthly base rates keyed by home size, then living arrangement.
	LongTermBase map[models.HomeSize]map[models.LivingArrangement]float64

	// Children beyond IncludedChildren add ExtraChildRate each per month.
	IncludedChildren int
	ExtraChildRate   float64

	// Other dependents beyond IncludedDependents add ExtraDependentRate each.
	IncludedDependents int
	ExtraDependentRate float64

	// Hourly base rates per short-term sub-type.
	HourlyBase map[models.ShortTermSubType]float64

	// Per-hour increments for add-on services on hourly bookings.
	HourlyServiceRates map[models.Service]float64

	// Flat monthly increments for add-on services on long-term bookings.
	MonthlyServiceRates map[models.Service]float64

	// Temporary-support day rate and the home-size-tiered housekeeping
	// surcharge added when lightHousekeeping is selected.
	DayRate                float64
	HousekeepingByHomeSize map[models.HomeSize]float64

	// Services a temporary-support booking may carry. Product policy, not a
	// runtime derivation, so it is configurable rather than hard-coded.
	DailyAllowedServices map[models.Service]bool

	// Emergency bookings are billed for at least this many hours.
	EmergencyMinHours float64

	// Commission schedule, ascending by Min.
	CommissionTiers []CommissionTier

	// Placement fee charged once on long-term confirmation, as a percentage
	// of the monthly base rate.
	PlacementFeePercent float64
}

// DefaultRateConfig returns the current product rate card.
func DefaultRateConfig() RateConfig {
	return RateConfig{
		LongTermBase: map[models.HomeSize]map[models.LivingArrangement]float64{
			models.HomePocketPalace:    {models.LiveIn: 4000, models.LiveOut: 5000},
			models.HomeFamilyHub:       {models.LiveIn: 6000, models.LiveOut: 7000},
			models.HomeGrandEstate:     {models.LiveIn: 8000, models.LiveOut: 9000},
			models.HomeMonumentalManor: {models.LiveIn: 10000, models.LiveOut: 11000},
		},
		IncludedChildren:   3,
		ExtraChildRate:     1000,
		IncludedDependents: 2,
		ExtraDependentRate: 500,
		HourlyBase: map[models.ShortTermSubType]float64{
			models.SubTypeEmergency:     80,
			models.SubTypeDateNight:     50,
			models.SubTypeDateDay:       45,
			models.SubTypeSchoolHoliday: 45,
		},
		HourlyServiceRates: map[models.Service]float64{
			models.ServiceCooking:           15,
			models.ServiceSpecialNeeds:      25,
			models.ServiceDrivingSupport:    10,
			models.ServiceLightHousekeeping: 10,
			models.ServicePetCare:           10,
			models.ServiceECDTraining:       20,
			models.ServiceMontessori:        20,
		},
		MonthlyServiceRates: map[models.Service]float64{
			models.ServiceCooking:           800,
			models.ServiceSpecialNeeds:      1500,
			models.ServiceDrivingSupport:    1000,
			models.ServiceLightHousekeeping: 500,
			models.ServicePetCare:           400,
			models.ServiceECDTraining:       1200,
			models.ServiceMontessori:        1500,
		},
		DayRate: 350,
		HousekeepingByHomeSize: map[models.HomeSize]float64{
			models.HomePocketPalace:    300,
			models.HomeFamilyHub:       450,
			models.HomeGrandEstate:     600,
			models.HomeMonumentalManor: 800,
		},
		DailyAllowedServices: map[models.Service]bool{
			models.ServiceLightHousekeeping: true,
		},
		EmergencyMinHours: 5,
		CommissionTiers: []CommissionTier{
			{Min: 0, Percent: 10},
			{Min: 5000, Percent: 15},
			{Min: 8000, Percent: 20},
			{Min: 11000, Percent: 25},
		},
		PlacementFeePercent: 50,
	}
}

// LoadRateConfig returns the default rate card with the operator-tunable
// policy values taken from the application configuration.
func LoadRateConfig() RateConfig {
	rc := DefaultRateConfig()
	if v := config.AppConfig.PlacementFeePercent; v > 0 {
		rc.PlacementFeePercent = float64(v)
	}
	if v := config.AppConfig.EmergencyMinHours; v > 0 {
		rc.EmergencyMinHours = float64(v)
	}
	if allowed := config.TemporarySupportServiceList(); len(allowed) > 0 {
		rc.DailyAllowedServices = make(map[models.Service]bool, len(allowed))
		for _, s := range allowed {
			rc.DailyAllowedServices[models.Service(s)] = true
		}
	}
	return rc
}

// serviceOrder fixes the iteration order of add-on services so breakdowns
// are deterministic.
var serviceOrder = []models.Service{
	models.ServiceCooking,
	models.ServiceSpecialNeeds,
	models.ServiceDrivingSupport,
	models.ServiceLightHousekeeping,
	models.ServicePetCare,
	models.ServiceECDTraining,
	models.ServiceMontessori,
}
