package pricing

import (
	"testing"

	"nestcare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *DefaultPricingService {
	return NewDefaultPricingService(DefaultRateConfig())
}

func longTermRequest(size models.HomeSize, arr models.LivingArrangement, children, dependents int) models.BookingRequest {
	return models.BookingRequest{
		BookingCategory:   models.CategoryLongTerm,
		HomeSize:          size,
		LivingArrangement: arr,
		NumberOfChildren:  children,
		OtherDependents:   dependents,
	}
}

func TestResolveBaseRateLongTermTable(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		size models.HomeSize
		arr  models.LivingArrangement
		want float64
	}{
		{models.HomePocketPalace, models.LiveIn, 4000},
		{models.HomePocketPalace, models.LiveOut, 5000},
		{models.HomeFamilyHub, models.LiveIn, 6000},
		{models.HomeFamilyHub, models.LiveOut, 7000},
		{models.HomeGrandEstate, models.LiveIn, 8000},
		{models.HomeGrandEstate, models.LiveOut, 9000},
		{models.HomeMonumentalManor, models.LiveIn, 10000},
		{models.HomeMonumentalManor, models.LiveOut, 11000},
	}
	for _, tt := range tests {
		got, err := svc.ResolveBaseRate(longTermRequest(tt.size, tt.arr, 2, 0))
		require.NoError(t, err, "%s/%s", tt.size, tt.arr)
		assert.Equal(t, tt.want, got, "%s/%s", tt.size, tt.arr)
	}
}

func TestResolveBaseRateLongTermSurcharges(t *testing.T) {
	svc := newTestService()

	// Three children and two dependents are included in the base rate.
	got, err := svc.ResolveBaseRate(longTermRequest(models.HomePocketPalace, models.LiveIn, 3, 2))
	require.NoError(t, err)
	assert.Equal(t, 4000.0, got)

	// Two extra children at 1000 each.
	got, err = svc.ResolveBaseRate(longTermRequest(models.HomePocketPalace, models.LiveIn, 5, 0))
	require.NoError(t, err)
	assert.Equal(t, 6000.0, got)

	// Two extra dependents at 500 each.
	got, err = svc.ResolveBaseRate(longTermRequest(models.HomePocketPalace, models.LiveIn, 1, 4))
	require.NoError(t, err)
	assert.Equal(t, 5000.0, got)
}

func TestResolveBaseRateLongTermErrors(t *testing.T) {
	svc := newTestService()

	_, err := svc.ResolveBaseRate(longTermRequest("castle", models.LiveIn, 1, 0))
	assert.True(t, IsConfigurationError(err))

	_, err = svc.ResolveBaseRate(longTermRequest(models.HomeFamilyHub, "", 1, 0))
	assert.True(t, IsValidationError(err))

	_, err = svc.ResolveBaseRate(longTermRequest(models.HomeFamilyHub, models.LiveIn, -1, 0))
	assert.True(t, IsValidationError(err))
}

func TestResolveBaseRateHourly(t *testing.T) {
	svc := newTestService()

	req := models.BookingRequest{
		BookingCategory:  models.CategoryShortTerm,
		ShortTermSubType: models.SubTypeDateNight,
		HomeSize:         models.HomeFamilyHub,
		SelectedDates: []models.SelectedDate{
			{Date: "2025-03-08", Slots: []models.TimeSlot{{Start: "19:00", End: "23:00"}}},
		},
	}
	got, err := svc.ResolveBaseRate(req)
	require.NoError(t, err)
	assert.Equal(t, 200.0, got) // 50/hr x 4h

	// Overnight date-night slot.
	req.SelectedDates[0].Slots[0] = models.TimeSlot{Start: "20:00", End: "01:00"}
	got, err = svc.ResolveBaseRate(req)
	require.NoError(t, err)
	assert.Equal(t, 250.0, got) // 50/hr x 5h

	// Service increments raise the hourly rate.
	req.Services = []models.Service{models.ServiceSpecialNeeds}
	got, err = svc.ResolveBaseRate(req)
	require.NoError(t, err)
	assert.Equal(t, 375.0, got) // (50+25)/hr x 5h
}

func TestResolveBaseRateEmergencyFloor(t *testing.T) {
	svc := newTestService()

	req := models.BookingRequest{
		BookingCategory:  models.CategoryShortTerm,
		ShortTermSubType: models.SubTypeEmergency,
		HomeSize:         models.HomePocketPalace,
		SelectedDates: []models.SelectedDate{
			{Date: "2025-03-08", Slots: []models.TimeSlot{{Start: "10:00", End: "13:00"}}},
		},
	}
	// Three computed hours bill as the five-hour minimum.
	got, err := svc.ResolveBaseRate(req)
	require.NoError(t, err)
	assert.Equal(t, 400.0, got) // 80/hr x 5h

	// Above the minimum, computed hours bill as-is.
	req.SelectedDates[0].Slots[0] = models.TimeSlot{Start: "09:00", End: "17:00"}
	got, err = svc.ResolveBaseRate(req)
	require.NoError(t, err)
	assert.Equal(t, 640.0, got) // 80/hr x 8h
}

func TestResolveBaseRateHourlyErrors(t *testing.T) {
	svc := newTestService()

	// No dates: rejected, never floored to a minimum charge.
	req := models.BookingRequest{
		BookingCategory:  models.CategoryShortTerm,
		ShortTermSubType: models.SubTypeEmergency,
		HomeSize:         models.HomePocketPalace,
	}
	_, err := svc.ResolveBaseRate(req)
	assert.True(t, IsValidationError(err))

	// Dates without slots are just as unpriceable.
	req.SelectedDates = []models.SelectedDate{{Date: "2025-03-08"}}
	_, err = svc.ResolveBaseRate(req)
	assert.True(t, IsValidationError(err))

	// Unknown sub-type is a configuration gap.
	req.ShortTermSubType = "sleepover"
	_, err = svc.ResolveBaseRate(req)
	assert.True(t, IsConfigurationError(err))
}

func TestResolveBaseRateDaily(t *testing.T) {
	svc := newTestService()

	req := models.BookingRequest{
		BookingCategory:  models.CategoryShortTerm,
		ShortTermSubType: models.SubTypeTemporarySupport,
		HomeSize:         models.HomeFamilyHub,
		SelectedDates: []models.SelectedDate{
			{Date: "2025-03-10"}, {Date: "2025-03-11"}, {Date: "2025-03-12"},
		},
	}
	got, err := svc.ResolveBaseRate(req)
	require.NoError(t, err)
	assert.Equal(t, 1050.0, got) // 350/day x 3 days

	req.SelectedDates = nil
	_, err = svc.ResolveBaseRate(req)
	assert.True(t, IsValidationError(err))
}
