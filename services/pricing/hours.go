package pricing

import (
	"fmt"
	"strconv"
	"strings"

	"nestcare/models"
)

const minutesPerDay = 24 * 60

// parseClock converts an "HH:MM" string to minutes from midnight.
func parseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, NewValidationError("timeSlot", fmt.Sprintf("invalid clock value %q", s))
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, NewValidationError("timeSlot", fmt.Sprintf("invalid hour in %q", s))
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, NewValidationError("timeSlot", fmt.Sprintf("invalid minute in %q", s))
	}
	return h*60 + m, nil
}

// slotHours returns the duration of one slot in hours. A slot whose end is
// at or before its start wraps past midnight (e.g. 20:00-01:00 is 5 hours).
func slotHours(slot models.TimeSlot) (float64, error) {
	start, err := parseClock(slot.Start)
	if err != nil {
		return 0, err
	}
	end, err := parseClock(slot.End)
	if err != nil {
		return 0, err
	}
	minutes := end - start
	if minutes <= 0 {
		minutes += minutesPerDay
	}
	return float64(minutes) / 60, nil
}

// sumHours adds up the slot durations across all selected dates.
func sumHours(dates []models.SelectedDate) (float64, error) {
	var total float64
	for _, d := range dates {
		for _, slot := range d.Slots {
			h, err := slotHours(slot)
			if err != nil {
				return 0, err
			}
			total += h
		}
	}
	return total, nil
}
