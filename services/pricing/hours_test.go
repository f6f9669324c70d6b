package pricing

import (
	"testing"

	"nestcare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:30", want: 570},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseClock(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			assert.True(t, IsValidationError(err), "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestSlotHours(t *testing.T) {
	h, err := slotHours(models.TimeSlot{Start: "09:00", End: "17:00"})
	require.NoError(t, err)
	assert.Equal(t, 8.0, h)

	// Overnight slots wrap past midnight.
	h, err = slotHours(models.TimeSlot{Start: "20:00", End: "01:00"})
	require.NoError(t, err)
	assert.Equal(t, 5.0, h)

	h, err = slotHours(models.TimeSlot{Start: "09:15", End: "10:00"})
	require.NoError(t, err)
	assert.Equal(t, 0.75, h)
}

func TestSumHours(t *testing.T) {
	dates := []models.SelectedDate{
		{Date: "2025-03-01", Slots: []models.TimeSlot{{Start: "09:00", End: "12:00"}, {Start: "14:00", End: "16:00"}}},
		{Date: "2025-03-02", Slots: []models.TimeSlot{{Start: "10:00", End: "13:30"}}},
	}
	h, err := sumHours(dates)
	require.NoError(t, err)
	assert.Equal(t, 8.5, h)

	h, err = sumHours(nil)
	require.NoError(t, err)
	assert.Zero(t, h)
}
