package pricing

import (
	"testing"

	"nestcare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommissionTierBoundaries(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		total float64
		want  int
	}{
		{total: 1, want: 10},
		{total: 4999, want: 10},
		{total: 5000, want: 15},
		{total: 7999, want: 15},
		{total: 8000, want: 20},
		{total: 10999, want: 20},
		{total: 11000, want: 25},
		{total: 25000, want: 25},
	}
	prev := 0
	for _, tt := range tests {
		split, err := svc.CalculateFinancialSplit(tt.total, models.CategoryShortTerm, 0)
		require.NoError(t, err, "total %.0f", tt.total)
		assert.Equal(t, tt.want, split.CommissionPercent, "total %.0f", tt.total)
		// Monotonically non-decreasing across increasing totals.
		assert.GreaterOrEqual(t, split.CommissionPercent, prev)
		prev = split.CommissionPercent
	}
}

func TestFinancialSplitExact(t *testing.T) {
	svc := newTestService()

	totals := []float64{1, 760, 4999, 5000, 8437, 11000, 19999}
	for _, total := range totals {
		split, err := svc.CalculateFinancialSplit(total, models.CategoryShortTerm, 0)
		require.NoError(t, err)
		// No leakage: the split always reproduces the total exactly.
		assert.Equal(t, total, split.NannyEarnings+split.CommissionAmount, "total %.0f", total)
		assert.GreaterOrEqual(t, split.NannyEarnings, 0.0)
		// Short-term bookings never carry a placement fee.
		assert.Zero(t, split.PlacementFee)
		assert.Equal(t, split.CommissionAmount, split.AdminTotalRevenue)
	}
}

func TestFinancialSplitRounding(t *testing.T) {
	svc := newTestService()

	// 333 x 10% = 33.3 rounds down; 335 x 10% = 33.5 rounds up.
	split, err := svc.CalculateFinancialSplit(333, models.CategoryShortTerm, 0)
	require.NoError(t, err)
	assert.Equal(t, 33.0, split.CommissionAmount)

	split, err = svc.CalculateFinancialSplit(335, models.CategoryShortTerm, 0)
	require.NoError(t, err)
	assert.Equal(t, 34.0, split.CommissionAmount)
}

func TestFinancialSplitLongTerm(t *testing.T) {
	svc := newTestService()

	// PocketPalace live-in: 10% commission, placement fee at 50% of base.
	split, err := svc.CalculateFinancialSplit(4000, models.CategoryLongTerm, 4000)
	require.NoError(t, err)
	assert.Equal(t, 10, split.CommissionPercent)
	assert.Equal(t, 400.0, split.CommissionAmount)
	assert.Equal(t, 3600.0, split.NannyEarnings)
	assert.Equal(t, 2000.0, split.PlacementFee)
	assert.Equal(t, 2400.0, split.AdminTotalRevenue)

	// MonumentalManor live-out: top tier.
	split, err = svc.CalculateFinancialSplit(11000, models.CategoryLongTerm, 11000)
	require.NoError(t, err)
	assert.Equal(t, 25, split.CommissionPercent)
	assert.Equal(t, 2750.0, split.CommissionAmount)
	assert.Equal(t, 8250.0, split.NannyEarnings)
	assert.Equal(t, 5500.0, split.PlacementFee)
	assert.Equal(t, 8250.0, split.AdminTotalRevenue)
}

func TestFinancialSplitTierBasisIsBaseRate(t *testing.T) {
	svc := newTestService()

	// Add-ons can push the monthly total over a tier boundary; the tier is
	// still looked up on the base rate the caller supplies.
	split, err := svc.CalculateFinancialSplit(5200, models.CategoryLongTerm, 4000)
	require.NoError(t, err)
	assert.Equal(t, 10, split.CommissionPercent)
	assert.Equal(t, 520.0, split.CommissionAmount)
	assert.Equal(t, 2000.0, split.PlacementFee)

	// Without a base rate the total itself is the basis.
	split, err = svc.CalculateFinancialSplit(5200, models.CategoryLongTerm, 0)
	require.NoError(t, err)
	assert.Equal(t, 15, split.CommissionPercent)
	assert.Equal(t, 2600.0, split.PlacementFee)
}

func TestFinancialSplitErrors(t *testing.T) {
	svc := newTestService()

	_, err := svc.CalculateFinancialSplit(0, models.CategoryShortTerm, 0)
	assert.True(t, IsValidationError(err))

	_, err = svc.CalculateFinancialSplit(-100, models.CategoryShortTerm, 0)
	assert.True(t, IsValidationError(err))

	_, err = svc.CalculateFinancialSplit(500, "weekend", 0)
	assert.True(t, IsConfigurationError(err))
}
