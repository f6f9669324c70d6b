package models

// BreakdownLine is a single labelled amount in a pricing breakdown.
type BreakdownLine struct {
	Label  string  `bson:"label" json:"label"`
	Amount float64 `bson:"amount" json:"amount"`
}

// PricingResult is the calculator's answer for one booking request.
// For hourly bookings the add-on rates are folded into BaseRate, so
// AddOnTotal is zero and the breakdown lines are descriptive.
type PricingResult struct {
	BaseRate   float64         `bson:"base_rate" json:"baseRate"`
	AddOnTotal float64         `bson:"add_on_total" json:"addOnTotal"`
	Subtotal   float64         `bson:"subtotal" json:"subtotal"`
	Total      float64         `bson:"total" json:"total"`
	IsHourly   bool            `bson:"is_hourly" json:"isHourly"`
	Breakdown  []BreakdownLine `bson:"breakdown" json:"breakdown"`
}

// FinancialSplit divides a booking total between the platform and the nanny.
type FinancialSplit struct {
	CommissionPercent int     `bson:"commission_percent" json:"commissionPercent"`
	CommissionAmount  float64 `bson:"commission_amount" json:"commissionAmount"`
	NannyEarnings     float64 `bson:"nanny_earnings" json:"nannyEarnings"`
	PlacementFee      float64 `bson:"placement_fee" json:"placementFee"`
	AdminTotalRevenue float64 `bson:"admin_total_revenue" json:"adminTotalRevenue"`
}
