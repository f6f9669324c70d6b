package models

import "time"

// SettlementRecord is the per-booking revenue ledger entry written by the
// settlement worker after a booking is confirmed.
type SettlementRecord struct {
	ID                string          `bson:"id" json:"id"`
	BookingID         string          `bson:"booking_id" json:"bookingId"`
	Category          BookingCategory `bson:"category" json:"category"`
	CommissionPercent int             `bson:"commission_percent" json:"commissionPercent"`
	CommissionAmount  float64         `bson:"commission_amount" json:"commissionAmount"`
	NannyEarnings     float64         `bson:"nanny_earnings" json:"nannyEarnings"`
	PlacementFee      float64         `bson:"placement_fee" json:"placementFee"`
	AdminTotalRevenue float64         `bson:"admin_total_revenue" json:"adminTotalRevenue"`
	RecordedAt        time.Time       `bson:"recorded_at" json:"recordedAt"`
}

// SettlementPayload is the queued task payload for the settlement worker.
type SettlementPayload struct {
	BookingID string `json:"bookingId"`
}
