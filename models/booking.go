package models

import "time"

// Booking represents a confirmed booking record.
type Booking struct {
	ID               string           `bson:"id" json:"id"`                                             // Unique booking identifier (UUID)
	ClientID         string           `bson:"client_id" json:"clientId"`                                // Client who made the booking
	NannyID          string           `bson:"nanny_id,omitempty" json:"nannyId,omitempty"`              // Nanny assigned to the booking
	Category         BookingCategory  `bson:"category" json:"category"`                                 // longTerm or shortTerm
	SubType          ShortTermSubType `bson:"sub_type,omitempty" json:"subType,omitempty"`              // Short-term variant, if any
	Request          BookingRequest   `bson:"request" json:"request"`                                   // The priced request, kept for auditing
	Pricing          PricingResult    `bson:"pricing" json:"pricing"`                                   // Calculator output stored with the record
	Split            FinancialSplit   `bson:"split" json:"split"`                                       // Platform/nanny earnings split
	AmountDue        float64          `bson:"amount_due" json:"amountDue"`                              // Charged on confirmation
	PaymentIntentID  string           `bson:"payment_intent_id,omitempty" json:"paymentIntentId,omitempty"`
	Status           string           `bson:"status" json:"status"`                                     // e.g., "confirmed", "cancelled"
	CreatedAt        time.Time        `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time        `bson:"updated_at" json:"updatedAt"`
}
