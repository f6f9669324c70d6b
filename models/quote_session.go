package models

import "time"

// QuoteSession holds context between quoting and final confirmation.
// Sessions live in Redis with a short TTL and are deleted on confirm/cancel.
type QuoteSession struct {
	SessionID string         `json:"sessionId"`
	ClientID  string         `json:"clientId"`
	Request   BookingRequest `json:"request"`
	Pricing   PricingResult  `json:"pricing"`
	Split     FinancialSplit `json:"split"`
	CreatedAt time.Time      `json:"createdAt"`
}

// QuoteResponse is the payload returned by the quoting endpoints.
type QuoteResponse struct {
	SessionID string          `json:"sessionID,omitempty"`
	Pricing   *PricingResult  `json:"pricing,omitempty"`
	Split     *FinancialSplit `json:"split,omitempty"`
	Booking   *Booking        `json:"booking,omitempty"`
}
