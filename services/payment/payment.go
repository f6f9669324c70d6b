package payment

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// IntentRef identifies a created payment intent.
type IntentRef struct {
	IntentID     string `json:"intentId"`
	ClientSecret string `json:"clientSecret"`
}

// IntentCreator creates payment intents for amounts due on booking
// confirmation. Charging beyond intent creation happens on the client.
type IntentCreator interface {
	CreateIntent(ctx context.Context, bookingID string, amount float64, currency string) (*IntentRef, error)
}

// StripeIntentCreator implements IntentCreator against the Stripe API.
type StripeIntentCreator struct {
	Logger *zap.Logger
}

// NewStripeIntentCreator returns a Stripe-backed intent creator. The global
// stripe.Key must be set before use.
func NewStripeIntentCreator(logger *zap.Logger) *StripeIntentCreator {
	return &StripeIntentCreator{Logger: logger}
}

// CreateIntent creates a payment intent for the given amount, expressed in
// major currency units and converted to the smallest unit for Stripe.
func (s *StripeIntentCreator) CreateIntent(ctx context.Context, bookingID string, amount float64, currency string) (*IntentRef, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("invalid payment amount %.2f for booking %s", amount, bookingID)
	}

	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(int64(math.Floor(amount*100 + 0.5))),
		Currency: stripe.String(currency),
	}
	params.AddMetadata("booking_id", bookingID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent for booking %s: %w", bookingID, err)
	}

	s.Logger.Info("Payment intent created",
		zap.String("booking", bookingID),
		zap.String("intent", pi.ID),
		zap.Float64("amount", amount),
	)
	return &IntentRef{IntentID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}
