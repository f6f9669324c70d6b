package booking

import (
	"context"
	"time"

	bookingRepo "nestcare/database/repository/booking"
	clientRepo "nestcare/database/repository/client"
	"nestcare/models"
	"nestcare/services/payment"
	"nestcare/services/pricing"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SettlementQueue decouples booking confirmation from the revenue ledger.
type SettlementQueue interface {
	EnqueueRecord(booking *models.Booking) error
}

// QuoteSessionService manages the quote lifecycle: price a request, hold the
// quote in a short-lived session, then confirm or cancel it.
type QuoteSessionService interface {
	StartSession(ctx context.Context, clientID string, req models.BookingRequest) (*models.QuoteSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.QuoteSession, error)
	ConfirmBooking(ctx context.Context, sessionID, nannyID string) (*models.Booking, *payment.IntentRef, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultQuoteSessionService implements QuoteSessionService.
type DefaultQuoteSessionService struct {
	Pricing     pricing.PricingService
	Bookings    bookingRepo.BookingRepository
	Clients     clientRepo.ClientProfileRepository
	Cache       *redis.Client
	Payments    payment.IntentCreator
	Settlements SettlementQueue
	Currency    string
	SessionTTL  time.Duration
	Logger      *zap.Logger
}
