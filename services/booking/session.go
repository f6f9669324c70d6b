package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"nestcare/models"
	"nestcare/services/payment"
	"nestcare/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrSessionNotFound is returned when a quote session is missing or expired.
var ErrSessionNotFound = errors.New("quote session not found or expired")

func (s *DefaultQuoteSessionService) sessionKey(sessionID string) string {
	return utils.QuoteSessionPrefix + sessionID
}

func (s *DefaultQuoteSessionService) ttl() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return utils.QuoteSessionTTL
}

// applyProfile fills request fields the client did not restate from the
// stored household profile. Explicit request values always win.
func (s *DefaultQuoteSessionService) applyProfile(ctx context.Context, clientID string, req models.BookingRequest) (models.BookingRequest, error) {
	if clientID == "" || s.Clients == nil {
		return req, nil
	}
	profile, err := s.Clients.GetByID(clientID)
	if err != nil {
		return req, fmt.Errorf("failed to load client profile: %w", err)
	}
	if req.HomeSize == "" {
		req.HomeSize = profile.HomeSize
	}
	if req.LivingArrangement == "" {
		req.LivingArrangement = profile.LivingArrangement
	}
	if req.NumberOfChildren == 0 {
		req.NumberOfChildren = profile.NumberOfChildren
	}
	if req.OtherDependents == 0 {
		req.OtherDependents = profile.OtherDependents
	}
	if req.Services == nil {
		req.Services = profile.DefaultServices
	}
	return req, nil
}

// StartSession prices the request and stores the resulting quote in Redis
// under a fresh session ID.
func (s *DefaultQuoteSessionService) StartSession(ctx context.Context, clientID string, req models.BookingRequest) (*models.QuoteSession, error) {
	req, err := s.applyProfile(ctx, clientID, req)
	if err != nil {
		return nil, err
	}

	pricingResult, err := s.Pricing.CalculatePricing(req)
	if err != nil {
		return nil, err
	}

	var baseForTier float64
	if req.BookingCategory == models.CategoryLongTerm {
		baseForTier = pricingResult.BaseRate
	}
	split, err := s.Pricing.CalculateFinancialSplit(pricingResult.Total, req.BookingCategory, baseForTier)
	if err != nil {
		return nil, err
	}

	session := &models.QuoteSession{
		SessionID: uuid.New().String(),
		ClientID:  clientID,
		Request:   req,
		Pricing:   *pricingResult,
		Split:     *split,
		CreatedAt: time.Now(),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal quote session: %w", err)
	}
	if err := s.Cache.Set(ctx, s.sessionKey(session.SessionID), data, s.ttl()).Err(); err != nil {
		return nil, fmt.Errorf("failed to cache quote session: %w", err)
	}

	s.Logger.Info("Quote session started",
		zap.String("session", session.SessionID),
		zap.String("client", clientID),
		zap.Float64("total", pricingResult.Total),
	)
	return session, nil
}

// GetSession loads a live quote session.
func (s *DefaultQuoteSessionService) GetSession(ctx context.Context, sessionID string) (*models.QuoteSession, error) {
	data, err := s.Cache.Get(ctx, s.sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load quote session: %w", err)
	}
	var session models.QuoteSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse quote session: %w", err)
	}
	return &session, nil
}

// ConfirmBooking turns a live session into a persisted booking. The stored
// record is read back by ID before returning, so the caller always sees the
// durably written financials rather than an optimistic echo.
func (s *DefaultQuoteSessionService) ConfirmBooking(ctx context.Context, sessionID, nannyID string) (*models.Booking, *payment.IntentRef, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	amountDue := session.Pricing.Total
	if session.Request.BookingCategory == models.CategoryLongTerm {
		amountDue += session.Split.PlacementFee
	}

	booking := &models.Booking{
		ID:        uuid.New().String(),
		ClientID:  session.ClientID,
		NannyID:   nannyID,
		Category:  session.Request.BookingCategory,
		SubType:   session.Request.ShortTermSubType,
		Request:   session.Request,
		Pricing:   session.Pricing,
		Split:     session.Split,
		AmountDue: amountDue,
		Status:    "confirmed",
	}

	var intent *payment.IntentRef
	if s.Payments != nil {
		intent, err = s.Payments.CreateIntent(ctx, booking.ID, amountDue, s.Currency)
		if err != nil {
			return nil, nil, fmt.Errorf("payment intent failed: %w", err)
		}
		booking.PaymentIntentID = intent.IntentID
	}

	if err := s.Bookings.Create(booking); err != nil {
		return nil, nil, fmt.Errorf("failed to persist booking: %w", err)
	}
	stored, err := s.Bookings.GetByID(booking.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("booking write confirmation failed: %w", err)
	}

	if s.Settlements != nil {
		if err := s.Settlements.EnqueueRecord(stored); err != nil {
			// The booking stands; the ledger entry is retried by the queue.
			s.Logger.Error("failed to enqueue settlement", zap.String("booking", stored.ID), zap.Error(err))
		}
	}

	if err := s.Cache.Del(ctx, s.sessionKey(sessionID)).Err(); err != nil {
		s.Logger.Warn("failed to drop confirmed quote session", zap.String("session", sessionID), zap.Error(err))
	}

	s.Logger.Info("Booking confirmed",
		zap.String("booking", stored.ID),
		zap.String("session", sessionID),
		zap.Float64("amountDue", amountDue),
	)
	return stored, intent, nil
}

// CancelSession drops a live quote session.
func (s *DefaultQuoteSessionService) CancelSession(ctx context.Context, sessionID string) error {
	deleted, err := s.Cache.Del(ctx, s.sessionKey(sessionID)).Result()
	if err != nil {
		return fmt.Errorf("failed to cancel quote session: %w", err)
	}
	if deleted == 0 {
		return ErrSessionNotFound
	}
	return nil
}
