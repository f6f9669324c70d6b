package handlers

import (
	"errors"
	"net/http"

	"nestcare/models"
	"nestcare/services/booking"
	"nestcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the quote-session booking flow.
type BookingHandler struct {
	Svc    booking.QuoteSessionService
	Logger *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.QuoteSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// StartSession prices a request and opens a quote session.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var input struct {
		ClientID string                `json:"clientID"`
		Request  models.BookingRequest `json:"request"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Svc.StartSession(c.Request.Context(), input.ClientID, input.Request)
	if err != nil {
		respondPricingError(c, h.Logger, err)
		return
	}

	c.JSON(http.StatusOK, models.QuoteResponse{
		SessionID: session.SessionID,
		Pricing:   &session.Pricing,
		Split:     &session.Split,
	})
}

// GetSession returns a live quote session.
func (h *BookingHandler) GetSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	session, err := h.Svc.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, booking.ErrSessionNotFound) {
			utils.JSONError(c, http.StatusNotFound, "quote session not found or expired", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load quote session", err.Error())
		return
	}
	c.JSON(http.StatusOK, session)
}

// ConfirmBooking finalizes a quote session into a persisted booking.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionID"`
		NannyID   string `json:"nannyID"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	confirmed, intent, err := h.Svc.ConfirmBooking(c.Request.Context(), input.SessionID, input.NannyID)
	if err != nil {
		if errors.Is(err, booking.ErrSessionNotFound) {
			utils.JSONError(c, http.StatusNotFound, "quote session not found or expired", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "booking confirmation failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"booking": confirmed,
		"payment": intent,
	})
}

// CancelSession drops a quote session.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Svc.CancelSession(c.Request.Context(), sessionID); err != nil {
		if errors.Is(err, booking.ErrSessionNotFound) {
			utils.JSONError(c, http.StatusNotFound, "quote session not found or expired", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel quote session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": sessionID})
}
