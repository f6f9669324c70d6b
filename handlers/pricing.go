package handlers

import (
	"errors"
	"net/http"

	"nestcare/models"
	"nestcare/services/pricing"
	"nestcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PricingHandler exposes the stateless quoting endpoints.
type PricingHandler struct {
	Svc    pricing.PricingService
	Logger *zap.Logger
}

// NewPricingHandler creates a PricingHandler.
func NewPricingHandler(svc pricing.PricingService, logger *zap.Logger) *PricingHandler {
	return &PricingHandler{Svc: svc, Logger: logger}
}

// respondPricingError maps calculator errors onto HTTP statuses. Validation
// problems are the caller's to fix; configuration gaps are operator problems
// and must never silently produce a guessed price.
func respondPricingError(c *gin.Context, logger *zap.Logger, err error) {
	var ve *pricing.ValidationError
	var ce *pricing.ConfigurationError
	switch {
	case errors.As(err, &ve):
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request", ve.Error())
	case errors.As(err, &ce):
		logger.Error("pricing configuration gap", zap.Error(ce))
		utils.JSONError(c, http.StatusInternalServerError, "unable to calculate price, please contact support", ce.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "unable to calculate price", err.Error())
	}
}

// QuoteHandler prices a booking request and returns the financial split
// without creating a session.
func (h *PricingHandler) QuoteHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Svc.CalculatePricing(req)
	if err != nil {
		respondPricingError(c, h.Logger, err)
		return
	}

	var baseForTier float64
	if req.BookingCategory == models.CategoryLongTerm {
		baseForTier = result.BaseRate
	}
	split, err := h.Svc.CalculateFinancialSplit(result.Total, req.BookingCategory, baseForTier)
	if err != nil {
		respondPricingError(c, h.Logger, err)
		return
	}

	c.JSON(http.StatusOK, models.QuoteResponse{Pricing: result, Split: split})
}

// SplitHandler computes a financial split for an externally supplied total.
func (h *PricingHandler) SplitHandler(c *gin.Context) {
	var input struct {
		Total           float64                `json:"total"`
		Category        models.BookingCategory `json:"bookingCategory"`
		MonthlyBaseRate float64                `json:"monthlyBaseRate"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	split, err := h.Svc.CalculateFinancialSplit(input.Total, input.Category, input.MonthlyBaseRate)
	if err != nil {
		respondPricingError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, models.QuoteResponse{Split: split})
}
