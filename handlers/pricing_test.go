package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nestcare/models"
	"nestcare/services/pricing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newQuoteRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPricingHandler(pricing.NewDefaultPricingService(pricing.DefaultRateConfig()), zap.NewNop())
	r := gin.New()
	r.POST("/api/pricing/quote", h.QuoteHandler)
	r.POST("/api/pricing/split", h.SplitHandler)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuoteHandlerLongTerm(t *testing.T) {
	r := newQuoteRouter()

	w := postJSON(t, r, "/api/pricing/quote", models.BookingRequest{
		BookingCategory:   models.CategoryLongTerm,
		HomeSize:          models.HomePocketPalace,
		LivingArrangement: models.LiveIn,
		NumberOfChildren:  2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Pricing)
	require.NotNil(t, resp.Split)
	assert.Equal(t, 4000.0, resp.Pricing.Total)
	assert.Equal(t, 10, resp.Split.CommissionPercent)
	assert.Equal(t, 2000.0, resp.Split.PlacementFee)
}

func TestQuoteHandlerValidationError(t *testing.T) {
	r := newQuoteRouter()

	// Emergency booking with no dates must fail, not price at zero.
	w := postJSON(t, r, "/api/pricing/quote", models.BookingRequest{
		BookingCategory:  models.CategoryShortTerm,
		ShortTermSubType: models.SubTypeEmergency,
		HomeSize:         models.HomePocketPalace,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuoteHandlerConfigurationError(t *testing.T) {
	r := newQuoteRouter()

	w := postJSON(t, r, "/api/pricing/quote", map[string]any{
		"bookingCategory":   "longTerm",
		"homeSize":          "castle",
		"livingArrangement": "liveIn",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSplitHandler(t *testing.T) {
	r := newQuoteRouter()

	w := postJSON(t, r, "/api/pricing/split", map[string]any{
		"total":           760.0,
		"bookingCategory": "shortTerm",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Split)
	assert.Equal(t, 10, resp.Split.CommissionPercent)
	assert.Equal(t, 76.0, resp.Split.CommissionAmount)
	assert.Equal(t, 684.0, resp.Split.NannyEarnings)
}

func TestSplitHandlerRejectsNonPositiveTotal(t *testing.T) {
	r := newQuoteRouter()

	w := postJSON(t, r, "/api/pricing/split", map[string]any{
		"total":           0,
		"bookingCategory": "shortTerm",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
