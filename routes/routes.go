package routes

import (
	"time"

	"nestcare/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, ph *handlers.PricingHandler, bh *handlers.BookingHandler, ch *handlers.ClientHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthHandler)

	RegisterPricingRoutes(r, ph)
	RegisterBookingRoutes(r, bh)
	RegisterClientRoutes(r, ch)
}

// RegisterPricingRoutes registers the stateless quoting endpoints.
func RegisterPricingRoutes(r *gin.Engine, ph *handlers.PricingHandler) {
	pricing := r.Group("/api/pricing")
	{
		pricing.POST("/quote", ph.QuoteHandler)
		pricing.POST("/split", ph.SplitHandler)
	}
}

// RegisterBookingRoutes registers all endpoints for the booking flow.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	booking := r.Group("/api/booking")
	{
		booking.POST("/session", bh.StartSession)                    // Phase 1: quote + session
		booking.GET("/session/:sessionID", bh.GetSession)            // Phase 2: inspect session
		booking.POST("/confirm", bh.ConfirmBooking)                  // Phase 3: confirm booking
		booking.DELETE("/session/:sessionID", bh.CancelSession)      // Cancel before confirmation
	}
}

// RegisterClientRoutes registers client profile endpoints.
func RegisterClientRoutes(r *gin.Engine, ch *handlers.ClientHandler) {
	clients := r.Group("/api/clients")
	{
		clients.PUT("", ch.UpsertClientHandler)
		clients.GET("/:id", ch.GetClientHandler)
		clients.DELETE("/:id", ch.DeleteClientHandler)
		clients.GET("/:id/bookings", ch.GetClientBookingsHandler)
	}
}
