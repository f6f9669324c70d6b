// File: nestcare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nestcare/config"
	"nestcare/cron"
	"nestcare/database"
	bookingRepoPkg "nestcare/database/repository/booking"
	clientRepoPkg "nestcare/database/repository/client"
	settlementRepoPkg "nestcare/database/repository/settlement"
	"nestcare/handlers"
	"nestcare/middleware"
	"nestcare/routes"
	"nestcare/services/booking"
	"nestcare/services/payment"
	"nestcare/services/pricing"
	"nestcare/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	utils.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitQuoteCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	clientRepo := clientRepoPkg.NewMongoClientProfileRepo()
	settlementRepo := settlementRepoPkg.NewMongoSettlementRepo()

	// services.
	pricingService := pricing.NewDefaultPricingService(pricing.LoadRateConfig())
	intentCreator := payment.NewStripeIntentCreator(logger)
	settlementQueue := cron.NewSettlementQueue()
	defer settlementQueue.Close()

	quoteService := &booking.DefaultQuoteSessionService{
		Pricing:     pricingService,
		Bookings:    bookingRepo,
		Clients:     clientRepo,
		Cache:       utils.GetQuoteCacheClient(),
		Payments:    intentCreator,
		Settlements: settlementQueue,
		Currency:    config.AppConfig.DefaultCurrency,
		SessionTTL:  utils.QuoteSessionTTL,
		Logger:      logger,
	}

	// background settlement worker.
	cron.InitSettlementWorker(bookingRepo, settlementRepo)

	pricingHandler := handlers.NewPricingHandler(pricingService, logger)
	bookingHandler := handlers.NewBookingHandler(quoteService, logger)
	clientHandler := handlers.NewClientHandler(clientRepo, bookingRepo)

	// Register routes.
	routes.RegisterRoutes(router, pricingHandler, bookingHandler, clientHandler)

	utils.StartHealthMonitor([]*redis.Client{utils.GetQuoteCacheClient()}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
