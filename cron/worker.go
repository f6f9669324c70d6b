package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"nestcare/config"
	settlementRepo "nestcare/database/repository/settlement"
	"nestcare/models"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const TypeSettlementRecord = "settlement:record"

// BookingFetcher supplies the confirmed booking a settlement task refers to.
type BookingFetcher interface {
	GetByID(id string) (*models.Booking, error)
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSettlementDB,
	}
}

// InitSettlementWorker runs the async settlement worker in background.
// Each confirmed booking enqueues one task; the handler writes the revenue
// ledger entry so confirmation never blocks on ledger writes.
func InitSettlementWorker(bookings BookingFetcher, settlements settlementRepo.SettlementRepository) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSettlementRecord, handleSettlementTask(bookings, settlements))

	go func() {
		log.Println("[SettlementWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SettlementWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SettlementWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleSettlementTask(bookings BookingFetcher, settlements settlementRepo.SettlementRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.SettlementPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[SettlementHandler] invalid payload: %v", err)
			return err
		}

		booking, err := bookings.GetByID(p.BookingID)
		if err != nil {
			log.Printf("[SettlementHandler] booking %s not found: %v", p.BookingID, err)
			return err
		}

		record := &models.SettlementRecord{
			ID:                uuid.New().String(),
			BookingID:         booking.ID,
			Category:          booking.Category,
			CommissionPercent: booking.Split.CommissionPercent,
			CommissionAmount:  booking.Split.CommissionAmount,
			NannyEarnings:     booking.Split.NannyEarnings,
			PlacementFee:      booking.Split.PlacementFee,
			AdminTotalRevenue: booking.Split.AdminTotalRevenue,
			RecordedAt:        time.Now(),
		}

		if err := settlements.Create(record); err != nil {
			log.Printf("[SettlementHandler] failed to record settlement for booking %s: %v", booking.ID, err)
			return err
		}
		return nil
	}
}
