package cron

import (
	"encoding/json"
	"fmt"

	"nestcare/models"

	"github.com/hibiken/asynq"
)

// SettlementQueue enqueues settlement tasks for the background worker.
type SettlementQueue struct {
	client *asynq.Client
}

// NewSettlementQueue creates a queue client against the settlement Redis DB.
func NewSettlementQueue() *SettlementQueue {
	return &SettlementQueue{client: asynq.NewClient(redisOpts())}
}

// EnqueueRecord queues the revenue ledger write for a confirmed booking.
func (q *SettlementQueue) EnqueueRecord(booking *models.Booking) error {
	payload, err := json.Marshal(models.SettlementPayload{BookingID: booking.ID})
	if err != nil {
		return fmt.Errorf("failed to marshal settlement payload: %w", err)
	}
	task := asynq.NewTask(TypeSettlementRecord, payload)
	if _, err := q.client.Enqueue(task, asynq.MaxRetry(5)); err != nil {
		return fmt.Errorf("failed to enqueue settlement for booking %s: %w", booking.ID, err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (q *SettlementQueue) Close() error {
	return q.client.Close()
}
