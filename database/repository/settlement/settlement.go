package settlementRepo

import (
	"time"

	"nestcare/models"
)

// SettlementRepository defines the interface for the revenue ledger.
type SettlementRepository interface {
	Create(record *models.SettlementRecord) error
	GetByBookingID(bookingID string) (*models.SettlementRecord, error)
	TotalAdminRevenue(since time.Time) (float64, error)
}
