package bookingRepo

import "nestcare/models"

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetByClient(clientID string) ([]models.Booking, error)
	UpdateStatus(id, status string) error
}
