package clientRepo

import "nestcare/models"

// ClientProfileRepository defines the interface for client household data.
type ClientProfileRepository interface {
	GetByID(id string) (*models.ClientProfile, error)
	Upsert(profile *models.ClientProfile) error
	Delete(id string) error
}
