package models

import "time"

// ClientProfile stores the household attributes used to build booking
// requests when the client does not restate them on every quote.
type ClientProfile struct {
	ID                string            `bson:"id" json:"id"`
	Name              string            `bson:"name" json:"name"`
	Email             string            `bson:"email" json:"email"`
	HomeSize          HomeSize          `bson:"home_size" json:"homeSize"`
	LivingArrangement LivingArrangement `bson:"living_arrangement,omitempty" json:"livingArrangement,omitempty"`
	NumberOfChildren  int               `bson:"number_of_children" json:"numberOfChildren"`
	OtherDependents   int               `bson:"other_dependents" json:"otherDependents"`
	DefaultServices   []Service         `bson:"default_services,omitempty" json:"defaultServices,omitempty"`
	CreatedAt         time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time         `bson:"updated_at" json:"updatedAt"`
}
