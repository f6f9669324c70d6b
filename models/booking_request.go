package models

// BookingCategory distinguishes ongoing monthly placements from one-off care.
type BookingCategory string

const (
	CategoryLongTerm  BookingCategory = "longTerm"
	CategoryShortTerm BookingCategory = "shortTerm"
)

// ShortTermSubType identifies the product variant of a short-term booking.
type ShortTermSubType string

const (
	SubTypeEmergency        ShortTermSubType = "emergency"
	SubTypeDateNight        ShortTermSubType = "dateNight"
	SubTypeDateDay          ShortTermSubType = "dateDay"
	SubTypeSchoolHoliday    ShortTermSubType = "schoolHoliday"
	SubTypeTemporarySupport ShortTermSubType = "temporarySupport"
)

// HomeSize bands dwelling size; it scales base rates and housekeeping charges.
type HomeSize string

const (
	HomePocketPalace    HomeSize = "pocketPalace"
	HomeFamilyHub       HomeSize = "familyHub"
	HomeGrandEstate     HomeSize = "grandEstate"
	HomeMonumentalManor HomeSize = "monumentalManor"
)

// LivingArrangement applies to long-term placements only.
type LivingArrangement string

const (
	LiveIn  LivingArrangement = "liveIn"
	LiveOut LivingArrangement = "liveOut"
)

// Service is an optional add-on a client can attach to a booking.
type Service string

const (
	ServiceCooking           Service = "cooking"
	ServiceSpecialNeeds      Service = "specialNeeds"
	ServiceDrivingSupport    Service = "drivingSupport"
	ServiceLightHousekeeping Service = "lightHousekeeping"
	ServicePetCare           Service = "petCare"
	ServiceECDTraining       Service = "ecdTraining"
	ServiceMontessori        Service = "montessori"
)

// TimeSlot is a clock interval in "HH:MM" form. An end at or before the start
// is read as crossing midnight.
type TimeSlot struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// SelectedDate is one calendar day of a short-term booking with its time slots.
type SelectedDate struct {
	Date  string     `bson:"date" json:"date"` // "YYYY-MM-DD"
	Slots []TimeSlot `bson:"slots,omitempty" json:"slots,omitempty"`
}

// BookingRequest carries every input the pricing calculator needs. It is
// treated as immutable: the calculator never mutates it.
type BookingRequest struct {
	BookingCategory   BookingCategory   `bson:"booking_category" json:"bookingCategory"`
	ShortTermSubType  ShortTermSubType  `bson:"short_term_sub_type,omitempty" json:"shortTermSubType,omitempty"`
	HomeSize          HomeSize          `bson:"home_size" json:"homeSize"`
	LivingArrangement LivingArrangement `bson:"living_arrangement,omitempty" json:"livingArrangement,omitempty"`
	NumberOfChildren  int               `bson:"number_of_children" json:"numberOfChildren"`
	OtherDependents   int               `bson:"other_dependents" json:"otherDependents"`
	SelectedDates     []SelectedDate    `bson:"selected_dates,omitempty" json:"selectedDates,omitempty"`
	Services          []Service         `bson:"services,omitempty" json:"services,omitempty"`
}

// HasService reports whether the request includes the given add-on.
func (r BookingRequest) HasService(s Service) bool {
	for _, svc := range r.Services {
		if svc == s {
			return true
		}
	}
	return false
}
