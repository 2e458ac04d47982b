package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	TripStatusDraft     = "draft"
	TripStatusPlanned   = "planned"
	TripStatusBooked    = "booked"
	TripStatusCompleted = "completed"
)

type Trip struct {
	BaseModel
	Destination string    `gorm:"size:255;not null"`
	StartDate   time.Time `gorm:"not null"`
	EndDate     time.Time `gorm:"not null"`
	TotalBudget float64   `gorm:"not null"`
	Currency    string    `gorm:"size:10;default:INR"`
	Travelers   int       `gorm:"not null"`
	Themes      datatypes.JSONSlice[string]

	AccommodationPreference  string `gorm:"size:50;default:mid-range"`
	TransportationPreference string `gorm:"size:50;default:mixed"`
	FoodPreference           string `gorm:"size:50;default:mixed"`
	SpecialRequirements      string `gorm:"type:text"`

	Status string `gorm:"size:50;default:draft"`

	Options     []TripOption     `gorm:"foreignKey:TripID"`
	Itineraries []DailyItinerary `gorm:"foreignKey:TripID"`
}

// DurationDays is inclusive of both endpoints: a trip starting and ending
// on the same day lasts one day.
func (t *Trip) DurationDays() int {
	days := int(t.EndDate.Sub(t.StartDate).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days
}

type TripOption struct {
	BaseModel
	TripID      uuid.UUID `gorm:"type:uuid;index;not null"`
	OptionName  string    `gorm:"size:255;not null"`
	Theme       string    `gorm:"size:50;not null"`
	Description string    `gorm:"type:text"`

	// Ordered day payloads exactly as generated; materialized into
	// DailyItinerary rows when the option is selected.
	DailyItineraries datatypes.JSONSlice[DayPlan]
	TotalCost        float64
	Highlights       datatypes.JSONSlice[string]

	IsSelected bool `gorm:"default:false"`
}

type DailyItinerary struct {
	BaseModel
	TripID      uuid.UUID `gorm:"type:uuid;index;not null"`
	DayNumber   int       `gorm:"not null"`
	Date        time.Time `gorm:"not null"`
	DailyBudget float64

	Activities    datatypes.JSONSlice[Activity]
	Meals         datatypes.JSONSlice[Meal]
	Accommodation datatypes.JSONType[Accommodation]
	Transport     datatypes.JSONType[Transport]
}
