package request_models

import "time"

type CreateTripRequest struct {
	Destination              string    `json:"destination" binding:"required"`
	StartDate                time.Time `json:"start_date" binding:"required"`
	EndDate                  time.Time `json:"end_date" binding:"required"`
	TotalBudget              float64   `json:"total_budget" binding:"required,gt=0"`
	Currency                 string    `json:"currency"`
	Travelers                int       `json:"travelers" binding:"required,min=1"`
	Themes                   []string  `json:"themes"`
	AccommodationPreference  string    `json:"accommodation_preference"`
	TransportationPreference string    `json:"transportation_preference"`
	FoodPreference           string    `json:"food_preference"`
	SpecialRequirements      string    `json:"special_requirements"`
}

// All fields optional; only the keys present in the body are applied.
type UpdateTripRequest struct {
	Destination              *string    `json:"destination"`
	StartDate                *time.Time `json:"start_date"`
	EndDate                  *time.Time `json:"end_date"`
	TotalBudget              *float64   `json:"total_budget"`
	Currency                 *string    `json:"currency"`
	Travelers                *int       `json:"travelers"`
	Themes                   *[]string  `json:"themes"`
	AccommodationPreference  *string    `json:"accommodation_preference"`
	TransportationPreference *string    `json:"transportation_preference"`
	FoodPreference           *string    `json:"food_preference"`
	SpecialRequirements      *string    `json:"special_requirements"`
	Status                   *string    `json:"status"`
}

type SearchPlacesRequest struct {
	Query     string `json:"query" binding:"required"`
	PlaceType string `json:"place_type"`
	RadiusM   int    `json:"radius"`
}
