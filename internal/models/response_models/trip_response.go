package response_models

import (
	"time"

	"tripwise/internal/models/db_models"
)

type TripResponse struct {
	ID                       string             `json:"id"`
	Destination              string             `json:"destination"`
	StartDate                string             `json:"start_date"`
	EndDate                  string             `json:"end_date"`
	DurationDays             int                `json:"duration_days"`
	TotalBudget              float64            `json:"total_budget"`
	Currency                 string             `json:"currency"`
	Travelers                int                `json:"travelers"`
	Themes                   []string           `json:"themes"`
	AccommodationPreference  string             `json:"accommodation_preference"`
	TransportationPreference string             `json:"transportation_preference"`
	FoodPreference           string             `json:"food_preference"`
	SpecialRequirements      string             `json:"special_requirements,omitempty"`
	Status                   string             `json:"status"`
	CreatedAt                int64              `json:"created_at"`
	UpdatedAt                int64              `json:"updated_at"`
	SelectedOption           *TripOptionResponse `json:"selected_option,omitempty"`
}

type TripOptionResponse struct {
	ID               string              `json:"id"`
	TripID           string              `json:"trip_id"`
	OptionName       string              `json:"option_name"`
	Theme            string              `json:"theme"`
	Description      string              `json:"description"`
	DailyItineraries []db_models.DayPlan `json:"daily_itineraries"`
	TotalCost        float64             `json:"total_cost"`
	Highlights       []string            `json:"highlights"`
	IsSelected       bool                `json:"is_selected"`
	CreatedAt        int64               `json:"created_at"`
	UpdatedAt        int64               `json:"updated_at"`
}

type DailyItineraryResponse struct {
	ID            string                   `json:"id"`
	TripID        string                   `json:"trip_id"`
	DayNumber     int                      `json:"day_number"`
	Date          string                   `json:"date"`
	DailyBudget   float64                  `json:"daily_budget"`
	Activities    []db_models.Activity     `json:"activities"`
	Meals         []db_models.Meal         `json:"meals"`
	Accommodation db_models.Accommodation  `json:"accommodation"`
	Transport     db_models.Transport      `json:"transport"`
	CreatedAt     int64                    `json:"created_at"`
	UpdatedAt     int64                    `json:"updated_at"`
}

func BuildTripResponse(trip *db_models.Trip) *TripResponse {
	out := &TripResponse{
		ID:                       trip.ID.String(),
		Destination:              trip.Destination,
		StartDate:                trip.StartDate.Format(time.RFC3339),
		EndDate:                  trip.EndDate.Format(time.RFC3339),
		DurationDays:             trip.DurationDays(),
		TotalBudget:              trip.TotalBudget,
		Currency:                 trip.Currency,
		Travelers:                trip.Travelers,
		Themes:                   trip.Themes,
		AccommodationPreference:  trip.AccommodationPreference,
		TransportationPreference: trip.TransportationPreference,
		FoodPreference:           trip.FoodPreference,
		SpecialRequirements:      trip.SpecialRequirements,
		Status:                   trip.Status,
		CreatedAt:                trip.CreatedAt,
		UpdatedAt:                trip.UpdatedAt,
	}

	// Embed the selected option when one is loaded. Repeated selections can
	// leave several options flagged; the first in stored order wins here.
	for i := range trip.Options {
		if trip.Options[i].IsSelected {
			out.SelectedOption = BuildTripOptionResponse(&trip.Options[i])
			break
		}
	}

	return out
}

func BuildTripOptionResponse(option *db_models.TripOption) *TripOptionResponse {
	return &TripOptionResponse{
		ID:               option.ID.String(),
		TripID:           option.TripID.String(),
		OptionName:       option.OptionName,
		Theme:            option.Theme,
		Description:      option.Description,
		DailyItineraries: option.DailyItineraries,
		TotalCost:        option.TotalCost,
		Highlights:       option.Highlights,
		IsSelected:       option.IsSelected,
		CreatedAt:        option.CreatedAt,
		UpdatedAt:        option.UpdatedAt,
	}
}

func BuildDailyItineraryResponse(it *db_models.DailyItinerary) *DailyItineraryResponse {
	return &DailyItineraryResponse{
		ID:            it.ID.String(),
		TripID:        it.TripID.String(),
		DayNumber:     it.DayNumber,
		Date:          it.Date.Format(time.RFC3339),
		DailyBudget:   it.DailyBudget,
		Activities:    it.Activities,
		Meals:         it.Meals,
		Accommodation: it.Accommodation.Data(),
		Transport:     it.Transport.Data(),
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
}
