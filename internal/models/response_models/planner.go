package response_models

import "tripwise/internal/models/db_models"

// TripOptionDraft is a generated option before persistence. JSON tags match
// the schema the text model is prompted for, so extracted output decodes
// straight into it.
type TripOptionDraft struct {
	OptionName       string              `json:"option_name"`
	Theme            string              `json:"theme"`
	Description      string              `json:"description"`
	DailyItineraries []db_models.DayPlan `json:"daily_itineraries"`
	TotalCost        float64             `json:"total_cost"`
	Highlights       []string            `json:"highlights"`
}

type AttractionRecommendation struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Category    string                 `json:"category"`
	Cost        float64                `json:"cost"`
	Duration    string                 `json:"duration,omitempty"`
	BestTime    string                 `json:"best_time,omitempty"`
	Coordinates *db_models.Coordinates `json:"coordinates,omitempty"`
}

type RestaurantRecommendation struct {
	Name        string   `json:"name"`
	Cuisine     string   `json:"cuisine"`
	CostRange   string   `json:"cost_range"`
	Specialties []string `json:"specialties,omitempty"`
	Location    string   `json:"location,omitempty"`
}

type AccommodationRecommendation struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	CostRange string   `json:"cost_range"`
	Location  string   `json:"location,omitempty"`
	Amenities []string `json:"amenities,omitempty"`
}

type TransportationRecommendation struct {
	Airport        string   `json:"airport,omitempty"`
	LocalTransport []string `json:"local_transport,omitempty"`
	Tips           []string `json:"tips,omitempty"`
}

type Recommendations struct {
	Destination    string                        `json:"destination"`
	Attractions    []AttractionRecommendation    `json:"attractions"`
	Restaurants    []RestaurantRecommendation    `json:"restaurants"`
	Accommodation  []AccommodationRecommendation `json:"accommodation"`
	Transportation *TransportationRecommendation `json:"transportation,omitempty"`
	BestTime       string                        `json:"best_time,omitempty"`
	BudgetEstimate map[string]string             `json:"budget_estimate,omitempty"`
	Tips           []string                      `json:"tips"`
}

type PlaceSummary struct {
	PlaceID          string                `json:"place_id"`
	Name             string                `json:"name"`
	FormattedAddress string                `json:"formatted_address"`
	Coordinates      db_models.Coordinates `json:"coordinates"`
	Rating           float64               `json:"rating"`
	PriceLevel       int                   `json:"price_level"`
	Types            []string              `json:"types"`
}

type SearchPlacesResponse struct {
	Places      []PlaceSummary `json:"places"`
	Destination string         `json:"destination"`
}

type RouteStep struct {
	Instruction string `json:"instruction"`
	Distance    string `json:"distance"`
	Duration    string `json:"duration"`
	TravelMode  string `json:"travel_mode"`
}

type RouteSummary struct {
	Distance         string      `json:"distance"`
	Duration         string      `json:"duration"`
	StartAddress     string      `json:"start_address"`
	EndAddress       string      `json:"end_address"`
	Steps            []RouteStep `json:"steps"`
	OverviewPolyline string      `json:"overview_polyline"`
}
