package db_models

// Embedded itinerary documents. These travel as jsonb payloads inside
// TripOption.DailyItineraries and the DailyItinerary columns; extra keys in
// stored payloads are ignored and missing keys decode to zero values.

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Activity struct {
	Time        string       `json:"time"`
	Activity    string       `json:"activity"`
	Location    string       `json:"location"`
	Duration    string       `json:"duration"`
	Cost        float64      `json:"cost"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

type Meal struct {
	MealType   string  `json:"meal_type"`
	Restaurant string  `json:"restaurant"`
	Cost       float64 `json:"cost"`
	Cuisine    string  `json:"cuisine"`
	Location   string  `json:"location,omitempty"`
	Time       string  `json:"time,omitempty"`
}

type Accommodation struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Cost      float64  `json:"cost"`
	Location  string   `json:"location"`
	Amenities []string `json:"amenities,omitempty"`
}

type Transport struct {
	Mode     string  `json:"mode"`
	Cost     float64 `json:"cost"`
	Duration string  `json:"duration"`
	Route    string  `json:"route,omitempty"`
}

// DayPlan is one day inside an option payload. Date and DailyBudget stay
// optional so payloads from the text model with missing keys still load;
// materialization substitutes trip-level defaults for them.
type DayPlan struct {
	DayNumber   int      `json:"day_number"`
	Date        string   `json:"date,omitempty"`
	DailyBudget *float64 `json:"daily_budget,omitempty"`

	Activities    []Activity     `json:"activities"`
	Meals         []Meal         `json:"meals"`
	Accommodation *Accommodation `json:"accommodation,omitempty"`
	Transport     *Transport     `json:"transport,omitempty"`
	Tips          []string       `json:"tips,omitempty"`
}
