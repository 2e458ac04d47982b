package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"tripwise/internal/models/db_models"
	"tripwise/internal/models/response_models"
	"tripwise/pkg/utils"
)

// TripContext is the read-only slice of a trip the generators work from.
type TripContext struct {
	Destination              string
	StartDate                time.Time
	EndDate                  time.Time
	DurationDays             int
	TotalBudget              float64
	Currency                 string
	Travelers                int
	Themes                   []string
	AccommodationPreference  string
	TransportationPreference string
	FoodPreference           string
	SpecialRequirements      string
}

func NewTripContext(trip *db_models.Trip) TripContext {
	return TripContext{
		Destination:              trip.Destination,
		StartDate:                trip.StartDate,
		EndDate:                  trip.EndDate,
		DurationDays:             trip.DurationDays(),
		TotalBudget:              trip.TotalBudget,
		Currency:                 trip.Currency,
		Travelers:                trip.Travelers,
		Themes:                   trip.Themes,
		AccommodationPreference:  trip.AccommodationPreference,
		TransportationPreference: trip.TransportationPreference,
		FoodPreference:           trip.FoodPreference,
		SpecialRequirements:      trip.SpecialRequirements,
	}
}

// PlannerServiceInterface generates itinerary content. Every operation
// absorbs client and parse failures into canned fallback data; nothing in
// this tier returns an error to its caller.
type PlannerServiceInterface interface {
	GenerateTripOptions(ctx context.Context, trip TripContext) []response_models.TripOptionDraft
	GenerateDailyItinerary(ctx context.Context, trip TripContext, dayNumber int) db_models.DayPlan
	GetRecommendations(ctx context.Context, destination string, interests []string) response_models.Recommendations
}

type PlannerService struct {
	aiClient utils.TextGenClientInterface
}

// NewPlannerService accepts a nil client; every call then takes the
// fallback path, same as a failing client.
func NewPlannerService(aiClient utils.TextGenClientInterface) PlannerServiceInterface {
	return &PlannerService{aiClient: aiClient}
}

func (p *PlannerService) GenerateTripOptions(ctx context.Context, trip TripContext) []response_models.TripOptionDraft {
	if p.aiClient == nil {
		log.Println("Text generation client not configured, using fallback trip options")
		return FallbackTripOptions(trip)
	}

	raw, err := p.aiClient.GenerateText(ctx, buildTripOptionsPrompt(trip))
	if err != nil {
		log.Printf("Error generating trip options: %v", err)
		return FallbackTripOptions(trip)
	}

	doc, ok := utils.ExtractJSONArray(raw)
	if !ok {
		log.Println("No structured data in trip options reply, using fallback")
		return FallbackTripOptions(trip)
	}

	var drafts []response_models.TripOptionDraft
	if err := json.Unmarshal(doc, &drafts); err != nil || len(drafts) == 0 {
		log.Printf("Error decoding trip options reply: %v", err)
		return FallbackTripOptions(trip)
	}

	return drafts
}

func (p *PlannerService) GenerateDailyItinerary(ctx context.Context, trip TripContext, dayNumber int) db_models.DayPlan {
	if p.aiClient == nil {
		log.Println("Text generation client not configured, using fallback daily itinerary")
		return FallbackDailyItinerary(trip, dayNumber)
	}

	raw, err := p.aiClient.GenerateText(ctx, buildDailyItineraryPrompt(trip, dayNumber))
	if err != nil {
		log.Printf("Error generating daily itinerary: %v", err)
		return FallbackDailyItinerary(trip, dayNumber)
	}

	doc, ok := utils.ExtractJSONObject(raw)
	if !ok {
		log.Println("No structured data in daily itinerary reply, using fallback")
		return FallbackDailyItinerary(trip, dayNumber)
	}

	var day db_models.DayPlan
	if err := json.Unmarshal(doc, &day); err != nil {
		log.Printf("Error decoding daily itinerary reply: %v", err)
		return FallbackDailyItinerary(trip, dayNumber)
	}
	if day.DayNumber == 0 {
		day.DayNumber = dayNumber
	}

	return day
}

func (p *PlannerService) GetRecommendations(ctx context.Context, destination string, interests []string) response_models.Recommendations {
	if p.aiClient == nil {
		log.Println("Text generation client not configured, using fallback recommendations")
		return FallbackRecommendations(destination, interests)
	}

	raw, err := p.aiClient.GenerateText(ctx, buildRecommendationsPrompt(destination, interests))
	if err != nil {
		log.Printf("Error getting travel recommendations: %v", err)
		return FallbackRecommendations(destination, interests)
	}

	doc, ok := utils.ExtractJSONObject(raw)
	if !ok {
		log.Println("No structured data in recommendations reply, using fallback")
		return FallbackRecommendations(destination, interests)
	}

	var recs response_models.Recommendations
	if err := json.Unmarshal(doc, &recs); err != nil {
		log.Printf("Error decoding recommendations reply: %v", err)
		return FallbackRecommendations(destination, interests)
	}
	if recs.Destination == "" {
		recs.Destination = destination
	}

	return recs
}

func buildTripOptionsPrompt(trip TripContext) string {
	var prompt strings.Builder

	prompt.WriteString("You are an expert travel planner. Create 3 different trip options for the following trip details:\n\n")
	fmt.Fprintf(&prompt, "Destination: %s\n", trip.Destination)
	fmt.Fprintf(&prompt, "Duration: %d days\n", trip.DurationDays)
	fmt.Fprintf(&prompt, "Budget: %.0f %s\n", trip.TotalBudget, trip.Currency)
	fmt.Fprintf(&prompt, "Travelers: %d\n", trip.Travelers)
	fmt.Fprintf(&prompt, "Interests: %s\n", strings.Join(trip.Themes, ", "))
	fmt.Fprintf(&prompt, "Start Date: %s\n", trip.StartDate.Format("2006-01-02"))
	fmt.Fprintf(&prompt, "End Date: %s\n", trip.EndDate.Format("2006-01-02"))
	if trip.SpecialRequirements != "" {
		fmt.Fprintf(&prompt, "Special requirements: %s\n", trip.SpecialRequirements)
	}

	prompt.WriteString(`
Please create 3 options:
1. Adventure-focused option
2. Cultural/Heritage-focused option
3. Balanced option (mix of both)

For each option provide an option name and theme, a brief description, a daily
itinerary with activities, meals and accommodation suggestions, estimated
costs, and key highlights.

Return the response as a JSON array with the following structure:
[
  {
    "option_name": "Adventure Explorer",
    "theme": "adventure",
    "description": "Thrilling adventure activities...",
    "daily_itineraries": [
      {
        "day_number": 1,
        "date": "2024-01-01",
        "daily_budget": 5000,
        "activities": [
          {"time": "09:00", "activity": "Trekking to scenic viewpoint", "location": "Mountain Trail", "duration": "3 hours", "cost": 2000, "description": "Moderate difficulty trek", "category": "Adventure"}
        ],
        "meals": [
          {"meal_type": "Breakfast", "restaurant": "Mountain View Cafe", "cost": 500, "cuisine": "Local"}
        ],
        "accommodation": {"name": "Adventure Lodge", "type": "Budget", "cost": 3000, "location": "Near trailhead"},
        "transport": {"mode": "Car", "cost": 1000, "duration": "1 hour", "route": "Hotel to trailhead"}
      }
    ],
    "total_cost": 25000,
    "highlights": ["Trekking", "Rock climbing", "Nature photography"]
  }
]

Return JSON only. No comments, no markdown.
`)

	return prompt.String()
}

func buildDailyItineraryPrompt(trip TripContext, dayNumber int) string {
	duration := trip.DurationDays
	if duration < 1 {
		duration = 1
	}

	var prompt strings.Builder

	fmt.Fprintf(&prompt, "Create a detailed daily itinerary for Day %d of a trip to %s.\n\n", dayNumber, trip.Destination)
	prompt.WriteString("Trip Details:\n")
	fmt.Fprintf(&prompt, "- Destination: %s\n", trip.Destination)
	fmt.Fprintf(&prompt, "- Budget per day: %.0f %s\n", trip.TotalBudget/float64(duration), trip.Currency)
	fmt.Fprintf(&prompt, "- Travelers: %d\n", trip.Travelers)
	fmt.Fprintf(&prompt, "- Interests: %s\n", strings.Join(trip.Themes, ", "))
	fmt.Fprintf(&prompt, "- Date: %s\n", trip.StartDate.AddDate(0, 0, dayNumber-1).Format("2006-01-02"))

	prompt.WriteString(`
Provide a detailed schedule with time-based activities, restaurant
recommendations for meals, transportation details, an accommodation
suggestion, cost estimates, and local tips.

Return as JSON with the following structure:
{
  "day_number": 1,
  "date": "2024-01-01",
  "activities": [
    {"time": "09:00", "activity": "Activity name", "location": "Location", "duration": "2 hours", "cost": 1000, "description": "Detailed description", "category": "Category", "coordinates": {"lat": 28.6139, "lng": 77.209}}
  ],
  "meals": [
    {"meal_type": "Breakfast", "restaurant": "Restaurant name", "cost": 500, "cuisine": "Local", "location": "Location", "time": "08:00"}
  ],
  "accommodation": {"name": "Hotel name", "type": "Mid-range", "cost": 3000, "location": "Location", "amenities": ["WiFi", "AC"]},
  "transport": {"mode": "Taxi", "cost": 1000, "duration": "1 hour", "route": "Route description"},
  "daily_budget": 5000,
  "tips": ["Local tip 1", "Local tip 2"]
}

Return JSON only. No comments, no markdown.
`)

	return prompt.String()
}

func buildRecommendationsPrompt(destination string, interests []string) string {
	var prompt strings.Builder

	fmt.Fprintf(&prompt, "Provide comprehensive travel recommendations for %s based on these interests: %s.\n", destination, strings.Join(interests, ", "))
	prompt.WriteString(`
Include top attractions and activities, best restaurants and local cuisine,
accommodation recommendations, transportation options, the best time to
visit, local customs and tips, and budget estimates.

Return as JSON with the following structure:
{
  "destination": "` + destination + `",
  "attractions": [
    {"name": "Attraction name", "description": "Description", "category": "Category", "cost": 500, "duration": "2 hours", "best_time": "Morning", "coordinates": {"lat": 28.6139, "lng": 77.209}}
  ],
  "restaurants": [
    {"name": "Restaurant name", "cuisine": "Local", "cost_range": "Mid-range", "specialties": ["Dish 1"], "location": "Location"}
  ],
  "accommodation": [
    {"name": "Hotel name", "type": "Mid-range", "cost_range": "1000-3000 INR", "location": "Location", "amenities": ["WiFi", "AC"]}
  ],
  "transportation": {"airport": "Airport details", "local_transport": ["Taxi", "Bus", "Metro"], "tips": ["Transport tip 1"]},
  "best_time": "October to March",
  "budget_estimate": {"budget": "5000-8000 INR/day", "mid_range": "8000-15000 INR/day", "luxury": "15000+ INR/day"},
  "tips": ["Tip 1", "Tip 2", "Tip 3"]
}

Return JSON only. No comments, no markdown.
`)

	return prompt.String()
}
