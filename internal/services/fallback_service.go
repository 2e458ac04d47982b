package services

import (
	"fmt"
	"time"

	"tripwise/internal/models/db_models"
	"tripwise/internal/models/response_models"
)

// Deterministic itinerary content used whenever the text model is absent or
// its reply cannot be used. Pure functions of the trip context, so they are
// exercised directly by tests as well as through the planner.

var fallbackDayActivities = [5][2]string{
	{"City Center Exploration", "Local Market Visit"},
	{"Historical Monuments Tour", "Art Gallery Visit"},
	{"Beach Activities", "Water Sports"},
	{"Mountain Hiking", "Scenic Viewpoints"},
	{"Cultural Village Tour", "Traditional Crafts Workshop"},
}

var fallbackDayMeals = [5][3]string{
	{"Sunrise Cafe", "Heritage Restaurant", "Rooftop Bistro"},
	{"Local Dhaba", "Traditional Kitchen", "Garden Restaurant"},
	{"Beachside Cafe", "Seafood Shack", "Sunset Bar"},
	{"Mountain Lodge", "Forest Cafe", "Campfire Dinner"},
	{"Village Kitchen", "Artisan Bakery", "Cultural Center"},
}

var fallbackDayLocations = [5][3]string{
	{"Downtown Area", "Historic Quarter", "City Center"},
	{"Old Town", "Cultural District", "Heritage Zone"},
	{"Beachfront", "Coastal Area", "Marina District"},
	{"Mountain Region", "Hill Station", "Nature Reserve"},
	{"Rural Village", "Artisan Quarter", "Traditional Area"},
}

// FallbackDayPlans builds one DayPlan per trip day, cycling through the five
// fixed theme sets. Costs are fixed fractions of the even per-day budget
// share B = total/duration; the daily_budget itself drifts as B×(0.8+0.1×day),
// intentionally crossing the nominal share on longer trips.
func FallbackDayPlans(trip TripContext) []db_models.DayPlan {
	duration := trip.DurationDays
	if duration < 1 {
		duration = 1
	}
	perDay := trip.TotalBudget / float64(duration)

	days := make([]db_models.DayPlan, 0, duration)
	for day := 1; day <= duration; day++ {
		idx := (day - 1) % len(fallbackDayActivities)
		date := trip.StartDate.AddDate(0, 0, day-1)
		budget := perDay * (0.8 + 0.1*float64(day))

		days = append(days, db_models.DayPlan{
			DayNumber:   day,
			Date:        date.Format(time.RFC3339),
			DailyBudget: &budget,
			Activities: []db_models.Activity{
				{
					Time:        "09:00",
					Activity:    fmt.Sprintf("%s - Day %d", fallbackDayActivities[idx][0], day),
					Location:    fmt.Sprintf("%s, %s", fallbackDayLocations[idx][0], trip.Destination),
					Duration:    "4 hours",
					Cost:        perDay * 0.3,
					Description: fmt.Sprintf("Discover the highlights of %s on day %d", trip.Destination, day),
					Category:    "Sightseeing",
				},
				{
					Time:        "14:00",
					Activity:    fmt.Sprintf("%s - Day %d", fallbackDayActivities[idx][1], day),
					Location:    fmt.Sprintf("%s, %s", fallbackDayLocations[idx][1], trip.Destination),
					Duration:    "3 hours",
					Cost:        perDay * 0.2,
					Description: fmt.Sprintf("Immerse in local culture and traditions on day %d", day),
					Category:    "Cultural",
				},
			},
			Meals: []db_models.Meal{
				{
					MealType:   "Breakfast",
					Restaurant: fmt.Sprintf("%s in %s", fallbackDayMeals[idx][0], trip.Destination),
					Cost:       perDay * 0.1,
					Cuisine:    "Local",
					Location:   fmt.Sprintf("%s, %s", fallbackDayLocations[idx][0], trip.Destination),
					Time:       "08:00",
				},
				{
					MealType:   "Lunch",
					Restaurant: fmt.Sprintf("%s in %s", fallbackDayMeals[idx][1], trip.Destination),
					Cost:       perDay * 0.15,
					Cuisine:    "Local specialties",
					Location:   fmt.Sprintf("%s, %s", fallbackDayLocations[idx][1], trip.Destination),
					Time:       "13:00",
				},
				{
					MealType:   "Dinner",
					Restaurant: fmt.Sprintf("%s in %s", fallbackDayMeals[idx][2], trip.Destination),
					Cost:       perDay * 0.2,
					Cuisine:    "Local & International",
					Location:   fmt.Sprintf("%s, %s", fallbackDayLocations[idx][2], trip.Destination),
					Time:       "19:00",
				},
			},
			Accommodation: &db_models.Accommodation{
				Name:      fmt.Sprintf("Day %d Hotel in %s", day, trip.Destination),
				Type:      "Mid-range",
				Cost:      perDay * 0.4,
				Location:  fmt.Sprintf("%s, %s", fallbackDayLocations[idx][0], trip.Destination),
				Amenities: []string{"WiFi", "AC", "Restaurant", "Room Service"},
			},
			Transport: &db_models.Transport{
				Mode:     "Taxi/Private Car",
				Cost:     perDay * 0.1,
				Duration: "2 hours",
				Route:    fmt.Sprintf("Day %d city tour of %s", day, trip.Destination),
			},
			Tips: []string{
				fmt.Sprintf("Best time to visit attractions in %s on day %d", trip.Destination, day),
				"Local customs and etiquette",
			},
		})
	}

	return days
}

// FallbackTripOptions returns the three fixed-theme options. They share one
// generated day list and differ only in cost multiplier and highlights.
func FallbackTripOptions(trip TripContext) []response_models.TripOptionDraft {
	days := FallbackDayPlans(trip)

	return []response_models.TripOptionDraft{
		{
			OptionName:       "Cultural Heritage",
			Theme:            "cultural",
			Description:      "Explore the rich cultural heritage and historical sites",
			DailyItineraries: days,
			TotalCost:        trip.TotalBudget * 0.8,
			Highlights:       []string{"Historical sites", "Local culture", "Traditional food"},
		},
		{
			OptionName:       "Adventure Explorer",
			Theme:            "adventure",
			Description:      "Thrilling adventure activities and outdoor experiences",
			DailyItineraries: days,
			TotalCost:        trip.TotalBudget * 0.9,
			Highlights:       []string{"Adventure sports", "Nature trails", "Outdoor activities"},
		},
		{
			OptionName:       "Balanced Experience",
			Theme:            "balanced",
			Description:      "Perfect mix of culture, adventure, and relaxation",
			DailyItineraries: days,
			TotalCost:        trip.TotalBudget * 0.85,
			Highlights:       []string{"Cultural sites", "Moderate adventure", "Local experiences"},
		},
	}
}

// FallbackDailyItinerary is the single-day stand-in used when regeneration of
// one day fails.
func FallbackDailyItinerary(trip TripContext, dayNumber int) db_models.DayPlan {
	budget := 5000.0

	return db_models.DayPlan{
		DayNumber:   dayNumber,
		Date:        trip.StartDate.Format(time.RFC3339),
		DailyBudget: &budget,
		Activities: []db_models.Activity{
			{
				Time:        "09:00",
				Activity:    "City exploration",
				Location:    "City center",
				Duration:    "3 hours",
				Cost:        1000,
				Description: "Explore the main attractions",
				Category:    "Sightseeing",
			},
		},
		Meals: []db_models.Meal{
			{
				MealType:   "Breakfast",
				Restaurant: "Local restaurant",
				Cost:       500,
				Cuisine:    "Local",
			},
		},
		Accommodation: &db_models.Accommodation{
			Name:     "Local hotel",
			Type:     "Mid-range",
			Cost:     3000,
			Location: "City center",
		},
	}
}

func FallbackRecommendations(destination string, interests []string) response_models.Recommendations {
	return response_models.Recommendations{
		Destination: destination,
		Attractions: []response_models.AttractionRecommendation{
			{
				Name:        "Main attraction",
				Description: "Popular tourist spot",
				Category:    "Sightseeing",
				Cost:        500,
			},
		},
		Restaurants: []response_models.RestaurantRecommendation{
			{
				Name:      "Local restaurant",
				Cuisine:   "Local",
				CostRange: "Mid-range",
			},
		},
		Accommodation: []response_models.AccommodationRecommendation{
			{
				Name:      "Local hotel",
				Type:      "Mid-range",
				CostRange: "3000-5000 INR",
			},
		},
		Tips: []string{"Plan ahead", "Book in advance", "Try local food"},
	}
}
