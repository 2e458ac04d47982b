package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTextClient struct {
	reply string
	err   error
}

func (s *stubTextClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	return s.reply, s.err
}

func TestGenerateTripOptions_NilClient(t *testing.T) {
	planner := NewPlannerService(nil)
	trip := fiveDayContext()

	options := planner.GenerateTripOptions(context.Background(), trip)

	require.Len(t, options, 3)
	assert.Equal(t, "Cultural Heritage", options[0].OptionName)
	assert.Equal(t, "Adventure Explorer", options[1].OptionName)
	assert.Equal(t, "Balanced Experience", options[2].OptionName)
}

func TestGenerateTripOptions_ParsesProseWrappedReply(t *testing.T) {
	reply := `Here are the options you asked for:
[
  {"option_name": "Desert Safari", "theme": "adventure", "description": "Dunes and forts", "total_cost": 38000, "highlights": ["Camel ride"]},
  {"option_name": "Palace Circuit", "theme": "cultural", "description": "City palaces", "total_cost": 35000, "highlights": ["Amber Fort"]}
]
Have a great trip!`
	planner := NewPlannerService(&stubTextClient{reply: reply})

	options := planner.GenerateTripOptions(context.Background(), fiveDayContext())

	require.Len(t, options, 2)
	assert.Equal(t, "Desert Safari", options[0].OptionName)
	assert.Equal(t, "adventure", options[0].Theme)
	assert.InDelta(t, 38000, options[0].TotalCost, 0.001)
	assert.Equal(t, []string{"Amber Fort"}, options[1].Highlights)
}

func TestGenerateTripOptions_GarbageReplyFallsBack(t *testing.T) {
	planner := NewPlannerService(&stubTextClient{reply: "I cannot plan this trip, sorry."})

	options := planner.GenerateTripOptions(context.Background(), fiveDayContext())

	require.Len(t, options, 3)
	assert.Equal(t, "Cultural Heritage", options[0].OptionName)
}

func TestGenerateTripOptions_ClientErrorFallsBack(t *testing.T) {
	planner := NewPlannerService(&stubTextClient{err: errors.New("quota exceeded")})
	trip := fiveDayContext()

	options := planner.GenerateTripOptions(context.Background(), trip)

	require.Len(t, options, 3)
	assert.InDelta(t, trip.TotalBudget*0.9, options[1].TotalCost, 0.001)
}

func TestGenerateTripOptions_EmptyArrayFallsBack(t *testing.T) {
	planner := NewPlannerService(&stubTextClient{reply: "[]"})

	options := planner.GenerateTripOptions(context.Background(), fiveDayContext())

	require.Len(t, options, 3)
}

func TestGenerateDailyItinerary_ParsesReply(t *testing.T) {
	reply := "```json\n" + `{
  "day_number": 2,
  "date": "2026-03-02",
  "activities": [
    {"time": "10:00", "activity": "Fort walk", "location": "Amber Fort", "duration": "2 hours", "cost": 800, "category": "Cultural"}
  ],
  "meals": [
    {"meal_type": "Lunch", "restaurant": "LMB", "cost": 600, "cuisine": "Rajasthani"}
  ],
  "daily_budget": 7000,
  "tips": ["Go early"]
}` + "\n```"
	planner := NewPlannerService(&stubTextClient{reply: reply})

	day := planner.GenerateDailyItinerary(context.Background(), fiveDayContext(), 2)

	assert.Equal(t, 2, day.DayNumber)
	require.Len(t, day.Activities, 1)
	assert.Equal(t, "Fort walk", day.Activities[0].Activity)
	require.NotNil(t, day.DailyBudget)
	assert.InDelta(t, 7000, *day.DailyBudget, 0.001)
}

func TestGenerateDailyItinerary_FillsMissingDayNumber(t *testing.T) {
	planner := NewPlannerService(&stubTextClient{reply: `{"activities": [], "meals": []}`})

	day := planner.GenerateDailyItinerary(context.Background(), fiveDayContext(), 4)

	assert.Equal(t, 4, day.DayNumber)
}

func TestGenerateDailyItinerary_NilClient(t *testing.T) {
	planner := NewPlannerService(nil)

	day := planner.GenerateDailyItinerary(context.Background(), fiveDayContext(), 1)

	assert.Equal(t, 1, day.DayNumber)
	require.NotNil(t, day.DailyBudget)
	assert.InDelta(t, 5000, *day.DailyBudget, 0.001)
}

func TestGetRecommendations_ParsesReply(t *testing.T) {
	reply := `{
  "destination": "Jaipur",
  "attractions": [{"name": "Hawa Mahal", "category": "Heritage", "cost": 200}],
  "restaurants": [{"name": "LMB", "cuisine": "Rajasthani", "cost_range": "Mid-range"}],
  "best_time": "October to March",
  "tips": ["Carry water"]
}`
	planner := NewPlannerService(&stubTextClient{reply: reply})

	recs := planner.GetRecommendations(context.Background(), "Jaipur", []string{"heritage"})

	assert.Equal(t, "Jaipur", recs.Destination)
	require.Len(t, recs.Attractions, 1)
	assert.Equal(t, "Hawa Mahal", recs.Attractions[0].Name)
	assert.Equal(t, "October to March", recs.BestTime)
}

func TestGetRecommendations_FillsMissingDestination(t *testing.T) {
	planner := NewPlannerService(&stubTextClient{reply: `{"tips": ["Book ahead"]}`})

	recs := planner.GetRecommendations(context.Background(), "Udaipur", nil)

	assert.Equal(t, "Udaipur", recs.Destination)
	assert.Equal(t, []string{"Book ahead"}, recs.Tips)
}

func TestGetRecommendations_ErrorFallsBack(t *testing.T) {
	planner := NewPlannerService(&stubTextClient{err: errors.New("timeout")})

	recs := planner.GetRecommendations(context.Background(), "Udaipur", nil)

	assert.Equal(t, "Udaipur", recs.Destination)
	require.Len(t, recs.Attractions, 1)
	assert.Equal(t, "Main attraction", recs.Attractions[0].Name)
}
