package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Without an API key every operation serves its deterministic placeholder.
func TestGoogleMapsClient_FallbackPaths(t *testing.T) {
	client := &GoogleMapsClient{APIKey: ""}

	t.Run("geocode", func(t *testing.T) {
		coords := client.Geocode(context.Background(), "Jaipur, India")
		assert.InDelta(t, 28.6139, coords.Lat, 0.0001)
		assert.InDelta(t, 77.209, coords.Lng, 0.0001)
	})

	t.Run("search places", func(t *testing.T) {
		places := client.SearchPlaces(context.Background(), "street food", nil, 0, "")
		require.Len(t, places, 2)
		assert.Equal(t, "Sample Street Food 1", places[0].Name)
		assert.Equal(t, "fallback_street food_1", places[0].PlaceID)
		assert.InDelta(t, 4.0, places[0].Rating, 0.001)
		assert.Equal(t, "Sample Street Food 2", places[1].Name)
		assert.InDelta(t, 4.2, places[1].Rating, 0.001)
	})

	t.Run("directions", func(t *testing.T) {
		route := client.GetDirections(context.Background(), "Hotel", "Amber Fort", "")
		assert.Equal(t, "5 km", route.Distance)
		assert.Equal(t, "15 minutes", route.Duration)
		assert.Equal(t, "Hotel", route.StartAddress)
		assert.Equal(t, "Amber Fort", route.EndAddress)
		require.Len(t, route.Steps, 2)
		assert.Equal(t, "Start from Hotel", route.Steps[0].Instruction)
		assert.Equal(t, "Drive to Amber Fort", route.Steps[1].Instruction)
	})
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Street Food", titleCase("street food"))
	assert.Equal(t, "Museum", titleCase("museum"))
	assert.Equal(t, "", titleCase(""))
}
