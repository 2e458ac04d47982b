package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"tripwise/internal/models/db_models"
	"tripwise/internal/models/response_models"
)

// PlacesServiceInterface proxies geocoding, nearby search and directions to
// the mapping provider. On a missing key or any call/decode failure every
// operation substitutes a deterministic placeholder; errors never leave this
// layer.
type PlacesServiceInterface interface {
	Geocode(ctx context.Context, address string) db_models.Coordinates
	SearchPlaces(ctx context.Context, query string, near *db_models.Coordinates, radiusM int, placeType string) []response_models.PlaceSummary
	GetDirections(ctx context.Context, origin, destination, mode string) response_models.RouteSummary
}

type GoogleMapsClient struct {
	HTTP   *http.Client
	APIKey string
}

func NewGoogleMapsClient() PlacesServiceInterface {
	key := os.Getenv("GOOGLE_MAPS_API_KEY")
	if key == "" {
		log.Println("Google Maps API key not configured, gateway will serve fallback data")
	}
	return &GoogleMapsClient{
		HTTP:   &http.Client{Timeout: 15 * time.Second},
		APIKey: key,
	}
}

func (c *GoogleMapsClient) get(ctx context.Context, path string, q url.Values, out interface{}) error {
	q.Set("key", c.APIKey)
	u := url.URL{
		Scheme:   "https",
		Host:     "maps.googleapis.com",
		Path:     path,
		RawQuery: q.Encode(),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("maps http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("maps bad status: %s", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *GoogleMapsClient) Geocode(ctx context.Context, address string) db_models.Coordinates {
	if c.APIKey == "" {
		return fallbackCoordinates()
	}

	q := url.Values{}
	q.Set("address", address)

	var payload struct {
		Results []struct {
			Geometry struct {
				Location db_models.Coordinates `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}
	if err := c.get(ctx, "/maps/api/geocode/json", q, &payload); err != nil {
		log.Printf("Error geocoding address: %v", err)
		return fallbackCoordinates()
	}
	if len(payload.Results) == 0 {
		return fallbackCoordinates()
	}

	return payload.Results[0].Geometry.Location
}

func (c *GoogleMapsClient) SearchPlaces(ctx context.Context, query string, near *db_models.Coordinates, radiusM int, placeType string) []response_models.PlaceSummary {
	if c.APIKey == "" {
		return fallbackSearchResults(query)
	}
	if radiusM <= 0 {
		radiusM = 5000
	}

	q := url.Values{}
	q.Set("keyword", query)
	if near != nil {
		q.Set("location", fmt.Sprintf("%f,%f", near.Lat, near.Lng))
	}
	q.Set("radius", strconv.Itoa(radiusM))
	if placeType != "" {
		q.Set("type", placeType)
	}

	var payload struct {
		Results []struct {
			PlaceID  string `json:"place_id"`
			Name     string `json:"name"`
			Vicinity string `json:"vicinity"`
			Geometry struct {
				Location db_models.Coordinates `json:"location"`
			} `json:"geometry"`
			Rating     float64  `json:"rating"`
			PriceLevel int      `json:"price_level"`
			Types      []string `json:"types"`
		} `json:"results"`
	}
	if err := c.get(ctx, "/maps/api/place/nearbysearch/json", q, &payload); err != nil {
		log.Printf("Error searching places: %v", err)
		return fallbackSearchResults(query)
	}

	places := make([]response_models.PlaceSummary, 0, len(payload.Results))
	for _, p := range payload.Results {
		places = append(places, response_models.PlaceSummary{
			PlaceID:          p.PlaceID,
			Name:             p.Name,
			FormattedAddress: p.Vicinity,
			Coordinates:      p.Geometry.Location,
			Rating:           p.Rating,
			PriceLevel:       p.PriceLevel,
			Types:            p.Types,
		})
	}
	return places
}

func (c *GoogleMapsClient) GetDirections(ctx context.Context, origin, destination, mode string) response_models.RouteSummary {
	if c.APIKey == "" {
		return fallbackDirections(origin, destination)
	}
	if mode == "" {
		mode = "driving"
	}

	q := url.Values{}
	q.Set("origin", origin)
	q.Set("destination", destination)
	q.Set("mode", mode)

	var payload struct {
		Routes []struct {
			Legs []struct {
				Distance     struct{ Text string } `json:"distance"`
				Duration     struct{ Text string } `json:"duration"`
				StartAddress string                `json:"start_address"`
				EndAddress   string                `json:"end_address"`
				Steps        []struct {
					HTMLInstructions string                `json:"html_instructions"`
					Distance         struct{ Text string } `json:"distance"`
					Duration         struct{ Text string } `json:"duration"`
					TravelMode       string                `json:"travel_mode"`
				} `json:"steps"`
			} `json:"legs"`
			OverviewPolyline struct {
				Points string `json:"points"`
			} `json:"overview_polyline"`
		} `json:"routes"`
	}
	if err := c.get(ctx, "/maps/api/directions/json", q, &payload); err != nil {
		log.Printf("Error getting directions: %v", err)
		return fallbackDirections(origin, destination)
	}
	if len(payload.Routes) == 0 || len(payload.Routes[0].Legs) == 0 {
		return fallbackDirections(origin, destination)
	}

	route := payload.Routes[0]
	leg := route.Legs[0]

	steps := make([]response_models.RouteStep, 0, len(leg.Steps))
	for _, s := range leg.Steps {
		steps = append(steps, response_models.RouteStep{
			Instruction: s.HTMLInstructions,
			Distance:    s.Distance.Text,
			Duration:    s.Duration.Text,
			TravelMode:  s.TravelMode,
		})
	}

	return response_models.RouteSummary{
		Distance:         leg.Distance.Text,
		Duration:         leg.Duration.Text,
		StartAddress:     leg.StartAddress,
		EndAddress:       leg.EndAddress,
		Steps:            steps,
		OverviewPolyline: route.OverviewPolyline.Points,
	}
}

func fallbackCoordinates() db_models.Coordinates {
	return db_models.Coordinates{Lat: 28.6139, Lng: 77.209}
}

func fallbackSearchResults(query string) []response_models.PlaceSummary {
	return []response_models.PlaceSummary{
		{
			PlaceID:          fmt.Sprintf("fallback_%s_1", query),
			Name:             fmt.Sprintf("Sample %s 1", titleCase(query)),
			FormattedAddress: "Sample Address 1",
			Coordinates:      db_models.Coordinates{Lat: 28.6139, Lng: 77.209},
			Rating:           4.0,
			PriceLevel:       2,
			Types:            []string{"establishment"},
		},
		{
			PlaceID:          fmt.Sprintf("fallback_%s_2", query),
			Name:             fmt.Sprintf("Sample %s 2", titleCase(query)),
			FormattedAddress: "Sample Address 2",
			Coordinates:      db_models.Coordinates{Lat: 28.6140, Lng: 77.210},
			Rating:           4.2,
			PriceLevel:       3,
			Types:            []string{"establishment"},
		},
	}
}

func fallbackDirections(origin, destination string) response_models.RouteSummary {
	return response_models.RouteSummary{
		Distance:     "5 km",
		Duration:     "15 minutes",
		StartAddress: origin,
		EndAddress:   destination,
		Steps: []response_models.RouteStep{
			{
				Instruction: fmt.Sprintf("Start from %s", origin),
				Distance:    "0 km",
				Duration:    "0 min",
				TravelMode:  "driving",
			},
			{
				Instruction: fmt.Sprintf("Drive to %s", destination),
				Distance:    "5 km",
				Duration:    "15 min",
				TravelMode:  "driving",
			},
		},
	}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
