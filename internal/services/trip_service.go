package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"tripwise/internal/models/db_models"
	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, req request_models.CreateTripRequest) (*response_models.TripResponse, error)
	GetTripByID(ctx context.Context, tripID string) (*response_models.TripResponse, error)
	UpdateTrip(ctx context.Context, tripID string, req request_models.UpdateTripRequest) (*response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, tripID string) error
	ListTrips(ctx context.Context, status string, skip, limit int) ([]response_models.TripResponse, error)

	GenerateOptions(ctx context.Context, tripID string) ([]response_models.TripOptionResponse, error)
	GetOptions(ctx context.Context, tripID string) ([]response_models.TripOptionResponse, error)
	SelectOption(ctx context.Context, tripID, optionID string) error
	GetItinerary(ctx context.Context, tripID string) ([]response_models.DailyItineraryResponse, error)

	GetRecommendations(ctx context.Context, tripID string) (*response_models.Recommendations, error)
	SearchPlaces(ctx context.Context, tripID string, req request_models.SearchPlacesRequest) (*response_models.SearchPlacesResponse, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
	planner  PlannerServiceInterface
	places   PlacesServiceInterface
}

func NewTripService(
	tripRepo repositories.TripRepository,
	planner PlannerServiceInterface,
	places PlacesServiceInterface,
) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
		planner:  planner,
		places:   places,
	}
}

func (s *TripService) CreateTrip(ctx context.Context, req request_models.CreateTripRequest) (*response_models.TripResponse, error) {
	if req.EndDate.Before(req.StartDate) {
		return nil, utils.ErrInvalidInput
	}

	trip := db_models.Trip{
		Destination:              req.Destination,
		StartDate:                req.StartDate,
		EndDate:                  req.EndDate,
		TotalBudget:              req.TotalBudget,
		Currency:                 defaultString(req.Currency, "INR"),
		Travelers:                req.Travelers,
		Themes:                   datatypes.NewJSONSlice(req.Themes),
		AccommodationPreference:  defaultString(req.AccommodationPreference, "mid-range"),
		TransportationPreference: defaultString(req.TransportationPreference, "mixed"),
		FoodPreference:           defaultString(req.FoodPreference, "mixed"),
		SpecialRequirements:      req.SpecialRequirements,
		Status:                   db_models.TripStatusDraft,
	}

	if err := s.tripRepo.CreateTrip(ctx, &trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return response_models.BuildTripResponse(&trip), nil
}

func (s *TripService) GetTripByID(ctx context.Context, tripID string) (*response_models.TripResponse, error) {
	trip, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	return response_models.BuildTripResponse(trip), nil
}

func (s *TripService) UpdateTrip(ctx context.Context, tripID string, req request_models.UpdateTripRequest) (*response_models.TripResponse, error) {
	trip, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	applyTripUpdate(trip, req)
	if trip.EndDate.Before(trip.StartDate) {
		return nil, utils.ErrInvalidInput
	}

	trip.UpdatedAt = time.Now().Unix()
	if err := s.tripRepo.SaveTrip(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return response_models.BuildTripResponse(trip), nil
}

func applyTripUpdate(trip *db_models.Trip, req request_models.UpdateTripRequest) {
	if req.Destination != nil {
		trip.Destination = *req.Destination
	}
	if req.StartDate != nil {
		trip.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		trip.EndDate = *req.EndDate
	}
	if req.TotalBudget != nil {
		trip.TotalBudget = *req.TotalBudget
	}
	if req.Currency != nil {
		trip.Currency = *req.Currency
	}
	if req.Travelers != nil {
		trip.Travelers = *req.Travelers
	}
	if req.Themes != nil {
		trip.Themes = datatypes.NewJSONSlice(*req.Themes)
	}
	if req.AccommodationPreference != nil {
		trip.AccommodationPreference = *req.AccommodationPreference
	}
	if req.TransportationPreference != nil {
		trip.TransportationPreference = *req.TransportationPreference
	}
	if req.FoodPreference != nil {
		trip.FoodPreference = *req.FoodPreference
	}
	if req.SpecialRequirements != nil {
		trip.SpecialRequirements = *req.SpecialRequirements
	}
	if req.Status != nil {
		trip.Status = *req.Status
	}
}

func (s *TripService) DeleteTrip(ctx context.Context, tripID string) error {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return utils.ErrTripNotFound
	}

	err = s.tripRepo.DeleteTripCascade(ctx, id)
	if err == utils.ErrTripNotFound {
		return err
	}
	if err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TripService) ListTrips(ctx context.Context, status string, skip, limit int) ([]response_models.TripResponse, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	trips, err := s.tripRepo.ListTrips(ctx, status, skip, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, *response_models.BuildTripResponse(&trips[i]))
	}
	return out, nil
}

// GenerateOptions runs the planner for the trip and appends the generated
// options; earlier generations are kept, not replaced.
func (s *TripService) GenerateOptions(ctx context.Context, tripID string) ([]response_models.TripOptionResponse, error) {
	trip, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	drafts := s.planner.GenerateTripOptions(ctx, NewTripContext(trip))

	options := make([]db_models.TripOption, 0, len(drafts))
	for _, draft := range drafts {
		totalCost := draft.TotalCost
		if totalCost == 0 {
			totalCost = trip.TotalBudget * 0.8
		}
		options = append(options, db_models.TripOption{
			TripID:           trip.ID,
			OptionName:       defaultString(draft.OptionName, "Generated Option"),
			Theme:            defaultString(draft.Theme, "balanced"),
			Description:      draft.Description,
			DailyItineraries: datatypes.NewJSONSlice(draft.DailyItineraries),
			TotalCost:        totalCost,
			Highlights:       datatypes.NewJSONSlice(draft.Highlights),
		})
	}

	if err := s.tripRepo.CreateOptions(ctx, options); err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripOptionResponse, 0, len(options))
	for i := range options {
		out = append(out, *response_models.BuildTripOptionResponse(&options[i]))
	}
	return out, nil
}

func (s *TripService) GetOptions(ctx context.Context, tripID string) ([]response_models.TripOptionResponse, error) {
	trip, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	options, err := s.tripRepo.ListOptionsByTripID(ctx, trip.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripOptionResponse, 0, len(options))
	for i := range options {
		out = append(out, *response_models.BuildTripOptionResponse(&options[i]))
	}
	return out, nil
}

func (s *TripService) SelectOption(ctx context.Context, tripID, optionID string) error {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return utils.ErrTripNotFound
	}
	oid, err := uuid.Parse(optionID)
	if err != nil {
		return utils.ErrOptionNotFound
	}

	err = s.tripRepo.SelectOptionAndMaterialize(ctx, id, oid)
	if err == utils.ErrTripNotFound || err == utils.ErrOptionNotFound {
		return err
	}
	if err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TripService) GetItinerary(ctx context.Context, tripID string) ([]response_models.DailyItineraryResponse, error) {
	trip, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	itineraries, err := s.tripRepo.ListItinerariesByTripID(ctx, trip.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.DailyItineraryResponse, 0, len(itineraries))
	for i := range itineraries {
		out = append(out, *response_models.BuildDailyItineraryResponse(&itineraries[i]))
	}
	return out, nil
}

func (s *TripService) GetRecommendations(ctx context.Context, tripID string) (*response_models.Recommendations, error) {
	trip, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	recs := s.planner.GetRecommendations(ctx, trip.Destination, trip.Themes)
	return &recs, nil
}

func (s *TripService) SearchPlaces(ctx context.Context, tripID string, req request_models.SearchPlacesRequest) (*response_models.SearchPlacesResponse, error) {
	trip, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	coords := s.places.Geocode(ctx, trip.Destination)
	places := s.places.SearchPlaces(ctx, req.Query, &coords, req.RadiusM, req.PlaceType)

	return &response_models.SearchPlacesResponse{
		Places:      places,
		Destination: trip.Destination,
	}, nil
}

func (s *TripService) loadTrip(ctx context.Context, tripID string) (*db_models.Trip, error) {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return nil, utils.ErrTripNotFound
	}

	trip, err := s.tripRepo.GetTripByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	return trip, nil
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
