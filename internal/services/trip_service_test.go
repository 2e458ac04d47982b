package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"tripwise/internal/models/db_models"
	"tripwise/internal/models/request_models"
	"tripwise/pkg/utils"
)

// fakeTripRepo is an in-memory stand-in for the gorm repository, mirroring
// its contract: nil,nil on a missing trip, sentinel errors from the
// select-option transition.
type fakeTripRepo struct {
	trips       map[uuid.UUID]*db_models.Trip
	options     map[uuid.UUID][]db_models.TripOption
	itineraries map[uuid.UUID][]db_models.DailyItinerary
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{
		trips:       make(map[uuid.UUID]*db_models.Trip),
		options:     make(map[uuid.UUID][]db_models.TripOption),
		itineraries: make(map[uuid.UUID][]db_models.DailyItinerary),
	}
}

func (f *fakeTripRepo) CreateTrip(ctx context.Context, trip *db_models.Trip) error {
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	f.trips[trip.ID] = trip
	return nil
}

func (f *fakeTripRepo) GetTripByID(ctx context.Context, tripID uuid.UUID) (*db_models.Trip, error) {
	trip, ok := f.trips[tripID]
	if !ok {
		return nil, nil
	}
	copied := *trip
	copied.Options = f.options[tripID]
	return &copied, nil
}

func (f *fakeTripRepo) SaveTrip(ctx context.Context, trip *db_models.Trip) error {
	f.trips[trip.ID] = trip
	return nil
}

func (f *fakeTripRepo) DeleteTripCascade(ctx context.Context, tripID uuid.UUID) error {
	if _, ok := f.trips[tripID]; !ok {
		return utils.ErrTripNotFound
	}
	delete(f.trips, tripID)
	delete(f.options, tripID)
	delete(f.itineraries, tripID)
	return nil
}

func (f *fakeTripRepo) ListTrips(ctx context.Context, status string, skip, limit int) ([]db_models.Trip, error) {
	var out []db_models.Trip
	for _, trip := range f.trips {
		if status == "" || trip.Status == status {
			out = append(out, *trip)
		}
	}
	return out, nil
}

func (f *fakeTripRepo) CreateOptions(ctx context.Context, options []db_models.TripOption) error {
	for i := range options {
		if options[i].ID == uuid.Nil {
			options[i].ID = uuid.New()
		}
		f.options[options[i].TripID] = append(f.options[options[i].TripID], options[i])
	}
	return nil
}

func (f *fakeTripRepo) ListOptionsByTripID(ctx context.Context, tripID uuid.UUID) ([]db_models.TripOption, error) {
	return f.options[tripID], nil
}

func (f *fakeTripRepo) SelectOptionAndMaterialize(ctx context.Context, tripID, optionID uuid.UUID) error {
	trip, ok := f.trips[tripID]
	if !ok {
		return utils.ErrTripNotFound
	}

	var selected *db_models.TripOption
	for i := range f.options[tripID] {
		if f.options[tripID][i].ID == optionID {
			selected = &f.options[tripID][i]
			break
		}
	}
	if selected == nil {
		return utils.ErrOptionNotFound
	}

	selected.IsSelected = true

	days := selected.DailyItineraries
	rows := make([]db_models.DailyItinerary, 0, len(days))
	for _, day := range days {
		budget := trip.TotalBudget / float64(len(days))
		if day.DailyBudget != nil {
			budget = *day.DailyBudget
		}
		rows = append(rows, db_models.DailyItinerary{
			TripID:      tripID,
			DayNumber:   day.DayNumber,
			Date:        trip.StartDate,
			DailyBudget: budget,
			Activities:  datatypes.NewJSONSlice(day.Activities),
			Meals:       datatypes.NewJSONSlice(day.Meals),
		})
	}
	f.itineraries[tripID] = rows
	trip.Status = db_models.TripStatusPlanned
	return nil
}

func (f *fakeTripRepo) ListItinerariesByTripID(ctx context.Context, tripID uuid.UUID) ([]db_models.DailyItinerary, error) {
	return f.itineraries[tripID], nil
}

func newTestTripService(repo *fakeTripRepo) TripServiceInterface {
	return NewTripService(repo, NewPlannerService(nil), fallbackOnlyPlaces())
}

func fallbackOnlyPlaces() PlacesServiceInterface {
	return &GoogleMapsClient{APIKey: ""}
}

func createTripRequest() request_models.CreateTripRequest {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return request_models.CreateTripRequest{
		Destination: "Jaipur",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 4),
		TotalBudget: 50000,
		Travelers:   2,
		Themes:      []string{"cultural"},
	}
}

func TestCreateTrip(t *testing.T) {
	repo := newFakeTripRepo()
	svc := newTestTripService(repo)

	trip, err := svc.CreateTrip(context.Background(), createTripRequest())
	require.NoError(t, err)

	assert.Equal(t, db_models.TripStatusDraft, trip.Status)
	assert.Equal(t, "INR", trip.Currency)
	assert.Equal(t, "mid-range", trip.AccommodationPreference)
	assert.Equal(t, "mixed", trip.TransportationPreference)
	assert.Equal(t, 5, trip.DurationDays)
	assert.NotEmpty(t, trip.ID)
}

func TestCreateTrip_EndBeforeStart(t *testing.T) {
	svc := newTestTripService(newFakeTripRepo())

	req := createTripRequest()
	req.EndDate = req.StartDate.AddDate(0, 0, -1)

	_, err := svc.CreateTrip(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestGetTripByID_NotFound(t *testing.T) {
	svc := newTestTripService(newFakeTripRepo())

	_, err := svc.GetTripByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrTripNotFound)

	_, err = svc.GetTripByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestUpdateTrip_PartialFields(t *testing.T) {
	repo := newFakeTripRepo()
	svc := newTestTripService(repo)

	created, err := svc.CreateTrip(context.Background(), createTripRequest())
	require.NoError(t, err)

	budget := 75000.0
	status := db_models.TripStatusBooked
	updated, err := svc.UpdateTrip(context.Background(), created.ID, request_models.UpdateTripRequest{
		TotalBudget: &budget,
		Status:      &status,
	})
	require.NoError(t, err)

	assert.InDelta(t, 75000, updated.TotalBudget, 0.001)
	assert.Equal(t, db_models.TripStatusBooked, updated.Status)
	assert.Equal(t, "Jaipur", updated.Destination)
}

func TestDeleteTrip(t *testing.T) {
	repo := newFakeTripRepo()
	svc := newTestTripService(repo)

	created, err := svc.CreateTrip(context.Background(), createTripRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTrip(context.Background(), created.ID))

	_, err = svc.GetTripByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, utils.ErrTripNotFound)

	err = svc.DeleteTrip(context.Background(), created.ID)
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestGenerateOptions_PersistsFallbackDrafts(t *testing.T) {
	repo := newFakeTripRepo()
	svc := newTestTripService(repo)

	created, err := svc.CreateTrip(context.Background(), createTripRequest())
	require.NoError(t, err)

	options, err := svc.GenerateOptions(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, options, 3)

	assert.Equal(t, "Cultural Heritage", options[0].OptionName)
	assert.False(t, options[0].IsSelected)

	stored, err := svc.GetOptions(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 3)

	// A second generation appends rather than replaces.
	_, err = svc.GenerateOptions(context.Background(), created.ID)
	require.NoError(t, err)

	stored, err = svc.GetOptions(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 6)
}

func TestSelectOption(t *testing.T) {
	repo := newFakeTripRepo()
	svc := newTestTripService(repo)

	created, err := svc.CreateTrip(context.Background(), createTripRequest())
	require.NoError(t, err)

	options, err := svc.GenerateOptions(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, options, 3)

	t.Run("unknown option leaves the trip untouched", func(t *testing.T) {
		err := svc.SelectOption(context.Background(), created.ID, uuid.NewString())
		assert.ErrorIs(t, err, utils.ErrOptionNotFound)

		trip, err := svc.GetTripByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, db_models.TripStatusDraft, trip.Status)
		assert.Nil(t, trip.SelectedOption)
	})

	t.Run("selection materializes the itinerary", func(t *testing.T) {
		require.NoError(t, svc.SelectOption(context.Background(), created.ID, options[1].ID))

		trip, err := svc.GetTripByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, db_models.TripStatusPlanned, trip.Status)
		require.NotNil(t, trip.SelectedOption)
		assert.Equal(t, "Adventure Explorer", trip.SelectedOption.OptionName)

		itinerary, err := svc.GetItinerary(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Len(t, itinerary, 5)
	})

	t.Run("unknown trip", func(t *testing.T) {
		err := svc.SelectOption(context.Background(), uuid.NewString(), options[0].ID)
		assert.ErrorIs(t, err, utils.ErrTripNotFound)
	})
}

func TestGetRecommendations(t *testing.T) {
	repo := newFakeTripRepo()
	svc := newTestTripService(repo)

	created, err := svc.CreateTrip(context.Background(), createTripRequest())
	require.NoError(t, err)

	recs, err := svc.GetRecommendations(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jaipur", recs.Destination)
}

func TestSearchPlaces(t *testing.T) {
	repo := newFakeTripRepo()
	svc := newTestTripService(repo)

	created, err := svc.CreateTrip(context.Background(), createTripRequest())
	require.NoError(t, err)

	result, err := svc.SearchPlaces(context.Background(), created.ID, request_models.SearchPlacesRequest{
		Query: "street food",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jaipur", result.Destination)
	require.Len(t, result.Places, 2)
	assert.Equal(t, "Sample Street Food 1", result.Places[0].Name)
}
