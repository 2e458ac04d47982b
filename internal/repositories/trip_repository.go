package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	dbm "tripwise/internal/models/db_models"
	"tripwise/pkg/utils"
)

type TripRepository interface {
	CreateTrip(ctx context.Context, trip *dbm.Trip) error
	GetTripByID(ctx context.Context, tripID uuid.UUID) (*dbm.Trip, error)
	SaveTrip(ctx context.Context, trip *dbm.Trip) error
	DeleteTripCascade(ctx context.Context, tripID uuid.UUID) error
	ListTrips(ctx context.Context, status string, skip, limit int) ([]dbm.Trip, error)

	CreateOptions(ctx context.Context, options []dbm.TripOption) error
	ListOptionsByTripID(ctx context.Context, tripID uuid.UUID) ([]dbm.TripOption, error)
	SelectOptionAndMaterialize(ctx context.Context, tripID, optionID uuid.UUID) error

	ListItinerariesByTripID(ctx context.Context, tripID uuid.UUID) ([]dbm.DailyItinerary, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) CreateTrip(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) GetTripByID(ctx context.Context, tripID uuid.UUID) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("id = ?", tripID).
		Preload("Options").
		First(&trip).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepository) SaveTrip(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).
		Model(trip).
		Omit("Options", "Itineraries").
		Updates(map[string]interface{}{
			"destination":               trip.Destination,
			"start_date":                trip.StartDate,
			"end_date":                  trip.EndDate,
			"total_budget":              trip.TotalBudget,
			"currency":                  trip.Currency,
			"travelers":                 trip.Travelers,
			"themes":                    trip.Themes,
			"accommodation_preference":  trip.AccommodationPreference,
			"transportation_preference": trip.TransportationPreference,
			"food_preference":           trip.FoodPreference,
			"special_requirements":      trip.SpecialRequirements,
			"status":                    trip.Status,
		}).Error
}

// DeleteTripCascade removes the trip together with its options and
// materialized itineraries as one atomic unit.
func (r *tripRepository) DeleteTripCascade(ctx context.Context, tripID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var trip dbm.Trip
		if err := tx.First(&trip, "id = ?", tripID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrTripNotFound
			}
			return err
		}

		if err := tx.Where("trip_id = ?", tripID).
			Delete(&dbm.TripOption{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", tripID).
			Delete(&dbm.DailyItinerary{}).Error; err != nil {
			return err
		}
		return tx.Delete(&trip).Error
	})
}

func (r *tripRepository) ListTrips(ctx context.Context, status string, skip, limit int) ([]dbm.Trip, error) {
	query := r.db.WithContext(ctx).Model(&dbm.Trip{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var trips []dbm.Trip
	err := query.Offset(skip).Limit(limit).Find(&trips).Error
	if err != nil {
		return nil, err
	}

	return trips, nil
}

func (r *tripRepository) CreateOptions(ctx context.Context, options []dbm.TripOption) error {
	if len(options) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&options).Error
}

func (r *tripRepository) ListOptionsByTripID(ctx context.Context, tripID uuid.UUID) ([]dbm.TripOption, error) {
	var options []dbm.TripOption
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("created_at").
		Find(&options).Error
	if err != nil {
		return nil, err
	}

	return options, nil
}

// SelectOptionAndMaterialize flags the option as selected, replaces every
// materialized day of the trip with rows derived from the option's stored
// payload, and moves the trip to "planned". All steps run inside one
// transaction; a failure anywhere rolls the whole transition back.
//
// A previously selected sibling option keeps its flag. Re-selection only
// accumulates flags; the materialized rows always mirror the latest choice.
func (r *tripRepository) SelectOptionAndMaterialize(ctx context.Context, tripID, optionID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var trip dbm.Trip
		if err := tx.First(&trip, "id = ?", tripID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrTripNotFound
			}
			return err
		}

		var option dbm.TripOption
		if err := tx.First(&option, "id = ? AND trip_id = ?", optionID, tripID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrOptionNotFound
			}
			return err
		}

		if err := tx.Model(&option).Update("is_selected", true).Error; err != nil {
			return err
		}

		// Wipe previous materialized days
		if err := tx.Where("trip_id = ?", tripID).
			Delete(&dbm.DailyItinerary{}).Error; err != nil {
			return err
		}

		// Recreate from the option payload in stored order
		days := option.DailyItineraries
		rows := make([]dbm.DailyItinerary, 0, len(days))
		for _, day := range days {
			rows = append(rows, materializeDay(&trip, day, len(days)))
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}

		return tx.Model(&trip).Update("status", dbm.TripStatusPlanned).Error
	})
}

// materializeDay copies one embedded day payload into a DailyItinerary row,
// substituting the trip's start date and an even budget share for keys the
// payload left out.
func materializeDay(trip *dbm.Trip, day dbm.DayPlan, dayCount int) dbm.DailyItinerary {
	dayNumber := day.DayNumber
	if dayNumber == 0 {
		dayNumber = 1
	}

	date := trip.StartDate
	if day.Date != "" {
		if parsed, err := parseDayDate(day.Date); err == nil {
			date = parsed
		}
	}

	budget := trip.TotalBudget / float64(dayCount)
	if day.DailyBudget != nil {
		budget = *day.DailyBudget
	}

	var accommodation dbm.Accommodation
	if day.Accommodation != nil {
		accommodation = *day.Accommodation
	}
	var transport dbm.Transport
	if day.Transport != nil {
		transport = *day.Transport
	}

	return dbm.DailyItinerary{
		TripID:        trip.ID,
		DayNumber:     dayNumber,
		Date:          date,
		DailyBudget:   budget,
		Activities:    datatypes.NewJSONSlice(day.Activities),
		Meals:         datatypes.NewJSONSlice(day.Meals),
		Accommodation: datatypes.NewJSONType(accommodation),
		Transport:     datatypes.NewJSONType(transport),
	}
}

func parseDayDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func (r *tripRepository) ListItinerariesByTripID(ctx context.Context, tripID uuid.UUID) ([]dbm.DailyItinerary, error) {
	var itineraries []dbm.DailyItinerary
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("day_number").
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}

	return itineraries, nil
}
