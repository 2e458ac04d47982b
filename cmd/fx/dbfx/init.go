package dbfx

import (
	"context"
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripwise/internal/infra"
	"tripwise/internal/models/db_models"
)

var Module = fx.Provide(
	provideDB)

func provideDB(lc fx.Lifecycle) *gorm.DB {
	db := infra.InitPostgresql()

	if err := db.AutoMigrate(
		&db_models.Trip{},
		&db_models.TripOption{},
		&db_models.DailyItinerary{},
	); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})

	return db
}
