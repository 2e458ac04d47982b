package tripfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripwise/internal/api/controllers"
	"tripwise/internal/repositories"
	"tripwise/internal/services"
)

var Module = fx.Provide(
	provideTripRepo,
	provideTripService,
	provideTripController)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	planner services.PlannerServiceInterface,
	places services.PlacesServiceInterface,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, planner, places)
}

func provideTripController(tripService services.TripServiceInterface) *controllers.TripController {
	return controllers.NewTripController(tripService)
}
