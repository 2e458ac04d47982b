package placesfx

import (
	"go.uber.org/fx"

	"tripwise/internal/services"
)

var Module = fx.Provide(
	providePlacesService)

func providePlacesService() services.PlacesServiceInterface {
	return services.NewGoogleMapsClient()
}
