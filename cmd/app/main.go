package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripwise/cmd/fx/dbfx"
	"tripwise/cmd/fx/placesfx"
	"tripwise/cmd/fx/plannerfx"
	"tripwise/cmd/fx/tripfx"
	"tripwise/internal/api/controllers"
	"tripwise/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		dbfx.Module,
		plannerfx.Module,
		placesfx.Module,
		tripfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(tripController *controllers.TripController) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.NewRateLimiter().Limit())

	RegisterRoutes(r, tripController)

	return r
}

func RegisterRoutes(r *gin.Engine, tripController *controllers.TripController) {
	tripsGroup := r.Group("/trips")
	tripsGroup.POST("", tripController.CreateTrip)
	tripsGroup.GET("", tripController.ListTrips)
	tripsGroup.GET("/:tripId", tripController.GetTrip)
	tripsGroup.PUT("/:tripId", tripController.UpdateTrip)
	tripsGroup.DELETE("/:tripId", tripController.DeleteTrip)

	tripsGroup.POST("/:tripId/generate-options", tripController.GenerateOptions)
	tripsGroup.GET("/:tripId/options", tripController.GetOptions)
	tripsGroup.POST("/:tripId/select-option/:optionId", tripController.SelectOption)
	tripsGroup.GET("/:tripId/itinerary", tripController.GetItinerary)

	tripsGroup.POST("/:tripId/recommendations", tripController.GetRecommendations)
	tripsGroup.POST("/:tripId/places/search", tripController.SearchPlaces)
}
