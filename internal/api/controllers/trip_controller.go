package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripwise/internal/models/request_models"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// CreateTrip godoc
// @Summary Create a trip
// @Description Create a new trip in draft status from destination, dates, budget and preferences
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip details"
// @Success 200 {object} response_models.TripResponse
// @Failure 400 {object} utils.APIResponse
// @Router /trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip payload: "+err.Error())
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip created successfully")
}

// GetTrip godoc
// @Summary Get a trip by ID
// @Description Fetch a single trip, including its selected option if one exists
// @Tags Trip
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} response_models.TripResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{tripId} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	trip, err := t.tripService.GetTripByID(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// UpdateTrip godoc
// @Summary Update a trip
// @Description Apply a partial update to a trip; only the provided fields change
// @Tags Trip
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.UpdateTripRequest true "Fields to update"
// @Success 200 {object} response_models.TripResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{tripId} [put]
func (t *TripController) UpdateTrip(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid update payload: "+err.Error())
		return
	}

	trip, err := t.tripService.UpdateTrip(c.Request.Context(), tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip updated successfully")
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Description Delete a trip together with its options and materialized itinerary
// @Tags Trip
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{tripId} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	if err := t.tripService.DeleteTrip(c.Request.Context(), tripID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

// ListTrips godoc
// @Summary List trips
// @Description Fetch trips with optional status filter and skip/limit pagination
// @Tags Trip
// @Accept json
// @Produce json
// @Param status query string false "Filter by trip status"
// @Param skip query int false "Number of trips to skip" default(0)
// @Param limit query int false "Maximum number of trips to return" default(100) maximum(100)
// @Success 200 {array} response_models.TripResponse
// @Router /trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	status := c.Query("status")

	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid skip value")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit value")
		return
	}

	trips, err := t.tripService.ListTrips(c.Request.Context(), status, skip, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// GenerateOptions godoc
// @Summary Generate itinerary options
// @Description Generate three themed itinerary options for the trip and store them alongside any earlier generations
// @Tags Trip
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {array} response_models.TripOptionResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{tripId}/generate-options [post]
func (t *TripController) GenerateOptions(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	options, err := t.tripService.GenerateOptions(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, options, "Trip options generated successfully")
}

// GetOptions godoc
// @Summary List itinerary options
// @Description Fetch every stored itinerary option for the trip in generation order
// @Tags Trip
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {array} response_models.TripOptionResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{tripId}/options [get]
func (t *TripController) GetOptions(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	options, err := t.tripService.GetOptions(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, options, "Trip options fetched successfully")
}

// SelectOption godoc
// @Summary Select an itinerary option
// @Description Mark the option as selected, materialize its days as the trip itinerary and move the trip to planned
// @Tags Trip
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param optionId path string true "Option ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{tripId}/select-option/{optionId} [post]
func (t *TripController) SelectOption(c *gin.Context) {
	tripID := c.Param("tripId")
	optionID := c.Param("optionId")
	if tripID == "" || optionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID and option ID are required")
		return
	}

	if err := t.tripService.SelectOption(c.Request.Context(), tripID, optionID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip option selected successfully")
}

// GetItinerary godoc
// @Summary Get the materialized itinerary
// @Description Fetch the trip's day-by-day itinerary ordered by day number
// @Tags Trip
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {array} response_models.DailyItineraryResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{tripId}/itinerary [get]
func (t *TripController) GetItinerary(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	itinerary, err := t.tripService.GetItinerary(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

// GetRecommendations godoc
// @Summary Get travel recommendations
// @Description Fetch attraction, restaurant, accommodation and transport recommendations for the trip's destination
// @Tags Trip
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} response_models.Recommendations
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{tripId}/recommendations [post]
func (t *TripController) GetRecommendations(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	recs, err := t.tripService.GetRecommendations(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, recs, "Recommendations fetched successfully")
}

// SearchPlaces godoc
// @Summary Search places near the trip destination
// @Description Geocode the trip destination and search for matching places around it
// @Tags Trip
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.SearchPlacesRequest true "Search query, optional place type and radius in meters"
// @Success 200 {object} response_models.SearchPlacesResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{tripId}/places/search [post]
func (t *TripController) SearchPlaces(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	var req request_models.SearchPlacesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid search payload: "+err.Error())
		return
	}

	places, err := t.tripService.SearchPlaces(c.Request.Context(), tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Places fetched successfully")
}
