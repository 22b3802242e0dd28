package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"globehopper/internal/models/db_models"
	"globehopper/internal/models/request_models"
	"globehopper/internal/services"
	"globehopper/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{tripService: tripService}
}

func (t *TripController) GetTripHandler(c *gin.Context) {
	utils.RespondSuccess(c, t.tripService.GetTrip(), "")
}

func (t *TripController) UpdateTripHandler(c *gin.Context) {
	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	cfg := db_models.TripConfiguration{
		Origin:       req.Origin,
		Destinations: req.Destinations,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		DestCurrency: req.DestCurrency,
		HomeCurrency: req.HomeCurrency,
	}
	if err := t.tripService.UpdateTrip(c.Request.Context(), cfg); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, t.tripService.GetTrip(), "Trip updated")
}

func (t *TripController) UpdateNotesHandler(c *gin.Context) {
	var req request_models.UpdateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := t.tripService.UpdateNotes(c.Request.Context(), req.Notes); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Notes updated")
}

func (t *TripController) TripDaysHandler(c *gin.Context) {
	utils.RespondSuccess(c, t.tripService.TripDays(), "")
}
