package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"globehopper/internal/models/db_models"
	"globehopper/internal/models/request_models"
	"globehopper/internal/services"
	"globehopper/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{itineraryService: itineraryService}
}

func (i *ItineraryController) DayViewHandler(c *gin.Context) {
	date := c.Param("date")
	if _, err := utils.ParseISODate(date); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Date must be YYYY-MM-DD")
		return
	}
	utils.RespondSuccess(c, i.itineraryService.DayView(date), "")
}

func (i *ItineraryController) SetAccommodationHandler(c *gin.Context) {
	date := c.Param("date")
	if _, err := utils.ParseISODate(date); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Date must be YYYY-MM-DD")
		return
	}

	var req request_models.AccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, "Accommodation name is required")
		return
	}

	acc := db_models.Accommodation{Name: req.Name, Lat: req.Lat, Lon: req.Lon}
	if err := i.itineraryService.SetAccommodation(c.Request.Context(), date, acc); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, i.itineraryService.DayView(date), "Accommodation saved")
}

func (i *ItineraryController) RemoveAccommodationHandler(c *gin.Context) {
	date := c.Param("date")
	if err := i.itineraryService.RemoveAccommodation(c.Request.Context(), date); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Accommodation removed")
}
