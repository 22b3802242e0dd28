package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"globehopper/internal/models/response_models"
	"globehopper/internal/services"
	"globehopper/pkg/utils"
)

type RatesController struct {
	rateService services.RateServiceInterface
}

func NewRatesController(rateService services.RateServiceInterface) *RatesController {
	return &RatesController{rateService: rateService}
}

func (r *RatesController) GetRateHandler(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameters 'from' and 'to' are required")
		return
	}

	rate, err := r.rateService.Rate(c.Request.Context(), from, to)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.RateResponse{From: from, To: to, Rate: rate}, "")
}
