package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"globehopper/internal/models/request_models"
	"globehopper/internal/services"
	"globehopper/pkg/utils"
)

type PlannerController struct {
	plannerService   services.PlannerServiceInterface
	itineraryService services.ItineraryServiceInterface
}

func NewPlannerController(
	plannerService services.PlannerServiceInterface,
	itineraryService services.ItineraryServiceInterface,
) *PlannerController {
	return &PlannerController{
		plannerService:   plannerService,
		itineraryService: itineraryService,
	}
}

func (p *PlannerController) GenerateHandler(c *gin.Context) {
	var req request_models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := p.plannerService.Generate(c.Request.Context(), utils.GenerationMode(req.Mode))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Itinerary generated")
}

func (p *PlannerController) GuideHandler(c *gin.Context) {
	utils.RespondSuccess(c, p.itineraryService.Guide(), "")
}
