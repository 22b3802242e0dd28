package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"globehopper/internal/models/request_models"
	"globehopper/internal/services"
	"globehopper/pkg/utils"
)

type CredentialController struct {
	plannerService services.PlannerServiceInterface
}

func NewCredentialController(plannerService services.PlannerServiceInterface) *CredentialController {
	return &CredentialController{plannerService: plannerService}
}

func (k *CredentialController) SetKeyHandler(c *gin.Context) {
	var req request_models.APIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := k.plannerService.SetAPIKey(c.Request.Context(), req.Key); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, k.plannerService.KeyStatus(), "API key saved")
}

func (k *CredentialController) ClearKeyHandler(c *gin.Context) {
	if err := k.plannerService.ClearAPIKey(c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, k.plannerService.KeyStatus(), "API key cleared")
}

func (k *CredentialController) KeyStatusHandler(c *gin.Context) {
	utils.RespondSuccess(c, k.plannerService.KeyStatus(), "")
}
