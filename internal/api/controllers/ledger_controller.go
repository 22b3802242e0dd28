package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"globehopper/internal/models/request_models"
	"globehopper/internal/services"
	"globehopper/pkg/utils"
)

type LedgerController struct {
	ledgerService services.LedgerServiceInterface
}

func NewLedgerController(ledgerService services.LedgerServiceInterface) *LedgerController {
	return &LedgerController{ledgerService: ledgerService}
}

func (l *LedgerController) ListLedgerHandler(c *gin.Context) {
	utils.RespondSuccess(c, l.ledgerService.Ledger(), "")
}

func (l *LedgerController) AddLedgerEntryHandler(c *gin.Context) {
	var req request_models.AddLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	entry, err := l.ledgerService.AddEntry(c.Request.Context(), req.Note, req.Amount, req.Category)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, entry, "Expense added")
}

func (l *LedgerController) RemoveLedgerEntryHandler(c *gin.Context) {
	if err := l.ledgerService.RemoveEntry(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Expense removed")
}

func (l *LedgerController) ListShoppingHandler(c *gin.Context) {
	utils.RespondSuccess(c, l.ledgerService.ShoppingList(), "")
}

func (l *LedgerController) AddShoppingItemHandler(c *gin.Context) {
	var req request_models.AddShoppingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	item, err := l.ledgerService.AddShoppingItem(c.Request.Context(), req.Name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, item, "Item added")
}

func (l *LedgerController) ToggleShoppingItemHandler(c *gin.Context) {
	if err := l.ledgerService.ToggleShoppingItem(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, l.ledgerService.ShoppingList(), "Item toggled")
}

func (l *LedgerController) RemoveShoppingItemHandler(c *gin.Context) {
	if err := l.ledgerService.RemoveShoppingItem(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Item removed")
}
