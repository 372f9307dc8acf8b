package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"king_backend/internal/services"
	"king_backend/pkg/utils"
)

// PurchaseHandler holds the purchase service.
type PurchaseHandler struct {
	purchaseService services.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(ps services.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: ps}
}

// CreatePurchase handles POST /inserir-compra.
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	var req services.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreatePurchase: Failed to bind JSON")
		utils.RespondProblem(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if _, err := h.purchaseService.CreatePurchase(c.Request.Context(), req); err != nil {
		utils.LogError(err, "CreatePurchase: Error from purchaseService.CreatePurchase")
		utils.RespondProblem(c, http.StatusInternalServerError, "Erro ao registrar compra: "+err.Error())
		return
	}
	utils.RespondMessage(c, http.StatusOK, "Compra registrada com sucesso.")
}

// GetPurchaseByID handles GET /consultar-compra/:id.
func (h *PurchaseHandler) GetPurchaseByID(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.RespondProblem(c, http.StatusBadRequest, "Invalid purchase ID: "+err.Error())
		return
	}

	purchase, err := h.purchaseService.GetPurchaseByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPurchaseNotFound) {
			utils.RespondMessage(c, http.StatusNotFound, "Compra não encontrada.")
			return
		}
		utils.LogError(err, "GetPurchaseByID: Error from purchaseService.GetPurchaseByID")
		utils.RespondProblem(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, purchase)
}
