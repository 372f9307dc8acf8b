package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"king_backend/internal/services"
	"king_backend/pkg/utils"
)

// SaleHandler holds the sale service.
type SaleHandler struct {
	saleService services.SaleService
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(ss services.SaleService) *SaleHandler {
	return &SaleHandler{saleService: ss}
}

// CreateSale handles POST /inserir-venda. A failed sale leaves nothing behind
// and the underlying error is reported in the problem detail.
func (h *SaleHandler) CreateSale(c *gin.Context) {
	var req services.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateSale: Failed to bind JSON")
		utils.RespondProblem(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if _, err := h.saleService.CreateSale(c.Request.Context(), req); err != nil {
		utils.LogError(err, "CreateSale: Error from saleService.CreateSale")
		utils.RespondProblem(c, http.StatusInternalServerError, "Erro ao registrar venda: "+err.Error())
		return
	}
	utils.RespondMessage(c, http.StatusOK, "Venda registrada com sucesso.")
}

// GetSaleByID handles GET /consultar-venda/:id.
func (h *SaleHandler) GetSaleByID(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.RespondProblem(c, http.StatusBadRequest, "Invalid sale ID: "+err.Error())
		return
	}

	sale, err := h.saleService.GetSaleByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrSaleNotFound) {
			utils.RespondMessage(c, http.StatusNotFound, "Venda não encontrada.")
			return
		}
		utils.LogError(err, "GetSaleByID: Error from saleService.GetSaleByID")
		utils.RespondProblem(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, sale)
}
