package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"king_backend/internal/models"
	"king_backend/internal/services"
	"king_backend/pkg/utils"
)

const msgProductNotFound = "Produto não encontrado."

// ProductHandler holds the product service.
type ProductHandler struct {
	productService services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(ps services.ProductService) *ProductHandler {
	return &ProductHandler{productService: ps}
}

// CreateProduct handles POST /inserir-produto.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		utils.LogError(err, "CreateProduct: Failed to bind JSON")
		utils.RespondProblem(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if _, err := h.productService.CreateProduct(c.Request.Context(), product); err != nil {
		utils.LogError(err, "CreateProduct: Error from productService.CreateProduct")
		utils.RespondProblem(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondMessage(c, http.StatusOK, "Produto inserido com sucesso.")
}

// GetProductByName handles GET /consultar-produto/:nome.
func (h *ProductHandler) GetProductByName(c *gin.Context) {
	view, err := h.productService.GetProductByName(c.Request.Context(), c.Param("nome"))
	if err != nil {
		h.respondLookupError(c, err, "GetProductByName")
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetStockByName handles GET /estoque/:nome.
func (h *ProductHandler) GetStockByName(c *gin.Context) {
	stock, err := h.productService.GetStockByName(c.Request.Context(), c.Param("nome"))
	if err != nil {
		h.respondLookupError(c, err, "GetStockByName")
		return
	}
	c.JSON(http.StatusOK, stock)
}

// GetProductByCode handles GET /consultar-produto-codigo/:codigo.
func (h *ProductHandler) GetProductByCode(c *gin.Context) {
	product, err := h.productService.GetProductByCode(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		h.respondLookupError(c, err, "GetProductByCode")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) respondLookupError(c *gin.Context, err error, op string) {
	if errors.Is(err, services.ErrProductNotFound) {
		utils.RespondMessage(c, http.StatusNotFound, msgProductNotFound)
		return
	}
	utils.LogError(err, op+": Error from productService")
	utils.RespondProblem(c, http.StatusInternalServerError, err.Error())
}
