package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"king_backend/internal/models"
	"king_backend/internal/services"
	"king_backend/pkg/utils"
)

// ClientHandler holds the client service.
type ClientHandler struct {
	clientService services.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(cs services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: cs}
}

// CreateClient handles POST /inserir-cliente.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		utils.LogError(err, "CreateClient: Failed to bind JSON")
		utils.RespondProblem(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if _, err := h.clientService.CreateClient(c.Request.Context(), client); err != nil {
		utils.LogError(err, "CreateClient: Error from clientService.CreateClient")
		utils.RespondProblem(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondMessage(c, http.StatusOK, "Cliente inserido com sucesso.")
}
