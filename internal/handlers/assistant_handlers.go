package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"king_backend/internal/intent"
	"king_backend/internal/models"
	"king_backend/internal/services"
	"king_backend/pkg/utils"
)

const (
	slotProductName = "nomeProduto"
	slotInformation = "informacao"
	slotCode        = "codigo"

	msgNameNotUnderstood    = "Desculpe, não consegui entender o nome do produto."
	msgRequestNotUnderstood = "Desculpe, não consegui entender o que voce disse."
)

// AssistantHandler serves the voice-assistant skill.
type AssistantHandler struct {
	assistantService services.AssistantService
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(as services.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantService: as}
}

func endSession() *bool {
	v := true
	return &v
}

// CheckStock handles POST /alexa/verificar-estoque.
func (h *AssistantHandler) CheckStock(c *gin.Context) {
	var req models.AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CheckStock: Failed to bind JSON")
	}

	name := req.SlotValue(slotProductName)
	utils.LogDebug("Assistant stock question", map[string]interface{}{"product_name": name})
	if utils.IsEmpty(name) {
		c.JSON(http.StatusBadRequest, models.NewSpeech(msgNameNotUnderstood, endSession()))
		return
	}

	text, err := h.assistantService.CheckStock(c.Request.Context(), name)
	if err != nil {
		utils.LogError(err, "CheckStock: Error from assistantService.CheckStock")
		utils.RespondProblem(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, models.NewSpeech(text, endSession()))
}

// LookupProduct handles POST /alexa/buscar-produto.
func (h *AssistantHandler) LookupProduct(c *gin.Context) {
	var req models.AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "LookupProduct: Failed to bind JSON")
	}

	field := req.SlotValue(slotInformation)
	codeSlot := req.SlotValue(slotCode)
	utils.LogDebug("Assistant product question", map[string]interface{}{"informacao": field, "codigo": codeSlot})

	reply, err := h.assistantService.LookupProduct(c.Request.Context(), field, codeSlot)
	if err != nil {
		if errors.Is(err, intent.ErrNotUnderstood) {
			c.JSON(http.StatusBadRequest, models.NewSpeech(msgRequestNotUnderstood, nil))
			return
		}
		utils.LogError(err, "LookupProduct: Error from assistantService.LookupProduct")
		utils.RespondProblem(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, models.ProductLookupReply{Message: reply.Text, Code: reply.Code})
}
