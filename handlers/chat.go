package handlers

import (
	"net/http"

	"aptiva/models"
	ai "aptiva/services/intelligence"
	"aptiva/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the conversational assistant.
type ChatHandler struct {
	Assistant ai.AssistantService
}

func NewChatHandler(assistant ai.AssistantService) *ChatHandler {
	return &ChatHandler{Assistant: assistant}
}

// SendHandler processes one user turn and returns the assistant's reply.
func (h *ChatHandler) SendHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	userID := c.GetString("userID")
	resp, err := h.Assistant.ProcessTurn(req, userID)
	if err != nil {
		utils.GetLogger().Error("chat turn failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process message", err.Error())
		return
	}

	c.JSON(http.StatusOK, resp)
}
