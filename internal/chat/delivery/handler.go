package delivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ChatService answers a user message with optional mission context.
// Provider failures surface as fallback strings, never errors.
type ChatService interface {
	GetChatResponse(ctx context.Context, message, contextData string) string
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
	Context string `json:"context"`
}

type ChatHandler struct {
	chatService ChatService
}

func NewChatHandler(chatService ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Chat proxies a message to the AI assistant.
// POST /api/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	response := h.chatService.GetChatResponse(c.Request.Context(), req.Message, req.Context)
	c.JSON(http.StatusOK, gin.H{"response": response})
}
