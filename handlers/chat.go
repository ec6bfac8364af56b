package handlers

import (
	"errors"
	"net/http"
	"strconv"

	chatlogRepo "atelier/database/repository/chatlog"
	"atelier/services/chat"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatHandler exposes the visitor concierge and the admin transcript views.
type ChatHandler struct {
	Svc chat.ChatService
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(svc chat.ChatService) *ChatHandler {
	return &ChatHandler{Svc: svc}
}

// MessageHandler answers a visitor message. A missing visitorId starts a new
// conversation; the assigned ID is echoed back for the client to keep.
func (h *ChatHandler) MessageHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		VisitorID string `json:"visitorId"`
		Message   string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
		return
	}
	if req.VisitorID == "" {
		req.VisitorID = uuid.New().String()
	}

	reply, err := h.Svc.Respond(c.Request.Context(), req.VisitorID, req.Message)
	if err != nil {
		logger.Error("chat respond failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Chat unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "visitorId": req.VisitorID, "reply": reply})
}

// ListChatsHandler returns recent conversations for admin review.
func (h *ChatHandler) ListChatsHandler(c *gin.Context) {
	logger := getLogger(c)

	limit := int64(20)
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.ParseInt(l, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	conversations, err := h.Svc.ListRecent(c.Request.Context(), limit)
	if err != nil {
		logger.Error("failed to list conversations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Could not list conversations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "conversations": conversations})
}

// GetChatHandler returns a single visitor transcript.
func (h *ChatHandler) GetChatHandler(c *gin.Context) {
	logger := getLogger(c)

	conv, err := h.Svc.GetTranscript(c.Request.Context(), c.Param("visitorID"))
	if err != nil {
		if errors.Is(err, chatlogRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Conversation not found"})
			return
		}
		logger.Error("failed to fetch transcript", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Could not fetch transcript"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "conversation": conv})
}
