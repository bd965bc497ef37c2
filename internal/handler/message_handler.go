package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"gefen_backend/internal/model"
	"gefen_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MessageHandler handles contact message requests
type MessageHandler struct {
	service service.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(s service.MessageService) *MessageHandler {
	return &MessageHandler{service: s}
}

// CreateMessage accepts a contact-form submission from any visitor
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var req model.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	message, err := h.service.CreateMessage(c.Request.Context(), req)
	if err != nil {
		slog.Error("failed to create message", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create message"})
		return
	}
	c.JSON(http.StatusCreated, message)
}

func (h *MessageHandler) ListMessages(c *gin.Context) {
	messages, err := h.service.ListMessages(c.Request.Context())
	if err != nil {
		slog.Error("failed to list messages", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *MessageHandler) GetMessageByID(c *gin.Context) {
	messageID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
		return
	}

	message, err := h.service.GetMessageByID(c.Request.Context(), messageID)
	if err != nil {
		if errors.Is(err, service.ErrMessageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			slog.Error("failed to get message by ID", "id", messageID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve message"})
		}
		return
	}
	c.JSON(http.StatusOK, message)
}

func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	messageID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
		return
	}

	if err := h.service.DeleteMessage(c.Request.Context(), messageID); err != nil {
		if errors.Is(err, service.ErrMessageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			slog.Error("failed to delete message", "id", messageID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}

// RegisterMessageRoutes registers message routes. Creation stays public so the
// site's contact form works without an account; everything else goes through
// the auth middleware.
func (h *MessageHandler) RegisterMessageRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/message", h.CreateMessage)

	adminRoutes := rg.Group("/message")
	adminRoutes.Use(authMW)
	{
		adminRoutes.GET("", h.ListMessages)
		adminRoutes.GET("/:id", h.GetMessageByID)
		adminRoutes.DELETE("/:id", h.DeleteMessage)
	}
}
