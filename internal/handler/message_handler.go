package handler

import (
	"net/http"
	"time"

	"pulse-chat/internal/services"
	"pulse-chat/internal/transport/httpdto"
	"pulse-chat/pkg/events"
	"pulse-chat/pkg/logger"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	service   *services.MessageService
	publisher events.Publisher
	logger    *logger.Logger
}

func NewMessageHandler(service *services.MessageService, publisher events.Publisher, l *logger.Logger) *MessageHandler {
	return &MessageHandler{service: service, publisher: publisher, logger: l}
}

// AddMessage handles POST /addMessage. The request shape is checked first,
// then the extracted message is re-checked structurally before the save.
// A successful save publishes a messageUpdate event to all subscribers.
func (h *MessageHandler) AddMessage(c *gin.Context) {
	var req httpdto.AddMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Valid() {
		c.String(http.StatusBadRequest, "Invalid request")
		return
	}

	msg, err := req.MessageToAdd.ToDomain()
	if err != nil || !msg.Valid() {
		c.String(http.StatusBadRequest, "Invalid message")
		return
	}

	saved, err := h.service.Save(c.Request.Context(), msg)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to save message")
		return
	}

	// Fire-and-forget: a dead transport must not fail the request.
	if err := h.publisher.Publish(c.Request.Context(), events.ChannelMessages, events.Event{
		Type:      events.TypeMessageUpdate,
		Payload:   saved,
		Timestamp: time.Now().Unix(),
	}); err != nil {
		h.logger.Errorf("publishing message update: %v", err)
	}

	c.JSON(http.StatusOK, saved)
}

// GetMessages handles GET /getMessages. The service degrades read failures
// to an empty list, so this route effectively always answers 200.
func (h *MessageHandler) GetMessages(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c.Request.Context()))
}
