package transport

import (
	"net/http"

	"github.com/greenwoodcity/portal-backend/internal/entity"
	"github.com/greenwoodcity/portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type BroadcastHandler struct {
	broadcaster service.Broadcaster
}

func NewBroadcastHandler(broadcaster service.Broadcaster) *BroadcastHandler {
	return &BroadcastHandler{broadcaster: broadcaster}
}

// Broadcast sends an ad-hoc notification to every matching subscriber and
// reports per-subscription outcomes.
func (h *BroadcastHandler) Broadcast(c *gin.Context) {
	var req entity.BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payload := &entity.NotificationPayload{
		Title: req.Title,
		Body:  req.Body,
		Icon:  req.Icon,
		Badge: req.Badge,
		Data:  req.Data,
	}

	result, err := h.broadcaster.Broadcast(c.Request.Context(), payload, &entity.BroadcastFilter{Device: req.Device})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
