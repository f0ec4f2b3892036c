package transport

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/greenwoodcity/portal-backend/internal/entity"
	"github.com/greenwoodcity/portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionService service.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	var req entity.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.UserAgent == "" {
		req.UserAgent = c.Request.UserAgent()
	}

	sub, err := h.subscriptionService.Subscribe(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidSubscription) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save subscription"})
		return
	}

	c.JSON(http.StatusCreated, sub)
}

func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	var req struct {
		Endpoint string `json:"endpoint"`
		ID       int64  `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.removeSubscription(c, req.Endpoint, req.ID)
}

func (h *SubscriptionHandler) UnsubscribeByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	h.removeSubscription(c, "", id)
}

func (h *SubscriptionHandler) removeSubscription(c *gin.Context, endpoint string, id int64) {
	err := h.subscriptionService.Unsubscribe(c.Request.Context(), endpoint, id)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrMissingIdentifier):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, entity.ErrSubscriptionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove subscription"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "unsubscribed"})
}

func (h *SubscriptionHandler) PublicKey(c *gin.Context) {
	key, err := h.subscriptionService.PublicKey()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"publicKey": key})
}
