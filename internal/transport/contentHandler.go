package transport

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/greenwoodcity/portal-backend/internal/entity"
	"github.com/greenwoodcity/portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentService service.ContentService
}

func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func respondContentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrContentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrCategoryAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// News

func (h *ContentHandler) ListNews(c *gin.Context) {
	news, err := h.contentService.ListNews(c.Request.Context())
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, news)
}

func (h *ContentHandler) GetNews(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	news, err := h.contentService.GetNews(c.Request.Context(), id)
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, news)
}

func (h *ContentHandler) CreateNews(c *gin.Context) {
	var req entity.NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	news, err := h.contentService.CreateNews(c.Request.Context(), &req)
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, news)
}

func (h *ContentHandler) UpdateNews(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req entity.NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	news, err := h.contentService.UpdateNews(c.Request.Context(), id, &req)
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, news)
}

func (h *ContentHandler) DeleteNews(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.contentService.DeleteNews(c.Request.Context(), id); err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// Events

func (h *ContentHandler) ListEvents(c *gin.Context) {
	events, err := h.contentService.ListEvents(c.Request.Context())
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *ContentHandler) GetEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	event, err := h.contentService.GetEvent(c.Request.Context(), id)
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *ContentHandler) CreateEvent(c *gin.Context) {
	var req entity.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.contentService.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

func (h *ContentHandler) UpdateEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req entity.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.contentService.UpdateEvent(c.Request.Context(), id, &req)
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *ContentHandler) DeleteEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.contentService.DeleteEvent(c.Request.Context(), id); err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// Announcements

func (h *ContentHandler) ListAnnouncements(c *gin.Context) {
	announcements, err := h.contentService.ListAnnouncements(c.Request.Context())
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, announcements)
}

func (h *ContentHandler) GetAnnouncement(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	announcement, err := h.contentService.GetAnnouncement(c.Request.Context(), id)
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, announcement)
}

func (h *ContentHandler) CreateAnnouncement(c *gin.Context) {
	var req entity.AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	announcement, err := h.contentService.CreateAnnouncement(c.Request.Context(), &req)
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, announcement)
}

func (h *ContentHandler) UpdateAnnouncement(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req entity.AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	announcement, err := h.contentService.UpdateAnnouncement(c.Request.Context(), id, &req)
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, announcement)
}

func (h *ContentHandler) DeleteAnnouncement(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.contentService.DeleteAnnouncement(c.Request.Context(), id); err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// Advertisements

func (h *ContentHandler) ListAdvertisements(c *gin.Context) {
	ads, err := h.contentService.ListAdvertisements(c.Request.Context())
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, ads)
}

func (h *ContentHandler) GetAdvertisement(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ad, err := h.contentService.GetAdvertisement(c.Request.Context(), id)
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, ad)
}

func (h *ContentHandler) CreateAdvertisement(c *gin.Context) {
	var req entity.AdvertisementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ad, err := h.contentService.CreateAdvertisement(c.Request.Context(), &req)
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ad)
}

func (h *ContentHandler) UpdateAdvertisement(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req entity.AdvertisementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ad, err := h.contentService.UpdateAdvertisement(c.Request.Context(), id, &req)
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, ad)
}

func (h *ContentHandler) DeleteAdvertisement(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.contentService.DeleteAdvertisement(c.Request.Context(), id); err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// Policies

func (h *ContentHandler) ListPolicies(c *gin.Context) {
	policies, err := h.contentService.ListPolicies(c.Request.Context())
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, policies)
}

func (h *ContentHandler) GetPolicy(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	policy, err := h.contentService.GetPolicy(c.Request.Context(), id)
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, policy)
}

func (h *ContentHandler) CreatePolicy(c *gin.Context) {
	var req entity.PolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	policy, err := h.contentService.CreatePolicy(c.Request.Context(), &req)
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, policy)
}

func (h *ContentHandler) UpdatePolicy(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req entity.PolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	policy, err := h.contentService.UpdatePolicy(c.Request.Context(), id, &req)
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, policy)
}

func (h *ContentHandler) DeletePolicy(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.contentService.DeletePolicy(c.Request.Context(), id); err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// Galleries

func (h *ContentHandler) ListGalleries(c *gin.Context) {
	if raw := c.Query("event_id"); raw != "" {
		eventID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || eventID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event_id"})
			return
		}
		galleries, err := h.contentService.ListEventGalleries(c.Request.Context(), eventID)
		if err != nil {
			respondContentError(c, err)
			return
		}
		c.JSON(http.StatusOK, galleries)
		return
	}

	galleries, err := h.contentService.ListGalleries(c.Request.Context())
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, galleries)
}

func (h *ContentHandler) GetGallery(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	gallery, err := h.contentService.GetGallery(c.Request.Context(), id)
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gallery)
}

func (h *ContentHandler) CreateGallery(c *gin.Context) {
	var req entity.GalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gallery, err := h.contentService.CreateGallery(c.Request.Context(), &req)
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gallery)
}

func (h *ContentHandler) UpdateGallery(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req entity.GalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gallery, err := h.contentService.UpdateGallery(c.Request.Context(), id, &req)
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gallery)
}

func (h *ContentHandler) DeleteGallery(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.contentService.DeleteGallery(c.Request.Context(), id); err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// Categories

func (h *ContentHandler) ListCategories(c *gin.Context) {
	categories, err := h.contentService.ListCategories(c.Request.Context())
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *ContentHandler) GetCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := h.contentService.GetCategory(c.Request.Context(), id)
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *ContentHandler) CreateCategory(c *gin.Context) {
	var req entity.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.contentService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *ContentHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req entity.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.contentService.UpdateCategory(c.Request.Context(), id, &req)
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *ContentHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.contentService.DeleteCategory(c.Request.Context(), id); err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
