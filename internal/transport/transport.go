package transport

import (
	"net/http"

	"github.com/greenwoodcity/portal-backend/internal/transport/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Subscription *SubscriptionHandler
	Broadcast    *BroadcastHandler
	Content      *ContentHandler
	Media        *MediaHandler
}

func InitRoutes(h *Handlers, jwtSecret, mediaDir string) *gin.Engine {

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(30))

	if mediaDir != "" {
		router.Static("/media", mediaDir)
	}

	api := router.Group("/api/v1")
	{
		push := api.Group("/push")
		{
			push.POST("/subscribe", h.Subscription.Subscribe)
			push.DELETE("/unsubscribe", h.Subscription.Unsubscribe)
			push.DELETE("/unsubscribe/:id", h.Subscription.UnsubscribeByID)
			push.GET("/public-key", h.Subscription.PublicKey)
		}

		news := api.Group("/news")
		{
			news.GET("", h.Content.ListNews)
			news.GET("/:id", h.Content.GetNews)
		}

		events := api.Group("/events")
		{
			events.GET("", h.Content.ListEvents)
			events.GET("/:id", h.Content.GetEvent)
		}

		announcements := api.Group("/announcements")
		{
			announcements.GET("", h.Content.ListAnnouncements)
			announcements.GET("/:id", h.Content.GetAnnouncement)
		}

		advertisements := api.Group("/advertisements")
		{
			advertisements.GET("", h.Content.ListAdvertisements)
			advertisements.GET("/:id", h.Content.GetAdvertisement)
		}

		policies := api.Group("/policies")
		{
			policies.GET("", h.Content.ListPolicies)
			policies.GET("/:id", h.Content.GetPolicy)
		}

		galleries := api.Group("/galleries")
		{
			galleries.GET("", h.Content.ListGalleries)
			galleries.GET("/:id", h.Content.GetGallery)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", h.Content.ListCategories)
			categories.GET("/:id", h.Content.GetCategory)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.Auth(jwtSecret))
		{
			admin.POST("/broadcast", h.Broadcast.Broadcast)
			admin.POST("/media", h.Media.Upload)

			admin.POST("/news", h.Content.CreateNews)
			admin.PUT("/news/:id", h.Content.UpdateNews)
			admin.DELETE("/news/:id", h.Content.DeleteNews)

			admin.POST("/events", h.Content.CreateEvent)
			admin.PUT("/events/:id", h.Content.UpdateEvent)
			admin.DELETE("/events/:id", h.Content.DeleteEvent)

			admin.POST("/announcements", h.Content.CreateAnnouncement)
			admin.PUT("/announcements/:id", h.Content.UpdateAnnouncement)
			admin.DELETE("/announcements/:id", h.Content.DeleteAnnouncement)

			admin.POST("/advertisements", h.Content.CreateAdvertisement)
			admin.PUT("/advertisements/:id", h.Content.UpdateAdvertisement)
			admin.DELETE("/advertisements/:id", h.Content.DeleteAdvertisement)

			admin.POST("/policies", h.Content.CreatePolicy)
			admin.PUT("/policies/:id", h.Content.UpdatePolicy)
			admin.DELETE("/policies/:id", h.Content.DeletePolicy)

			admin.POST("/galleries", h.Content.CreateGallery)
			admin.PUT("/galleries/:id", h.Content.UpdateGallery)
			admin.DELETE("/galleries/:id", h.Content.DeleteGallery)

			admin.POST("/categories", h.Content.CreateCategory)
			admin.PUT("/categories/:id", h.Content.UpdateCategory)
			admin.DELETE("/categories/:id", h.Content.DeleteCategory)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
