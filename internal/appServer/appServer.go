package appServer

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/greenwoodcity/portal-backend/config"
	repository "github.com/greenwoodcity/portal-backend/internal/database/postgres"
	cache "github.com/greenwoodcity/portal-backend/internal/database/redis"
	"github.com/greenwoodcity/portal-backend/internal/pkg/images"
	"github.com/greenwoodcity/portal-backend/internal/pkg/storage"
	"github.com/greenwoodcity/portal-backend/internal/push"
	"github.com/greenwoodcity/portal-backend/internal/seed"
	"github.com/greenwoodcity/portal-backend/internal/service"
	"github.com/greenwoodcity/portal-backend/internal/transport"
	"github.com/greenwoodcity/portal-backend/internal/worker"
	"github.com/greenwoodcity/portal-backend/pkg/postgres"
	"github.com/greenwoodcity/portal-backend/pkg/rabbitmq"
	"github.com/greenwoodcity/portal-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 3 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	db, err := postgres.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	// Repositories
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	eventRepo := repository.NewEventRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	advertisementRepo := repository.NewAdvertisementRepository(db)
	policyRepo := repository.NewPolicyRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)

	// Cache is optional, the portal serves from postgres without it.
	var contentCache *cache.ContentCache
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewRedisClient(&cfg.Redis)
		defer redisClient.Close()
		contentCache = cache.NewContentCache(redisClient, cfg.Redis.CacheTTL)
		logrus.Info("Content cache initialized")
	} else {
		logrus.Warn("Redis not configured, continuing without content cache")
	}

	// Push transport
	pushClient := push.NewClient(&cfg.VAPID, &cfg.Push)
	if !pushClient.Configured() {
		logrus.Warn("VAPID keys not configured, push delivery disabled")
	}

	broadcastService := service.NewBroadcastService(subscriptionRepo, pushClient)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, pushClient)
	notifier := service.NewNotifierService(broadcastService)

	// Content changes flow through RabbitMQ when available, otherwise the
	// notifier is driven directly.
	var publisher service.ChangePublisher
	var queue rabbitmq.Queue
	if cfg.RabbitMQ.Enabled && cfg.RabbitMQ.URL != "" {
		mq, err := rabbitmq.NewRabbitMQ(rabbitmq.Config{
			URL:       cfg.RabbitMQ.URL,
			QueueName: cfg.RabbitMQ.QueueName,
		})
		if err != nil {
			logrus.Errorf("Failed to initialize RabbitMQ: %v. Continuing without queue...", err)
		} else {
			queue = mq
			defer mq.Close()
			publisher = service.NewQueuePublisher(mq)
			logrus.Info("RabbitMQ queue initialized")
		}
	}
	if publisher == nil {
		publisher = service.NewDirectPublisher(notifier)
	}

	contentService := service.NewContentService(
		newsRepo,
		eventRepo,
		announcementRepo,
		advertisementRepo,
		policyRepo,
		galleryRepo,
		categoryRepo,
		contentCache,
		publisher,
	)

	fileStorage := storage.NewFileStorage(cfg.Media.StoragePath)
	compressor := images.NewCompressor(cfg.Media.MaxWidth, cfg.Media.Quality)
	mediaService := service.NewMediaService(fileStorage, compressor, cfg.App.BaseURL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Seed.Enabled {
		seeder := seed.NewSeeder(categoryRepo, newsRepo, eventRepo, announcementRepo)
		seeder.Run(ctx)
	}

	if queue != nil {
		notifyWorker := worker.NewNotifyWorker(queue, notifier)
		go notifyWorker.Start(ctx)
	}

	handlers := &transport.Handlers{
		Subscription: transport.NewSubscriptionHandler(subscriptionService),
		Broadcast:    transport.NewBroadcastHandler(broadcastService),
		Content:      transport.NewContentHandler(contentService),
		Media:        transport.NewMediaHandler(mediaService),
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, transport.InitRoutes(handlers, cfg.Auth.JWTSecret, cfg.Media.StoragePath)); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
