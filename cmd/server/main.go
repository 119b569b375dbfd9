package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pulsefit/fitness-app/internal/api"
	"pulsefit/fitness-app/internal/appdate"
	"pulsefit/fitness-app/internal/cache"
	"pulsefit/fitness-app/internal/catalog"
	"pulsefit/fitness-app/internal/config"
	"pulsefit/fitness-app/internal/logging"
	"pulsefit/fitness-app/internal/notify"
	"pulsefit/fitness-app/internal/planner"
	"pulsefit/fitness-app/internal/refresh"
	"pulsefit/fitness-app/internal/repository/mongo"
	"pulsefit/fitness-app/internal/service"
	"pulsefit/fitness-app/internal/storage"
	"pulsefit/fitness-app/internal/timeline"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logging.Setup(logging.SetupParams{
		LogLevel:      cfg.Logging.Level,
		LogFormatJSON: cfg.Logging.FormatJSON,
		LogFileName:   cfg.Logging.FileName,
	})
	log.Info("starting pulsefit server")

	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("could not connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Errorf("failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Info("database connection established")

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureSessionIndexes(ctx, appDB.Collection("workout_sessions"))
		mongo.EnsureTimelineIndexes(ctx, appDB.Collection("timeline_entries"))
	}()

	userRepo := mongo.NewMongoUserRepository(appDB)
	sessionRepo := mongo.NewMongoSessionRepository(appDB)
	timelineRepo := mongo.NewMongoTimelineRepository(appDB)
	streakRepo := mongo.NewMongoStreakRepository(appDB)

	sessionCache := cache.NewSessionCache()
	catalogClient := catalog.NewClient(cfg.Catalog.URL, cfg.Catalog.CacheTTL, nil)

	var notifier notify.Notifier = notify.LogNotifier{}
	if cfg.Notify.TopicARN != "" {
		snsNotifier, err := notify.NewSNSNotifier(cfg.Notify)
		if err != nil {
			log.Fatalf("failed to initialize SNS notifier: %v", err)
		}
		notifier = snsNotifier
	}

	// Media storage is optional; without a bucket the timeline views simply
	// omit media URLs.
	var media storage.MediaStorage
	if cfg.S3.BucketName != "" {
		media, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			log.Fatalf("failed to initialize S3 storage: %v", err)
		}
	}

	syncEngine := timeline.NewEngine(timelineRepo, streakRepo, notifier, sessionCache)
	broadcaster := refresh.NewBroadcaster()
	dateContext := appdate.NewContext(syncEngine, broadcaster, sessionCache)

	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	planService := planner.NewService(planner.NewGenerator(nil), catalogClient, sessionRepo, timelineRepo)
	sessionService := service.NewSessionService(sessionRepo, timelineRepo, sessionCache, media)

	router := gin.Default()
	api.SetupRoutes(router, cfg.JWT.Secret, authService, planService, sessionService, dateContext)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}
	log.Info("server exited")
}
