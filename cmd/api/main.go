package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ArowuTest/brandhub-admin-backend/api/routes"
	"github.com/ArowuTest/brandhub-admin-backend/internal/config"
	"github.com/ArowuTest/brandhub-admin-backend/internal/handlers"
	"github.com/ArowuTest/brandhub-admin-backend/internal/metrics"
	mongorepo "github.com/ArowuTest/brandhub-admin-backend/internal/repositories/mongodb"
	"github.com/ArowuTest/brandhub-admin-backend/internal/repositories/redisstore"
	"github.com/ArowuTest/brandhub-admin-backend/internal/services"
	"github.com/ArowuTest/brandhub-admin-backend/internal/validation"
	"github.com/ArowuTest/brandhub-admin-backend/pkg/jwt"
	"github.com/ArowuTest/brandhub-admin-backend/pkg/mediahost"
	"github.com/ArowuTest/brandhub-admin-backend/pkg/mongodb"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		panic("failed to build logger: " + err.Error())
	}
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// MongoDB
	mongoClient, err := mongodb.NewClient(ctx, cfg.MongoDB.URI, cfg.MongoDB.Database, cfg.MongoDB.Timeout)
	if err != nil {
		log.Fatal("failed to connect to mongodb", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn("error disconnecting from mongodb", zap.Error(err))
		}
	}()
	db := mongoClient.Database()

	// Redis
	rdb, err := redisstore.NewClient(ctx, cfg.Redis.URL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Repositories
	brandRepo := mongorepo.NewBrandRepository(db)
	campaignRepo := mongorepo.NewCampaignRepository(db)
	adminRepo := mongorepo.NewAdminUserRepository(db)
	if err := brandRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal("failed to create brand indexes", zap.Error(err))
	}
	if err := campaignRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal("failed to create campaign indexes", zap.Error(err))
	}
	sessionRepo := redisstore.NewSessionRepository(rdb)
	stagedRepo := redisstore.NewStagedMediaRepository(rdb)
	progress := redisstore.NewProgressPublisher(rdb, log)

	// Media host
	host, err := mediahost.New(mediahost.Config{
		BaseURL:      cfg.Media.BaseURL,
		CloudName:    cfg.Media.CloudName,
		UploadPreset: cfg.Media.UploadPreset,
		APIKey:       cfg.Media.APIKey,
		APISecret:    cfg.Media.APISecret,
		Folder:       cfg.Media.Folder,
		MockAPI:      cfg.Media.MockAPI,
		Timeout:      cfg.Media.Timeout,
	})
	if err != nil && cfg.Media.Configured() {
		log.Fatal("failed to create media host", zap.Error(err))
	}
	if !cfg.Media.Configured() {
		log.Warn("media host is not configured; create flows that upload files will be rejected")
	}

	// Services
	validator := validation.New(time.Now)
	mediaService := services.NewMediaService(host, stagedRepo, progress, m, log, services.MediaOptions{
		MaxFileSize: cfg.Media.MaxFileSize,
		Configured:  cfg.Media.Configured(),
	})
	linker := services.NewBrandLinker(brandRepo, campaignRepo, m, log)
	authService := services.NewAuthService(adminRepo, sessionRepo, jwt.NewTokenService(cfg.JWT.Secret, "brandhub"), cfg.JWT.SessionTTL(), log)
	brandService := services.NewBrandService(brandRepo, mediaService, validator, log)
	campaignService := services.NewCampaignService(campaignRepo, linker, mediaService, validator, log)
	analyticsService := services.NewAnalyticsService(brandRepo, campaignRepo)

	// Background workers
	reconciler := services.NewLinkReconciler(linker, campaignRepo, log, services.ReconcilerOptions{
		Interval:    cfg.Reconciler.Interval,
		BatchSize:   cfg.Reconciler.BatchSize,
		MaxRetries:  cfg.Reconciler.MaxRetries,
		MaxAttempts: cfg.Reconciler.MaxAttempts,
		Backoff:     cfg.Reconciler.Backoff,
	})
	go reconciler.Run(ctx)

	if cfg.Media.Configured() {
		sweeper := services.NewMediaSweeper(host, stagedRepo, m, log, cfg.Media.StagingTTL, cfg.Media.SweepInterval)
		go sweeper.Run(ctx)
	}

	// Handlers
	gin.SetMode(gin.ReleaseMode)
	router := routes.SetupRouter(cfg, routes.HandlerDependencies{
		AuthHandler:      handlers.NewAuthHandler(authService),
		BrandHandler:     handlers.NewBrandHandler(brandService, cfg.Server.MaxUploadBytes),
		CampaignHandler:  handlers.NewCampaignHandler(campaignService, cfg.Server.MaxUploadBytes),
		DashboardHandler: handlers.NewDashboardHandler(analyticsService),
		UploadHandler:    handlers.NewUploadHandler(progress),
		Authenticator:    authService,
		Metrics:          m,
		Gatherer:         reg,
		Logger:           log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	// stop background workers before the stores go away
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exiting")
}
