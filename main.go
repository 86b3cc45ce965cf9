package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weddingconsole/config"
	"weddingconsole/cron"
	"weddingconsole/database"
	bookingRepo "weddingconsole/database/repository/booking"
	hallRepo "weddingconsole/database/repository/hall"
	lockRepo "weddingconsole/database/repository/lock"
	providerRepo "weddingconsole/database/repository/provider"
	venueRepo "weddingconsole/database/repository/venue"
	"weddingconsole/handlers"
	"weddingconsole/middleware"
	"weddingconsole/routes"
	"weddingconsole/services/admin"
	"weddingconsole/services/auth"
	"weddingconsole/services/booking"
	"weddingconsole/services/hall"
	"weddingconsole/services/provider"
	"weddingconsole/services/tasks"
	"weddingconsole/services/workflow"
	"weddingconsole/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := database.InitDB(); err != nil {
		logger.Fatal("main: failed to connect to MongoDB", zap.Error(err))
	}
	if err := utils.InitAuthCache(); err != nil {
		logger.Fatal("main: failed to connect to Redis", zap.Error(err))
	}

	store, err := utils.NewStorage()
	if err != nil {
		logger.Fatal("main: failed to initialize blob storage", zap.Error(err))
	}

	// repositories.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db := database.Database()
	provRepo, err := providerRepo.NewMongoProviderRepo(ctx, db)
	if err != nil {
		logger.Fatal("main: provider repository", zap.Error(err))
	}
	managerRepo, err := hallRepo.NewMongoHallManagerRepo(ctx, db)
	if err != nil {
		logger.Fatal("main: hall manager repository", zap.Error(err))
	}
	bookRepo, err := bookingRepo.NewMongoBookingRepo(ctx, db)
	if err != nil {
		logger.Fatal("main: booking repository", zap.Error(err))
	}
	locker, err := lockRepo.NewMongoLocker(ctx, db)
	if err != nil {
		logger.Fatal("main: booking lock", zap.Error(err))
	}
	cancel()
	venues := venueRepo.NewMongoVenueRepo(db)

	// background image cleanup.
	var cleaner tasks.ImageCleaner = &tasks.InlineCleaner{Store: store, Logger: logger}
	var worker *asynq.Server
	var queue *asynq.Client
	if config.AppConfig.CleanupQueue {
		queue = asynq.NewClient(cron.RedisOpt())
		worker = cron.InitCleanupWorker(store, logger)
		cleaner = &tasks.QueueCleaner{Queue: queue, Store: store, Logger: logger}
	}

	// services.
	wf := workflow.New(config.AppConfig.StrictNumericInput)
	authService := &auth.DefaultAuthService{
		Providers:     provRepo,
		Halls:         managerRepo,
		Sessions:      &utils.RedisSessionStore{Client: utils.GetAuthCacheClient()},
		Workflow:      wf,
		Logger:        logger,
		SessionTTL:    config.AppConfig.SessionTTL,
		MaxSessionAge: config.AppConfig.SessionMaxAge,
	}
	adminService := admin.NewDefaultAdminService(provRepo, managerRepo, bookRepo, locker, wf, logger)
	adminService.LockTTL = config.AppConfig.BookingLockTTL
	hallService := &hall.DefaultHallService{
		Halls:         managerRepo,
		Bookings:      bookRepo,
		Storage:       store,
		Cleaner:       cleaner,
		Workflow:      wf,
		Logger:        logger,
		MaxImageWidth: config.AppConfig.ImageMaxWidth,
	}
	providerService := &provider.DefaultProviderService{
		Repo:     provRepo,
		Bookings: bookRepo,
		Logger:   logger,
	}
	bookingService := &booking.DefaultBookingService{
		Venues:   venues,
		Bookings: bookRepo,
		Locks:    locker,
		Workflow: wf,
		Logger:   logger,
		LockTTL:  config.AppConfig.BookingLockTTL,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AuthService:     authService,
		Auth:            handlers.NewAuthHandler(authService),
		Admin:           handlers.NewAdminHandler(adminService),
		HallManager:     handlers.NewHallManagerHandler(hallService),
		ServiceProvider: handlers.NewServiceProviderHandler(providerService),
		Booking:         handlers.NewBookingHandler(bookingService),
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	utils.StartHealthMonitor(monitorCtx, utils.GetAuthCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	stopMonitor()
	if worker != nil {
		worker.Shutdown()
	}
	if queue != nil {
		if err := queue.Close(); err != nil {
			logger.Warn("main: closing cleanup queue client", zap.Error(err))
		}
	}
	if err := database.Close(shutdownCtx); err != nil {
		logger.Warn("main: disconnecting MongoDB", zap.Error(err))
	}
	if client := utils.GetAuthCacheClient(); client != nil {
		_ = client.Close()
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
