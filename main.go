// File: appointments/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"appointments/config"
	"appointments/database"
	availabilityRepo "appointments/database/repository/availability"
	bookingRepo "appointments/database/repository/booking"
	serviceRepo "appointments/database/repository/service"
	"appointments/handlers"
	"appointments/metrics"
	"appointments/middleware"
	"appointments/routes"
	"appointments/services/scheduling"
	"appointments/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	metrics.Register()

	ctx := context.Background()

	var (
		mongoClient *mongo.Client
		db          *mongo.Database
	)
	if client, err := database.Connect(ctx); err != nil {
		if !config.AppConfig.AllowDegradedStart {
			logger.Sugar().Fatalf("main: %v", err)
		}
		logger.Sugar().Warnf("main: starting without storage: %v", err)
	} else {
		mongoClient = client
		db = client.Database(config.AppConfig.DatabaseName)
		logger.Sugar().Info("Connected to MongoDB successfully!")
	}

	cacheClient := utils.InitCache()

	schedulingService := &scheduling.DefaultSchedulingService{
		Cache:          cacheClient,
		CacheTTL:       time.Duration(config.AppConfig.SlotCacheTTLSeconds) * time.Second,
		CountCancelled: config.AppConfig.CountCancelledBookings,
		Logger:         logger,
	}

	if db != nil {
		schedulingService.Services = serviceRepo.NewMongoServiceRepo(db)
		schedulingService.Rules = availabilityRepo.NewMongoAvailabilityRepo(db)
		schedulingService.Bookings = bookingRepo.NewMongoBookingRepo(db)

		ensures := []func(context.Context, *mongo.Database) error{
			serviceRepo.EnsureIndexes,
			availabilityRepo.EnsureIndexes,
			bookingRepo.EnsureIndexes,
		}
		for _, ensure := range ensures {
			if err := ensure(ctx, db); err != nil {
				logger.Sugar().Warnf("main: index creation: %v", err)
			}
		}

		if config.AppConfig.SeedOnStart {
			if err := schedulingService.Seed(ctx); err != nil {
				logger.Sugar().Warnf("main: seeding: %v", err)
			}
		}
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	schedulingHandler := handlers.NewSchedulingHandler(schedulingService, logger)
	statusHandler := handlers.NewStatusHandler(mongoClient, config.AppConfig.DatabaseName)
	routes.RegisterRoutes(router, schedulingHandler, statusHandler)

	utils.StartHealthMonitor(mongoClient, cacheClient)

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
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
