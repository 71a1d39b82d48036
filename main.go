// File: tripgenius/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripgenius/config"
	"tripgenius/database"
	recordsRepo "tripgenius/database/repository/records"
	"tripgenius/handlers"
	"tripgenius/middleware"
	"tripgenius/routes"
	"tripgenius/services/conversation"
	"tripgenius/services/intelligence"
	"tripgenius/services/providers"
	"tripgenius/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Intelligence: intent classification and parameter extraction.
	var intel intelligence.Service
	if config.AppConfig.IntelligenceMode == "gemini" && config.AppConfig.GeminiAPIKey != "" {
		intel = intelligence.NewGeminiService(config.AppConfig.GeminiAPIKey)
	} else {
		intel = intelligence.NewLocalService()
	}

	// Providers behind the fallback gateway. The alternate Amadeus
	// environment is optional.
	amadeus := providers.NewAmadeusClient(
		config.AppConfig.AmadeusBaseURL,
		config.AppConfig.AmadeusClientID,
		config.AppConfig.AmadeusClientSecret,
	)
	var amadeusAlt *providers.AmadeusClient
	if config.AppConfig.AmadeusFallbackBaseURL != "" {
		amadeusAlt = providers.NewAmadeusClient(
			config.AppConfig.AmadeusFallbackBaseURL,
			config.AppConfig.AmadeusClientID,
			config.AppConfig.AmadeusClientSecret,
		)
	}
	tripAdvisor := providers.NewTripAdvisorClient(config.AppConfig.TripAdvisorAPIKey)
	var poiAlt providers.POIProvider
	if config.AppConfig.OpenTripMapAPIKey != "" {
		poiAlt = providers.NewOpenTripMapClient(config.AppConfig.OpenTripMapAPIKey)
	}

	var cache providers.Cache
	if config.AppConfig.SessionStore == "redis" {
		cache = providers.NewRedisCache()
	} else {
		cache = providers.NewMemoryCache(
			time.Duration(config.AppConfig.ProviderCacheTTLMinutes) * time.Minute)
	}

	var flightAlt providers.FlightProvider
	var hotelAlt providers.HotelProvider
	if amadeusAlt != nil {
		flightAlt = amadeusAlt
		hotelAlt = amadeusAlt
	}
	gateway := providers.NewGateway(amadeus, flightAlt, amadeus, hotelAlt, tripAdvisor, poiAlt, cache)

	// Session store.
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	var store conversation.SessionStore
	if config.AppConfig.SessionStore == "redis" {
		store = conversation.NewRedisStore(sessionTTL)
	} else {
		store = conversation.NewMemoryStore(sessionTTL)
	}

	records := recordsRepo.NewMongoTripRecordRepo()

	orchestrator := conversation.NewOrchestrator(store, intel,
		conversation.NewFlightTool(gateway, intel, records),
		conversation.NewHotelTool(gateway, intel, records),
		conversation.NewItineraryTool(gateway, intel, records),
	)

	chatHandler := handlers.NewChatHandler(orchestrator)
	recordsHandler := handlers.NewRecordsHandler(records)
	routes.RegisterRoutes(router, chatHandler, recordsHandler)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
