package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voyago/config"
	"voyago/database"
	bookingRepo "voyago/database/repository/booking"
	"voyago/handlers"
	"voyago/middleware"
	"voyago/routes"
	ai "voyago/services/intelligence"
	"voyago/services/planner"
	"voyago/services/search"
	"voyago/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSearchCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	bookings := bookingRepo.NewMongoBookingRepo()

	// Collaborators.
	generator, err := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize generation client: %v", err)
	}
	searcher := search.NewCachedSearcher(
		search.NewTavilyClient(config.AppConfig.TavilyAPIKey),
		utils.GetSearchCacheClient(),
		time.Duration(config.AppConfig.SearchCacheTTLMinutes)*time.Minute,
	)
	searchService := &search.DefaultSearchService{
		Searcher:        searcher,
		CategoryTimeout: time.Duration(config.AppConfig.SearchTimeoutSeconds) * time.Second,
	}

	// Services.
	plannerService := &planner.DefaultPlannerService{
		Generator:   generator,
		SearchSvc:   searchService,
		BookingRepo: bookings,
	}

	planTimeout := time.Duration(config.AppConfig.PlanTimeoutSeconds) * time.Second
	handlerBundle := &routes.HandlerBundle{
		PlanHandler:    handlers.NewPlanHandler(plannerService, planTimeout),
		BookingHandler: handlers.NewBookingHandler(bookings),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
