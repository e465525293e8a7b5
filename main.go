// File: hobyhub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hobyhub/api"
	"hobyhub/config"
	"hobyhub/database/localstore"
	"hobyhub/handlers"
	"hobyhub/middleware"
	"hobyhub/models"
	"hobyhub/routes"
	"hobyhub/services/auth"
	"hobyhub/services/discovery"
	"hobyhub/services/favorites"
	"hobyhub/services/location"
	"hobyhub/services/vendor"
	"hobyhub/utils"
	"hobyhub/workers"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitStore()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.SessionMiddleware())

	// Upstream client and persisted stores.
	upstream := api.NewClient()
	store := localstore.NewRedisStore(utils.GetStoreClient())
	handoff := localstore.NewRedisStore(utils.GetSessionClient())

	if err := store.Migrate(context.Background()); err != nil {
		logger.Sugar().Fatalf("main: localstore migration failed: %v", err)
	}

	// Services.
	sortDefaults := models.SortCriteria{
		Key:        models.SortProximity,
		DistanceKm: config.AppConfig.DefaultDistanceKm,
		Mode:       models.ActivityOffline,
	}
	manager := discovery.NewManager(
		upstream,
		location.NewGoogleGeocoder(),
		config.AppConfig.DefaultLocation,
		config.AppConfig.FeedPageSize,
		sortDefaults,
		time.Duration(config.AppConfig.SessionTTLMins)*time.Minute,
	)
	favoritesService := &favorites.DefaultFavoritesService{Store: store}
	authService := &auth.DefaultAuthService{API: upstream, Store: store}
	vendorService := &vendor.DefaultVendorService{API: upstream, Store: store}

	// Background view-count worker.
	viewEnqueuer := workers.NewEnqueuer()
	defer viewEnqueuer.Close()
	workers.InitViewCountWorker(upstream)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Discovery:  handlers.NewDiscoveryHandler(manager),
		Activities: handlers.NewActivityHandler(upstream, handoff, viewEnqueuer),
		Categories: handlers.NewCategoryHandler(upstream),
		Favorites:  handlers.NewFavoritesHandler(favoritesService),
		Auth:       handlers.NewAuthHandler(authService),
		Vendors:    handlers.NewVendorHandler(vendorService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetStoreClient(), utils.GetSessionClient()},
		upstream.BaseURL(),
	)

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
