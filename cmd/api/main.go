package main

import (
	"context"
	"log"
	"time"

	"rider-route-engine/internal/core/config"
	"rider-route-engine/internal/core/logger"
	"rider-route-engine/internal/core/server"
	"rider-route-engine/internal/features/routes/adapters"
	"rider-route-engine/internal/features/routes/domain"
	"rider-route-engine/internal/features/routes/handler"
	"rider-route-engine/internal/features/routes/ports"
	"rider-route-engine/internal/features/routes/service"

	"go.uber.org/zap"
)

// @title Rider Route Engine API
// @version 1.0
// @description Route reconciliation for the rider client: stop sequencing, ETAs, progression and badge counts.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("dispatch_source", cfg.Dispatch.Source),
	)

	// The HTTP adapter is always built: completion effects go over REST even
	// when route reads come from the snapshot store.
	httpDispatch := adapters.NewHTTPDispatchAdapter(cfg.Dispatch)

	var source ports.DispatchSource = httpDispatch

	switch cfg.Dispatch.Source {
	case "redis":
		redisDispatch, err := adapters.NewRedisDispatchAdapter(cfg.Dispatch.RedisURL)
		if err != nil {
			l.Fatal("Failed to connect to dispatch snapshot store", zap.Error(err))
		}
		defer redisDispatch.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisDispatch.Ping(pingCtx); err != nil {
			l.Warn("Dispatch snapshot store unreachable, routes will degrade until it recovers", zap.Error(err))
		}
		cancel()

		source = redisDispatch
	case "http":
		// Reconciliation degrades on fetch failure, so a failed probe is a
		// warning rather than a startup abort.
		probeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := httpDispatch.HealthCheck(probeCtx); err != nil {
			l.Warn("Dispatch API health check failed, routes will degrade until it recovers", zap.Error(err))
		} else {
			l.Info("Dispatch API connection verified")
		}
		cancel()
	default:
		l.Fatal("Unknown dispatch source", zap.String("dispatch_source", cfg.Dispatch.Source))
	}

	depot := domain.GeoPoint{
		Latitude:  cfg.Depot.Latitude,
		Longitude: cfg.Depot.Longitude,
	}
	projector := service.NewProjector(cfg.Routing.ServiceMinutes, cfg.Routing.StopBufferMinutes)
	routeService := service.NewRouteService(source, projector, depot)
	routeHandler := handler.NewRouteHandler(routeService, httpDispatch)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/riders/:id/route", routeHandler.GetRoute)
	srv.App.Get("/riders/:id/badges", routeHandler.GetBadges)
	srv.App.Post("/riders/:id/stops/:orderId/delivered", routeHandler.MarkDelivered)
	srv.App.Post("/riders/:id/stops/:orderId/picked-up", routeHandler.MarkPickedUp)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
