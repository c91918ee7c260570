package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tanish-jain-225/hotel-management-system/api/routes"
	"github.com/tanish-jain-225/hotel-management-system/internal/cart"
	"github.com/tanish-jain-225/hotel-management-system/internal/checkout"
	"github.com/tanish-jain-225/hotel-management-system/internal/fulfillment"
	"github.com/tanish-jain-225/hotel-management-system/internal/menu"
	"github.com/tanish-jain-225/hotel-management-system/pkg/config"
	"github.com/tanish-jain-225/hotel-management-system/pkg/logger"
	"github.com/tanish-jain-225/hotel-management-system/pkg/metrics"
	"github.com/tanish-jain-225/hotel-management-system/pkg/redis"
	"github.com/tanish-jain-225/hotel-management-system/pkg/storeapi"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	store, err := storeapi.NewClient(cfg.Store)
	if err != nil {
		logg.Error(context.Background(), "failed to create store client", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	checkoutMetrics := metrics.NewCheckoutMetrics(registry)

	cartService, err := cart.NewService(store)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	checkoutService, err := checkout.NewService(store, checkoutMetrics, logg, cfg.Checkout)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	fulfillmentService, err := fulfillment.NewService(store, checkoutMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create fulfillment service", err)
		os.Exit(1)
	}

	menuService, err := menu.NewService(store)
	if err != nil {
		logg.Error(context.Background(), "failed to create menu service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	router := routes.New(routes.Dependencies{
		Config:         cfg,
		Logger:         logg,
		Store:          store,
		Cache:          redisClient,
		Idempotency:    redisClient,
		Menu:           menuService,
		Cart:           cartService,
		Checkout:       checkoutService,
		Fulfillment:    fulfillmentService,
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
