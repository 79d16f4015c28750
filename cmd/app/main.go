package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airline-records/api"
	"github.com/Domenick1991/airline-records/config"
	"github.com/Domenick1991/airline-records/internal/bootstrap"
	"github.com/Domenick1991/airline-records/internal/events"
	"github.com/Domenick1991/airline-records/internal/ratelimit"
	"github.com/Domenick1991/airline-records/internal/repository"
	"github.com/Domenick1991/airline-records/internal/service/flights"
	"github.com/Domenick1991/airline-records/internal/service/users"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	producer := events.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	userRepo := repository.NewUserRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	userService := users.NewUserService(userRepo, users.WithEvents(producer, cfg.Kafka.RecordEventsTopic))
	flightService := flights.NewFlightService(flightRepo, flights.WithEvents(producer, cfg.Kafka.RecordEventsTopic))

	var middlewares []gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		limiter := ratelimit.NewLimiter(cfg.Redis, cfg.RateLimit.Requests, time.Duration(cfg.RateLimit.WindowSeconds)*time.Second)
		defer limiter.Close()
		middlewares = append(middlewares, api.RateLimit(limiter))
	}

	router := api.NewRouter(api.NewUserHandler(userService), api.NewFlightHandler(flightService), middlewares...)

	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
