package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airtickets/config"
	"github.com/Domenick1991/airtickets/internal/auth"
	"github.com/Domenick1991/airtickets/internal/bootstrap"
	"github.com/Domenick1991/airtickets/internal/cache"
	"github.com/Domenick1991/airtickets/internal/kafka"
	"github.com/Domenick1991/airtickets/internal/repository"
	"github.com/Domenick1991/airtickets/internal/seed"
	"github.com/Domenick1991/airtickets/internal/service/booking"
	"github.com/Domenick1991/airtickets/internal/service/flights"
	"github.com/Domenick1991/airtickets/internal/service/users"
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

	if err := repository.CreateSchema(ctx, pool); err != nil {
		log.Fatalf("create schema: %v", err)
	}

	airportRepo := repository.NewAirportRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	if err := seed.NewSeeder(airportRepo, flightRepo, userRepo).Run(ctx); err != nil {
		log.Fatalf("seed database: %v", err)
	}

	searchCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Search.CacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	flightService := flights.NewFlightService(flightRepo, airportRepo, searchCache)
	bookingService := booking.NewBookingService(
		bookingRepo,
		flightRepo,
		userRepo,
		booking.WithNotifications(producer, cfg.Kafka.NotificationsTopic),
	)
	userService := users.NewUserService(userRepo)

	tokens := auth.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)

	if err := bootstrap.Run(ctx, cfg, flightService, bookingService, userService, tokens); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
