package main

import (
	"context"
	"log"
	"os"

	"github.com/Domenick1991/airtickets/config"
	"github.com/Domenick1991/airtickets/internal/repository"
	"github.com/Domenick1991/airtickets/internal/seed"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Standalone seeder: creates the schema and loads reference plus sample
// data into an empty database.
func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()

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
	userRepo := repository.NewUserRepository(pool)

	if err := seed.NewSeeder(airportRepo, flightRepo, userRepo).Run(ctx); err != nil {
		log.Fatalf("seed database: %v", err)
	}

	log.Println("database ready")
}
