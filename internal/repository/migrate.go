package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS airports (
		id BIGSERIAL PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		city TEXT NOT NULL,
		country TEXT NOT NULL,
		latitude DOUBLE PRECISION NOT NULL DEFAULT 0,
		longitude DOUBLE PRECISION NOT NULL DEFAULT 0,
		timezone TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS airlines (
		id BIGSERIAL PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		country TEXT NOT NULL,
		logo TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS flights (
		id BIGSERIAL PRIMARY KEY,
		flight_number TEXT NOT NULL,
		airline_id BIGINT NOT NULL REFERENCES airlines(id),
		departure_airport_id BIGINT NOT NULL REFERENCES airports(id),
		arrival_airport_id BIGINT NOT NULL REFERENCES airports(id),
		departure_time TIMESTAMPTZ NOT NULL,
		arrival_time TIMESTAMPTZ NOT NULL,
		price_economy NUMERIC(10,2) NOT NULL,
		price_business NUMERIC(10,2) NOT NULL,
		price_first NUMERIC(10,2) NOT NULL,
		available_seats_economy INT NOT NULL CHECK (available_seats_economy >= 0),
		available_seats_business INT NOT NULL CHECK (available_seats_business >= 0),
		available_seats_first INT NOT NULL CHECK (available_seats_first >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		email TEXT NOT NULL,
		full_name TEXT NOT NULL,
		registration_date TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id BIGSERIAL PRIMARY KEY,
		flight_id BIGINT NOT NULL REFERENCES flights(id),
		user_id BIGINT NOT NULL REFERENCES users(id),
		booking_date TIMESTAMPTZ NOT NULL,
		seat_class TEXT NOT NULL,
		passenger_name TEXT NOT NULL,
		passenger_passport TEXT NOT NULL,
		status TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_flights_departure_time ON flights (departure_time)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings (user_id)`,
}

// CreateSchema creates the five tables if they do not exist. The CHECK
// constraints on the seat counters are the database-level guarantee that
// availability never drops below zero.
func CreateSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
