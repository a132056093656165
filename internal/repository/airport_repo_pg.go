package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/airtickets/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirportRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Airport, error)
	List(ctx context.Context) ([]domain.Airport, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, airport *domain.Airport) error
	CreateAirline(ctx context.Context, airline *domain.Airline) error
}

type PGAirportRepository struct {
	db *pgxpool.Pool
}

func NewAirportRepository(db *pgxpool.Pool) AirportRepository {
	return &PGAirportRepository{db: db}
}

func (r *PGAirportRepository) GetByCode(ctx context.Context, code string) (*domain.Airport, error) {
	row := r.db.QueryRow(ctx, `SELECT id, code, name, city, country, latitude, longitude, timezone, description FROM airports WHERE code=$1`, code)
	var a domain.Airport
	if err := row.Scan(&a.ID, &a.Code, &a.Name, &a.City, &a.Country, &a.Latitude, &a.Longitude, &a.Timezone, &a.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *PGAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.Query(ctx, `SELECT id, code, name, city, country, latitude, longitude, timezone, description FROM airports ORDER BY city, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.ID, &a.Code, &a.Name, &a.City, &a.Country, &a.Latitude, &a.Longitude, &a.Timezone, &a.Description); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (r *PGAirportRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM airports`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PGAirportRepository) Create(ctx context.Context, airport *domain.Airport) error {
	return r.db.QueryRow(ctx, `INSERT INTO airports (code, name, city, country, latitude, longitude, timezone, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		airport.Code, airport.Name, airport.City, airport.Country,
		airport.Latitude, airport.Longitude, airport.Timezone, airport.Description).
		Scan(&airport.ID)
}

func (r *PGAirportRepository) CreateAirline(ctx context.Context, airline *domain.Airline) error {
	return r.db.QueryRow(ctx, `INSERT INTO airlines (code, name, country, logo) VALUES ($1, $2, $3, $4) RETURNING id`,
		airline.Code, airline.Name, airline.Country, airline.Logo).
		Scan(&airline.ID)
}

var _ AirportRepository = (*PGAirportRepository)(nil)
