package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/airtickets/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	SearchByRoute(ctx context.Context, departureCity, arrivalCity string, departureDate time.Time) ([]domain.FlightOffer, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) error
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const searchByRouteQuery = `
	SELECT f.id, f.flight_number, a.name,
	       dep.code, dep.city, arr.code, arr.city,
	       f.departure_time, f.arrival_time,
	       f.price_economy, f.price_business, f.price_first,
	       f.available_seats_economy, f.available_seats_business, f.available_seats_first
	FROM flights f
	JOIN airlines a ON f.airline_id = a.id
	JOIN airports dep ON f.departure_airport_id = dep.id
	JOIN airports arr ON f.arrival_airport_id = arr.id
	WHERE dep.city = $1 AND arr.city = $2 AND f.departure_time::date = $3::date
	ORDER BY f.departure_time`

// SearchByRoute matches flights by departure/arrival city and the calendar
// date of departure, ignoring time of day.
func (r *PGFlightRepository) SearchByRoute(ctx context.Context, departureCity, arrivalCity string, departureDate time.Time) ([]domain.FlightOffer, error) {
	rows, err := r.db.Query(ctx, searchByRouteQuery, departureCity, arrivalCity, departureDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := make([]domain.FlightOffer, 0)
	for rows.Next() {
		var o domain.FlightOffer
		if err := rows.Scan(&o.FlightID, &o.FlightNumber, &o.AirlineName,
			&o.DepartureCode, &o.DepartureCity, &o.ArrivalCode, &o.ArrivalCity,
			&o.DepartureTime, &o.ArrivalTime,
			&o.PriceEconomy, &o.PriceBusiness, &o.PriceFirst,
			&o.SeatsEconomy, &o.SeatsBusiness, &o.SeatsFirst); err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT id, flight_number, airline_id, departure_airport_id, arrival_airport_id, departure_time, arrival_time, price_economy, price_business, price_first, available_seats_economy, available_seats_business, available_seats_first FROM flights WHERE id=$1`, id)
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.FlightNumber, &f.AirlineID, &f.DepartureAirportID, &f.ArrivalAirportID,
		&f.DepartureTime, &f.ArrivalTime,
		&f.PriceEconomy, &f.PriceBusiness, &f.PriceFirst,
		&f.SeatsEconomy, &f.SeatsBusiness, &f.SeatsFirst); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	return r.db.QueryRow(ctx, `INSERT INTO flights (flight_number, airline_id, departure_airport_id, arrival_airport_id, departure_time, arrival_time, price_economy, price_business, price_first, available_seats_economy, available_seats_business, available_seats_first)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`,
		flight.FlightNumber, flight.AirlineID, flight.DepartureAirportID, flight.ArrivalAirportID,
		flight.DepartureTime, flight.ArrivalTime,
		flight.PriceEconomy, flight.PriceBusiness, flight.PriceFirst,
		flight.SeatsEconomy, flight.SeatsBusiness, flight.SeatsFirst).
		Scan(&flight.ID)
}

var _ FlightRepository = (*PGFlightRepository)(nil)
