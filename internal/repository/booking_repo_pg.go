package repository

import (
	"context"

	"github.com/Domenick1991/airtickets/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	ListByUser(ctx context.Context, userID int64) ([]domain.BookingSummary, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

// seatColumn maps a seat class to its availability column. The class is
// validated before it reaches SQL text.
func seatColumn(class domain.SeatClass) (string, bool) {
	switch class {
	case domain.SeatClassEconomy:
		return "available_seats_economy", true
	case domain.SeatClassBusiness:
		return "available_seats_business", true
	case domain.SeatClassFirst:
		return "available_seats_first", true
	}
	return "", false
}

// Create reserves one seat and inserts the booking row in a single
// transaction. The decrement only fires while the counter is positive, so
// the counter can never go below zero and an exhausted class fails without
// side effects. Seat decrement and booking insert commit together or not
// at all.
func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	column, ok := seatColumn(booking.SeatClass)
	if !ok {
		return domain.ErrInvalidSeatClass
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	res, err := tx.Exec(ctx, `UPDATE flights SET `+column+` = `+column+` - 1 WHERE id=$1 AND `+column+` > 0`, booking.FlightID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNoAvailability
	}

	booking.Status = domain.BookingStatusConfirmed
	if err := tx.QueryRow(ctx, `INSERT INTO bookings (flight_id, user_id, booking_date, seat_class, passenger_name, passenger_passport, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		booking.FlightID, booking.UserID, booking.BookingDate, booking.SeatClass,
		booking.PassengerName, booking.PassengerPassport, booking.Status).
		Scan(&booking.ID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

const listByUserQuery = `
	SELECT b.id, b.booking_date, b.seat_class, b.passenger_name, b.passenger_passport, b.status,
	       f.flight_number, a.name,
	       dep.code, dep.city, arr.code, arr.city,
	       f.departure_time, f.arrival_time
	FROM bookings b
	JOIN flights f ON b.flight_id = f.id
	JOIN airlines a ON f.airline_id = a.id
	JOIN airports dep ON f.departure_airport_id = dep.id
	JOIN airports arr ON f.arrival_airport_id = arr.id
	WHERE b.user_id = $1
	ORDER BY f.departure_time DESC`

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.BookingSummary, error) {
	rows, err := r.db.Query(ctx, listByUserQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.BookingSummary, 0)
	for rows.Next() {
		var b domain.BookingSummary
		if err := rows.Scan(&b.BookingID, &b.BookingDate, &b.SeatClass, &b.PassengerName, &b.PassengerPassport, &b.Status,
			&b.FlightNumber, &b.AirlineName,
			&b.DepartureCode, &b.DepartureCity, &b.ArrivalCode, &b.ArrivalCity,
			&b.DepartureTime, &b.ArrivalTime); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

var _ BookingRepository = (*PGBookingRepository)(nil)
