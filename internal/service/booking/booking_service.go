package booking

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Domenick1991/airtickets/internal/domain"
	"github.com/Domenick1991/airtickets/internal/kafka"
	"github.com/Domenick1991/airtickets/internal/repository"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	BookTicket(ctx context.Context, input BookTicketInput) (int64, error)
	UserBookings(ctx context.Context, userID int64) ([]domain.BookingSummary, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookTicketInput struct {
	FlightID          int64            `json:"flight_id"`
	UserID            int64            `json:"-"`
	SeatClass         domain.SeatClass `json:"seat_class"`
	PassengerName     string           `json:"passenger_name"`
	PassengerPassport string           `json:"passenger_passport"`
}

type BookingService struct {
	bookings           repository.BookingRepository
	flights            repository.FlightRepository
	users              repository.UserRepository
	producer           Producer
	notificationsTopic string
}

type BookingServiceOption func(*BookingService)

// WithNotifications enables publishing of ticket events for the
// notifications worker.
func WithNotifications(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	users repository.UserRepository,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings: bookings,
		flights:  flights,
		users:    users,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// BookTicket reserves one seat of the requested class and records the
// booking. The availability check, seat decrement and booking insert run in
// one store transaction; an unknown class or an exhausted counter fails
// before anything is written.
func (s *BookingService) BookTicket(ctx context.Context, input BookTicketInput) (int64, error) {
	if !input.SeatClass.Valid() {
		return 0, domain.ErrInvalidSeatClass
	}
	if input.PassengerName == "" {
		return 0, errors.New("passenger name is required")
	}
	if input.PassengerPassport == "" {
		return 0, errors.New("passenger passport is required")
	}

	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		return 0, err
	}
	if flight.AvailableSeats(input.SeatClass) <= 0 {
		return 0, domain.ErrNoAvailability
	}

	booking := &domain.Booking{
		FlightID:          input.FlightID,
		UserID:            input.UserID,
		BookingDate:       time.Now(),
		SeatClass:         input.SeatClass,
		PassengerName:     input.PassengerName,
		PassengerPassport: input.PassengerPassport,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return 0, err
	}

	if err := s.publish(ctx, flight, booking); err != nil {
		log.Printf("failed to publish ticket event for booking %d: %v", booking.ID, err)
	}
	return booking.ID, nil
}

func (s *BookingService) UserBookings(ctx context.Context, userID int64) ([]domain.BookingSummary, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *BookingService) publish(ctx context.Context, flight *domain.Flight, booking *domain.Booking) error {
	if s.producer == nil || s.notificationsTopic == "" {
		return nil
	}

	email := ""
	if user, err := s.users.GetByID(ctx, booking.UserID); err == nil {
		email = user.Email
	}

	event := kafka.TicketEvent{
		EventID:       uuid.NewString(),
		BookingID:     booking.ID,
		FlightID:      booking.FlightID,
		FlightNumber:  flight.FlightNumber,
		SeatClass:     string(booking.SeatClass),
		PassengerName: booking.PassengerName,
		Email:         email,
		Status:        string(booking.Status),
		BookedAt:      booking.BookingDate,
	}
	return s.producer.Publish(ctx, s.notificationsTopic, event.EventID, event)
}

var _ BookingUseCase = (*BookingService)(nil)
