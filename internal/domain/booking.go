package domain

import "time"

type SeatClass string

const (
	SeatClassEconomy  SeatClass = "Economy"
	SeatClassBusiness SeatClass = "Business"
	SeatClassFirst    SeatClass = "First"
)

// Valid reports whether the class is one of the three recognized values.
func (s SeatClass) Valid() bool {
	switch s {
	case SeatClassEconomy, SeatClassBusiness, SeatClassFirst:
		return true
	}
	return false
}

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

type Booking struct {
	ID                int64
	FlightID          int64
	UserID            int64
	BookingDate       time.Time
	SeatClass         SeatClass
	PassengerName     string
	PassengerPassport string
	Status            BookingStatus
}

// BookingSummary is a user's booking joined with flight, airline and
// airport details for display.
type BookingSummary struct {
	BookingID         int64         `json:"booking_id"`
	BookingDate       time.Time     `json:"booking_date"`
	SeatClass         SeatClass     `json:"seat_class"`
	PassengerName     string        `json:"passenger_name"`
	PassengerPassport string        `json:"passenger_passport"`
	Status            BookingStatus `json:"status"`
	FlightNumber      string        `json:"flight_number"`
	AirlineName       string        `json:"airline_name"`
	DepartureCode     string        `json:"departure_code"`
	DepartureCity     string        `json:"departure_city"`
	ArrivalCode       string        `json:"arrival_code"`
	ArrivalCity       string        `json:"arrival_city"`
	DepartureTime     time.Time     `json:"departure_time"`
	ArrivalTime       time.Time     `json:"arrival_time"`
}
