package domain

import "time"

type Flight struct {
	ID                 int64
	FlightNumber       string
	AirlineID          int64
	DepartureAirportID int64
	ArrivalAirportID   int64
	DepartureTime      time.Time
	ArrivalTime        time.Time
	PriceEconomy       float64
	PriceBusiness      float64
	PriceFirst         float64
	SeatsEconomy       int
	SeatsBusiness      int
	SeatsFirst         int
}

// AvailableSeats returns the free-seat counter for the given class.
func (f *Flight) AvailableSeats(class SeatClass) int {
	switch class {
	case SeatClassEconomy:
		return f.SeatsEconomy
	case SeatClassBusiness:
		return f.SeatsBusiness
	case SeatClassFirst:
		return f.SeatsFirst
	default:
		return 0
	}
}

// FlightOffer is a search result row: a flight joined with its airline
// and both airports. Return-trip legs carry IsReturn.
type FlightOffer struct {
	FlightID      int64     `json:"flight_id"`
	FlightNumber  string    `json:"flight_number"`
	AirlineName   string    `json:"airline_name"`
	DepartureCode string    `json:"departure_code"`
	DepartureCity string    `json:"departure_city"`
	ArrivalCode   string    `json:"arrival_code"`
	ArrivalCity   string    `json:"arrival_city"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	PriceEconomy  float64   `json:"price_economy"`
	PriceBusiness float64   `json:"price_business"`
	PriceFirst    float64   `json:"price_first"`
	SeatsEconomy  int       `json:"seats_economy"`
	SeatsBusiness int       `json:"seats_business"`
	SeatsFirst    int       `json:"seats_first"`
	IsReturn      bool      `json:"is_return"`
}
