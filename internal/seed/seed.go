package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/Domenick1991/airtickets/internal/domain"
	"github.com/Domenick1991/airtickets/internal/repository"
	"github.com/Domenick1991/airtickets/internal/service/users"
)

// sampleWindowDays is the rolling window of sample flights created on
// first run.
const sampleWindowDays = 30

var sampleAirports = []domain.Airport{
	{Code: "SVO", Name: "Sheremetyevo International Airport", City: "Moscow", Country: "Russia", Latitude: 55.972, Longitude: 37.415, Timezone: "Europe/Moscow", Description: "Major international airport serving Moscow"},
	{Code: "DME", Name: "Domodedovo International Airport", City: "Moscow", Country: "Russia", Latitude: 55.408, Longitude: 37.906, Timezone: "Europe/Moscow", Description: "One of the major airports serving Moscow"},
	{Code: "LED", Name: "Pulkovo Airport", City: "Saint Petersburg", Country: "Russia", Latitude: 59.800, Longitude: 30.263, Timezone: "Europe/Moscow", Description: "International airport serving Saint Petersburg"},
	{Code: "AER", Name: "Sochi International Airport", City: "Sochi", Country: "Russia", Latitude: 43.449, Longitude: 39.956, Timezone: "Europe/Moscow", Description: "International airport serving Sochi"},
	{Code: "KZN", Name: "Kazan International Airport", City: "Kazan", Country: "Russia", Latitude: 55.606, Longitude: 49.278, Timezone: "Europe/Moscow", Description: "International airport serving Kazan"},
	{Code: "VVO", Name: "Vladivostok International Airport", City: "Vladivostok", Country: "Russia", Latitude: 43.396, Longitude: 132.148, Timezone: "Asia/Vladivostok", Description: "International airport serving Vladivostok"},
	{Code: "OVB", Name: "Tolmachevo Airport", City: "Novosibirsk", Country: "Russia", Latitude: 55.012, Longitude: 82.650, Timezone: "Asia/Novosibirsk", Description: "International airport serving Novosibirsk"},
	{Code: "KRR", Name: "Krasnodar International Airport", City: "Krasnodar", Country: "Russia", Latitude: 45.035, Longitude: 39.171, Timezone: "Europe/Moscow", Description: "International airport serving Krasnodar"},
	{Code: "ROV", Name: "Platov International Airport", City: "Rostov-on-Don", Country: "Russia", Latitude: 47.494, Longitude: 39.924, Timezone: "Europe/Moscow", Description: "International airport serving Rostov-on-Don"},
	{Code: "UFA", Name: "Ufa International Airport", City: "Ufa", Country: "Russia", Latitude: 54.558, Longitude: 55.874, Timezone: "Asia/Yekaterinburg", Description: "International airport serving Ufa"},
}

var sampleAirlines = []domain.Airline{
	{Code: "AFL", Name: "Aeroflot", Country: "Russia", Logo: "aeroflot.png"},
	{Code: "SVR", Name: "Rossiya Airlines", Country: "Russia", Logo: "rossiya.png"},
	{Code: "SBI", Name: "S7 Airlines", Country: "Russia", Logo: "s7.png"},
	{Code: "UTR", Name: "Utair", Country: "Russia", Logo: "utair.png"},
	{Code: "PBD", Name: "Pobeda", Country: "Russia", Logo: "pobeda.png"},
}

// sampleRoutes are index pairs into sampleAirports: 16 fixed city-pair
// routes, each direction listed separately.
var sampleRoutes = [][2]int{
	{0, 2}, {2, 0}, // Moscow SVO <-> Saint Petersburg
	{0, 3}, {3, 0}, // Moscow SVO <-> Sochi
	{1, 4}, {4, 1}, // Moscow DME <-> Kazan
	{0, 5}, {5, 0}, // Moscow SVO <-> Vladivostok
	{1, 6}, {6, 1}, // Moscow DME <-> Novosibirsk
	{2, 7}, {7, 2}, // Saint Petersburg <-> Krasnodar
	{0, 8}, {8, 0}, // Moscow SVO <-> Rostov-on-Don
	{1, 9}, {9, 1}, // Moscow DME <-> Ufa
}

type Seeder struct {
	airports repository.AirportRepository
	flights  repository.FlightRepository
	users    repository.UserRepository
	rng      *rand.Rand
}

func NewSeeder(airports repository.AirportRepository, flights repository.FlightRepository, userRepo repository.UserRepository) *Seeder {
	return &Seeder{
		airports: airports,
		flights:  flights,
		users:    userRepo,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run inserts reference and sample data unless airports already exist.
func (s *Seeder) Run(ctx context.Context) error {
	count, err := s.airports.Count(ctx)
	if err != nil {
		return fmt.Errorf("count airports: %w", err)
	}
	if count > 0 {
		return nil
	}

	airportIDs := make([]int64, 0, len(sampleAirports))
	for _, a := range sampleAirports {
		airport := a
		if err := s.airports.Create(ctx, &airport); err != nil {
			return fmt.Errorf("seed airport %s: %w", airport.Code, err)
		}
		airportIDs = append(airportIDs, airport.ID)
	}

	airlineIDs := make([]int64, 0, len(sampleAirlines))
	for _, a := range sampleAirlines {
		airline := a
		if err := s.airports.CreateAirline(ctx, &airline); err != nil {
			return fmt.Errorf("seed airline %s: %w", airline.Code, err)
		}
		airlineIDs = append(airlineIDs, airline.ID)
	}

	flights := generateFlights(airportIDs, airlineIDs, time.Now(), s.rng)
	for i := range flights {
		if err := s.flights.Create(ctx, &flights[i]); err != nil {
			return fmt.Errorf("seed flight %s: %w", flights[i].FlightNumber, err)
		}
	}

	sampleUser := &domain.User{
		Username:         "user",
		PasswordHash:     users.HashPassword("password123"),
		Email:            "user@example.com",
		FullName:         "Sample User",
		RegistrationDate: time.Now(),
	}
	if err := s.users.Create(ctx, sampleUser); err != nil {
		return fmt.Errorf("seed sample user: %w", err)
	}

	log.Printf("seeded %d airports, %d airlines, %d flights", len(airportIDs), len(airlineIDs), len(flights))
	return nil
}

// generateFlights builds the sample schedule: for each of the next
// sampleWindowDays days and each fixed route, a morning and an evening
// flight with randomized times, prices and seat counts.
func generateFlights(airportIDs, airlineIDs []int64, start time.Time, rng *rand.Rand) []domain.Flight {
	flights := make([]domain.Flight, 0, sampleWindowDays*len(sampleRoutes)*2)

	year, month, day := start.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, start.Location())

	for d := 0; d < sampleWindowDays; d++ {
		date := midnight.AddDate(0, 0, d)
		for _, route := range sampleRoutes {
			for _, baseHour := range []int{8, 16} {
				departure := date.Add(time.Duration(baseHour)*time.Hour + time.Duration(rng.Intn(4*3600))*time.Second)
				arrival := departure.Add(time.Duration(2*3600+rng.Intn(3*3600)) * time.Second)
				basePrice := float64(3000 + rng.Intn(12000))

				flights = append(flights, domain.Flight{
					FlightNumber:       fmt.Sprintf("FL%d", 1000+rng.Intn(8999)),
					AirlineID:          airlineIDs[rng.Intn(len(airlineIDs))],
					DepartureAirportID: airportIDs[route[0]],
					ArrivalAirportID:   airportIDs[route[1]],
					DepartureTime:      departure,
					ArrivalTime:        arrival,
					PriceEconomy:       basePrice,
					PriceBusiness:      basePrice * 2.5,
					PriceFirst:         basePrice * 4.0,
					SeatsEconomy:       50 + rng.Intn(100),
					SeatsBusiness:      10 + rng.Intn(20),
					SeatsFirst:         5 + rng.Intn(10),
				})
			}
		}
	}
	return flights
}
