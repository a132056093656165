package flights

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/airtickets/internal/domain"
	"github.com/Domenick1991/airtickets/internal/repository"
)

type FlightUseCase interface {
	Search(ctx context.Context, input SearchInput) ([]domain.FlightOffer, error)
	AirportInfo(ctx context.Context, code string) (*domain.Airport, error)
	ListAirports(ctx context.Context) ([]domain.Airport, error)
}

type SearchInput struct {
	DepartureCity string
	ArrivalCity   string
	DepartureDate time.Time
	ReturnDate    *time.Time
}

// Cache is the read-through cache the service works against. A nil cache
// disables caching.
type Cache interface {
	GetSearch(ctx context.Context, key string) ([]domain.FlightOffer, error)
	SetSearch(ctx context.Context, key string, offers []domain.FlightOffer) error
	GetAirports(ctx context.Context) ([]domain.Airport, error)
	SetAirports(ctx context.Context, airports []domain.Airport) error
}

type FlightService struct {
	flights  repository.FlightRepository
	airports repository.AirportRepository
	cache    Cache
}

func NewFlightService(flights repository.FlightRepository, airports repository.AirportRepository, cache Cache) *FlightService {
	return &FlightService{flights: flights, airports: airports, cache: cache}
}

// Search returns outbound flights for the requested route and date, ordered
// by departure time. When a return date is given, the reverse-route flights
// for that date are appended and tagged as return legs.
func (s *FlightService) Search(ctx context.Context, input SearchInput) ([]domain.FlightOffer, error) {
	key := searchCacheKey(input)
	if s.cache != nil {
		if cached, err := s.cache.GetSearch(ctx, key); err == nil && cached != nil {
			return cached, nil
		}
	}

	offers, err := s.flights.SearchByRoute(ctx, input.DepartureCity, input.ArrivalCity, input.DepartureDate)
	if err != nil {
		return nil, err
	}

	if input.ReturnDate != nil {
		returnLegs, err := s.flights.SearchByRoute(ctx, input.ArrivalCity, input.DepartureCity, *input.ReturnDate)
		if err != nil {
			return nil, err
		}
		for i := range returnLegs {
			returnLegs[i].IsReturn = true
		}
		offers = append(offers, returnLegs...)
	}

	if s.cache != nil {
		_ = s.cache.SetSearch(ctx, key, offers)
	}
	return offers, nil
}

func (s *FlightService) AirportInfo(ctx context.Context, code string) (*domain.Airport, error) {
	return s.airports.GetByCode(ctx, code)
}

func (s *FlightService) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetAirports(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	airports, err := s.airports.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetAirports(ctx, airports)
	}
	return airports, nil
}

func searchCacheKey(input SearchInput) string {
	ret := ""
	if input.ReturnDate != nil {
		ret = input.ReturnDate.Format("2006-01-02")
	}
	return fmt.Sprintf("%s:%s:%s:%s", input.DepartureCity, input.ArrivalCity, input.DepartureDate.Format("2006-01-02"), ret)
}

var _ FlightUseCase = (*FlightService)(nil)
