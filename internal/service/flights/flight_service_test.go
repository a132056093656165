package flights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/airtickets/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) SearchByRoute(ctx context.Context, departureCity, arrivalCity string, departureDate time.Time) ([]domain.FlightOffer, error) {
	args := m.Called(ctx, departureCity, arrivalCity, departureDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlightOffer), args.Error(1)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

type MockAirportRepository struct {
	mock.Mock
}

func (m *MockAirportRepository) GetByCode(ctx context.Context, code string) (*domain.Airport, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockAirportRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockAirportRepository) Create(ctx context.Context, airport *domain.Airport) error {
	args := m.Called(ctx, airport)
	return args.Error(0)
}

func (m *MockAirportRepository) CreateAirline(ctx context.Context, airline *domain.Airline) error {
	args := m.Called(ctx, airline)
	return args.Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetSearch(ctx context.Context, key string) ([]domain.FlightOffer, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlightOffer), args.Error(1)
}

func (m *MockCache) SetSearch(ctx context.Context, key string, offers []domain.FlightOffer) error {
	args := m.Called(ctx, key, offers)
	return args.Error(0)
}

func (m *MockCache) GetAirports(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockCache) SetAirports(ctx context.Context, airports []domain.Airport) error {
	args := m.Called(ctx, airports)
	return args.Error(0)
}

var searchDate = time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)

func sampleOffers() []domain.FlightOffer {
	return []domain.FlightOffer{
		{FlightID: 1, FlightNumber: "FL1234", DepartureCity: "Москва", ArrivalCity: "Сочи"},
		{FlightID: 2, FlightNumber: "FL5678", DepartureCity: "Москва", ArrivalCity: "Сочи"},
	}
}

func TestFlightService_Search_CacheMiss(t *testing.T) {
	mockFlightRepo := &MockFlightRepository{}
	mockCache := &MockCache{}

	service := NewFlightService(mockFlightRepo, &MockAirportRepository{}, mockCache)

	ctx := context.Background()
	input := SearchInput{DepartureCity: "Москва", ArrivalCity: "Сочи", DepartureDate: searchDate}
	offers := sampleOffers()

	mockCache.On("GetSearch", ctx, mock.Anything).Return(nil, nil).Once()
	mockFlightRepo.On("SearchByRoute", ctx, "Москва", "Сочи", searchDate).Return(offers, nil).Once()
	mockCache.On("SetSearch", ctx, mock.Anything, offers).Return(nil).Once()

	result, err := service.Search(ctx, input)

	assert.NoError(t, err)
	assert.Equal(t, offers, result)

	mockFlightRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestFlightService_Search_CacheHit(t *testing.T) {
	mockFlightRepo := &MockFlightRepository{}
	mockCache := &MockCache{}

	service := NewFlightService(mockFlightRepo, &MockAirportRepository{}, mockCache)

	ctx := context.Background()
	offers := sampleOffers()

	mockCache.On("GetSearch", ctx, mock.Anything).Return(offers, nil).Once()

	result, err := service.Search(ctx, SearchInput{DepartureCity: "Москва", ArrivalCity: "Сочи", DepartureDate: searchDate})

	assert.NoError(t, err)
	assert.Equal(t, offers, result)

	mockFlightRepo.AssertNotCalled(t, "SearchByRoute")
	mockCache.AssertNotCalled(t, "SetSearch")
}

func TestFlightService_Search_CacheErrorFallsThrough(t *testing.T) {
	mockFlightRepo := &MockFlightRepository{}
	mockCache := &MockCache{}

	service := NewFlightService(mockFlightRepo, &MockAirportRepository{}, mockCache)

	ctx := context.Background()
	offers := sampleOffers()

	mockCache.On("GetSearch", ctx, mock.Anything).Return(nil, errors.New("redis down")).Once()
	mockFlightRepo.On("SearchByRoute", ctx, "Москва", "Сочи", searchDate).Return(offers, nil).Once()
	mockCache.On("SetSearch", ctx, mock.Anything, offers).Return(nil).Once()

	result, err := service.Search(ctx, SearchInput{DepartureCity: "Москва", ArrivalCity: "Сочи", DepartureDate: searchDate})

	assert.NoError(t, err)
	assert.Equal(t, offers, result)

	mockFlightRepo.AssertExpectations(t)
}

func TestFlightService_Search_NilCache(t *testing.T) {
	mockFlightRepo := &MockFlightRepository{}

	service := NewFlightService(mockFlightRepo, &MockAirportRepository{}, nil)

	ctx := context.Background()
	offers := sampleOffers()

	mockFlightRepo.On("SearchByRoute", ctx, "Москва", "Сочи", searchDate).Return(offers, nil).Once()

	result, err := service.Search(ctx, SearchInput{DepartureCity: "Москва", ArrivalCity: "Сочи", DepartureDate: searchDate})

	assert.NoError(t, err)
	assert.Equal(t, offers, result)
}

func TestFlightService_Search_RoundTrip(t *testing.T) {
	mockFlightRepo := &MockFlightRepository{}

	service := NewFlightService(mockFlightRepo, &MockAirportRepository{}, nil)

	ctx := context.Background()
	returnDate := searchDate.AddDate(0, 0, 7)

	outbound := []domain.FlightOffer{
		{FlightID: 1, FlightNumber: "FL1234", DepartureCity: "Москва", ArrivalCity: "Сочи"},
	}
	inbound := []domain.FlightOffer{
		{FlightID: 9, FlightNumber: "FL9876", DepartureCity: "Сочи", ArrivalCity: "Москва"},
	}

	mockFlightRepo.On("SearchByRoute", ctx, "Москва", "Сочи", searchDate).Return(outbound, nil).Once()
	mockFlightRepo.On("SearchByRoute", ctx, "Сочи", "Москва", returnDate).Return(inbound, nil).Once()

	result, err := service.Search(ctx, SearchInput{
		DepartureCity: "Москва",
		ArrivalCity:   "Сочи",
		DepartureDate: searchDate,
		ReturnDate:    &returnDate,
	})

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.False(t, result[0].IsReturn)
	assert.True(t, result[1].IsReturn)
	assert.Equal(t, int64(9), result[1].FlightID)

	mockFlightRepo.AssertExpectations(t)
}

func TestFlightService_Search_RepositoryError(t *testing.T) {
	mockFlightRepo := &MockFlightRepository{}

	service := NewFlightService(mockFlightRepo, &MockAirportRepository{}, nil)

	ctx := context.Background()

	mockFlightRepo.On("SearchByRoute", ctx, "Москва", "Сочи", searchDate).Return(nil, errors.New("db error")).Once()

	result, err := service.Search(ctx, SearchInput{DepartureCity: "Москва", ArrivalCity: "Сочи", DepartureDate: searchDate})

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestFlightService_AirportInfo(t *testing.T) {
	mockAirportRepo := &MockAirportRepository{}

	service := NewFlightService(&MockFlightRepository{}, mockAirportRepo, nil)

	ctx := context.Background()
	airport := &domain.Airport{ID: 1, Code: "SVO", Name: "Шереметьево", City: "Москва"}

	mockAirportRepo.On("GetByCode", ctx, "SVO").Return(airport, nil).Once()

	result, err := service.AirportInfo(ctx, "SVO")

	assert.NoError(t, err)
	assert.Equal(t, airport, result)
}

func TestFlightService_AirportInfo_NotFound(t *testing.T) {
	mockAirportRepo := &MockAirportRepository{}

	service := NewFlightService(&MockFlightRepository{}, mockAirportRepo, nil)

	ctx := context.Background()

	mockAirportRepo.On("GetByCode", ctx, "XXX").Return(nil, domain.ErrNotFound).Once()

	result, err := service.AirportInfo(ctx, "XXX")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, result)
}

func TestFlightService_ListAirports_CacheMiss(t *testing.T) {
	mockAirportRepo := &MockAirportRepository{}
	mockCache := &MockCache{}

	service := NewFlightService(&MockFlightRepository{}, mockAirportRepo, mockCache)

	ctx := context.Background()
	airports := []domain.Airport{
		{ID: 1, Code: "SVO", City: "Москва"},
		{ID: 2, Code: "AER", City: "Сочи"},
	}

	mockCache.On("GetAirports", ctx).Return(nil, nil).Once()
	mockAirportRepo.On("List", ctx).Return(airports, nil).Once()
	mockCache.On("SetAirports", ctx, airports).Return(nil).Once()

	result, err := service.ListAirports(ctx)

	assert.NoError(t, err)
	assert.Equal(t, airports, result)

	mockCache.AssertExpectations(t)
}

func TestFlightService_ListAirports_CacheHit(t *testing.T) {
	mockAirportRepo := &MockAirportRepository{}
	mockCache := &MockCache{}

	service := NewFlightService(&MockFlightRepository{}, mockAirportRepo, mockCache)

	ctx := context.Background()
	airports := []domain.Airport{{ID: 1, Code: "SVO", City: "Москва"}}

	mockCache.On("GetAirports", ctx).Return(airports, nil).Once()

	result, err := service.ListAirports(ctx)

	assert.NoError(t, err)
	assert.Equal(t, airports, result)

	mockAirportRepo.AssertNotCalled(t, "List")
}

func TestSearchCacheKey(t *testing.T) {
	oneWay := SearchInput{DepartureCity: "Москва", ArrivalCity: "Сочи", DepartureDate: searchDate}
	assert.Equal(t, "Москва:Сочи:2025-07-14:", searchCacheKey(oneWay))

	returnDate := searchDate.AddDate(0, 0, 7)
	roundTrip := oneWay
	roundTrip.ReturnDate = &returnDate
	assert.Equal(t, "Москва:Сочи:2025-07-14:2025-07-21", searchCacheKey(roundTrip))
}
