package users

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/airtickets/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id int64, email, fullName string) error {
	args := m.Called(ctx, id, email, fullName)
	return args.Error(0)
}

func TestHashPassword(t *testing.T) {
	hash := HashPassword("password123")

	assert.Equal(t, "ef92b778bafe771e89245b89ecbc08a44a4e166c06659911881f383d4473e94f", hash)
	assert.Equal(t, hash, HashPassword("password123"))
	assert.NotEqual(t, hash, HashPassword("password124"))
}

func TestUserService_Register_Success(t *testing.T) {
	mockUserRepo := &MockUserRepository{}

	service := NewUserService(mockUserRepo)

	ctx := context.Background()

	mockUserRepo.On("GetByUsername", ctx, "newuser").Return(nil, domain.ErrNotFound).Once()
	mockUserRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			u.ID = 12
		}).
		Return(nil).Once()

	userID, err := service.Register(ctx, RegisterInput{
		Username: "newuser",
		Password: "secret",
		Email:    "new@example.com",
		FullName: "New User",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(12), userID)

	created := mockUserRepo.Calls[1].Arguments.Get(1).(*domain.User)
	assert.Equal(t, HashPassword("secret"), created.PasswordHash)
	assert.NotEqual(t, "secret", created.PasswordHash)
	assert.False(t, created.RegistrationDate.IsZero())

	mockUserRepo.AssertExpectations(t)
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	mockUserRepo := &MockUserRepository{}

	service := NewUserService(mockUserRepo)

	ctx := context.Background()

	mockUserRepo.On("GetByUsername", ctx, "user").Return(&domain.User{ID: 1, Username: "user"}, nil).Once()

	userID, err := service.Register(ctx, RegisterInput{Username: "user", Password: "secret"})

	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	assert.Zero(t, userID)

	mockUserRepo.AssertNotCalled(t, "Create")
}

func TestUserService_Register_MissingFields(t *testing.T) {
	service := NewUserService(&MockUserRepository{})

	ctx := context.Background()

	_, err := service.Register(ctx, RegisterInput{Password: "secret"})
	assert.Error(t, err)

	_, err = service.Register(ctx, RegisterInput{Username: "user"})
	assert.Error(t, err)
}

func TestUserService_Authenticate_Success(t *testing.T) {
	mockUserRepo := &MockUserRepository{}

	service := NewUserService(mockUserRepo)

	ctx := context.Background()
	stored := &domain.User{ID: 5, Username: "user", PasswordHash: HashPassword("password123")}

	mockUserRepo.On("GetByUsername", ctx, "user").Return(stored, nil).Once()

	userID, err := service.Authenticate(ctx, "user", "password123")

	assert.NoError(t, err)
	assert.Equal(t, int64(5), userID)
}

func TestUserService_Authenticate_WrongPassword(t *testing.T) {
	mockUserRepo := &MockUserRepository{}

	service := NewUserService(mockUserRepo)

	ctx := context.Background()
	stored := &domain.User{ID: 5, Username: "user", PasswordHash: HashPassword("password123")}

	mockUserRepo.On("GetByUsername", ctx, "user").Return(stored, nil).Once()

	userID, err := service.Authenticate(ctx, "user", "wrong")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Zero(t, userID)
}

func TestUserService_Authenticate_UnknownUser(t *testing.T) {
	mockUserRepo := &MockUserRepository{}

	service := NewUserService(mockUserRepo)

	ctx := context.Background()

	mockUserRepo.On("GetByUsername", ctx, "ghost").Return(nil, domain.ErrNotFound).Once()

	userID, err := service.Authenticate(ctx, "ghost", "password123")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Zero(t, userID)
}

func TestUserService_Profile(t *testing.T) {
	mockUserRepo := &MockUserRepository{}

	service := NewUserService(mockUserRepo)

	ctx := context.Background()
	stored := &domain.User{
		ID:               5,
		Username:         "user",
		Email:            "user@example.com",
		FullName:         "Test User",
		RegistrationDate: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	mockUserRepo.On("GetByID", ctx, int64(5)).Return(stored, nil).Once()

	profile, err := service.Profile(ctx, 5)

	assert.NoError(t, err)
	assert.Equal(t, stored, profile)
}

func TestUserService_UpdateProfile(t *testing.T) {
	mockUserRepo := &MockUserRepository{}

	service := NewUserService(mockUserRepo)

	ctx := context.Background()

	mockUserRepo.On("UpdateProfile", ctx, int64(5), "new@example.com", "New Name").Return(nil).Once()

	err := service.UpdateProfile(ctx, 5, "new@example.com", "New Name")

	assert.NoError(t, err)
	mockUserRepo.AssertExpectations(t)
}

func TestUserService_UpdateProfile_NotFound(t *testing.T) {
	mockUserRepo := &MockUserRepository{}

	service := NewUserService(mockUserRepo)

	ctx := context.Background()

	mockUserRepo.On("UpdateProfile", ctx, int64(404), "x@example.com", "X").Return(domain.ErrNotFound).Once()

	err := service.UpdateProfile(ctx, 404, "x@example.com", "X")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
