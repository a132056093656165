package users

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/Domenick1991/airtickets/internal/domain"
	"github.com/Domenick1991/airtickets/internal/repository"
)

type UserUseCase interface {
	Register(ctx context.Context, input RegisterInput) (int64, error)
	Authenticate(ctx context.Context, username, password string) (int64, error)
	Profile(ctx context.Context, userID int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int64, email, fullName string) error
}

type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// HashPassword returns the hex-encoded SHA-256 digest of the password.
// The scheme is unsalted for compatibility with existing user rows.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func (s *UserService) Register(ctx context.Context, input RegisterInput) (int64, error) {
	if input.Username == "" {
		return 0, errors.New("username is required")
	}
	if input.Password == "" {
		return 0, errors.New("password is required")
	}

	if _, err := s.users.GetByUsername(ctx, input.Username); err == nil {
		return 0, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return 0, err
	}

	user := &domain.User{
		Username:         input.Username,
		PasswordHash:     HashPassword(input.Password),
		Email:            input.Email,
		FullName:         input.FullName,
		RegistrationDate: time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

func (s *UserService) Authenticate(ctx context.Context, username, password string) (int64, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.ErrInvalidCredentials
		}
		return 0, err
	}
	if user.PasswordHash != HashPassword(password) {
		return 0, domain.ErrInvalidCredentials
	}
	return user.ID, nil
}

func (s *UserService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID int64, email, fullName string) error {
	return s.users.UpdateProfile(ctx, userID, email, fullName)
}

var _ UserUseCase = (*UserService)(nil)
