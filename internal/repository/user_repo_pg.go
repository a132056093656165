package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/airtickets/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, email, fullName string) error
}

type PGUserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &PGUserRepository{db: db}
}

func (r *PGUserRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.db.QueryRow(ctx, `INSERT INTO users (username, password, email, full_name, registration_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		user.Username, user.PasswordHash, user.Email, user.FullName, user.RegistrationDate).
		Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (r *PGUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.scanUser(r.db.QueryRow(ctx, `SELECT id, username, password, email, full_name, registration_date FROM users WHERE username=$1`, username))
}

func (r *PGUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.scanUser(r.db.QueryRow(ctx, `SELECT id, username, password, email, full_name, registration_date FROM users WHERE id=$1`, id))
}

func (r *PGUserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.FullName, &u.RegistrationDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UpdateProfile changes email and full name only. Username, password and
// registration date are never touched here.
func (r *PGUserRepository) UpdateProfile(ctx context.Context, id int64, email, fullName string) error {
	res, err := r.db.Exec(ctx, `UPDATE users SET email=$1, full_name=$2 WHERE id=$3`, email, fullName, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ UserRepository = (*PGUserRepository)(nil)
