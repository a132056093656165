package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrNoAvailability     = errors.New("no seats available")
	ErrInvalidSeatClass   = errors.New("invalid seat class")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
