package domain

import "time"

type User struct {
	ID               int64
	Username         string
	PasswordHash     string
	Email            string
	FullName         string
	RegistrationDate time.Time
}
