package user

import (
	"time"

	domain "lecturer-claims-service/internal/domain/user"
)

type CreateUserInput struct {
	Email      string      `json:"email"`
	FullName   string      `json:"full_name"`
	Role       domain.Role `json:"role"`
	HourlyRate float64     `json:"hourly_rate"`
}

type UpdateUserInput struct {
	FullName   string      `json:"full_name"`
	Role       domain.Role `json:"role"`
	HourlyRate float64     `json:"hourly_rate"`
	IsActive   bool        `json:"is_active"`
}

type UserDTO struct {
	ID         uint64    `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Role       string    `json:"role"`
	HourlyRate float64   `json:"hourly_rate"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}
