package domain

import (
	"context"
	"time"
)

// User role constants
const (
	RoleCandidate = "candidate"
	RoleAdmin     = "admin"
)

// User represents an account holder (candidate or admin)
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AuthToken is the result of a successful register/login
type AuthToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      *User     `json:"user"`
}

// UserRepository defines data access methods for users
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

// AuthUsecase defines business logic for authentication
type AuthUsecase interface {
	Register(ctx context.Context, name, email, password string) (*AuthToken, error)
	Login(ctx context.Context, email, password string) (*AuthToken, error)
	GetCurrentUser(ctx context.Context, userID string) (*User, error)
}
