package user

import (
	"context"

	userRepo "turfbook/database/repository/user"
	"turfbook/models"
)

// AuthResponse carries the authenticated account and its session token.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Service manages accounts and session authentication.
type Service interface {
	Register(ctx context.Context, req models.RegisterUserRequest) (*models.User, error)
	Authenticate(ctx context.Context, phone, password string) (*AuthResponse, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
}

// DefaultUserService is the production Service implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
