package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"turfbook/models"
	"turfbook/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrUserExists is returned on signup with an already-registered phone.
var ErrUserExists = errors.New("user already exists")

// ErrInvalidCredentials is returned on login failure. The message never
// distinguishes unknown phone from wrong password.
var ErrInvalidCredentials = errors.New("invalid phone or password")

// ErrUserNotFound is returned when a lookup by id matches no user.
var ErrUserNotFound = errors.New("user not found")

// tokenTTL is the session token lifetime.
const tokenTTL = 24 * time.Hour

func (s *DefaultUserService) Register(ctx context.Context, req models.RegisterUserRequest) (*models.User, error) {
	existing, err := s.Repo.GetByPhone(ctx, req.Phone)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	switch role {
	case models.RoleOwner, models.RoleAdmin:
	default:
		role = models.RoleUser
	}

	created, err := s.Repo.Create(ctx, &models.User{
		Name:         req.Name,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	utils.GetLogger().Info("user registered",
		zap.String("userID", created.ID), zap.String("role", created.Role))
	return created, nil
}

func (s *DefaultUserService) Authenticate(ctx context.Context, phone, password string) (*AuthResponse, error) {
	rec, err := s.Repo.GetByPhone(ctx, phone)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if rec == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(rec.ID, rec.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.SetTokenHash(ctx, rec.ID, tokenHash); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	// Prime the auth cache; a miss just falls back to the DB lookup.
	cache := utils.GetAuthCacheClient()
	if cache != nil {
		_ = cache.Set(ctx, utils.AuthCachePrefix+rec.ID, tokenHash, utils.AuthCacheTTL).Err()
	}

	rec.TokenHash = ""
	return &AuthResponse{User: rec, Token: token}, nil
}

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	rec, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrUserNotFound
	}
	return rec, nil
}

func (s *DefaultUserService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAll(ctx)
}
