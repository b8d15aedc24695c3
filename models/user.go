package models

import "time"

// Roles recognised by the platform.
const (
	RoleUser  = "user"
	RoleOwner = "owner"
	RoleAdmin = "admin"
)

// User represents a platform account: a player booking turfs, a turf
// owner, or an administrator.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Phone        string    `bson:"phone" json:"phone"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// RegisterUserRequest is the signup payload.
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

// AuthRequest is the login payload.
type AuthRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}
