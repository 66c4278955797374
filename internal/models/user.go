package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role represents user roles in the system
type Role string

const (
	RoleSuperadmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleMechanic   Role = "mechanic"
	RoleClient     Role = "client"
)

// User represents a user in the system. The password hash is never
// serialized into JSON responses.
type User struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name         string              `bson:"name" json:"name" validate:"required"`
	Email        string              `bson:"email" json:"email" validate:"required,email"`
	Role         Role                `bson:"role" json:"role" validate:"required,oneof=superadmin admin mechanic client"`
	PasswordHash string              `bson:"password" json:"-"`
	Workshop     *primitive.ObjectID `bson:"workshop,omitempty" json:"workshop,omitempty"`
	CreatedAt    time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time           `bson:"updated_at" json:"updated_at"`
}

// UserUpdate carries the fields of a partial user update. Only non-nil
// fields are written. A supplied password is re-hashed by the handler
// before it reaches the repository.
type UserUpdate struct {
	Name     *string             `json:"name,omitempty"`
	Email    *string             `json:"email,omitempty"`
	Role     *Role               `json:"role,omitempty"`
	Password *string             `json:"password,omitempty"`
	Workshop *primitive.ObjectID `json:"workshop,omitempty"`
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Name     string              `json:"name" validate:"required"`
	Email    string              `json:"email" validate:"required,email"`
	Password string              `json:"password" validate:"required"`
	Role     Role                `json:"role" validate:"required,oneof=superadmin admin mechanic client"`
	Workshop *primitive.ObjectID `json:"workshop,omitempty"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	Token string `json:"token"`
}

// Claims represents the identity carried by a verified bearer token
type Claims struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
	Exp    int64  `json:"exp"`
}

// IsValidRole checks if a role is valid
func IsValidRole(role Role) bool {
	switch role {
	case RoleSuperadmin, RoleAdmin, RoleMechanic, RoleClient:
		return true
	default:
		return false
	}
}
