package models

import (
	"time"

	"github.com/golang-jwt/jwt"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           string    `db:"id" json:"id"`
	DisplayName  string    `db:"display_name" json:"display_name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	PhotoURL     *string   `db:"photo_url" json:"photo_url,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type Claims struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
	Name   string `json:"name,omitempty"`
	jwt.StandardClaims
}

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type Session struct {
	UserID       string    `json:"user_id"`
	Role         Role      `json:"role"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type SignUpRequest struct {
	DisplayName string `json:"display_name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Identity is what the identity provider knows about the caller of a request.
// Resolved is false while the provider has not settled yet.
type Identity struct {
	Resolved      bool   `json:"-"`
	Authenticated bool   `json:"authenticated"`
	ID            string `json:"id,omitempty"`
	Role          Role   `json:"role,omitempty"`
	DisplayName   string `json:"display_name,omitempty"`
}

func (i Identity) IsAdmin() bool {
	return i.Authenticated && i.Role == RoleAdmin
}
