package model

import "time"

type Role string

const (
	RoleUser       Role = "USER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPERADMIN"
)

type AuthRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=128"`
}

type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// Principal is the identity attached to an authenticated request.
type Principal struct {
	Username string
	Role     Role
}

type User struct {
	ID           int64
	Username     string
	Salt         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
