package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// JWT claims structure. UserID is the opaque identity string issued by the
// external authentication service.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
