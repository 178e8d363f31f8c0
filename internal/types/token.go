package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the claims carried by service-issued JWTs.
type TokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
