package types

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims represents the claims in a JWT token. The user id is the only
// application claim; iat and exp come from the registered claims.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"userId"`
}
