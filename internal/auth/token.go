package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pageza/heritage-recipes/backend/internal/types"
)

var (
	// ErrTokenExpired is returned when a token has expired.
	ErrTokenExpired = errors.New("token is expired")
	// ErrTokenInvalid covers malformed tokens, bad signatures and bad claims.
	ErrTokenInvalid = errors.New("token is invalid")
)

// TokenManager issues and verifies signed, time-bound bearer tokens.
type TokenManager interface {
	Generate(userID uuid.UUID) (string, error)
	Validate(token string) (*types.TokenClaims, error)
}

// JWTManager implements TokenManager with HS256 JWTs. It keeps no state besides the key.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTManager creates a JWTManager signing with secret and issuing tokens valid for ttl.
func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Generate creates a token carrying userID.
func (m *JWTManager) Generate(userID uuid.UUID) (string, error) {
	now := m.now()
	claims := types.TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate parses tokenString and checks its signature and expiry.
func (m *JWTManager) Validate(tokenString string) (*types.TokenClaims, error) {
	if tokenString == "" {
		return nil, ErrTokenInvalid
	}

	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !token.Valid || claims.UserID == uuid.Nil {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
