package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/pageza/heritage-recipes/backend/internal/apperrors"
	"github.com/pageza/heritage-recipes/backend/internal/auth"
	"github.com/pageza/heritage-recipes/backend/internal/models"
	"github.com/pageza/heritage-recipes/backend/internal/repository"
	"github.com/pageza/heritage-recipes/backend/internal/types"
)

const (
	minPasswordLength = 6
	// bcrypt only accepts up to 72 bytes.
	maxPasswordBytes = 72
)

var errInvalidCredentials = apperrors.Auth("invalid credentials")

// AuthService registers users, checks credentials and issues bearer tokens.
type AuthService struct {
	users    UserStore
	hasher   auth.PasswordHasher
	tokens   auth.TokenManager
	validate *validator.Validate

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(users UserStore, hasher auth.PasswordHasher, tokens auth.TokenManager) *AuthService {
	return &AuthService{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		validate: validator.New(),
	}
}

// NormalizeEmail is the form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account and returns it with a fresh token.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)

	switch {
	case name == "":
		return nil, "", apperrors.Validation("name is required")
	case email == "":
		return nil, "", apperrors.Validation("email is required")
	case s.validate.Var(email, "email") != nil:
		return nil, "", apperrors.Validation("email is invalid")
	case len(password) < minPasswordLength:
		return nil, "", apperrors.Validation("password must be at least 6 characters")
	case len(password) > maxPasswordBytes:
		return nil, "", apperrors.Validation("password must be at most 72 bytes")
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", apperrors.Conflict("user already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", apperrors.Conflict("user already exists")
		}
		return nil, "", err
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login checks credentials. Unknown email and wrong password fail the same way.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Spend the same bcrypt work as a real comparison.
			_ = s.hasher.Compare(s.dummy(), password)
			return nil, "", errInvalidCredentials
		}
		return nil, "", err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, "", errInvalidCredentials
		}
		return nil, "", err
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ValidateToken resolves a bearer token to its claims.
func (s *AuthService) ValidateToken(token string) (*types.TokenClaims, error) {
	if token == "" {
		return nil, apperrors.Auth("authorization token required")
	}
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindAuth, "invalid or expired token", err)
	}
	return claims, nil
}

// GetUser returns the public view of a user.
func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// DeleteUser removes a user with its recipes and favorites.
func (s *AuthService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("user not found")
		}
		return err
	}
	return nil
}

func (s *AuthService) dummy() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash(uuid.NewString())
	})
	return s.dummyHash
}
