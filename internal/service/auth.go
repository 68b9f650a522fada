// Package service provides the store's business logic, delegating
// persistence to repositories.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/avidela/tienda/internal/models"
	"github.com/avidela/tienda/internal/repository"
)

var (
	// ErrInvalidCredentials covers both unknown users and wrong
	// passwords, so callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserExists is returned on registration with a taken username.
	ErrUserExists = errors.New("user already exists")
)

// AuthRepository defines the persistence operations required by the
// authentication service.
type AuthRepository interface {
	// FindUser returns the user with the given username or
	// repository.ErrUserNotFound.
	FindUser(ctx context.Context, username string) (models.User, error)
	// UserExists returns true if a user with the given username exists.
	UserExists(ctx context.Context, username string) (bool, error)
	// CreateUser creates a new user record with the given password hash.
	CreateUser(ctx context.Context, username string, passwordHash []byte) error
}

// AuthService implements login and registration.
type AuthService struct {
	repo   AuthRepository
	secret []byte
}

// NewAuthService constructs an AuthService using the provided repository
// and token signing secret.
func NewAuthService(repo AuthRepository, secret string) *AuthService {
	return &AuthService{repo: repo, secret: []byte(secret)}
}

// Login verifies the credentials and returns the username together with
// a signed token. The token is opaque to clients; they only carry it.
func (s *AuthService) Login(ctx context.Context, username, password string) (models.LoginResult, error) {
	user, err := s.repo.FindUser(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return models.LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return models.LoginResult{}, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"sub": user.Username,
		"jti": uuid.NewString(),
		"iat": time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("sign token: %w", err)
	}

	return models.LoginResult{Username: user.Username, Token: token}, nil
}

// Register creates a new user with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	exists, err := s.repo.UserExists(ctx, username)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if exists {
		return ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.repo.CreateUser(ctx, username, hash)
}
