package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Mduduzi-Ndlovu1/Blog-Project/internal/domain/entity"
	repo "github.com/Mduduzi-Ndlovu1/Blog-Project/internal/domain/repository"
	"github.com/Mduduzi-Ndlovu1/Blog-Project/pkg/helpers"
)

// ErrInvalidCredentials covers both an unknown username and a wrong password.
// Callers must not be able to tell the two apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService verifies operator credentials and issues session tokens.
type AuthService struct {
	Users  repo.UserRepository
	Tokens *helpers.TokenManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, tokens *helpers.TokenManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Tokens: tokens, Logger: logger}
}

// Login checks username/password and mints a session token on success. A
// missing user and a failed password check both return ErrInvalidCredentials;
// an internal hashing failure is logged and collapsed into the same error so
// nothing leaks through the response. Lookup failures other than a missing
// user are passed through so callers can tell an outage from a bad login.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", time.Time{}, ErrInvalidCredentials
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Error("user lookup failed")
		}
		return "", time.Time{}, fmt.Errorf("look up user: %w", err)
	}

	ok, err := helpers.CheckPassword(u.PasswordHash, password)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("password check failed")
		}
		return "", time.Time{}, ErrInvalidCredentials
	}
	if !ok {
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, exp, err := s.Tokens.Generate(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("token generation failed")
		}
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// Register hashes the password and creates the user. Uniqueness conflicts
// come back as repository.ErrDuplicate straight from the store.
func (s *AuthService) Register(ctx context.Context, username, password string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Username: username, PasswordHash: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
