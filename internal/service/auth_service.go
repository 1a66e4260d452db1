package service

import (
	"context"
	"fmt"
	"strings"

	"pokedex-api/internal/auth"
	"pokedex-api/internal/model"
)

// CredentialStore is the persistence contract the auth flow needs.
// Absence on lookup is a normal result, not an error.
type CredentialStore interface {
	FindByUsername(ctx context.Context, username string) (model.User, bool, error)
	Insert(ctx context.Context, u model.User) (model.User, error)
}

// AuthService orchestrates credential registration, password
// verification, and session-token issuance.
type AuthService struct {
	users  CredentialStore
	hasher *auth.Hasher
	issuer *auth.Issuer
}

func NewAuthService(users CredentialStore, hasher *auth.Hasher, issuer *auth.Issuer) *AuthService {
	return &AuthService{users: users, hasher: hasher, issuer: issuer}
}

// Register persists a new credential record and finishes with a full
// login against it, so the returned token is identical in shape to one
// from a later independent login. The store does not enforce username
// uniqueness; duplicate registrations both land.
func (s *AuthService) Register(ctx context.Context, username string, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", model.ErrInvalidInput
	}

	user := model.User{
		Username:     username,
		PasswordHash: s.hasher.Digest(password),
	}
	if _, err := s.users.Insert(ctx, user); err != nil {
		return "", fmt.Errorf("register %q: %w", username, err)
	}

	return s.Login(ctx, username, password)
}

// Login verifies the credentials and issues a session token. Unknown
// username and wrong password are deliberately indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, username string, password string) (string, error) {
	user, found, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return "", fmt.Errorf("login lookup: %w", err)
	}
	if !found {
		return "", model.ErrInvalidCredentials
	}

	if !s.hasher.Matches(password, user.PasswordHash) {
		return "", model.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.Username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
