package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthService authenticates the tournament organizer. There is exactly one
// organizer credential, supplied through configuration as an email plus a
// bcrypt hash; the handlers layer issues the JWT on success.
type AuthService interface {
	Login(ctx context.Context, input LoginInput) error
}

type authService struct {
	organizerEmail        string
	organizerPasswordHash []byte
}

func NewAuthService(organizerEmail, organizerPasswordHash string) AuthService {
	return &authService{
		organizerEmail:        organizerEmail,
		organizerPasswordHash: []byte(organizerPasswordHash),
	}
}

func (s *authService) Login(_ context.Context, input LoginInput) error {
	emailMatches := subtle.ConstantTimeCompare([]byte(input.Email), []byte(s.organizerEmail)) == 1

	err := bcrypt.CompareHashAndPassword(s.organizerPasswordHash, []byte(input.Password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrAuthInvalidCredentials
		}
		return fmt.Errorf("failed to compare password hash: %w", err)
	}
	if !emailMatches {
		return ErrAuthInvalidCredentials
	}
	return nil
}
