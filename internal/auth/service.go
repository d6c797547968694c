package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/odyssey-erp/registrar/internal/book"
	"github.com/odyssey-erp/registrar/internal/shared"
)

// Directory finds the person holding an account.
type Directory interface {
	FindAccount(username string) (*book.Person, error)
}

// Service wraps authentication business rules.
type Service struct {
	cost int
}

// NewService constructs a new Service hashing at cost.
func NewService(cost int) *Service {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Service{cost: cost}
}

// Hash derives a bcrypt hash for password.
func (s *Service) Hash(password string) (string, error) {
	if password == "" {
		return "", shared.Invalid("Password must not be empty.")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", shared.Invalid("Password must be at most 72 bytes.")
		}
		return "", fmt.Errorf("auth: hash: %w", err)
	}
	return string(hash), nil
}

// Verify compares password against hash.
func (s *Service) Verify(hash, password string) error {
	if hash == "" {
		return shared.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return shared.ErrInvalidCredentials
	}
	return nil
}

// Authenticate validates username/password credentials against dir.
func (s *Service) Authenticate(ctx context.Context, dir Directory, username, password string) (*book.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	person, err := dir.FindAccount(username)
	if err != nil {
		return nil, shared.ErrInvalidCredentials
	}
	if err := s.Verify(person.Account.PasswordHash, password); err != nil {
		return nil, err
	}
	return person, nil
}
