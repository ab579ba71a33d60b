package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"cvbuilder-backend/internal/shared/auth"
)

// Service implements account use cases: registration, login and profile
// lookup. Tokens are minted by the shared JWT signer.
type Service struct {
	Repo   Repo
	Signer *auth.Signer
}

// NewService constructs a Service.
func NewService(repo Repo, signer *auth.Signer) *Service {
	return &Service{Repo: repo, Signer: signer}
}

// Register creates a password account and returns the user plus a signed
// token so the client is logged in immediately.
func (s *Service) Register(ctx context.Context, email, password, fullName string) (User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, "", err
	}

	now := time.Now().UTC()
	user := User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(fullName),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, "", err
	}

	token, err := s.Signer.Sign(user.ID, user.Email, user.FullName)
	if err != nil {
		return User{}, "", err
	}
	return user, token, nil
}

// Login verifies credentials and returns the user plus a signed token.
// Unknown email and wrong password produce the same error.
func (s *Service) Login(ctx context.Context, email, password string) (User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, "", ErrInvalidCredentials
		}
		return User{}, "", err
	}
	if user.PasswordHash == "" {
		return User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return User{}, "", ErrInvalidCredentials
	}

	token, err := s.Signer.Sign(user.ID, user.Email, user.FullName)
	if err != nil {
		return User{}, "", err
	}
	return user, token, nil
}

// UpsertFromGoogle persists the identity from a Google sign-in and returns
// the stored user plus a signed token.
func (s *Service) UpsertFromGoogle(ctx context.Context, email, fullName, pictureURL string) (User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return User{}, "", errors.New("google profile has no email")
	}

	user, err := s.Repo.Upsert(ctx, User{
		ID:         uuid.NewString(),
		Email:      email,
		FullName:   strings.TrimSpace(fullName),
		PictureURL: pictureURL,
	})
	if err != nil {
		return User{}, "", err
	}

	token, err := s.Signer.Sign(user.ID, user.Email, user.FullName)
	if err != nil {
		return User{}, "", err
	}
	return user, token, nil
}

// GetByID returns the account profile.
func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if strings.TrimSpace(userID) == "" {
		return User{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, userID)
}
