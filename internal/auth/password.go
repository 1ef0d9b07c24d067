package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/roommates/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrUsernameExists     = errors.New("username already registered")
	ErrInvalidUsername    = errors.New("username must be 3 to 32 letters, digits, '.', '-' or '_'")
)

// PersonStorage is the persistence the authenticator needs.
// household.Directory satisfies it.
type PersonStorage interface {
	CreatePerson(ctx context.Context, person *models.Person) error
	GetPersonByUsername(ctx context.Context, username string) (*models.Person, error)
}

// PasswordAuthenticator implements password-based authentication using bcrypt.
type PasswordAuthenticator struct {
	storage PersonStorage
	cost    int
}

// NewPasswordAuthenticator creates a new password-based authenticator.
func NewPasswordAuthenticator(storage PersonStorage) *PasswordAuthenticator {
	return &PasswordAuthenticator{
		storage: storage,
		cost:    bcrypt.DefaultCost,
	}
}

// ValidateCredential checks if the password meets minimum requirements.
func (a *PasswordAuthenticator) ValidateCredential(credential string) error {
	if len(credential) < 8 {
		return ErrWeakPassword
	}
	return nil
}

// NormalizeUsername lowercases and trims a username and checks its charset.
func NormalizeUsername(username string) (string, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if len(username) < 3 || len(username) > 32 {
		return "", ErrInvalidUsername
	}
	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
		default:
			return "", ErrInvalidUsername
		}
	}
	return username, nil
}

// Register creates a new, unassigned person with a hashed password.
func (a *PasswordAuthenticator) Register(ctx context.Context, username, name, credential string) (*models.Person, error) {
	username, err := NormalizeUsername(username)
	if err != nil {
		return nil, err
	}
	if err := a.ValidateCredential(credential); err != nil {
		return nil, err
	}

	_, err = a.storage.GetPersonByUsername(ctx, username)
	if err == nil {
		return nil, ErrUsernameExists
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(credential), a.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = username
	}
	person := models.NewPerson(name, username, string(hashedPassword))
	if err := a.storage.CreatePerson(ctx, person); err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	return person, nil
}

// Authenticate verifies the username and password, returning the person if valid.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, username, credential string) (*models.Person, error) {
	username, err := NormalizeUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	person, err := a.storage.GetPersonByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(person.PasswordHash), []byte(credential)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return person, nil
}
