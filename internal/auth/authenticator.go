// Package auth registers roommates and issues their session tokens.
package auth

import (
	"context"

	"github.com/mmynk/roommates/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// Services depend on it rather than on a concrete credential scheme.
type Authenticator interface {
	// Register creates an unassigned person with the given username and credential.
	Register(ctx context.Context, username, name, credential string) (*models.Person, error)

	// Authenticate verifies the credential and returns the person.
	Authenticate(ctx context.Context, username, credential string) (*models.Person, error)

	// ValidateCredential checks the credential before it is stored.
	ValidateCredential(credential string) error
}
