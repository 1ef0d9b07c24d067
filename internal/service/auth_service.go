package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/roommates/internal/auth"
	"github.com/mmynk/roommates/internal/household"
	"github.com/mmynk/roommates/pkg/api"
)

// AuthService implements api.AuthServiceHandler.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	directory     *household.Directory
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, directory *household.Directory) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		directory:     directory,
	}
}

// Register creates a new person and signs them in.
func (s *AuthService) Register(ctx context.Context, req *connect.Request[api.RegisterRequest]) (*connect.Response[api.AuthResponse], error) {
	slog.Info("Register request received", "username", req.Msg.Username)

	person, err := s.authenticator.Register(ctx, req.Msg.Username, req.Msg.Name, req.Msg.Password)
	if err != nil {
		slog.Warn("Registration failed", "username", req.Msg.Username, "error", err)
		switch {
		case errors.Is(err, auth.ErrUsernameExists):
			return nil, connect.NewError(connect.CodeAlreadyExists, err)
		case errors.Is(err, auth.ErrWeakPassword), errors.Is(err, auth.ErrInvalidUsername):
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		return nil, toConnectError(ctx, "Register", err)
	}

	token, err := s.jwtManager.Generate(person)
	if err != nil {
		return nil, toConnectError(ctx, "Register", err)
	}

	slog.Info("Person registered", "person_id", person.ID, "username", person.Username)
	return connect.NewResponse(&api.AuthResponse{Person: toAPIPerson(person), Token: token}), nil
}

// Login authenticates a person and returns a session token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.AuthResponse], error) {
	slog.Info("Login request received", "username", req.Msg.Username)

	if req.Msg.Username == "" || req.Msg.Password == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	person, err := s.authenticator.Authenticate(ctx, req.Msg.Username, req.Msg.Password)
	if err != nil {
		slog.Warn("Login failed", "username", req.Msg.Username, "error", err)
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}

	token, err := s.jwtManager.Generate(person)
	if err != nil {
		return nil, toConnectError(ctx, "Login", err)
	}

	slog.Info("Person logged in", "person_id", person.ID)
	return connect.NewResponse(&api.AuthResponse{Person: toAPIPerson(person), Token: token}), nil
}

// GetCurrentPerson returns the authenticated person.
func (s *AuthService) GetCurrentPerson(ctx context.Context, req *connect.Request[api.GetCurrentPersonRequest]) (*connect.Response[api.GetCurrentPersonResponse], error) {
	personID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	person, err := s.directory.GetPerson(ctx, personID)
	if err != nil {
		return nil, toConnectError(ctx, "GetCurrentPerson", err)
	}
	return connect.NewResponse(&api.GetCurrentPersonResponse{Person: toAPIPerson(person)}), nil
}
