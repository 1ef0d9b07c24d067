// Package service exposes the household operations over Connect RPC.
package service

import (
	"net/http"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/roommates/internal/auth"
	"github.com/mmynk/roommates/internal/chores"
	"github.com/mmynk/roommates/internal/events"
	"github.com/mmynk/roommates/internal/household"
	"github.com/mmynk/roommates/internal/membership"
	"github.com/mmynk/roommates/internal/metrics"
	"github.com/mmynk/roommates/internal/middleware"
	"github.com/mmynk/roommates/internal/notifications"
	"github.com/mmynk/roommates/internal/storage"
	"github.com/mmynk/roommates/pkg/api"
)

// Deps are the collaborators of the RPC services.
type Deps struct {
	Store         storage.Store
	JWT           *auth.JWTManager
	Authenticator auth.Authenticator // defaults to a PasswordAuthenticator over Store
	Publisher     events.Publisher   // defaults to events.Nop
	Metrics       *metrics.Metrics   // may be nil
	Now           func() time.Time   // defaults to time.Now
}

// publicProcedures can be called without a token.
var publicProcedures = []string{
	api.AuthServiceRegisterProcedure,
	api.AuthServiceLoginProcedure,
}

// Register mounts every RPC service on mux.
func Register(mux *http.ServeMux, d Deps) {
	if d.Publisher == nil {
		d.Publisher = events.Nop{}
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	directory := household.NewDirectory(d.Store)
	if d.Authenticator == nil {
		d.Authenticator = auth.NewPasswordAuthenticator(directory)
	}

	interceptors := connect.WithInterceptors(
		middleware.MetricsInterceptor(d.Metrics),
		middleware.RequireAuth(d.JWT, publicProcedures...),
		middleware.LoggingInterceptor(),
	)

	mux.Handle(api.NewAuthServiceHandler(
		NewAuthService(d.Authenticator, d.JWT, directory), interceptors))
	mux.Handle(api.NewRoomServiceHandler(
		NewRoomService(directory, membership.NewController(d.Store), d.Publisher, d.Metrics), interceptors))
	mux.Handle(api.NewChoreServiceHandler(
		NewChoreService(chores.NewService(d.Store, d.Metrics), d.Now), interceptors))
	mux.Handle(api.NewLedgerServiceHandler(
		NewLedgerService(d.Store, d.Publisher, d.Metrics, d.Now), interceptors))
	mux.Handle(api.NewNotificationServiceHandler(
		NewNotificationService(notifications.NewService(d.Store), d.Now), interceptors))
}
