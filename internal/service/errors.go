package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/roommates/internal/auth"
	"github.com/mmynk/roommates/internal/middleware"
	"github.com/mmynk/roommates/internal/models"
)

var errInternal = errors.New("internal error")

// callerID returns the authenticated person, or an Unauthenticated error.
func callerID(ctx context.Context) (int64, error) {
	id := middleware.GetPersonID(ctx)
	if id == 0 {
		return 0, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return id, nil
}

// toConnectError logs a failed operation and maps domain errors to Connect
// codes. Unexpected errors are hidden behind a generic message.
func toConnectError(ctx context.Context, op string, err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	var code connect.Code
	switch {
	case errors.Is(err, models.ErrNotFound):
		code = connect.CodeNotFound
	case errors.Is(err, models.ErrInvalidState):
		code = connect.CodeFailedPrecondition
	case errors.Is(err, models.ErrValidation):
		code = connect.CodeInvalidArgument
	default:
		slog.ErrorContext(ctx, op+" failed", "person_id", middleware.GetPersonID(ctx), "error", err)
		return connect.NewError(connect.CodeInternal, errInternal)
	}

	slog.WarnContext(ctx, op+" failed", "person_id", middleware.GetPersonID(ctx), "code", code, "error", err)
	return connect.NewError(code, err)
}
