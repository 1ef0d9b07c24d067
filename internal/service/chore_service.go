package service

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/roommates/internal/chores"
	"github.com/mmynk/roommates/internal/models"
	"github.com/mmynk/roommates/pkg/api"
)

// ChoreService implements api.ChoreServiceHandler.
type ChoreService struct {
	chores *chores.Service
	now    func() time.Time
}

// NewChoreService creates a ChoreService. now is the clock used to apply
// rotations when listing.
func NewChoreService(svc *chores.Service, now func() time.Time) *ChoreService {
	return &ChoreService{chores: svc, now: now}
}

func choreInput(f api.ChoreFields) (chores.Input, error) {
	recurrence, err := models.ParseRecurrence(f.Recurrence)
	if err != nil {
		return chores.Input{}, err
	}
	return chores.Input{
		Description:   f.Description,
		StartDate:     f.StartDate,
		EndDate:       f.EndDate,
		IsTask:        f.IsTask,
		Recurrence:    recurrence,
		AssigneeID:    f.AssigneeID,
		RotationOrder: f.RotationOrder,
	}, nil
}

// CreateChore adds a chore to the caller's room.
func (s *ChoreService) CreateChore(ctx context.Context, req *connect.Request[api.CreateChoreRequest]) (*connect.Response[api.ChoreResponse], error) {
	personID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateChore request received",
		"person_id", personID,
		"recurrence", req.Msg.Recurrence,
		"assignee_id", req.Msg.AssigneeID,
	)

	in, err := choreInput(req.Msg.ChoreFields)
	if err != nil {
		return nil, toConnectError(ctx, "CreateChore", err)
	}
	chore, err := s.chores.Create(ctx, personID, in)
	if err != nil {
		return nil, toConnectError(ctx, "CreateChore", err)
	}

	slog.Info("Chore created", "chore_id", chore.ID)
	return connect.NewResponse(&api.ChoreResponse{Chore: toAPIChore(chore)}), nil
}

// UpdateChore replaces a chore's editable fields.
func (s *ChoreService) UpdateChore(ctx context.Context, req *connect.Request[api.UpdateChoreRequest]) (*connect.Response[api.ChoreResponse], error) {
	personID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("UpdateChore request received", "person_id", personID, "chore_id", req.Msg.ChoreID)

	in, err := choreInput(req.Msg.ChoreFields)
	if err != nil {
		return nil, toConnectError(ctx, "UpdateChore", err)
	}
	chore, err := s.chores.Update(ctx, personID, req.Msg.ChoreID, in)
	if err != nil {
		return nil, toConnectError(ctx, "UpdateChore", err)
	}
	return connect.NewResponse(&api.ChoreResponse{Chore: toAPIChore(chore)}), nil
}

// DeleteChore removes a chore.
func (s *ChoreService) DeleteChore(ctx context.Context, req *connect.Request[api.DeleteChoreRequest]) (*connect.Response[api.Empty], error) {
	personID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteChore request received", "person_id", personID, "chore_id", req.Msg.ChoreID)

	if err := s.chores.Delete(ctx, personID, req.Msg.ChoreID); err != nil {
		return nil, toConnectError(ctx, "DeleteChore", err)
	}
	return connect.NewResponse(&api.Empty{}), nil
}

// SetChoreCompleted marks a task done or not done.
func (s *ChoreService) SetChoreCompleted(ctx context.Context, req *connect.Request[api.SetChoreCompletedRequest]) (*connect.Response[api.ChoreResponse], error) {
	personID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	chore, err := s.chores.SetCompleted(ctx, personID, req.Msg.ChoreID, req.Msg.Completed)
	if err != nil {
		return nil, toConnectError(ctx, "SetChoreCompleted", err)
	}
	return connect.NewResponse(&api.ChoreResponse{Chore: toAPIChore(chore)}), nil
}

// ListChores returns the chores of the caller's room, rotated up to now.
func (s *ChoreService) ListChores(ctx context.Context, req *connect.Request[api.ListChoresRequest]) (*connect.Response[api.ListChoresResponse], error) {
	personID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.chores.ListForRoom(ctx, personID, s.now())
	if err != nil {
		return nil, toConnectError(ctx, "ListChores", err)
	}

	out := make([]*api.Chore, 0, len(list))
	for _, c := range list {
		out = append(out, toAPIChore(c))
	}
	slog.Info("ListChores successful", "person_id", personID, "count", len(out))
	return connect.NewResponse(&api.ListChoresResponse{Chores: out}), nil
}
