package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/roommates/internal/events"
	"github.com/mmynk/roommates/internal/household"
	"github.com/mmynk/roommates/internal/membership"
	"github.com/mmynk/roommates/internal/metrics"
	"github.com/mmynk/roommates/pkg/api"
)

// RoomService implements api.RoomServiceHandler.
type RoomService struct {
	directory  *household.Directory
	membership *membership.Controller
	publisher  events.Publisher
	metrics    *metrics.Metrics
}

// NewRoomService creates a RoomService.
func NewRoomService(directory *household.Directory, controller *membership.Controller, publisher events.Publisher, m *metrics.Metrics) *RoomService {
	return &RoomService{
		directory:  directory,
		membership: controller,
		publisher:  publisher,
		metrics:    m,
	}
}

func (s *RoomService) roomResponse(ctx context.Context, op string, personID int64) (*connect.Response[api.RoomResponse], error) {
	view, err := s.directory.GetRoom(ctx, personID)
	if err != nil {
		return nil, toConnectError(ctx, op, err)
	}
	return connect.NewResponse(&api.RoomResponse{Room: toAPIRoom(view.Room, view.Members)}), nil
}

// CreateRoom creates a room with the caller as its first member.
func (s *RoomService) CreateRoom(ctx context.Context, req *connect.Request[api.CreateRoomRequest]) (*connect.Response[api.RoomResponse], error) {
	personID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateRoom request received", "person_id", personID, "name", req.Msg.Name)

	room, err := s.directory.CreateRoom(ctx, personID, req.Msg.Name)
	if err != nil {
		return nil, toConnectError(ctx, "CreateRoom", err)
	}

	slog.Info("Room created", "room_id", room.ID, "person_id", personID)
	events.Emit(ctx, s.publisher, events.MemberJoined, room.ID, personID, map[string]bool{"created": true})
	return s.roomResponse(ctx, "CreateRoom", personID)
}

// JoinRoom adds the caller to the room with the given invite code.
func (s *RoomService) JoinRoom(ctx context.Context, req *connect.Request[api.JoinRoomRequest]) (*connect.Response[api.RoomResponse], error) {
	personID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("JoinRoom request received", "person_id", personID)

	room, err := s.directory.JoinRoom(ctx, personID, req.Msg.InviteCode)
	if err != nil {
		return nil, toConnectError(ctx, "JoinRoom", err)
	}

	slog.Info("Person joined room", "room_id", room.ID, "person_id", personID)
	events.Emit(ctx, s.publisher, events.MemberJoined, room.ID, personID, nil)
	return s.roomResponse(ctx, "JoinRoom", personID)
}

// GetRoom returns the caller's room and its members.
func (s *RoomService) GetRoom(ctx context.Context, req *connect.Request[api.GetRoomRequest]) (*connect.Response[api.RoomResponse], error) {
	personID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	return s.roomResponse(ctx, "GetRoom", personID)
}

// LeaveRoom removes the caller from their room, dissolving it when they
// were the last member.
func (s *RoomService) LeaveRoom(ctx context.Context, req *connect.Request[api.LeaveRoomRequest]) (*connect.Response[api.LeaveRoomResponse], error) {
	personID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("LeaveRoom request received", "person_id", personID)

	result, err := s.membership.Leave(ctx, personID)
	if err != nil {
		return nil, toConnectError(ctx, "LeaveRoom", err)
	}

	slog.Info("Person left room",
		"person_id", personID,
		"room_id", result.RoomID,
		"dissolved", result.Dissolved,
		"deleted_chores", len(result.DeletedChores),
		"reassigned_chores", len(result.ReassignedChores),
		"trimmed_chores", len(result.TrimmedChores),
		"deleted_periods", result.DeletedPeriods,
	)
	s.metrics.MemberLeft(result.Dissolved, len(result.DeletedChores), len(result.ReassignedChores), len(result.TrimmedChores))

	resp := &api.LeaveRoomResponse{
		Dissolved:        result.Dissolved,
		DeletedChores:    result.DeletedChores,
		ReassignedChores: result.ReassignedChores,
		TrimmedChores:    result.TrimmedChores,
		DeletedPeriods:   result.DeletedPeriods,
	}
	typ := events.MemberLeft
	if result.Dissolved {
		typ = events.RoomDissolved
	}
	events.Emit(ctx, s.publisher, typ, result.RoomID, personID, resp)

	return connect.NewResponse(resp), nil
}
