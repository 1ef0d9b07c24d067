package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/roommates/internal/models"
)

// CreateRoom persists a new room to the database.
func (s *txStore) CreateRoom(ctx context.Context, room *models.Room) error {
	if room.CreatedAt == 0 {
		room.CreatedAt = time.Now().Unix()
	}

	res, err := s.tx.ExecContext(ctx,
		"INSERT INTO rooms (name, invite_code, created_at) VALUES (?, ?, ?)",
		room.Name, room.InviteCode, room.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert room: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read room id: %w", err)
	}
	room.ID = id

	return nil
}

// GetRoom retrieves a room by ID.
func (s *txStore) GetRoom(ctx context.Context, id int64) (*models.Room, error) {
	return s.getRoom(ctx, "id", id)
}

// GetRoomByInviteCode retrieves a room by its invite code.
func (s *txStore) GetRoomByInviteCode(ctx context.Context, code string) (*models.Room, error) {
	return s.getRoom(ctx, "invite_code", code)
}

func (s *txStore) getRoom(ctx context.Context, column string, key any) (*models.Room, error) {
	room := &models.Room{}
	err := s.tx.QueryRowContext(ctx,
		"SELECT id, name, invite_code, created_at FROM rooms WHERE "+column+" = ?",
		key,
	).Scan(&room.ID, &room.Name, &room.InviteCode, &room.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("room", key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	return room, nil
}

// DeleteRoom removes a room by ID. Rows that still reference the room make
// this fail with a foreign key error.
func (s *txStore) DeleteRoom(ctx context.Context, id int64) error {
	res, err := s.tx.ExecContext(ctx, "DELETE FROM rooms WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return mustAffect(res, "room", id)
}
