// Package household manages rooms, roommates and who lives where.
package household

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"

	"github.com/mmynk/roommates/internal/models"
	"github.com/mmynk/roommates/internal/storage"
)

const (
	inviteCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	inviteCodeLength   = 8
	inviteCodeAttempts = 5
)

// RoomView is a room together with its current members.
type RoomView struct {
	Room    *models.Room
	Members []*models.Person
}

// Directory is the entry point for room and membership operations.
type Directory struct {
	store      storage.Store
	inviteCode func() (string, error)
}

// NewDirectory creates a directory backed by store.
func NewDirectory(store storage.Store) *Directory {
	return &Directory{store: store, inviteCode: NewInviteCode}
}

// NewInviteCode returns a random 8-character code drawn from A-Z and 0-9.
func NewInviteCode() (string, error) {
	buf := make([]byte, inviteCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = inviteCodeAlphabet[int(b)%len(inviteCodeAlphabet)]
	}
	return string(buf), nil
}

// CreatePerson registers a new, unassigned person.
func (d *Directory) CreatePerson(ctx context.Context, person *models.Person) error {
	return d.store.InTx(ctx, func(tx storage.Tx) error {
		return tx.CreatePerson(ctx, person)
	})
}

// GetPerson looks up a person by ID.
func (d *Directory) GetPerson(ctx context.Context, id int64) (*models.Person, error) {
	var person *models.Person
	err := d.store.InTx(ctx, func(tx storage.Tx) error {
		var err error
		person, err = tx.GetPerson(ctx, id)
		return err
	})
	return person, err
}

// GetPersonByUsername looks up a person by username.
func (d *Directory) GetPersonByUsername(ctx context.Context, username string) (*models.Person, error) {
	var person *models.Person
	err := d.store.InTx(ctx, func(tx storage.Tx) error {
		var err error
		person, err = tx.GetPersonByUsername(ctx, username)
		return err
	})
	return person, err
}

// CreateRoom creates a room with a fresh invite code and makes the person
// its first member. The person must not already belong to a room.
func (d *Directory) CreateRoom(ctx context.Context, personID int64, name string) (*models.Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: room name is required", models.ErrValidation)
	}

	room := &models.Room{Name: name}
	err := d.store.InTx(ctx, func(tx storage.Tx) error {
		person, err := tx.GetPerson(ctx, personID)
		if err != nil {
			return err
		}
		if person.RoomID != nil {
			return fmt.Errorf("person %d already belongs to room %d: %w", personID, *person.RoomID, models.ErrInvalidState)
		}

		code, err := d.uniqueInviteCode(ctx, tx)
		if err != nil {
			return err
		}
		room.InviteCode = code
		if err := tx.CreateRoom(ctx, room); err != nil {
			return err
		}

		person.RoomID = &room.ID
		return tx.UpdatePerson(ctx, person)
	})
	if err != nil {
		return nil, err
	}
	return room, nil
}

// uniqueInviteCode draws codes until one is not yet taken.
func (d *Directory) uniqueInviteCode(ctx context.Context, tx storage.Tx) (string, error) {
	for range inviteCodeAttempts {
		code, err := d.inviteCode()
		if err != nil {
			return "", err
		}
		_, err = tx.GetRoomByInviteCode(ctx, code)
		if errors.Is(err, models.ErrNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("no unused invite code after %d attempts", inviteCodeAttempts)
}

// JoinRoom adds an unassigned person to the room with the given invite code.
func (d *Directory) JoinRoom(ctx context.Context, personID int64, inviteCode string) (*models.Room, error) {
	code := strings.ToUpper(strings.TrimSpace(inviteCode))

	var room *models.Room
	err := d.store.InTx(ctx, func(tx storage.Tx) error {
		person, err := tx.GetPerson(ctx, personID)
		if err != nil {
			return err
		}
		if person.RoomID != nil {
			return fmt.Errorf("person %d already belongs to room %d: %w", personID, *person.RoomID, models.ErrInvalidState)
		}

		room, err = tx.GetRoomByInviteCode(ctx, code)
		if err != nil {
			return err
		}

		person.RoomID = &room.ID
		return tx.UpdatePerson(ctx, person)
	})
	if err != nil {
		return nil, err
	}
	return room, nil
}

// GetRoom returns the person's room and its members.
func (d *Directory) GetRoom(ctx context.Context, personID int64) (*RoomView, error) {
	var view *RoomView
	err := d.store.InTx(ctx, func(tx storage.Tx) error {
		_, room, err := RoomOf(ctx, tx, personID)
		if err != nil {
			return err
		}
		members, err := tx.ListRoomMembers(ctx, room.ID)
		if err != nil {
			return err
		}
		view = &RoomView{Room: room, Members: members}
		return nil
	})
	return view, err
}

// RoomOf loads a person and the room they belong to. It fails with
// models.ErrInvalidState if the person has no room.
func RoomOf(ctx context.Context, tx storage.Tx, personID int64) (*models.Person, *models.Room, error) {
	person, err := tx.GetPerson(ctx, personID)
	if err != nil {
		return nil, nil, err
	}
	if person.RoomID == nil {
		return nil, nil, fmt.Errorf("person %d does not belong to a room: %w", personID, models.ErrInvalidState)
	}
	room, err := tx.GetRoom(ctx, *person.RoomID)
	if err != nil {
		return nil, nil, err
	}
	return person, room, nil
}

// RequireMember checks that personID belongs to roomID. Non-members are
// reported as not found.
func RequireMember(ctx context.Context, tx storage.Tx, roomID, personID int64) (*models.Person, error) {
	person, err := tx.GetPerson(ctx, personID)
	if errors.Is(err, models.ErrNotFound) || (err == nil && !person.InRoom(roomID)) {
		return nil, fmt.Errorf("person %d is not a member of room %d: %w", personID, roomID, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return person, nil
}
