// Package storagetest provides SQLite-backed fixtures for package tests.
package storagetest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/roommates/internal/models"
	"github.com/mmynk/roommates/internal/storage"
	"github.com/mmynk/roommates/internal/storage/sqlite"
)

// NewStore creates a migrated store in a temporary directory that is removed
// when the test ends.
func NewStore(t testing.TB) *sqlite.SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "roommates-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// Person registers an unassigned person.
func Person(t testing.TB, store storage.Store, username string) *models.Person {
	t.Helper()

	p := models.NewPerson(username, username, "hash")
	err := store.InTx(context.Background(), func(tx storage.Tx) error {
		return tx.CreatePerson(context.Background(), p)
	})
	if err != nil {
		t.Fatalf("Failed to create person %s: %v", username, err)
	}
	return p
}

// Room creates a room whose members are new people with the given usernames,
// in order.
func Room(t testing.TB, store storage.Store, inviteCode string, usernames ...string) (*models.Room, []*models.Person) {
	t.Helper()
	ctx := context.Background()

	room := &models.Room{Name: "Room " + inviteCode, InviteCode: inviteCode}
	var members []*models.Person
	err := store.InTx(ctx, func(tx storage.Tx) error {
		if err := tx.CreateRoom(ctx, room); err != nil {
			return err
		}
		for _, username := range usernames {
			p := models.NewPerson(username, username, "hash")
			p.RoomID = &room.ID
			if err := tx.CreatePerson(ctx, p); err != nil {
				return err
			}
			members = append(members, p)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to create room: %v", err)
	}
	return room, members
}

// Read runs fn in its own transaction and fails the test on error.
func Read(t testing.TB, store storage.Store, fn func(tx storage.Tx) error) {
	t.Helper()
	if err := store.InTx(context.Background(), fn); err != nil {
		t.Fatalf("InTx failed: %v", err)
	}
}

// ErrInjected is returned by a FaultyStore operation chosen to fail.
var ErrInjected = errors.New("injected storage failure")

// FaultyStore wraps a store and fails the named Tx operation.
// Supported names: DeleteRoom, DeleteChore, UpdateChore, UpdatePerson,
// DeleteExpensePeriod, DeleteRoomNotifications.
type FaultyStore struct {
	storage.Store
	FailOn string
}

// InTx runs fn against a transaction whose FailOn operation errors.
func (s *FaultyStore) InTx(ctx context.Context, fn func(tx storage.Tx) error) error {
	return s.Store.InTx(ctx, func(tx storage.Tx) error {
		return fn(&faultyTx{Tx: tx, failOn: s.FailOn})
	})
}

type faultyTx struct {
	storage.Tx
	failOn string
}

func (f *faultyTx) DeleteRoom(ctx context.Context, id int64) error {
	if f.failOn == "DeleteRoom" {
		return ErrInjected
	}
	return f.Tx.DeleteRoom(ctx, id)
}

func (f *faultyTx) DeleteChore(ctx context.Context, id int64) error {
	if f.failOn == "DeleteChore" {
		return ErrInjected
	}
	return f.Tx.DeleteChore(ctx, id)
}

func (f *faultyTx) UpdateChore(ctx context.Context, chore *models.Chore) error {
	if f.failOn == "UpdateChore" {
		return ErrInjected
	}
	return f.Tx.UpdateChore(ctx, chore)
}

func (f *faultyTx) UpdatePerson(ctx context.Context, person *models.Person) error {
	if f.failOn == "UpdatePerson" {
		return ErrInjected
	}
	return f.Tx.UpdatePerson(ctx, person)
}

func (f *faultyTx) DeleteExpensePeriod(ctx context.Context, id int64) error {
	if f.failOn == "DeleteExpensePeriod" {
		return ErrInjected
	}
	return f.Tx.DeleteExpensePeriod(ctx, id)
}

func (f *faultyTx) DeleteRoomNotifications(ctx context.Context, roomID int64) error {
	if f.failOn == "DeleteRoomNotifications" {
		return ErrInjected
	}
	return f.Tx.DeleteRoomNotifications(ctx, roomID)
}
