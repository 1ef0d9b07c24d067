package household

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mmynk/roommates/internal/models"
	"github.com/mmynk/roommates/internal/storage/storagetest"
)

func TestNewInviteCode(t *testing.T) {
	for range 20 {
		code, err := NewInviteCode()
		if err != nil {
			t.Fatalf("NewInviteCode failed: %v", err)
		}
		if len(code) != inviteCodeLength {
			t.Errorf("code %q has length %d, want %d", code, len(code), inviteCodeLength)
		}
		for _, r := range code {
			if !(r >= 'A' && r <= 'Z') && !(r >= '0' && r <= '9') {
				t.Errorf("code %q contains %q", code, r)
			}
		}
	}
}

func TestCreateAndJoinRoom(t *testing.T) {
	store := storagetest.NewStore(t)
	ctx := context.Background()
	dir := NewDirectory(store)

	alice := storagetest.Person(t, store, "alice")
	bob := storagetest.Person(t, store, "bob")

	room, err := dir.CreateRoom(ctx, alice.ID, "  Flat 3B ")
	if err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}
	if room.Name != "Flat 3B" || len(room.InviteCode) != inviteCodeLength {
		t.Errorf("room = %+v", room)
	}

	t.Run("creator cannot create a second room", func(t *testing.T) {
		_, err := dir.CreateRoom(ctx, alice.ID, "Other")
		if !errors.Is(err, models.ErrInvalidState) {
			t.Errorf("CreateRoom error = %v, want ErrInvalidState", err)
		}
	})

	t.Run("join with lowercase code", func(t *testing.T) {
		joined, err := dir.JoinRoom(ctx, bob.ID, " "+strings.ToLower(room.InviteCode))
		if err != nil {
			t.Fatalf("JoinRoom failed: %v", err)
		}
		if joined.ID != room.ID {
			t.Errorf("joined room %d, want %d", joined.ID, room.ID)
		}

		view, err := dir.GetRoom(ctx, bob.ID)
		if err != nil {
			t.Fatalf("GetRoom failed: %v", err)
		}
		if len(view.Members) != 2 {
			t.Errorf("room has %d members, want 2", len(view.Members))
		}
	})

	t.Run("member cannot join again", func(t *testing.T) {
		_, err := dir.JoinRoom(ctx, bob.ID, room.InviteCode)
		if !errors.Is(err, models.ErrInvalidState) {
			t.Errorf("JoinRoom error = %v, want ErrInvalidState", err)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		carol := storagetest.Person(t, store, "carol")
		_, err := dir.JoinRoom(ctx, carol.ID, "NOPE0000")
		if !errors.Is(err, models.ErrNotFound) {
			t.Errorf("JoinRoom error = %v, want ErrNotFound", err)
		}

		_, err = dir.GetRoom(ctx, carol.ID)
		if !errors.Is(err, models.ErrInvalidState) {
			t.Errorf("GetRoom error = %v, want ErrInvalidState", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		dave := storagetest.Person(t, store, "dave")
		_, err := dir.CreateRoom(ctx, dave.ID, " ")
		if !errors.Is(err, models.ErrValidation) {
			t.Errorf("CreateRoom error = %v, want ErrValidation", err)
		}
	})
}

func TestCreateRoomRetriesTakenCodes(t *testing.T) {
	store := storagetest.NewStore(t)
	ctx := context.Background()
	storagetest.Room(t, store, "TAKEN000", "alice")
	bob := storagetest.Person(t, store, "bob")

	codes := []string{"TAKEN000", "TAKEN000", "FRESH000"}
	dir := NewDirectory(store)
	dir.inviteCode = func() (string, error) {
		code := codes[0]
		codes = codes[1:]
		return code, nil
	}

	room, err := dir.CreateRoom(ctx, bob.ID, "Annex")
	if err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}
	if room.InviteCode != "FRESH000" {
		t.Errorf("InviteCode = %q, want FRESH000", room.InviteCode)
	}
}

func TestCreateRoomGivesUpOnCollisions(t *testing.T) {
	store := storagetest.NewStore(t)
	storagetest.Room(t, store, "TAKEN000", "alice")
	bob := storagetest.Person(t, store, "bob")

	dir := NewDirectory(store)
	dir.inviteCode = func() (string, error) { return "TAKEN000", nil }

	if _, err := dir.CreateRoom(context.Background(), bob.ID, "Annex"); err == nil {
		t.Fatal("Expected CreateRoom to fail when every code is taken")
	}

	person, err := dir.GetPerson(context.Background(), bob.ID)
	if err != nil {
		t.Fatalf("GetPerson failed: %v", err)
	}
	if person.RoomID != nil {
		t.Error("bob joined a room despite the failure")
	}
}
