package chores

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/mmynk/roommates/internal/metrics"
	"github.com/mmynk/roommates/internal/models"
	"github.com/mmynk/roommates/internal/storage"
	"github.com/mmynk/roommates/internal/storage/storagetest"
)

var monday = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

func weekly(description string, assignee int64, order ...int64) Input {
	return Input{
		Description:   description,
		StartDate:     monday,
		EndDate:       monday.Add(24 * time.Hour),
		IsTask:        true,
		Recurrence:    models.RecurrenceWeekly,
		AssigneeID:    assignee,
		RotationOrder: order,
	}
}

func rotationCount(t *testing.T, m *metrics.Metrics) float64 {
	t.Helper()

	families, err := m.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == "roommates_chore_rotations_total" {
			return mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	t.Fatal("rotation counter not registered")
	return 0
}

func TestCreate(t *testing.T) {
	store := storagetest.NewStore(t)
	svc := NewService(store, nil)
	ctx := context.Background()
	_, members := storagetest.Room(t, store, "CHORES01", "alice", "bob")
	alice, bob := members[0], members[1]

	t.Run("task starts incomplete", func(t *testing.T) {
		chore, err := svc.Create(ctx, alice.ID, weekly("Bins", bob.ID, alice.ID, bob.ID))
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if chore.ID == 0 {
			t.Error("Expected chore ID to be set")
		}
		if chore.AssignorID != alice.ID {
			t.Errorf("AssignorID = %d, want %d", chore.AssignorID, alice.ID)
		}
		if chore.Completed == nil || *chore.Completed {
			t.Errorf("Completed = %v, want false", chore.Completed)
		}
	})

	t.Run("recurring chore defaults order to assignee", func(t *testing.T) {
		chore, err := svc.Create(ctx, alice.ID, weekly("Dishes", 0))
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if chore.AssigneeID != alice.ID {
			t.Errorf("AssigneeID = %d, want caller %d", chore.AssigneeID, alice.ID)
		}
		if !slices.Equal(chore.RotationOrder, []int64{alice.ID}) {
			t.Errorf("RotationOrder = %v, want [%d]", chore.RotationOrder, alice.ID)
		}
	})

	t.Run("reminder has no completed state", func(t *testing.T) {
		in := weekly("Water plants", alice.ID)
		in.IsTask = false
		in.Recurrence = models.RecurrenceNone
		chore, err := svc.Create(ctx, alice.ID, in)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if chore.Completed != nil {
			t.Errorf("Completed = %v, want nil", *chore.Completed)
		}
		if len(chore.RotationOrder) != 0 {
			t.Errorf("RotationOrder = %v, want empty", chore.RotationOrder)
		}
	})
}

func TestCreateErrors(t *testing.T) {
	store := storagetest.NewStore(t)
	svc := NewService(store, nil)
	ctx := context.Background()
	_, members := storagetest.Room(t, store, "CHORES02", "alice", "bob")
	alice, bob := members[0], members[1]
	_, others := storagetest.Room(t, store, "CHORES03", "carol")
	carol := others[0]
	loner := storagetest.Person(t, store, "dave")

	tests := []struct {
		name    string
		caller  int64
		modify  func(*Input)
		wantErr error
	}{
		{
			name:    "empty description",
			caller:  alice.ID,
			modify:  func(in *Input) { in.Description = "  " },
			wantErr: models.ErrValidation,
		},
		{
			name:    "end before start",
			caller:  alice.ID,
			modify:  func(in *Input) { in.EndDate = monday.Add(-time.Hour) },
			wantErr: models.ErrValidation,
		},
		{
			name:    "unknown recurrence",
			caller:  alice.ID,
			modify:  func(in *Input) { in.Recurrence = "hourly" },
			wantErr: models.ErrValidation,
		},
		{
			name:    "assignee missing from rotation",
			caller:  alice.ID,
			modify:  func(in *Input) { in.AssigneeID = alice.ID; in.RotationOrder = []int64{bob.ID} },
			wantErr: models.ErrValidation,
		},
		{
			name:    "assignee from another room",
			caller:  alice.ID,
			modify:  func(in *Input) { in.AssigneeID = carol.ID; in.RotationOrder = nil },
			wantErr: models.ErrNotFound,
		},
		{
			name:    "rotation member from another room",
			caller:  alice.ID,
			modify:  func(in *Input) { in.RotationOrder = []int64{alice.ID, carol.ID} },
			wantErr: models.ErrNotFound,
		},
		{
			name:    "caller without a room",
			caller:  loner.ID,
			modify:  func(in *Input) { in.AssigneeID = 0; in.RotationOrder = nil },
			wantErr: models.ErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := weekly("Hoover", alice.ID, alice.ID, bob.ID)
			tt.modify(&in)
			_, err := svc.Create(ctx, tt.caller, in)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateAndDelete(t *testing.T) {
	store := storagetest.NewStore(t)
	svc := NewService(store, nil)
	ctx := context.Background()
	_, members := storagetest.Room(t, store, "CHORES04", "alice", "bob")
	alice, bob := members[0], members[1]
	_, others := storagetest.Room(t, store, "CHORES05", "carol")
	carol := others[0]

	chore, err := svc.Create(ctx, alice.ID, weekly("Bins", alice.ID, alice.ID, bob.ID))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	in := weekly("Recycling", bob.ID, bob.ID, alice.ID)
	updated, err := svc.Update(ctx, bob.ID, chore.ID, in)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Description != "Recycling" || updated.AssigneeID != bob.ID {
		t.Errorf("updated = %+v", updated)
	}
	if updated.AssignorID != alice.ID {
		t.Errorf("AssignorID = %d, should stay %d", updated.AssignorID, alice.ID)
	}

	if _, err := svc.Update(ctx, carol.ID, chore.ID, weekly("Steal", carol.ID)); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Update from another room error = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, carol.ID, chore.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Delete from another room error = %v, want ErrNotFound", err)
	}

	if err := svc.Delete(ctx, bob.ID, chore.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := svc.Delete(ctx, bob.ID, chore.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("second Delete error = %v, want ErrNotFound", err)
	}
}

func TestSetCompleted(t *testing.T) {
	store := storagetest.NewStore(t)
	svc := NewService(store, nil)
	ctx := context.Background()
	_, members := storagetest.Room(t, store, "CHORES06", "alice")
	alice := members[0]

	task, err := svc.Create(ctx, alice.ID, weekly("Bins", alice.ID))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	done, err := svc.SetCompleted(ctx, alice.ID, task.ID, true)
	if err != nil {
		t.Fatalf("SetCompleted failed: %v", err)
	}
	if !done.IsCompleted() {
		t.Error("Expected task to be completed")
	}

	in := weekly("Plants", alice.ID)
	in.IsTask = false
	reminder, err := svc.Create(ctx, alice.ID, in)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.SetCompleted(ctx, alice.ID, reminder.ID, true); !errors.Is(err, models.ErrInvalidState) {
		t.Errorf("SetCompleted on reminder error = %v, want ErrInvalidState", err)
	}
}

func TestListForRoomAppliesRotations(t *testing.T) {
	store := storagetest.NewStore(t)
	m := metrics.New()
	svc := NewService(store, m)
	ctx := context.Background()
	_, members := storagetest.Room(t, store, "CHORES07", "alice", "bob", "carol")
	alice, bob, carol := members[0], members[1], members[2]

	chore, err := svc.Create(ctx, alice.ID, weekly("Bins", alice.ID, alice.ID, bob.ID, carol.ID))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.SetCompleted(ctx, alice.ID, chore.ID, true); err != nil {
		t.Fatalf("SetCompleted failed: %v", err)
	}

	// Two full weeks have elapsed.
	now := monday.AddDate(0, 0, 15)
	chores, err := svc.ListForRoom(ctx, bob.ID, now)
	if err != nil {
		t.Fatalf("ListForRoom failed: %v", err)
	}
	if len(chores) != 1 {
		t.Fatalf("Expected 1 chore, got %d", len(chores))
	}
	got := chores[0]
	if got.AssigneeID != carol.ID {
		t.Errorf("AssigneeID = %d, want %d after two rotations", got.AssigneeID, carol.ID)
	}
	if !got.StartDate.Equal(monday.AddDate(0, 0, 14)) {
		t.Errorf("StartDate = %v, want %v", got.StartDate, monday.AddDate(0, 0, 14))
	}
	if got.IsCompleted() {
		t.Error("Rotation should reset the completed flag")
	}
	if v := rotationCount(t, m); v != 2 {
		t.Errorf("rotations metric = %v, want 2", v)
	}

	// The rotation was persisted, so listing again is a no-op.
	storagetest.Read(t, store, func(tx storage.Tx) error {
		stored, err := tx.GetChore(ctx, chore.ID)
		if err != nil {
			return err
		}
		if stored.AssigneeID != carol.ID {
			t.Errorf("stored AssigneeID = %d, want %d", stored.AssigneeID, carol.ID)
		}
		return nil
	})
	if _, err := svc.ListForRoom(ctx, carol.ID, now); err != nil {
		t.Fatalf("ListForRoom failed: %v", err)
	}
	if v := rotationCount(t, m); v != 2 {
		t.Errorf("rotations metric = %v after idle listing, want 2", v)
	}
}

func TestListForRoomRollsBackOnSaveFailure(t *testing.T) {
	store := storagetest.NewStore(t)
	ctx := context.Background()
	_, members := storagetest.Room(t, store, "CHORES08", "alice", "bob")
	alice, bob := members[0], members[1]

	chore, err := NewService(store, nil).Create(ctx, alice.ID, weekly("Bins", alice.ID, alice.ID, bob.ID))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	faulty := NewService(&storagetest.FaultyStore{Store: store, FailOn: "UpdateChore"}, nil)
	if _, err := faulty.ListForRoom(ctx, alice.ID, monday.AddDate(0, 0, 8)); !errors.Is(err, storagetest.ErrInjected) {
		t.Fatalf("ListForRoom error = %v, want ErrInjected", err)
	}

	storagetest.Read(t, store, func(tx storage.Tx) error {
		stored, err := tx.GetChore(ctx, chore.ID)
		if err != nil {
			return err
		}
		if stored.AssigneeID != alice.ID {
			t.Errorf("AssigneeID = %d, rotation should have rolled back", stored.AssigneeID)
		}
		return nil
	})
}
