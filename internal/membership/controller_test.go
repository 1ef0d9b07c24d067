package membership

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/mmynk/roommates/internal/ledger"
	"github.com/mmynk/roommates/internal/models"
	"github.com/mmynk/roommates/internal/storage"
	"github.com/mmynk/roommates/internal/storage/storagetest"
)

var start = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

func createChore(t *testing.T, store storage.Store, recurrence models.Recurrence, assignee, assignor int64, order ...int64) *models.Chore {
	t.Helper()

	chore := &models.Chore{
		Description:   "Chore " + string(recurrence),
		StartDate:     start,
		EndDate:       start.Add(24 * time.Hour),
		Recurrence:    recurrence,
		AssigneeID:    assignee,
		AssignorID:    assignor,
		RotationOrder: order,
	}
	storagetest.Read(t, store, func(tx storage.Tx) error {
		return tx.CreateChore(context.Background(), chore)
	})
	return chore
}

func getChore(t *testing.T, store storage.Store, id int64) (*models.Chore, error) {
	t.Helper()

	var chore *models.Chore
	err := store.InTx(context.Background(), func(tx storage.Tx) error {
		var err error
		chore, err = tx.GetChore(context.Background(), id)
		return err
	})
	return chore, err
}

func TestLeave_LastMemberDissolvesRoom(t *testing.T) {
	store := storagetest.NewStore(t)
	ctx := context.Background()
	room, members := storagetest.Room(t, store, "SOLO0001", "alice")
	alice := members[0]

	oneOff := createChore(t, store, models.RecurrenceNone, alice.ID, alice.ID)
	weekly := createChore(t, store, models.RecurrenceWeekly, alice.ID, alice.ID, alice.ID)

	var expenseID int64
	storagetest.Read(t, store, func(tx storage.Tx) error {
		if _, err := ledger.OpenPeriod(ctx, tx, room.ID, start); err != nil {
			return err
		}
		detail, err := ledger.AddExpense(ctx, tx, ledger.NewExpense{
			RoomID: room.ID, PayerID: alice.ID, Title: "Rent", Cost: 900,
			Splits: []ledger.SplitInput{{Username: "alice", Percentage: 1}},
		}, start)
		if err != nil {
			return err
		}
		expenseID = detail.Expense.ID
		if _, _, err := ledger.ClosePeriod(ctx, tx, room.ID, start.Add(time.Hour)); err != nil {
			return err
		}
		return tx.CreateNotification(ctx, &models.Notification{
			RoomID: room.ID, SenderID: alice.ID, RecipientID: alice.ID, Title: "Note to self", Time: start,
		})
	})

	result, err := NewController(store).Leave(ctx, alice.ID)
	if err != nil {
		t.Fatalf("Leave failed: %v", err)
	}

	if !result.Dissolved {
		t.Error("Expected room to be dissolved")
	}
	if result.DeletedPeriods != 2 {
		t.Errorf("DeletedPeriods = %d, want 2", result.DeletedPeriods)
	}
	if want := []int64{oneOff.ID, weekly.ID}; !slices.Equal(result.DeletedChores, want) {
		t.Errorf("DeletedChores = %v, want %v", result.DeletedChores, want)
	}

	storagetest.Read(t, store, func(tx storage.Tx) error {
		if _, err := tx.GetRoom(ctx, room.ID); !errors.Is(err, models.ErrNotFound) {
			t.Errorf("GetRoom error = %v, want ErrNotFound", err)
		}
		periods, err := tx.ListExpensePeriods(ctx, room.ID)
		if err != nil {
			return err
		}
		if len(periods) != 0 {
			t.Errorf("periods left = %d, want 0", len(periods))
		}
		if _, err := tx.GetExpense(ctx, expenseID); !errors.Is(err, models.ErrNotFound) {
			t.Errorf("GetExpense error = %v, want ErrNotFound", err)
		}
		shares, err := tx.ListSplitsByPerson(ctx, alice.ID)
		if err != nil {
			return err
		}
		if len(shares) != 0 {
			t.Errorf("splits left = %d, want 0", len(shares))
		}
		notes, err := tx.ListNotifications(ctx, room.ID, models.NotificationFilter{})
		if err != nil {
			return err
		}
		if len(notes) != 0 {
			t.Errorf("notifications left = %d, want 0", len(notes))
		}
		chores, err := tx.ListChoresByAssignees(ctx, []int64{alice.ID})
		if err != nil {
			return err
		}
		if len(chores) != 0 {
			t.Errorf("chores left = %d, want 0", len(chores))
		}
		person, err := tx.GetPerson(ctx, alice.ID)
		if err != nil {
			return err
		}
		if person.RoomID != nil {
			t.Errorf("RoomID = %d, want nil", *person.RoomID)
		}
		return nil
	})
}

func TestLeave_RemainingMembersKeepRotation(t *testing.T) {
	store := storagetest.NewStore(t)
	ctx := context.Background()
	room, members := storagetest.Room(t, store, "TRIO0001", "alice", "bob", "carol")
	a, b, c := members[0].ID, members[1].ID, members[2].ID

	bobsWeekly := createChore(t, store, models.RecurrenceWeekly, b, a, a, b, c)
	alicesWeekly := createChore(t, store, models.RecurrenceWeekly, a, a, a, b, c)
	bobsOneOff := createChore(t, store, models.RecurrenceNone, b, a)
	bobsSolo := createChore(t, store, models.RecurrenceDaily, b, b, b)
	bobsUnlisted := createChore(t, store, models.RecurrenceMonthly, b, a, a, c)
	carolsOneOff := createChore(t, store, models.RecurrenceNone, c, c, b)

	var periodID int64
	storagetest.Read(t, store, func(tx storage.Tx) error {
		period, err := ledger.OpenPeriod(ctx, tx, room.ID, start)
		if err != nil {
			return err
		}
		periodID = period.ID
		_, err = ledger.AddExpense(ctx, tx, ledger.NewExpense{
			RoomID: room.ID, PayerID: b, Title: "Groceries", Cost: 60, SplitEvenly: true,
		}, start)
		return err
	})

	result, err := NewController(store).Leave(ctx, b)
	if err != nil {
		t.Fatalf("Leave failed: %v", err)
	}
	if result.Dissolved {
		t.Error("Room should not be dissolved")
	}

	t.Run("leaver's recurring chore goes to the head", func(t *testing.T) {
		got, err := getChore(t, store, bobsWeekly.ID)
		if err != nil {
			t.Fatalf("GetChore failed: %v", err)
		}
		if !slices.Equal(got.RotationOrder, []int64{a, c}) || got.AssigneeID != a {
			t.Errorf("chore = order %v assignee %d, want [%d %d] assignee %d", got.RotationOrder, got.AssigneeID, a, c, a)
		}
	})

	t.Run("other member's chore drops the leaver", func(t *testing.T) {
		got, err := getChore(t, store, alicesWeekly.ID)
		if err != nil {
			t.Fatalf("GetChore failed: %v", err)
		}
		if !slices.Equal(got.RotationOrder, []int64{a, c}) || got.AssigneeID != a {
			t.Errorf("chore = order %v assignee %d, want [%d %d] assignee %d", got.RotationOrder, got.AssigneeID, a, c, a)
		}
	})

	t.Run("non-rotating chores of the leaver are deleted", func(t *testing.T) {
		for _, id := range []int64{bobsOneOff.ID, bobsSolo.ID, bobsUnlisted.ID} {
			if _, err := getChore(t, store, id); !errors.Is(err, models.ErrNotFound) {
				t.Errorf("chore %d: error = %v, want ErrNotFound", id, err)
			}
		}
	})

	t.Run("non-recurring chore of another member is untouched", func(t *testing.T) {
		got, err := getChore(t, store, carolsOneOff.ID)
		if err != nil {
			t.Fatalf("GetChore failed: %v", err)
		}
		if !slices.Equal(got.RotationOrder, []int64{b}) {
			t.Errorf("order = %v, want [%d]", got.RotationOrder, b)
		}
	})

	t.Run("result lists every change", func(t *testing.T) {
		if want := []int64{bobsOneOff.ID, bobsSolo.ID, bobsUnlisted.ID}; !slices.Equal(result.DeletedChores, want) {
			t.Errorf("DeletedChores = %v, want %v", result.DeletedChores, want)
		}
		if !slices.Equal(result.ReassignedChores, []int64{bobsWeekly.ID}) {
			t.Errorf("ReassignedChores = %v", result.ReassignedChores)
		}
		if !slices.Equal(result.TrimmedChores, []int64{alicesWeekly.ID}) {
			t.Errorf("TrimmedChores = %v", result.TrimmedChores)
		}
	})

	t.Run("ledger keeps the leaver's history", func(t *testing.T) {
		storagetest.Read(t, store, func(tx storage.Tx) error {
			details, err := ledger.ListExpenses(ctx, tx, periodID)
			if err != nil {
				return err
			}
			if len(details) != 1 || len(details[0].Splits) != 3 {
				t.Errorf("expenses = %d, want 1 with 3 splits", len(details))
			}
			person, err := tx.GetPerson(ctx, b)
			if err != nil {
				return err
			}
			if person.RoomID != nil {
				t.Error("leaver is still a member")
			}
			remaining, err := tx.ListRoomMembers(ctx, room.ID)
			if err != nil {
				return err
			}
			if len(remaining) != 2 {
				t.Errorf("members = %d, want 2", len(remaining))
			}
			return nil
		})
	})
}

func TestLeave_Errors(t *testing.T) {
	store := storagetest.NewStore(t)
	ctx := context.Background()
	ctl := NewController(store)

	if _, err := ctl.Leave(ctx, 4242); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Leave(unknown) error = %v, want ErrNotFound", err)
	}

	loner := storagetest.Person(t, store, "loner")
	if _, err := ctl.Leave(ctx, loner.ID); !errors.Is(err, models.ErrInvalidState) {
		t.Errorf("Leave(unassigned) error = %v, want ErrInvalidState", err)
	}
}

func TestLeave_FailureRollsBack(t *testing.T) {
	ctx := context.Background()

	t.Run("dissolution", func(t *testing.T) {
		store := storagetest.NewStore(t)
		room, members := storagetest.Room(t, store, "ROLLBK01", "alice")
		alice := members[0]
		chore := createChore(t, store, models.RecurrenceNone, alice.ID, alice.ID)
		storagetest.Read(t, store, func(tx storage.Tx) error {
			_, err := ledger.OpenPeriod(ctx, tx, room.ID, start)
			return err
		})

		faulty := &storagetest.FaultyStore{Store: store, FailOn: "DeleteRoom"}
		_, err := NewController(faulty).Leave(ctx, alice.ID)
		if !errors.Is(err, storagetest.ErrInjected) {
			t.Fatalf("Leave error = %v, want injected failure", err)
		}

		storagetest.Read(t, store, func(tx storage.Tx) error {
			if _, err := tx.GetRoom(ctx, room.ID); err != nil {
				t.Errorf("room is gone: %v", err)
			}
			if _, err := tx.GetOpenExpensePeriod(ctx, room.ID); err != nil {
				t.Errorf("open period is gone: %v", err)
			}
			if _, err := tx.GetChore(ctx, chore.ID); err != nil {
				t.Errorf("chore is gone: %v", err)
			}
			person, err := tx.GetPerson(ctx, alice.ID)
			if err != nil {
				return err
			}
			if !person.InRoom(room.ID) {
				t.Error("membership was cleared despite the rollback")
			}
			return nil
		})
	})

	t.Run("departure", func(t *testing.T) {
		store := storagetest.NewStore(t)
		room, members := storagetest.Room(t, store, "ROLLBK02", "alice", "bob")
		a, b := members[0].ID, members[1].ID
		chore := createChore(t, store, models.RecurrenceWeekly, b, a, a, b)

		faulty := &storagetest.FaultyStore{Store: store, FailOn: "UpdatePerson"}
		if _, err := NewController(faulty).Leave(ctx, b); !errors.Is(err, storagetest.ErrInjected) {
			t.Fatalf("Leave error = %v, want injected failure", err)
		}

		got, err := getChore(t, store, chore.ID)
		if err != nil {
			t.Fatalf("GetChore failed: %v", err)
		}
		if !slices.Equal(got.RotationOrder, []int64{a, b}) || got.AssigneeID != b {
			t.Errorf("chore changed despite rollback: order %v assignee %d", got.RotationOrder, got.AssigneeID)
		}
		storagetest.Read(t, store, func(tx storage.Tx) error {
			person, err := tx.GetPerson(ctx, b)
			if err != nil {
				return err
			}
			if !person.InRoom(room.ID) {
				t.Error("membership was cleared despite the rollback")
			}
			return nil
		})
	})
}
