// Package chores manages a room's chores and applies pending rotations
// when they are listed.
package chores

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mmynk/roommates/internal/household"
	"github.com/mmynk/roommates/internal/metrics"
	"github.com/mmynk/roommates/internal/models"
	"github.com/mmynk/roommates/internal/rotation"
	"github.com/mmynk/roommates/internal/storage"
)

// Input holds the caller-editable fields of a chore.
type Input struct {
	Description string
	StartDate   time.Time
	EndDate     time.Time
	IsTask      bool
	Recurrence  models.Recurrence

	// AssigneeID defaults to the caller when zero.
	AssigneeID int64

	// RotationOrder defaults to [AssigneeID] for recurring chores.
	RotationOrder []int64
}

// Service implements chore operations scoped to the caller's room.
type Service struct {
	store   storage.Store
	metrics *metrics.Metrics
}

// NewService creates a chore service. m may be nil.
func NewService(store storage.Store, m *metrics.Metrics) *Service {
	return &Service{store: store, metrics: m}
}

// normalize fills defaults.
func (in *Input) normalize(callerID int64) {
	in.Description = strings.TrimSpace(in.Description)
	in.StartDate = in.StartDate.UTC()
	in.EndDate = in.EndDate.UTC()
	if in.Recurrence == "" {
		in.Recurrence = models.RecurrenceNone
	}
	if in.AssigneeID == 0 {
		in.AssigneeID = callerID
	}
	if in.Recurrence.IsRecurring() && len(in.RotationOrder) == 0 {
		in.RotationOrder = []int64{in.AssigneeID}
	}
}

// apply copies the input onto chore and validates the result.
func (in *Input) apply(chore *models.Chore) error {
	chore.Description = in.Description
	chore.StartDate = in.StartDate
	chore.EndDate = in.EndDate
	chore.Recurrence = in.Recurrence
	chore.AssigneeID = in.AssigneeID
	chore.RotationOrder = in.RotationOrder

	if chore.IsTask != in.IsTask || chore.Completed == nil {
		chore.Completed = nil
		if in.IsTask {
			completed := false
			chore.Completed = &completed
		}
	}
	chore.IsTask = in.IsTask

	if err := chore.Validate(); err != nil {
		return err
	}
	if chore.Recurrence.IsRecurring() && !chore.InRotation(chore.AssigneeID) {
		return fmt.Errorf("%w: assignee %d is not in the rotation order", models.ErrValidation, chore.AssigneeID)
	}
	return nil
}

// requireMembers checks that the assignee and everyone in the rotation
// belong to the room.
func requireMembers(ctx context.Context, tx storage.Tx, roomID int64, chore *models.Chore) error {
	ids := append([]int64{chore.AssigneeID}, chore.RotationOrder...)
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if _, err := household.RequireMember(ctx, tx, roomID, id); err != nil {
			return err
		}
	}
	return nil
}

// loadInRoom loads a chore and checks it is assigned within the room.
// Chores of other rooms are reported as not found.
func loadInRoom(ctx context.Context, tx storage.Tx, roomID, choreID int64) (*models.Chore, error) {
	chore, err := tx.GetChore(ctx, choreID)
	if err != nil {
		return nil, err
	}
	assignee, err := tx.GetPerson(ctx, chore.AssigneeID)
	if err != nil {
		return nil, err
	}
	if !assignee.InRoom(roomID) {
		return nil, fmt.Errorf("chore %d: %w", choreID, models.ErrNotFound)
	}
	return chore, nil
}

// Create adds a chore assigned within the caller's room.
func (s *Service) Create(ctx context.Context, assignorID int64, in Input) (*models.Chore, error) {
	in.normalize(assignorID)

	chore := &models.Chore{AssignorID: assignorID}
	if err := in.apply(chore); err != nil {
		return nil, err
	}

	err := s.store.InTx(ctx, func(tx storage.Tx) error {
		_, room, err := household.RoomOf(ctx, tx, assignorID)
		if err != nil {
			return err
		}
		if err := requireMembers(ctx, tx, room.ID, chore); err != nil {
			return err
		}
		return tx.CreateChore(ctx, chore)
	})
	if err != nil {
		return nil, err
	}
	return chore, nil
}

// Update replaces a chore's editable fields. The assignor never changes.
func (s *Service) Update(ctx context.Context, personID, choreID int64, in Input) (*models.Chore, error) {
	in.normalize(personID)

	var chore *models.Chore
	err := s.store.InTx(ctx, func(tx storage.Tx) error {
		_, room, err := household.RoomOf(ctx, tx, personID)
		if err != nil {
			return err
		}
		chore, err = loadInRoom(ctx, tx, room.ID, choreID)
		if err != nil {
			return err
		}
		if err := in.apply(chore); err != nil {
			return err
		}
		if err := requireMembers(ctx, tx, room.ID, chore); err != nil {
			return err
		}
		return tx.UpdateChore(ctx, chore)
	})
	if err != nil {
		return nil, err
	}
	return chore, nil
}

// Delete removes a chore from the caller's room.
func (s *Service) Delete(ctx context.Context, personID, choreID int64) error {
	return s.store.InTx(ctx, func(tx storage.Tx) error {
		_, room, err := household.RoomOf(ctx, tx, personID)
		if err != nil {
			return err
		}
		if _, err := loadInRoom(ctx, tx, room.ID, choreID); err != nil {
			return err
		}
		return tx.DeleteChore(ctx, choreID)
	})
}

// SetCompleted marks a task done or not done. Reminders have no completed
// state and are rejected with models.ErrInvalidState.
func (s *Service) SetCompleted(ctx context.Context, personID, choreID int64, completed bool) (*models.Chore, error) {
	var chore *models.Chore
	err := s.store.InTx(ctx, func(tx storage.Tx) error {
		_, room, err := household.RoomOf(ctx, tx, personID)
		if err != nil {
			return err
		}
		chore, err = loadInRoom(ctx, tx, room.ID, choreID)
		if err != nil {
			return err
		}
		if !chore.IsTask {
			return fmt.Errorf("chore %d is a reminder and cannot be completed: %w", choreID, models.ErrInvalidState)
		}
		chore.Completed = &completed
		return tx.UpdateChore(ctx, chore)
	})
	if err != nil {
		return nil, err
	}
	return chore, nil
}

// ListForRoom returns every chore assigned within the caller's room.
//
// Chores whose window has elapsed are advanced to their current cycle and
// saved in the same transaction before being returned.
func (s *Service) ListForRoom(ctx context.Context, personID int64, now time.Time) ([]*models.Chore, error) {
	var (
		chores []*models.Chore
		cycles int
	)
	err := s.store.InTx(ctx, func(tx storage.Tx) error {
		_, room, err := household.RoomOf(ctx, tx, personID)
		if err != nil {
			return err
		}
		members, err := tx.ListRoomMembers(ctx, room.ID)
		if err != nil {
			return err
		}
		ids := make([]int64, len(members))
		for i, m := range members {
			ids[i] = m.ID
		}

		chores, err = tx.ListChoresByAssignees(ctx, ids)
		if err != nil {
			return err
		}
		for _, chore := range chores {
			n := rotation.CatchUp(chore, now.UTC())
			if n == 0 {
				continue
			}
			cycles += n
			if err := tx.UpdateChore(ctx, chore); err != nil {
				return fmt.Errorf("failed to save rotated chore %d: %w", chore.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RotationsApplied(cycles)
	return chores, nil
}
