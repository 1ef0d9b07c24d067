// Package membership handles a roommate leaving their room.
//
// Leaving is a cascade over everything the room owns. When the last member
// leaves, the room is dissolved: its expense books, chores and notifications
// are deleted, then the room itself. Otherwise only the leaver's chores are
// cleaned up and the ledger keeps their history.
//
// Both outcomes are declared as ordered plans of named steps and run inside
// one transaction. A failing step rolls back the whole cascade.
package membership

import (
	"context"
	"fmt"
	"slices"

	"github.com/mmynk/roommates/internal/models"
	"github.com/mmynk/roommates/internal/storage"
)

// Result describes what a Leave changed.
type Result struct {
	PersonID int64
	RoomID   int64

	// Dissolved is true when the leaver was the last member.
	Dissolved bool

	DeletedChores    []int64
	ReassignedChores []int64
	TrimmedChores    []int64
	DeletedPeriods   int
}

// Controller runs membership cascades against a store.
type Controller struct {
	store storage.Store
}

// NewController creates a controller backed by store.
func NewController(store storage.Store) *Controller {
	return &Controller{store: store}
}

// cascade is the state shared by the steps of one Leave.
type cascade struct {
	tx      storage.Tx
	person  *models.Person
	room    *models.Room
	members []*models.Person
	result  *Result
}

// others returns the IDs of every member except the leaver.
func (c *cascade) others() []int64 {
	ids := make([]int64, 0, len(c.members))
	for _, m := range c.members {
		if m.ID != c.person.ID {
			ids = append(ids, m.ID)
		}
	}
	return ids
}

func (c *cascade) memberIDs() []int64 {
	ids := make([]int64, len(c.members))
	for i, m := range c.members {
		ids[i] = m.ID
	}
	return ids
}

// step is one named stage of a cascade plan.
type step struct {
	name string
	run  func(ctx context.Context, c *cascade) error
}

// Leave removes the person from their room and applies the matching
// cascade. It fails with models.ErrNotFound for an unknown person and
// models.ErrInvalidState when the person has no room.
func (ctl *Controller) Leave(ctx context.Context, personID int64) (*Result, error) {
	result := &Result{PersonID: personID}

	err := ctl.store.InTx(ctx, func(tx storage.Tx) error {
		person, err := tx.GetPerson(ctx, personID)
		if err != nil {
			return err
		}
		if person.RoomID == nil {
			return fmt.Errorf("person %d does not belong to a room: %w", personID, models.ErrInvalidState)
		}

		room, err := tx.GetRoom(ctx, *person.RoomID)
		if err != nil {
			return err
		}
		members, err := tx.ListRoomMembers(ctx, room.ID)
		if err != nil {
			return err
		}

		c := &cascade{tx: tx, person: person, room: room, members: members, result: result}
		result.RoomID = room.ID

		plan := departurePlan
		if len(c.others()) == 0 {
			plan = dissolutionPlan
			result.Dissolved = true
		}
		for _, s := range plan {
			if err := s.run(ctx, c); err != nil {
				return fmt.Errorf("%s: %w", s.name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("leave room: %w", err)
	}

	slices.Sort(result.DeletedChores)
	return result, nil
}
