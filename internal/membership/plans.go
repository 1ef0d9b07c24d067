package membership

import (
	"context"

	"github.com/mmynk/roommates/internal/ledger"
	"github.com/mmynk/roommates/internal/rotation"
)

// dissolutionPlan runs when the last member leaves. Owned rows go before
// their owner: Room -> ExpensePeriod -> Expense -> ExpenseSplit,
// Room -> Notification, membership -> Chore.
var dissolutionPlan = []step{
	{"delete expense periods", deletePeriods},
	{"delete member chores", deleteMemberChores},
	{"delete notifications", deleteNotifications},
	{"clear membership", clearMembership},
	{"delete room", deleteRoom},
}

// departurePlan runs when other members remain. The ledger is untouched.
var departurePlan = []step{
	{"release assigned chores", releaseAssignedChores},
	{"trim rotation orders", trimRotationOrders},
	{"clear membership", clearMembership},
}

func deletePeriods(ctx context.Context, c *cascade) error {
	n, err := ledger.DeleteRoomPeriods(ctx, c.tx, c.room.ID)
	c.result.DeletedPeriods = n
	return err
}

// deleteMemberChores deletes every chore assigned within the room,
// whatever its recurrence.
func deleteMemberChores(ctx context.Context, c *cascade) error {
	chores, err := c.tx.ListChoresByAssignees(ctx, c.memberIDs())
	if err != nil {
		return err
	}
	for _, chore := range chores {
		if err := c.tx.DeleteChore(ctx, chore.ID); err != nil {
			return err
		}
		c.result.DeletedChores = append(c.result.DeletedChores, chore.ID)
	}
	return nil
}

func deleteNotifications(ctx context.Context, c *cascade) error {
	return c.tx.DeleteRoomNotifications(ctx, c.room.ID)
}

func clearMembership(ctx context.Context, c *cascade) error {
	c.person.RoomID = nil
	return c.tx.UpdatePerson(ctx, c.person)
}

func deleteRoom(ctx context.Context, c *cascade) error {
	return c.tx.DeleteRoom(ctx, c.room.ID)
}

// releaseAssignedChores handles the leaver's own chores. A recurring chore
// that lists the leaver drops them and goes to the head of what remains, or
// is deleted when nobody remains. Any other chore is deleted.
func releaseAssignedChores(ctx context.Context, c *cascade) error {
	chores, err := c.tx.ListChoresByAssignees(ctx, []int64{c.person.ID})
	if err != nil {
		return err
	}

	for _, chore := range chores {
		if !chore.Recurrence.IsRecurring() || !chore.InRotation(c.person.ID) {
			if err := c.tx.DeleteChore(ctx, chore.ID); err != nil {
				return err
			}
			c.result.DeletedChores = append(c.result.DeletedChores, chore.ID)
			continue
		}

		next := rotation.State{Order: chore.RotationOrder, Assignee: chore.AssigneeID}.Remove(c.person.ID)
		if len(next.Order) == 0 {
			if err := c.tx.DeleteChore(ctx, chore.ID); err != nil {
				return err
			}
			c.result.DeletedChores = append(c.result.DeletedChores, chore.ID)
			continue
		}

		chore.RotationOrder = next.Order
		chore.AssigneeID = next.Assignee
		if err := c.tx.UpdateChore(ctx, chore); err != nil {
			return err
		}
		c.result.ReassignedChores = append(c.result.ReassignedChores, chore.ID)
	}
	return nil
}

// trimRotationOrders drops the leaver from recurring chores assigned to the
// remaining members. Assignees stay as they are.
func trimRotationOrders(ctx context.Context, c *cascade) error {
	chores, err := c.tx.ListChoresByAssignees(ctx, c.others())
	if err != nil {
		return err
	}

	for _, chore := range chores {
		if !chore.Recurrence.IsRecurring() || !chore.InRotation(c.person.ID) {
			continue
		}
		chore.RotationOrder = rotation.RemovePerson(chore.RotationOrder, c.person.ID)
		if err := c.tx.UpdateChore(ctx, chore); err != nil {
			return err
		}
		c.result.TrimmedChores = append(c.result.TrimmedChores, chore.ID)
	}
	return nil
}
