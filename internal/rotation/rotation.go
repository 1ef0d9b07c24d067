// Package rotation implements the chore recurrence and rotation engine.
//
// Everything here is pure: functions take already-loaded chores and mutate
// them in memory. Persisting the result is the caller's job, inside the same
// transaction that loaded the chore.
//
// There is no scheduler or timer. Rotation is evaluated lazily whenever a
// room's chores are read, so Advance must be safe to call on any chore:
// chores that are not due are left untouched.
package rotation

import (
	"slices"
	"time"

	"github.com/mmynk/roommates/internal/models"
)

// State is the rotation-relevant part of a chore: who is up now, and who
// comes after.
type State struct {
	Order    []int64
	Assignee int64
}

// Rotate hands the chore to the entry after the current assignee, wrapping
// at the end of the order. If the assignee is not in the order the chore
// goes to the head of the order. An empty order leaves the state unchanged.
func (s State) Rotate() State {
	if len(s.Order) == 0 {
		return s
	}
	next := s.Order[0]
	if i := slices.Index(s.Order, s.Assignee); i >= 0 {
		next = s.Order[(i+1)%len(s.Order)]
	}
	return State{Order: s.Order, Assignee: next}
}

// Remove drops every occurrence of person from the order. If person was the
// assignee, the chore goes to the new head of the order (not to the entry
// after person). When the order becomes empty the assignee is 0.
func (s State) Remove(person int64) State {
	order := RemovePerson(s.Order, person)
	assignee := s.Assignee
	if assignee == person {
		assignee = 0
		if len(order) > 0 {
			assignee = order[0]
		}
	}
	return State{Order: order, Assignee: assignee}
}

// RemovePerson returns a copy of order without person.
func RemovePerson(order []int64, person int64) []int64 {
	out := make([]int64, 0, len(order))
	for _, id := range order {
		if id != person {
			out = append(out, id)
		}
	}
	return out
}

// Due reports whether Advance would change the chore at now.
func Due(c *models.Chore, now time.Time) bool {
	if !c.Recurrence.IsRecurring() || len(c.RotationOrder) == 0 {
		return false
	}
	if _, ok := SchedulerFor(c.Recurrence); !ok {
		return false
	}
	return now.After(c.EndDate)
}

// Advance moves an elapsed recurring chore to its next cycle: the next
// roommate in the order takes over, the window shifts per the recurrence,
// and a task becomes incomplete again.
//
// It returns false and leaves the chore untouched when the chore is not
// recurring, has an empty rotation order, or its window has not elapsed.
func Advance(c *models.Chore, now time.Time) bool {
	if !Due(c, now) {
		return false
	}
	sched, _ := SchedulerFor(c.Recurrence)

	next := State{Order: c.RotationOrder, Assignee: c.AssigneeID}.Rotate()
	c.AssigneeID = next.Assignee
	c.StartDate, c.EndDate = sched.Shift(c.StartDate, c.EndDate)
	if c.IsTask {
		completed := false
		c.Completed = &completed
	}
	return true
}

// CatchUp advances the chore until its window contains or follows now and
// returns the number of cycles applied. Every scheduler moves EndDate
// forward by at least a day, so this terminates.
func CatchUp(c *models.Chore, now time.Time) int {
	cycles := 0
	for Advance(c, now) {
		cycles++
	}
	return cycles
}
