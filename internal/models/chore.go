package models

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Recurrence is how often a chore repeats.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// ParseRecurrence converts user input into a Recurrence.
// An empty string means RecurrenceNone.
func ParseRecurrence(s string) (Recurrence, error) {
	switch r := Recurrence(strings.ToLower(strings.TrimSpace(s))); r {
	case "":
		return RecurrenceNone, nil
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return r, nil
	default:
		return "", fmt.Errorf("%w: unknown recurrence %q", ErrValidation, s)
	}
}

// IsRecurring reports whether the chore repeats at all.
func (r Recurrence) IsRecurring() bool {
	return r != "" && r != RecurrenceNone
}

// Chore represents a household obligation assigned to one roommate.
//
// A task (IsTask) can be marked completed; a reminder cannot. Recurring
// chores move through RotationOrder each time their window elapses.
type Chore struct {
	// ID is the store-assigned identifier.
	ID int64

	// Description is what needs to be done (e.g., "Take out the bins").
	Description string

	// StartDate and EndDate bound the active window. EndDate > StartDate.
	StartDate time.Time
	EndDate   time.Time

	// IsTask is true when the chore has a completed state.
	IsTask bool

	// Completed is only meaningful when IsTask is true.
	Completed *bool

	// Recurrence controls how the window advances once elapsed.
	Recurrence Recurrence

	// AssigneeID is the roommate currently responsible.
	AssigneeID int64

	// AssignorID is the roommate who created the chore. Immutable.
	AssignorID int64

	// RotationOrder is the ordered list of roommate IDs the chore cycles
	// through. Duplicates are allowed but carry no meaning.
	RotationOrder []int64

	// CreatedAt is the Unix timestamp when the chore was created.
	CreatedAt int64
}

// Validate checks the invariants the core relies on.
func (c *Chore) Validate() error {
	if strings.TrimSpace(c.Description) == "" {
		return fmt.Errorf("%w: chore description is required", ErrValidation)
	}
	if !c.EndDate.After(c.StartDate) {
		return fmt.Errorf("%w: chore end date must be after start date", ErrValidation)
	}
	if _, err := ParseRecurrence(string(c.Recurrence)); err != nil {
		return err
	}
	if c.AssigneeID == 0 {
		return fmt.Errorf("%w: chore assignee is required", ErrValidation)
	}
	return nil
}

// InRotation reports whether the person appears in the rotation order.
func (c *Chore) InRotation(personID int64) bool {
	return slices.Contains(c.RotationOrder, personID)
}

// IsCompleted reports whether the chore is a task marked done.
func (c *Chore) IsCompleted() bool {
	return c.IsTask && c.Completed != nil && *c.Completed
}

// Clone returns a deep copy.
func (c *Chore) Clone() *Chore {
	cp := *c
	cp.RotationOrder = slices.Clone(c.RotationOrder)
	if c.Completed != nil {
		v := *c.Completed
		cp.Completed = &v
	}
	return &cp
}
