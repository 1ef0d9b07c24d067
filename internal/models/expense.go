package models

import "time"

// ExpensePeriod is a bookkeeping window for a room's shared expenses.
// At most one period per room is open at any time.
type ExpensePeriod struct {
	// ID is the store-assigned identifier.
	ID int64

	// RoomID is the owning room.
	RoomID int64

	// StartDate is when the period was opened.
	StartDate time.Time

	// EndDate is set when the period is closed.
	EndDate *time.Time

	// Open is true while the period accepts new expenses.
	Open bool
}

// Expense represents one payment made by a roommate on behalf of the room.
type Expense struct {
	// ID is the store-assigned identifier.
	ID int64

	// PeriodID is the period that was open when the expense was recorded.
	PeriodID int64

	// RoomID is the owning room.
	RoomID int64

	// PayerID is the roommate who paid.
	PayerID int64

	// Title is a short label (e.g., "Rent").
	Title string

	// Cost is the non-negative amount paid.
	Cost float64

	// Description is optional free text.
	Description string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

// ExpenseSplit is one roommate's share of an expense.
// (ExpenseID, PersonID) is unique.
type ExpenseSplit struct {
	ExpenseID int64
	PersonID  int64

	// Percentage is the share in [0, 1]. Splits of one expense are not
	// required to sum to 1.
	Percentage float64
}
