// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/roommates/internal/models"
)

// Store is the transactional entry point to persistence.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the domain packages.
type Store interface {
	// InTx runs fn inside a single transaction. If fn returns an error, or
	// panics, the transaction is rolled back; otherwise it is committed.
	InTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any resources held by the store.
	Close() error
}

// Tx is the set of operations available inside a transaction.
// Lookups return an error wrapping models.ErrNotFound when the row does not
// exist.
type Tx interface {
	PersonStore
	RoomStore
	ChoreStore
	LedgerStore
	NotificationStore
}

// PersonStore persists roommates.
type PersonStore interface {
	// CreatePerson inserts a person and populates person.ID.
	CreatePerson(ctx context.Context, person *models.Person) error
	GetPerson(ctx context.Context, id int64) (*models.Person, error)
	GetPersonByUsername(ctx context.Context, username string) (*models.Person, error)
	// UpdatePerson writes name and room membership.
	UpdatePerson(ctx context.Context, person *models.Person) error
	// ListRoomMembers returns members ordered by ID.
	ListRoomMembers(ctx context.Context, roomID int64) ([]*models.Person, error)
}

// RoomStore persists rooms.
type RoomStore interface {
	// CreateRoom inserts a room and populates room.ID.
	CreateRoom(ctx context.Context, room *models.Room) error
	GetRoom(ctx context.Context, id int64) (*models.Room, error)
	GetRoomByInviteCode(ctx context.Context, code string) (*models.Room, error)
	DeleteRoom(ctx context.Context, id int64) error
}

// ChoreStore persists chores together with their rotation order.
type ChoreStore interface {
	// CreateChore inserts a chore and populates chore.ID.
	CreateChore(ctx context.Context, chore *models.Chore) error
	GetChore(ctx context.Context, id int64) (*models.Chore, error)
	// UpdateChore rewrites every mutable column and the rotation order.
	UpdateChore(ctx context.Context, chore *models.Chore) error
	DeleteChore(ctx context.Context, id int64) error
	// ListChoresByAssignees returns chores assigned to any of the given
	// people, ordered by ID.
	ListChoresByAssignees(ctx context.Context, assigneeIDs []int64) ([]*models.Chore, error)
}

// LedgerStore persists expense periods, expenses and splits.
type LedgerStore interface {
	// CreateExpensePeriod inserts a period and populates period.ID.
	CreateExpensePeriod(ctx context.Context, period *models.ExpensePeriod) error
	GetExpensePeriod(ctx context.Context, id int64) (*models.ExpensePeriod, error)
	// GetOpenExpensePeriod returns the room's open period.
	GetOpenExpensePeriod(ctx context.Context, roomID int64) (*models.ExpensePeriod, error)
	// UpdateExpensePeriod writes end date and open flag.
	UpdateExpensePeriod(ctx context.Context, period *models.ExpensePeriod) error
	// ListExpensePeriods returns the room's periods ordered by ID.
	ListExpensePeriods(ctx context.Context, roomID int64) ([]*models.ExpensePeriod, error)
	DeleteExpensePeriod(ctx context.Context, id int64) error

	// CreateExpense inserts an expense and populates expense.ID.
	CreateExpense(ctx context.Context, expense *models.Expense) error
	GetExpense(ctx context.Context, id int64) (*models.Expense, error)
	ListExpensesByPeriod(ctx context.Context, periodID int64) ([]*models.Expense, error)
	DeleteExpense(ctx context.Context, id int64) error

	CreateExpenseSplit(ctx context.Context, split *models.ExpenseSplit) error
	ListSplitsByExpense(ctx context.Context, expenseID int64) ([]*models.ExpenseSplit, error)
	ListSplitsByPerson(ctx context.Context, personID int64) ([]*models.ExpenseSplit, error)
	DeleteSplitsByExpense(ctx context.Context, expenseID int64) error
}

// NotificationStore persists room notifications.
type NotificationStore interface {
	// CreateNotification inserts a notification and populates its ID.
	CreateNotification(ctx context.Context, n *models.Notification) error
	GetNotification(ctx context.Context, id int64) (*models.Notification, error)
	ListNotifications(ctx context.Context, roomID int64, filter models.NotificationFilter) ([]*models.Notification, error)
	// UpdateNotification writes title, description, recipient and read flag.
	UpdateNotification(ctx context.Context, n *models.Notification) error
	DeleteNotification(ctx context.Context, id int64) error
	DeleteRoomNotifications(ctx context.Context, roomID int64) error
}
