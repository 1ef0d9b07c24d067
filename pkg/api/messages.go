package api

import "time"

// Person is a registered roommate.
type Person struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	RoomID    int64  `json:"room_id,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

// Room is a household and its members.
type Room struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	InviteCode string    `json:"invite_code"`
	CreatedAt  int64     `json:"created_at"`
	Members    []*Person `json:"members,omitempty"`
}

// Chore is an obligation assigned to one roommate.
type Chore struct {
	ID            int64     `json:"id"`
	Description   string    `json:"description"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	IsTask        bool      `json:"is_task"`
	Completed     *bool     `json:"completed,omitempty"`
	Recurrence    string    `json:"recurrence"`
	AssigneeID    int64     `json:"assignee_id"`
	AssignorID    int64     `json:"assignor_id"`
	RotationOrder []int64   `json:"rotation_order,omitempty"`
}

// ExpensePeriod is a bookkeeping window of a room.
type ExpensePeriod struct {
	ID        int64      `json:"id"`
	RoomID    int64      `json:"room_id"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Open      bool       `json:"open"`
}

// Split is one roommate's share of an expense.
type Split struct {
	PersonID   int64   `json:"person_id"`
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
}

// Expense is a payment with its splits.
type Expense struct {
	ID          int64    `json:"id"`
	PeriodID    int64    `json:"period_id"`
	PayerID     int64    `json:"payer_id"`
	Title       string   `json:"title"`
	Cost        float64  `json:"cost"`
	Description string   `json:"description,omitempty"`
	CreatedAt   int64    `json:"created_at"`
	Splits      []*Split `json:"splits"`
}

// Balance is a member's position within a period.
type Balance struct {
	PersonID   int64   `json:"person_id"`
	TotalPaid  float64 `json:"total_paid"`
	TotalOwed  float64 `json:"total_owed"`
	NetBalance float64 `json:"net_balance"`
}

// Debt is a simplified payment from one member to another.
type Debt struct {
	From   int64   `json:"from"`
	To     int64   `json:"to"`
	Amount float64 `json:"amount"`
}

// Notification is a message between roommates.
type Notification struct {
	ID          int64     `json:"id"`
	SenderID    int64     `json:"sender_id"`
	RecipientID int64     `json:"recipient_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Time        time.Time `json:"time"`
	IsRead      bool      `json:"is_read"`
}

// Empty is returned by procedures with no result.
type Empty struct{}

// Auth

type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Person *Person `json:"person"`
	Token  string  `json:"token"`
}

type GetCurrentPersonRequest struct{}

type GetCurrentPersonResponse struct {
	Person *Person `json:"person"`
}

// Rooms

type CreateRoomRequest struct {
	Name string `json:"name"`
}

type JoinRoomRequest struct {
	InviteCode string `json:"invite_code"`
}

type GetRoomRequest struct{}

type RoomResponse struct {
	Room *Room `json:"room"`
}

type LeaveRoomRequest struct{}

type LeaveRoomResponse struct {
	Dissolved        bool    `json:"dissolved"`
	DeletedChores    []int64 `json:"deleted_chores,omitempty"`
	ReassignedChores []int64 `json:"reassigned_chores,omitempty"`
	TrimmedChores    []int64 `json:"trimmed_chores,omitempty"`
	DeletedPeriods   int     `json:"deleted_periods,omitempty"`
}

// Chores

// ChoreFields are the editable fields of a chore.
type ChoreFields struct {
	Description   string    `json:"description"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	IsTask        bool      `json:"is_task"`
	Recurrence    string    `json:"recurrence"`
	AssigneeID    int64     `json:"assignee_id,omitempty"`
	RotationOrder []int64   `json:"rotation_order,omitempty"`
}

type CreateChoreRequest struct {
	ChoreFields
}

type UpdateChoreRequest struct {
	ChoreID int64 `json:"chore_id"`
	ChoreFields
}

type DeleteChoreRequest struct {
	ChoreID int64 `json:"chore_id"`
}

type SetChoreCompletedRequest struct {
	ChoreID   int64 `json:"chore_id"`
	Completed bool  `json:"completed"`
}

type ChoreResponse struct {
	Chore *Chore `json:"chore"`
}

type ListChoresRequest struct{}

type ListChoresResponse struct {
	Chores []*Chore `json:"chores"`
}

// Ledger

type OpenPeriodRequest struct{}

type PeriodResponse struct {
	Period *ExpensePeriod `json:"period"`
}

type ClosePeriodRequest struct{}

type ClosePeriodResponse struct {
	Closed  *ExpensePeriod `json:"closed"`
	Current *ExpensePeriod `json:"current"`
}

type ListPeriodsRequest struct{}

type ListPeriodsResponse struct {
	Periods []*ExpensePeriod `json:"periods"`
}

// SplitInput names a roommate by username or ID.
type SplitInput struct {
	Username   string  `json:"username,omitempty"`
	PersonID   int64   `json:"person_id,omitempty"`
	Percentage float64 `json:"percentage"`
}

type AddExpenseRequest struct {
	Title       string        `json:"title"`
	Cost        float64       `json:"cost"`
	Description string        `json:"description,omitempty"`
	SplitEvenly bool          `json:"split_evenly,omitempty"`
	Splits      []*SplitInput `json:"splits,omitempty"`
}

type ExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type RemoveExpenseRequest struct {
	ExpenseID int64 `json:"expense_id"`
}

// ListExpensesRequest lists a period's expenses; zero means the open period.
type ListExpensesRequest struct {
	PeriodID int64 `json:"period_id,omitempty"`
}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

// GetBalancesRequest selects a period; zero means the open period.
type GetBalancesRequest struct {
	PeriodID int64 `json:"period_id,omitempty"`
}

type GetBalancesResponse struct {
	Period   *ExpensePeriod `json:"period"`
	Balances []*Balance     `json:"balances"`
	Debts    []*Debt        `json:"debts"`
}

type ListSharesRequest struct{}

// Share is the caller's part of one expense.
type Share struct {
	ExpenseID  int64   `json:"expense_id"`
	Percentage float64 `json:"percentage"`
}

type ListSharesResponse struct {
	Shares []*Share `json:"shares"`
}

// Notifications

type SendNotificationRequest struct {
	RecipientID int64  `json:"recipient_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type NotificationResponse struct {
	Notification *Notification `json:"notification"`
}

type ListNotificationsRequest struct {
	SenderID    int64 `json:"sender_id,omitempty"`
	RecipientID int64 `json:"recipient_id,omitempty"`
}

type ListNotificationsResponse struct {
	Notifications []*Notification `json:"notifications"`
}

type MarkNotificationReadRequest struct {
	NotificationID int64 `json:"notification_id"`
}

type DeleteNotificationRequest struct {
	NotificationID int64 `json:"notification_id"`
}
