package ledger

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/mmynk/roommates/internal/calculator"
	"github.com/mmynk/roommates/internal/models"
	"github.com/mmynk/roommates/internal/storage"
)

// SplitInput names one roommate's share of a new expense, by username or ID.
type SplitInput struct {
	Username   string
	PersonID   int64
	Percentage float64
}

// NewExpense is the input to AddExpense.
type NewExpense struct {
	RoomID      int64
	PayerID     int64
	Title       string
	Cost        float64
	Description string
	Splits      []SplitInput

	// SplitEvenly shares the cost equally among all current members.
	// Splits must be empty when set.
	SplitEvenly bool
}

// ExpenseDetail is an expense with its splits.
type ExpenseDetail struct {
	Expense *models.Expense
	Splits  []*models.ExpenseSplit
}

func (in *NewExpense) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: expense title is required", models.ErrValidation)
	}
	if math.IsNaN(in.Cost) || math.IsInf(in.Cost, 0) || in.Cost < 0 {
		return fmt.Errorf("%w: expense cost must be a non-negative amount", models.ErrValidation)
	}
	if in.SplitEvenly && len(in.Splits) > 0 {
		return fmt.Errorf("%w: explicit splits cannot be combined with an even split", models.ErrValidation)
	}
	for i, s := range in.Splits {
		if s.Username == "" && s.PersonID == 0 {
			return fmt.Errorf("%w: split %d names no roommate", models.ErrValidation, i)
		}
		if math.IsNaN(s.Percentage) || s.Percentage < 0 || s.Percentage > 1 {
			return fmt.Errorf("%w: split %d percentage %v outside [0, 1]", models.ErrValidation, i, s.Percentage)
		}
	}
	return nil
}

// AddExpense records an expense in the room's open period along with one
// split per entry.
//
// The payer and every split must resolve to a member of the room. All
// splits are resolved before anything is written, so on any error nothing
// is persisted.
func AddExpense(ctx context.Context, tx storage.Tx, in NewExpense, now time.Time) (*ExpenseDetail, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	period, err := tx.GetOpenExpensePeriod(ctx, in.RoomID)
	if err != nil {
		return nil, fmt.Errorf("open period missing: %w", err)
	}

	if _, err := member(ctx, tx, in.RoomID, in.PayerID, ""); err != nil {
		return nil, err
	}

	shares, err := resolveShares(ctx, tx, in)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		PeriodID:    period.ID,
		RoomID:      in.RoomID,
		PayerID:     in.PayerID,
		Title:       strings.TrimSpace(in.Title),
		Cost:        in.Cost,
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   now.Unix(),
	}
	if err := tx.CreateExpense(ctx, expense); err != nil {
		return nil, err
	}

	detail := &ExpenseDetail{Expense: expense}
	for _, share := range shares {
		split := &models.ExpenseSplit{
			ExpenseID:  expense.ID,
			PersonID:   share.PersonID,
			Percentage: share.Percentage,
		}
		if err := tx.CreateExpenseSplit(ctx, split); err != nil {
			return nil, err
		}
		detail.Splits = append(detail.Splits, split)
	}
	return detail, nil
}

// resolveShares maps split inputs to room members, rejecting duplicates.
func resolveShares(ctx context.Context, tx storage.Tx, in NewExpense) ([]calculator.Share, error) {
	if in.SplitEvenly {
		members, err := tx.ListRoomMembers(ctx, in.RoomID)
		if err != nil {
			return nil, err
		}
		ids := make([]int64, len(members))
		for i, m := range members {
			ids[i] = m.ID
		}
		return calculator.EvenShares(ids)
	}

	seen := make(map[int64]bool, len(in.Splits))
	shares := make([]calculator.Share, 0, len(in.Splits))
	for _, s := range in.Splits {
		person, err := member(ctx, tx, in.RoomID, s.PersonID, s.Username)
		if err != nil {
			return nil, err
		}
		if seen[person.ID] {
			return nil, fmt.Errorf("%w: %s appears in more than one split", models.ErrValidation, person.Username)
		}
		seen[person.ID] = true
		shares = append(shares, calculator.Share{PersonID: person.ID, Percentage: s.Percentage})
	}
	return shares, nil
}

// member loads a person by username when given, else by ID, and checks they
// belong to the room. Non-members are reported as not found.
func member(ctx context.Context, tx storage.Tx, roomID, personID int64, username string) (*models.Person, error) {
	var (
		person *models.Person
		err    error
		key    any = personID
	)
	if username != "" {
		key = username
		person, err = tx.GetPersonByUsername(ctx, username)
	} else {
		person, err = tx.GetPerson(ctx, personID)
	}
	if errors.Is(err, models.ErrNotFound) || (err == nil && !person.InRoom(roomID)) {
		return nil, fmt.Errorf("person %v is not a member of room %d: %w", key, roomID, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return person, nil
}

// RemoveExpense deletes an expense's splits, then the expense.
func RemoveExpense(ctx context.Context, tx storage.Tx, expenseID int64) error {
	if _, err := tx.GetExpense(ctx, expenseID); err != nil {
		return err
	}
	if err := tx.DeleteSplitsByExpense(ctx, expenseID); err != nil {
		return err
	}
	return tx.DeleteExpense(ctx, expenseID)
}

// ListExpenses returns a period's expenses with their splits.
func ListExpenses(ctx context.Context, tx storage.Tx, periodID int64) ([]*ExpenseDetail, error) {
	expenses, err := tx.ListExpensesByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}

	details := make([]*ExpenseDetail, 0, len(expenses))
	for _, expense := range expenses {
		splits, err := tx.ListSplitsByExpense(ctx, expense.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, &ExpenseDetail{Expense: expense, Splits: splits})
	}
	return details, nil
}

// ListShares returns every split owed by a person.
func ListShares(ctx context.Context, tx storage.Tx, personID int64) ([]*models.ExpenseSplit, error) {
	return tx.ListSplitsByPerson(ctx, personID)
}
