// Package ledger keeps a room's shared-expense books.
//
// Expenses are grouped into periods and at most one period per room is open
// at a time. Closing a period immediately opens its successor, so once a room
// has kept books it always has somewhere to record the next expense.
//
// Every function runs inside the caller's transaction and never commits.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/roommates/internal/models"
	"github.com/mmynk/roommates/internal/storage"
)

// OpenPeriod starts a new open period for the room.
// It fails with models.ErrInvalidState if the room already has one.
func OpenPeriod(ctx context.Context, tx storage.Tx, roomID int64, now time.Time) (*models.ExpensePeriod, error) {
	_, err := tx.GetOpenExpensePeriod(ctx, roomID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("room %d already has an open expense period: %w", roomID, models.ErrInvalidState)
	case !errors.Is(err, models.ErrNotFound):
		return nil, err
	}

	period := &models.ExpensePeriod{
		RoomID:    roomID,
		StartDate: now.UTC(),
		Open:      true,
	}
	if err := tx.CreateExpensePeriod(ctx, period); err != nil {
		return nil, err
	}
	return period, nil
}

// ClosePeriod ends the room's open period at now and opens its successor.
// It fails with models.ErrNotFound if the room has no open period.
func ClosePeriod(ctx context.Context, tx storage.Tx, roomID int64, now time.Time) (closed, successor *models.ExpensePeriod, err error) {
	closed, err = tx.GetOpenExpensePeriod(ctx, roomID)
	if err != nil {
		return nil, nil, fmt.Errorf("open period missing: %w", err)
	}

	end := now.UTC()
	closed.Open = false
	closed.EndDate = &end
	if err := tx.UpdateExpensePeriod(ctx, closed); err != nil {
		return nil, nil, err
	}

	successor, err = OpenPeriod(ctx, tx, roomID, now)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open successor period: %w", err)
	}
	return closed, successor, nil
}

// CurrentPeriod returns the room's open period.
func CurrentPeriod(ctx context.Context, tx storage.Tx, roomID int64) (*models.ExpensePeriod, error) {
	return tx.GetOpenExpensePeriod(ctx, roomID)
}

// ListPeriods returns every period of the room, oldest first.
func ListPeriods(ctx context.Context, tx storage.Tx, roomID int64) ([]*models.ExpensePeriod, error) {
	return tx.ListExpensePeriods(ctx, roomID)
}

// DeletePeriod removes a period together with its expenses and their splits.
func DeletePeriod(ctx context.Context, tx storage.Tx, periodID int64) error {
	expenses, err := tx.ListExpensesByPeriod(ctx, periodID)
	if err != nil {
		return err
	}
	for _, expense := range expenses {
		if err := RemoveExpense(ctx, tx, expense.ID); err != nil {
			return err
		}
	}
	return tx.DeleteExpensePeriod(ctx, periodID)
}

// DeleteRoomPeriods removes every period the room owns and returns how many
// were deleted.
func DeleteRoomPeriods(ctx context.Context, tx storage.Tx, roomID int64) (int, error) {
	periods, err := tx.ListExpensePeriods(ctx, roomID)
	if err != nil {
		return 0, err
	}
	for _, period := range periods {
		if err := DeletePeriod(ctx, tx, period.ID); err != nil {
			return 0, fmt.Errorf("failed to delete period %d: %w", period.ID, err)
		}
	}
	return len(periods), nil
}
