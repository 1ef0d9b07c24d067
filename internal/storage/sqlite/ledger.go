package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/roommates/internal/models"
)

const periodColumns = `id, room_id, start_date, end_date, open`

func scanPeriod(row rowScanner) (*models.ExpensePeriod, error) {
	period := &models.ExpensePeriod{}
	var (
		start int64
		end   sql.NullInt64
	)
	if err := row.Scan(&period.ID, &period.RoomID, &start, &end, &period.Open); err != nil {
		return nil, err
	}
	period.StartDate = fromUnix(start)
	if end.Valid {
		t := fromUnix(end.Int64)
		period.EndDate = &t
	}
	return period, nil
}

func nullUnix(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.Unix(), Valid: true}
}

// CreateExpensePeriod persists a new expense period.
func (s *txStore) CreateExpensePeriod(ctx context.Context, period *models.ExpensePeriod) error {
	res, err := s.tx.ExecContext(ctx,
		"INSERT INTO expense_periods (room_id, start_date, end_date, open) VALUES (?, ?, ?, ?)",
		period.RoomID, period.StartDate.Unix(), nullUnix(period.EndDate), period.Open,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense period: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read expense period id: %w", err)
	}
	period.ID = id

	return nil
}

// GetExpensePeriod retrieves an expense period by ID.
func (s *txStore) GetExpensePeriod(ctx context.Context, id int64) (*models.ExpensePeriod, error) {
	period, err := scanPeriod(s.tx.QueryRowContext(ctx,
		`SELECT `+periodColumns+` FROM expense_periods WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("expense period", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense period: %w", err)
	}
	return period, nil
}

// GetOpenExpensePeriod retrieves the open period of a room.
func (s *txStore) GetOpenExpensePeriod(ctx context.Context, roomID int64) (*models.ExpensePeriod, error) {
	period, err := scanPeriod(s.tx.QueryRowContext(ctx,
		`SELECT `+periodColumns+` FROM expense_periods WHERE room_id = ? AND open = 1`, roomID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("open expense period for room %d: %w", roomID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get open expense period: %w", err)
	}
	return period, nil
}

// UpdateExpensePeriod writes the end date and open flag.
func (s *txStore) UpdateExpensePeriod(ctx context.Context, period *models.ExpensePeriod) error {
	res, err := s.tx.ExecContext(ctx,
		"UPDATE expense_periods SET end_date = ?, open = ? WHERE id = ?",
		nullUnix(period.EndDate), period.Open, period.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense period: %w", err)
	}
	return mustAffect(res, "expense period", period.ID)
}

// ListExpensePeriods retrieves all periods of a room, oldest first.
func (s *txStore) ListExpensePeriods(ctx context.Context, roomID int64) ([]*models.ExpensePeriod, error) {
	rows, err := s.tx.QueryContext(ctx,
		`SELECT `+periodColumns+` FROM expense_periods WHERE room_id = ? ORDER BY id`, roomID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense periods: %w", err)
	}
	defer rows.Close()

	var periods []*models.ExpensePeriod
	for rows.Next() {
		period, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense period: %w", err)
		}
		periods = append(periods, period)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense periods: %w", err)
	}

	return periods, nil
}

// DeleteExpensePeriod removes a period. Its expenses must already be gone.
func (s *txStore) DeleteExpensePeriod(ctx context.Context, id int64) error {
	res, err := s.tx.ExecContext(ctx, "DELETE FROM expense_periods WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete expense period: %w", err)
	}
	return mustAffect(res, "expense period", id)
}

const expenseColumns = `id, period_id, room_id, payer_id, title, cost, description, created_at`

func scanExpense(row rowScanner) (*models.Expense, error) {
	expense := &models.Expense{}
	if err := row.Scan(
		&expense.ID,
		&expense.PeriodID,
		&expense.RoomID,
		&expense.PayerID,
		&expense.Title,
		&expense.Cost,
		&expense.Description,
		&expense.CreatedAt,
	); err != nil {
		return nil, err
	}
	return expense, nil
}

// CreateExpense persists a new expense.
func (s *txStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	res, err := s.tx.ExecContext(ctx,
		`INSERT INTO expenses (period_id, room_id, payer_id, title, cost, description, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		expense.PeriodID, expense.RoomID, expense.PayerID, expense.Title, expense.Cost,
		expense.Description, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read expense id: %w", err)
	}
	expense.ID = id

	return nil
}

// GetExpense retrieves an expense by ID.
func (s *txStore) GetExpense(ctx context.Context, id int64) (*models.Expense, error) {
	expense, err := scanExpense(s.tx.QueryRowContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("expense", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return expense, nil
}

// ListExpensesByPeriod retrieves all expenses recorded in a period.
func (s *txStore) ListExpensesByPeriod(ctx context.Context, periodID int64) ([]*models.Expense, error) {
	rows, err := s.tx.QueryContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE period_id = ? ORDER BY id`, periodID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}

// DeleteExpense removes an expense. Its splits must already be gone.
func (s *txStore) DeleteExpense(ctx context.Context, id int64) error {
	res, err := s.tx.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return mustAffect(res, "expense", id)
}

// CreateExpenseSplit persists one person's share of an expense.
func (s *txStore) CreateExpenseSplit(ctx context.Context, split *models.ExpenseSplit) error {
	_, err := s.tx.ExecContext(ctx,
		"INSERT INTO expense_splits (expense_id, person_id, percentage) VALUES (?, ?, ?)",
		split.ExpenseID, split.PersonID, split.Percentage,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense split: %w", err)
	}
	return nil
}

// ListSplitsByExpense retrieves the shares of one expense.
func (s *txStore) ListSplitsByExpense(ctx context.Context, expenseID int64) ([]*models.ExpenseSplit, error) {
	return s.listSplits(ctx, "expense_id", expenseID)
}

// ListSplitsByPerson retrieves every share owed by one person.
func (s *txStore) ListSplitsByPerson(ctx context.Context, personID int64) ([]*models.ExpenseSplit, error) {
	return s.listSplits(ctx, "person_id", personID)
}

func (s *txStore) listSplits(ctx context.Context, column string, id int64) ([]*models.ExpenseSplit, error) {
	rows, err := s.tx.QueryContext(ctx,
		"SELECT expense_id, person_id, percentage FROM expense_splits WHERE "+column+" = ? ORDER BY expense_id, person_id",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense splits: %w", err)
	}
	defer rows.Close()

	var splits []*models.ExpenseSplit
	for rows.Next() {
		split := &models.ExpenseSplit{}
		if err := rows.Scan(&split.ExpenseID, &split.PersonID, &split.Percentage); err != nil {
			return nil, fmt.Errorf("failed to scan expense split: %w", err)
		}
		splits = append(splits, split)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense splits: %w", err)
	}

	return splits, nil
}

// DeleteSplitsByExpense removes every share of an expense.
func (s *txStore) DeleteSplitsByExpense(ctx context.Context, expenseID int64) error {
	if _, err := s.tx.ExecContext(ctx, "DELETE FROM expense_splits WHERE expense_id = ?", expenseID); err != nil {
		return fmt.Errorf("failed to delete expense splits: %w", err)
	}
	return nil
}
