package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/roommates/internal/models"
)

const choreColumns = `id, description, start_date, end_date, is_task, completed, recurrence, assignee_id, assignor_id, created_at`

func scanChore(row rowScanner) (*models.Chore, error) {
	chore := &models.Chore{}
	var (
		start, end int64
		completed  sql.NullBool
		recurrence string
	)
	if err := row.Scan(
		&chore.ID,
		&chore.Description,
		&start,
		&end,
		&chore.IsTask,
		&completed,
		&recurrence,
		&chore.AssigneeID,
		&chore.AssignorID,
		&chore.CreatedAt,
	); err != nil {
		return nil, err
	}
	chore.StartDate = fromUnix(start)
	chore.EndDate = fromUnix(end)
	chore.Recurrence = models.Recurrence(recurrence)
	if completed.Valid {
		v := completed.Bool
		chore.Completed = &v
	}
	return chore, nil
}

func nullBool(p *bool) sql.NullBool {
	if p == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *p, Valid: true}
}

// CreateChore persists a new chore and its rotation order.
func (s *txStore) CreateChore(ctx context.Context, chore *models.Chore) error {
	if chore.CreatedAt == 0 {
		chore.CreatedAt = time.Now().Unix()
	}
	if chore.Recurrence == "" {
		chore.Recurrence = models.RecurrenceNone
	}

	res, err := s.tx.ExecContext(ctx,
		`INSERT INTO chores (description, start_date, end_date, is_task, completed, recurrence, assignee_id, assignor_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		chore.Description, chore.StartDate.Unix(), chore.EndDate.Unix(), chore.IsTask,
		nullBool(chore.Completed), string(chore.Recurrence), chore.AssigneeID, chore.AssignorID,
		chore.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert chore: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read chore id: %w", err)
	}
	chore.ID = id

	return s.writeRotation(ctx, chore)
}

// writeRotation replaces the stored rotation order of a chore.
func (s *txStore) writeRotation(ctx context.Context, chore *models.Chore) error {
	if _, err := s.tx.ExecContext(ctx, "DELETE FROM chore_rotation WHERE chore_id = ?", chore.ID); err != nil {
		return fmt.Errorf("failed to clear rotation order: %w", err)
	}
	for pos, personID := range chore.RotationOrder {
		_, err := s.tx.ExecContext(ctx,
			"INSERT INTO chore_rotation (chore_id, position, person_id) VALUES (?, ?, ?)",
			chore.ID, pos, personID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert rotation entry: %w", err)
		}
	}
	return nil
}

// loadRotation fills in the rotation order of each chore.
func (s *txStore) loadRotation(ctx context.Context, chores []*models.Chore) error {
	for _, chore := range chores {
		rows, err := s.tx.QueryContext(ctx,
			"SELECT person_id FROM chore_rotation WHERE chore_id = ? ORDER BY position",
			chore.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to get rotation order: %w", err)
		}

		var order []int64
		for rows.Next() {
			var personID int64
			if err := rows.Scan(&personID); err != nil {
				rows.Close()
				return fmt.Errorf("failed to scan rotation entry: %w", err)
			}
			order = append(order, personID)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("failed to iterate rotation order: %w", err)
		}
		chore.RotationOrder = order
	}
	return nil
}

// GetChore retrieves a chore by ID, including its rotation order.
func (s *txStore) GetChore(ctx context.Context, id int64) (*models.Chore, error) {
	chore, err := scanChore(s.tx.QueryRowContext(ctx,
		`SELECT `+choreColumns+` FROM chores WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("chore", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get chore: %w", err)
	}

	if err := s.loadRotation(ctx, []*models.Chore{chore}); err != nil {
		return nil, err
	}
	return chore, nil
}

// UpdateChore rewrites a chore's mutable columns and rotation order.
func (s *txStore) UpdateChore(ctx context.Context, chore *models.Chore) error {
	res, err := s.tx.ExecContext(ctx,
		`UPDATE chores
		 SET description = ?, start_date = ?, end_date = ?, is_task = ?, completed = ?, recurrence = ?, assignee_id = ?
		 WHERE id = ?`,
		chore.Description, chore.StartDate.Unix(), chore.EndDate.Unix(), chore.IsTask,
		nullBool(chore.Completed), string(chore.Recurrence), chore.AssigneeID, chore.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update chore: %w", err)
	}
	if err := mustAffect(res, "chore", chore.ID); err != nil {
		return err
	}

	return s.writeRotation(ctx, chore)
}

// DeleteChore removes a chore. Its rotation entries go with it.
func (s *txStore) DeleteChore(ctx context.Context, id int64) error {
	res, err := s.tx.ExecContext(ctx, "DELETE FROM chores WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete chore: %w", err)
	}
	return mustAffect(res, "chore", id)
}

// ListChoresByAssignees retrieves all chores assigned to any of the given people.
func (s *txStore) ListChoresByAssignees(ctx context.Context, assigneeIDs []int64) ([]*models.Chore, error) {
	if len(assigneeIDs) == 0 {
		return nil, nil
	}

	rows, err := s.tx.QueryContext(ctx,
		`SELECT `+choreColumns+` FROM chores WHERE assignee_id IN (`+placeholders(len(assigneeIDs))+`) ORDER BY id`,
		int64Args(assigneeIDs)...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list chores: %w", err)
	}

	var chores []*models.Chore
	for rows.Next() {
		chore, err := scanChore(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan chore: %w", err)
		}
		chores = append(chores, chore)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate chores: %w", err)
	}

	if err := s.loadRotation(ctx, chores); err != nil {
		return nil, err
	}
	return chores, nil
}
