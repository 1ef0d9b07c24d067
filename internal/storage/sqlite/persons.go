package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/roommates/internal/models"
)

// notFound builds an error wrapping models.ErrNotFound.
func notFound(what string, key any) error {
	return fmt.Errorf("%s %v: %w", what, key, models.ErrNotFound)
}

const personColumns = `id, name, username, password_hash, room_id, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerson(row rowScanner) (*models.Person, error) {
	person := &models.Person{}
	var roomID sql.NullInt64
	if err := row.Scan(
		&person.ID,
		&person.Name,
		&person.Username,
		&person.PasswordHash,
		&roomID,
		&person.CreatedAt,
	); err != nil {
		return nil, err
	}
	if roomID.Valid {
		id := roomID.Int64
		person.RoomID = &id
	}
	return person, nil
}

// CreatePerson inserts a new person into the database.
func (s *txStore) CreatePerson(ctx context.Context, person *models.Person) error {
	query := `
		INSERT INTO persons (name, username, password_hash, room_id, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	res, err := s.tx.ExecContext(ctx, query,
		person.Name,
		person.Username,
		person.PasswordHash,
		nullInt64(person.RoomID),
		person.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create person: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read person id: %w", err)
	}
	person.ID = id

	return nil
}

// GetPerson retrieves a person by ID.
func (s *txStore) GetPerson(ctx context.Context, id int64) (*models.Person, error) {
	query := `SELECT ` + personColumns + ` FROM persons WHERE id = ?`

	person, err := scanPerson(s.tx.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("person", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person by ID: %w", err)
	}

	return person, nil
}

// GetPersonByUsername retrieves a person by their username.
func (s *txStore) GetPersonByUsername(ctx context.Context, username string) (*models.Person, error) {
	query := `SELECT ` + personColumns + ` FROM persons WHERE username = ?`

	person, err := scanPerson(s.tx.QueryRowContext(ctx, query, username))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("person", username)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person by username: %w", err)
	}

	return person, nil
}

// UpdatePerson writes the person's name and room membership.
func (s *txStore) UpdatePerson(ctx context.Context, person *models.Person) error {
	res, err := s.tx.ExecContext(ctx,
		"UPDATE persons SET name = ?, room_id = ? WHERE id = ?",
		person.Name, nullInt64(person.RoomID), person.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}
	return mustAffect(res, "person", person.ID)
}

// ListRoomMembers retrieves every person whose room is roomID.
func (s *txStore) ListRoomMembers(ctx context.Context, roomID int64) ([]*models.Person, error) {
	query := `SELECT ` + personColumns + ` FROM persons WHERE room_id = ? ORDER BY id`

	rows, err := s.tx.QueryContext(ctx, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to list room members: %w", err)
	}
	defer rows.Close()

	var members []*models.Person
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		members = append(members, person)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating persons: %w", err)
	}

	return members, nil
}
