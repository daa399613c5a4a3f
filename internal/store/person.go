package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/registrohq/registro/internal/models"
)

// PersonStore handles person CRUD operations.
type PersonStore struct {
	Base
}

// NewPersonStore creates a new PersonStore.
func NewPersonStore(base Base) *PersonStore {
	return &PersonStore{Base: base}
}

// CreatePerson inserts a new person and returns the created record.
//
// When req carries explicit CreatedAt/UpdatedAt values (the CSV historical
// reload path) they are stored as-is; otherwise both default to NOW().
func (s *PersonStore) CreatePerson(ctx context.Context, req models.CreatePersonRequest) (*models.Person, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating person: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	query := `INSERT INTO people (name, birthdate, gender, nationality, created_at, updated_at)
		VALUES ($1, $2, $3, $4, COALESCE($5, NOW()), COALESCE($6, NOW()))
		RETURNING ` + personColumns

	row := tx.QueryRow(ctx, query,
		req.Name, birthdateArg(req.Birthdate), req.Gender, req.Nationality,
		req.CreatedAt, req.UpdatedAt,
	)

	p, err := scanPerson(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("scanning created person: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing create person: %w", err)
	}

	return p, nil
}

// UpdatePerson replaces every mutable field of a person and refreshes
// updated_at. id and created_at are never written.
func (s *PersonStore) UpdatePerson(ctx context.Context, id int64, req models.UpdatePersonRequest) (*models.Person, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating person: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	query := `UPDATE people
		SET name = $1, birthdate = $2, gender = $3, nationality = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING ` + personColumns

	row := tx.QueryRow(ctx, query,
		req.Name, birthdateArg(req.Birthdate), req.Gender, req.Nationality, id,
	)

	p, err := scanPerson(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrPersonNotFound
		}

		return nil, fmt.Errorf("scanning updated person: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing update person: %w", err)
	}

	return p, nil
}

// DeletePerson removes a person by id.
func (s *PersonStore) DeletePerson(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginTx(ctx)
	if err != nil {
		return fmt.Errorf("deleting person: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	tag, err := tx.Exec(ctx, "DELETE FROM people WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("executing person delete: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrPersonNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing delete person: %w", err)
	}

	return nil
}
