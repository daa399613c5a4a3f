package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/registrohq/registro/internal/models"
)

// GetPerson retrieves a single person by id.
func (s *PersonStore) GetPerson(ctx context.Context, id int64) (*models.Person, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginReadTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting person: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	row := tx.QueryRow(ctx, "SELECT "+personColumns+" FROM people WHERE id = $1", id)

	p, err := scanPerson(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrPersonNotFound
		}

		return nil, fmt.Errorf("scanning person: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing get person: %w", err)
	}

	return p, nil
}

// buildPeopleFilter builds the WHERE clause and args from ListPeopleOpts.
//
// The column filter matches id exactly and the text columns by
// case-insensitive substring; any other filter column is silently ignored,
// preserving the permissive behavior of the original service. The keyword
// filter is independent and combinable.
func buildPeopleFilter(opts models.ListPeopleOpts) (where string, args []any, nextArg int) {
	var conditions []string
	argIdx := 1

	if opts.FilterColumn != "" && opts.FilterValue != "" {
		switch {
		case opts.FilterColumn == "id":
			id, _ := strconv.ParseInt(opts.FilterValue, 10, 64)
			conditions = append(conditions, "id = $"+strconv.Itoa(argIdx))
			args = append(args, id)
			argIdx++
		case opts.IsSubstringFilter():
			conditions = append(conditions, opts.FilterColumn+" ILIKE $"+strconv.Itoa(argIdx))
			args = append(args, "%"+opts.FilterValue+"%")
			argIdx++
		}
	}

	if opts.Keyword != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR gender ILIKE $%d OR nationality ILIKE $%d)",
			argIdx, argIdx+1, argIdx+2,
		))
		kw := "%" + opts.Keyword + "%"
		args = append(args, kw, kw, kw)
		argIdx += 3
	}

	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	return where, args, argIdx
}

// ListPeople returns people in insertion order with optional filtering,
// skipping opts.Skip rows and returning at most opts.Limit.
func (s *PersonStore) ListPeople(ctx context.Context, opts models.ListPeopleOpts) ([]models.Person, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 100
	}

	if limit > maxListLimit {
		limit = maxListLimit
	}

	skip := opts.Skip
	if skip < 0 {
		skip = 0
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginReadTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing people: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	where, args, argIdx := buildPeopleFilter(opts)

	query := fmt.Sprintf(
		"SELECT %s FROM people %s ORDER BY id LIMIT $%d OFFSET $%d",
		personColumns, where, argIdx, argIdx+1,
	)
	args = append(args, limit, skip)

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying people: %w", err)
	}
	defer rows.Close()

	people, err := collectPeople(rows)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing list people: %w", err)
	}

	return people, nil
}

// ListPeopleByIDs returns the people whose id is in the given set, in id order.
// IDs that match no row are skipped; an entirely unmatched set yields an
// empty slice, not an error.
func (s *PersonStore) ListPeopleByIDs(ctx context.Context, ids []int64) ([]models.Person, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginReadTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing people by ids: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	rows, err := tx.Query(ctx,
		"SELECT "+personColumns+" FROM people WHERE id = ANY($1) ORDER BY id", ids,
	)
	if err != nil {
		return nil, fmt.Errorf("querying people by ids: %w", err)
	}
	defer rows.Close()

	people, err := collectPeople(rows)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing list people by ids: %w", err)
	}

	return people, nil
}
