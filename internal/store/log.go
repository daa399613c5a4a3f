package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/registrohq/registro/internal/models"
)

// LogStore provides data access for the logs table.
type LogStore struct {
	Base
}

// NewLogStore creates a LogStore.
func NewLogStore(base Base) *LogStore {
	return &LogStore{Base: base}
}

// AppendLog inserts an audit log entry and returns it with its generated
// id and timestamp. Entries are never updated or deleted afterwards.
func (s *LogStore) AppendLog(ctx context.Context, entry models.LogEntry) (*models.LogEntry, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("appending log entry: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	oldJSON, err := marshalSnapshot(entry.OldData)
	if err != nil {
		return nil, fmt.Errorf("marshaling old_data: %w", err)
	}

	newJSON, err := marshalSnapshot(entry.NewData)
	if err != nil {
		return nil, fmt.Errorf("marshaling new_data: %w", err)
	}

	query := `INSERT INTO logs (person_id, operation_type, old_data, new_data)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + logColumns

	row := tx.QueryRow(ctx, query, entry.PersonID, entry.OperationType, oldJSON, newJSON)

	e, err := scanLogEntry(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("scanning log entry: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing log entry: %w", err)
	}

	return e, nil
}

// ListLogs returns all audit log entries in insertion order.
func (s *LogStore) ListLogs(ctx context.Context) ([]models.LogEntry, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginReadTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing logs: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	rows, err := tx.Query(ctx, "SELECT "+logColumns+" FROM logs ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying logs: %w", err)
	}
	defer rows.Close()

	entries := make([]models.LogEntry, 0, 16)

	for rows.Next() {
		e, err := scanLogEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning log row: %w", err)
		}

		entries = append(entries, *e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating log rows: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing list logs: %w", err)
	}

	return entries, nil
}

// marshalSnapshot encodes a snapshot map as JSONB, keeping NULL for absent
// snapshots (create has no old_data, delete no new_data).
func marshalSnapshot(data map[string]any) ([]byte, error) {
	if data == nil {
		return nil, nil
	}

	return json.Marshal(data)
}
