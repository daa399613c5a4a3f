package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/registrohq/registro/internal/models"
)

// personColumns lists the columns selected for person queries.
const personColumns = `id, name, birthdate, gender, nationality, created_at, updated_at`

// logColumns lists the columns selected for log queries.
const logColumns = `id, person_id, operation_type, old_data, new_data, timestamp`

// scanPerson scans a single row into a models.Person.
func scanPerson(scan func(dest ...any) error) (*models.Person, error) {
	var p models.Person
	var birthdate *time.Time

	err := scan(
		&p.ID,
		&p.Name,
		&birthdate,
		&p.Gender,
		&p.Nationality,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if birthdate != nil {
		d := models.NewDate(*birthdate)
		p.Birthdate = &d
	}

	return &p, nil
}

// collectPeople scans all rows into a person slice.
func collectPeople(rows pgx.Rows) ([]models.Person, error) {
	people := make([]models.Person, 0, 16)

	for rows.Next() {
		p, err := scanPerson(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning person row: %w", err)
		}

		people = append(people, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating person rows: %w", err)
	}

	return people, nil
}

// scanLogEntry scans a single row into a models.LogEntry.
func scanLogEntry(scan func(dest ...any) error) (*models.LogEntry, error) {
	var e models.LogEntry
	var oldJSON, newJSON []byte

	err := scan(
		&e.ID,
		&e.PersonID,
		&e.OperationType,
		&oldJSON,
		&newJSON,
		&e.Timestamp,
	)
	if err != nil {
		return nil, err
	}

	if oldJSON != nil {
		if err := json.Unmarshal(oldJSON, &e.OldData); err != nil {
			return nil, fmt.Errorf("unmarshalling old_data: %w", err)
		}
	}

	if newJSON != nil {
		if err := json.Unmarshal(newJSON, &e.NewData); err != nil {
			return nil, fmt.Errorf("unmarshalling new_data: %w", err)
		}
	}

	return &e, nil
}

// birthdateArg converts an optional Date into a query argument.
func birthdateArg(d *models.Date) any {
	if d == nil {
		return nil
	}

	return d.Time
}
