package client

import "time"

// Person represents a registered individual as returned by the API.
// Birthdate is a "YYYY-MM-DD" string, or nil when the record has none
// (rows imported from CSV files with unparseable dates).
type Person struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Birthdate   *string   `json:"birthdate"`
	Gender      string    `json:"gender"`
	Nationality string    `json:"nationality"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreatePersonRequest is the payload for creating a person.
type CreatePersonRequest struct {
	Name        string  `json:"name"`
	Birthdate   *string `json:"birthdate"`
	Gender      string  `json:"gender"`
	Nationality string  `json:"nationality"`
}

// UpdatePersonRequest is the payload for updating a person. All fields
// overwrite the stored values.
type UpdatePersonRequest struct {
	Name        string  `json:"name"`
	Birthdate   *string `json:"birthdate"`
	Gender      string  `json:"gender"`
	Nationality string  `json:"nationality"`
}

// PersonListOptions holds parameters for listing people.
type PersonListOptions struct {
	// FilterColumn/FilterValue filter on a single column: "id" matches
	// exactly, text columns by case-insensitive substring.
	FilterColumn string
	FilterValue  string

	// Keyword matches people whose name, gender or nationality contains it.
	Keyword string

	Skip  int
	Limit int
}

// LogEntry is an audit record of a single person mutation. OldData is the
// pre-mutation state (absent for create), NewData the supplied input (absent
// for delete).
type LogEntry struct {
	ID            int64          `json:"id"`
	PersonID      int64          `json:"person_id"`
	OperationType string         `json:"operation_type"`
	OldData       map[string]any `json:"old_data"`
	NewData       map[string]any `json:"new_data"`
	Timestamp     time.Time      `json:"timestamp"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Database      string  `json:"database"`
	WSClients     int     `json:"ws_clients"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// ReadinessResponse is returned by the readiness endpoint.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
