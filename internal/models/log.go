package models

import "time"

// Operation types recorded in the audit log.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// LogEntry is an append-only audit record of a single person mutation.
//
// OldData and NewData are free-form snapshots of person fields: OldData is the
// pre-mutation state (absent for create), NewData the supplied input (absent
// for delete). Date and time values inside them are rendered as ISO-8601
// strings before storage. A LogEntry is written exactly once, immediately
// after the person mutation commits, and is never updated or deleted.
type LogEntry struct {
	ID            int64          `json:"id"`
	PersonID      int64          `json:"person_id"`
	OperationType string         `json:"operation_type"`
	OldData       map[string]any `json:"old_data"`
	NewData       map[string]any `json:"new_data"`
	Timestamp     time.Time      `json:"timestamp"`
}

// ChangeEvent is the message published to WebSocket subscribers after a
// committed person mutation.
type ChangeEvent struct {
	Entity    string    `json:"entity"`
	Op        string    `json:"op"`
	PersonID  int64     `json:"person_id"`
	Time      time.Time `json:"time"`
}
