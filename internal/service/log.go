package service

import (
	"context"

	"github.com/registrohq/registro/internal/models"
)

// logLister is the read side of the audit log store.
type logLister interface {
	ListLogs(ctx context.Context) ([]models.LogEntry, error)
}

// LogService exposes the audit log, read-only.
type LogService struct {
	store logLister
}

// NewLogService creates a LogService.
func NewLogService(store logLister) *LogService {
	return &LogService{store: store}
}

// List returns all audit entries in insertion order (pass-through).
func (s *LogService) List(ctx context.Context) ([]models.LogEntry, error) {
	return s.store.ListLogs(ctx)
}
