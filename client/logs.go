package client

import "context"

// LogService reads the audit log.
type LogService struct {
	c *Client
}

// List returns every audit entry in insertion order.
func (s *LogService) List(ctx context.Context) ([]LogEntry, error) {
	var entries []LogEntry
	if err := s.c.get(ctx, "/logs/", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
