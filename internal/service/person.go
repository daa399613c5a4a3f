// Package service provides business logic between API handlers and data stores.
package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/registrohq/registro/internal/models"
)

// personStore is the minimal store interface consumed by PersonService.
// Defined at the consumer so the store package depends on no service types.
type personStore interface {
	CreatePerson(ctx context.Context, req models.CreatePersonRequest) (*models.Person, error)
	GetPerson(ctx context.Context, id int64) (*models.Person, error)
	ListPeople(ctx context.Context, opts models.ListPeopleOpts) ([]models.Person, error)
	UpdatePerson(ctx context.Context, id int64, req models.UpdatePersonRequest) (*models.Person, error)
	DeletePerson(ctx context.Context, id int64) error
}

// logAppender appends audit entries for committed mutations.
type logAppender interface {
	AppendLog(ctx context.Context, entry models.LogEntry) (*models.LogEntry, error)
}

// EventPublisher broadcasts change events to live subscribers.
type EventPublisher interface {
	Publish(ev models.ChangeEvent)
}

// PersonService orchestrates person mutations: every successful write is
// followed by an audit log append and a change event broadcast.
type PersonService struct {
	store  personStore
	audit  logAppender
	events EventPublisher
	log    *logrus.Logger
}

// NewPersonService creates a PersonService. events may be nil (no broadcast).
func NewPersonService(store personStore, audit logAppender, events EventPublisher, log *logrus.Logger) *PersonService {
	return &PersonService{store: store, audit: audit, events: events, log: log}
}

// Get returns a single person by id (pass-through).
func (s *PersonService) Get(ctx context.Context, id int64) (*models.Person, error) {
	return s.store.GetPerson(ctx, id)
}

// List returns people matching the given filter options (pass-through).
func (s *PersonService) List(ctx context.Context, opts models.ListPeopleOpts) ([]models.Person, error) {
	return s.store.ListPeople(ctx, opts)
}

// Create inserts a person and appends a create audit entry.
func (s *PersonService) Create(ctx context.Context, req models.CreatePersonRequest) (*models.Person, error) {
	p, err := s.store.CreatePerson(ctx, req)
	if err != nil {
		return nil, err
	}

	s.appendAudit(ctx, models.LogEntry{
		PersonID:      p.ID,
		OperationType: models.OpCreate,
		NewData:       createSnapshot(req),
	})
	s.publish(models.OpCreate, p.ID)

	return p, nil
}

// Update replaces every mutable field of a person and appends an update audit
// entry carrying the full pre-image as old_data.
func (s *PersonService) Update(ctx context.Context, id int64, req models.UpdatePersonRequest) (*models.Person, error) {
	before, err := s.store.GetPerson(ctx, id)
	if err != nil {
		return nil, err
	}

	p, err := s.store.UpdatePerson(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.appendAudit(ctx, models.LogEntry{
		PersonID:      p.ID,
		OperationType: models.OpUpdate,
		OldData:       personSnapshot(before),
		NewData:       updateSnapshot(req),
	})
	s.publish(models.OpUpdate, p.ID)

	return p, nil
}

// Delete removes a person and appends a delete audit entry carrying the
// removed row as old_data.
func (s *PersonService) Delete(ctx context.Context, id int64) error {
	before, err := s.store.GetPerson(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.DeletePerson(ctx, id); err != nil {
		return err
	}

	s.appendAudit(ctx, models.LogEntry{
		PersonID:      id,
		OperationType: models.OpDelete,
		OldData:       personSnapshot(before),
	})
	s.publish(models.OpDelete, id)

	return nil
}

// appendAudit records a mutation in the audit log. The person write has
// already committed, so an append failure is logged and swallowed rather
// than surfaced as a request error.
func (s *PersonService) appendAudit(ctx context.Context, entry models.LogEntry) {
	if _, err := s.audit.AppendLog(ctx, entry); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"person_id": entry.PersonID,
			"operation": entry.OperationType,
		}).Warn("audit.append_failed")
	}
}

func (s *PersonService) publish(op string, personID int64) {
	if s.events == nil {
		return
	}

	s.events.Publish(models.ChangeEvent{
		Entity:   "person",
		Op:       op,
		PersonID: personID,
		Time:     time.Now().UTC(),
	})
}
