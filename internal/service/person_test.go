package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/registrohq/registro/internal/models"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	return log
}

func testPerson(id int64) *models.Person {
	bd, _ := models.ParseDate("1990-05-20")
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &models.Person{
		ID:          id,
		Name:        "Ana Souza",
		Birthdate:   &bd,
		Gender:      "female",
		Nationality: "brazilian",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestPersonService_Create(t *testing.T) {
	store := &mockPersonStore{
		createPerson: func(_ context.Context, req models.CreatePersonRequest) (*models.Person, error) {
			p := testPerson(1)
			p.Name = req.Name
			return p, nil
		},
	}
	audit := &mockLogAppender{}
	events := &mockPublisher{}
	svc := NewPersonService(store, audit, events, testLogger())

	bd, _ := models.ParseDate("1990-05-20")
	p, err := svc.Create(context.Background(), models.CreatePersonRequest{
		Name: "Ana Souza", Birthdate: &bd, Gender: "female", Nationality: "brazilian",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	entries := audit.getEntries()
	if len(entries) != 1 {
		t.Fatalf("got %d audit entries, want 1", len(entries))
	}

	entry := entries[0]
	if entry.OperationType != models.OpCreate {
		t.Errorf("operation = %q, want %q", entry.OperationType, models.OpCreate)
	}
	if entry.PersonID != p.ID {
		t.Errorf("person_id = %d, want %d", entry.PersonID, p.ID)
	}
	if entry.OldData != nil {
		t.Errorf("old_data = %v, want nil for create", entry.OldData)
	}
	if entry.NewData["name"] != "Ana Souza" {
		t.Errorf("new_data[name] = %v, want Ana Souza", entry.NewData["name"])
	}
	if entry.NewData["birthdate"] != "1990-05-20" {
		t.Errorf("new_data[birthdate] = %v, want 1990-05-20", entry.NewData["birthdate"])
	}

	evs := events.getEvents()
	if len(evs) != 1 || evs[0].Op != models.OpCreate || evs[0].PersonID != p.ID {
		t.Errorf("events = %+v, want one create event for person %d", evs, p.ID)
	}
}

func TestPersonService_CreateStoreError(t *testing.T) {
	store := &mockPersonStore{
		createPerson: func(_ context.Context, _ models.CreatePersonRequest) (*models.Person, error) {
			return nil, errors.New("db down")
		},
	}
	audit := &mockLogAppender{}
	events := &mockPublisher{}
	svc := NewPersonService(store, audit, events, testLogger())

	if _, err := svc.Create(context.Background(), models.CreatePersonRequest{}); err == nil {
		t.Fatal("expected error, got nil")
	}

	if len(audit.getEntries()) != 0 {
		t.Error("audit entry appended for failed create")
	}
	if len(events.getEvents()) != 0 {
		t.Error("event published for failed create")
	}
}

func TestPersonService_UpdateCapturesPreImage(t *testing.T) {
	before := testPerson(7)
	store := &mockPersonStore{
		getPerson: func(_ context.Context, id int64) (*models.Person, error) {
			return before, nil
		},
		updatePerson: func(_ context.Context, id int64, req models.UpdatePersonRequest) (*models.Person, error) {
			after := testPerson(id)
			after.Name = req.Name
			after.Nationality = req.Nationality
			after.UpdatedAt = after.UpdatedAt.Add(time.Minute)
			return after, nil
		},
	}
	audit := &mockLogAppender{}
	svc := NewPersonService(store, audit, nil, testLogger())

	bd, _ := models.ParseDate("1990-05-20")
	_, err := svc.Update(context.Background(), 7, models.UpdatePersonRequest{
		Name: "Ana Clara", Birthdate: &bd, Gender: "female", Nationality: "portuguese",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	entries := audit.getEntries()
	if len(entries) != 1 {
		t.Fatalf("got %d audit entries, want 1", len(entries))
	}

	entry := entries[0]
	if entry.OperationType != models.OpUpdate {
		t.Errorf("operation = %q, want %q", entry.OperationType, models.OpUpdate)
	}
	if entry.OldData["name"] != "Ana Souza" {
		t.Errorf("old_data[name] = %v, want the pre-image name", entry.OldData["name"])
	}
	if entry.OldData["id"] != int64(7) {
		t.Errorf("old_data[id] = %v, want 7", entry.OldData["id"])
	}
	if entry.OldData["created_at"] != "2024-03-01T12:00:00Z" {
		t.Errorf("old_data[created_at] = %v, want ISO-8601 string", entry.OldData["created_at"])
	}
	if entry.NewData["name"] != "Ana Clara" {
		t.Errorf("new_data[name] = %v, want Ana Clara", entry.NewData["name"])
	}
	if _, ok := entry.NewData["id"]; ok {
		t.Error("new_data carries an id; the update input has none")
	}
}

func TestPersonService_UpdateNotFound(t *testing.T) {
	store := &mockPersonStore{
		getPerson: func(_ context.Context, _ int64) (*models.Person, error) {
			return nil, models.ErrPersonNotFound
		},
	}
	audit := &mockLogAppender{}
	events := &mockPublisher{}
	svc := NewPersonService(store, audit, events, testLogger())

	_, err := svc.Update(context.Background(), 999, models.UpdatePersonRequest{})
	if !errors.Is(err, models.ErrPersonNotFound) {
		t.Fatalf("err = %v, want ErrPersonNotFound", err)
	}

	if len(audit.getEntries()) != 0 {
		t.Error("audit entry appended for missing person")
	}
	if len(events.getEvents()) != 0 {
		t.Error("event published for missing person")
	}
}

func TestPersonService_DeleteLogsPreImage(t *testing.T) {
	store := &mockPersonStore{
		getPerson: func(_ context.Context, id int64) (*models.Person, error) {
			return testPerson(id), nil
		},
		deletePerson: func(_ context.Context, _ int64) error {
			return nil
		},
	}
	audit := &mockLogAppender{}
	events := &mockPublisher{}
	svc := NewPersonService(store, audit, events, testLogger())

	if err := svc.Delete(context.Background(), 3); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	entries := audit.getEntries()
	if len(entries) != 1 {
		t.Fatalf("got %d audit entries, want 1", len(entries))
	}

	entry := entries[0]
	if entry.OperationType != models.OpDelete {
		t.Errorf("operation = %q, want %q", entry.OperationType, models.OpDelete)
	}
	if entry.NewData != nil {
		t.Errorf("new_data = %v, want nil for delete", entry.NewData)
	}
	if entry.OldData["name"] != "Ana Souza" {
		t.Errorf("old_data[name] = %v, want the deleted row's name", entry.OldData["name"])
	}

	evs := events.getEvents()
	if len(evs) != 1 || evs[0].Op != models.OpDelete {
		t.Errorf("events = %+v, want one delete event", evs)
	}
}

func TestPersonService_AuditFailureDoesNotFailMutation(t *testing.T) {
	store := &mockPersonStore{
		createPerson: func(_ context.Context, _ models.CreatePersonRequest) (*models.Person, error) {
			return testPerson(1), nil
		},
	}
	audit := &mockLogAppender{err: errors.New("logs table unavailable")}
	svc := NewPersonService(store, audit, nil, testLogger())

	p, err := svc.Create(context.Background(), models.CreatePersonRequest{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p == nil || p.ID != 1 {
		t.Errorf("person = %+v, want the created row despite the audit failure", p)
	}
}
