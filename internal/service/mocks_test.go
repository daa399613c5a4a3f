package service

import (
	"context"
	"sync"

	"github.com/registrohq/registro/internal/models"
)

// mockPersonStore records calls and returns configured responses.
type mockPersonStore struct {
	mu    sync.Mutex
	calls []string

	createPerson func(ctx context.Context, req models.CreatePersonRequest) (*models.Person, error)
	getPerson    func(ctx context.Context, id int64) (*models.Person, error)
	listPeople   func(ctx context.Context, opts models.ListPeopleOpts) ([]models.Person, error)
	updatePerson func(ctx context.Context, id int64, req models.UpdatePersonRequest) (*models.Person, error)
	deletePerson func(ctx context.Context, id int64) error
}

func (m *mockPersonStore) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *mockPersonStore) CreatePerson(ctx context.Context, req models.CreatePersonRequest) (*models.Person, error) {
	m.record("CreatePerson")
	return m.createPerson(ctx, req)
}

func (m *mockPersonStore) GetPerson(ctx context.Context, id int64) (*models.Person, error) {
	m.record("GetPerson")
	return m.getPerson(ctx, id)
}

func (m *mockPersonStore) ListPeople(ctx context.Context, opts models.ListPeopleOpts) ([]models.Person, error) {
	m.record("ListPeople")
	return m.listPeople(ctx, opts)
}

func (m *mockPersonStore) UpdatePerson(ctx context.Context, id int64, req models.UpdatePersonRequest) (*models.Person, error) {
	m.record("UpdatePerson")
	return m.updatePerson(ctx, id, req)
}

func (m *mockPersonStore) DeletePerson(ctx context.Context, id int64) error {
	m.record("DeletePerson")
	return m.deletePerson(ctx, id)
}

// mockLogAppender records appended audit entries.
type mockLogAppender struct {
	mu      sync.Mutex
	entries []models.LogEntry

	err error
}

func (m *mockLogAppender) AppendLog(_ context.Context, entry models.LogEntry) (*models.LogEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.entries = append(m.entries, entry)
	e := entry
	e.ID = int64(len(m.entries))
	return &e, nil
}

func (m *mockLogAppender) getEntries() []models.LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]models.LogEntry, len(m.entries))
	copy(cp, m.entries)
	return cp
}

// mockPublisher records broadcast change events.
type mockPublisher struct {
	mu     sync.Mutex
	events []models.ChangeEvent
}

func (m *mockPublisher) Publish(ev models.ChangeEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
}

func (m *mockPublisher) getEvents() []models.ChangeEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]models.ChangeEvent, len(m.events))
	copy(cp, m.events)
	return cp
}

// mockPersonCreator records create requests for CSV import tests.
type mockPersonCreator struct {
	mu   sync.Mutex
	reqs []models.CreatePersonRequest

	err error
}

func (m *mockPersonCreator) Create(_ context.Context, req models.CreatePersonRequest) (*models.Person, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.reqs = append(m.reqs, req)
	return &models.Person{ID: int64(len(m.reqs)), Name: req.Name}, nil
}

func (m *mockPersonCreator) getRequests() []models.CreatePersonRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]models.CreatePersonRequest, len(m.reqs))
	copy(cp, m.reqs)
	return cp
}

// mockPersonFetcher serves a fixed row set for CSV export tests.
type mockPersonFetcher struct {
	people []models.Person
	err    error
}

func (m *mockPersonFetcher) ListPeopleByIDs(_ context.Context, _ []int64) ([]models.Person, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.people, nil
}
