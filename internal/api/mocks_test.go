package api_test

import (
	"context"
	"io"

	"github.com/registrohq/registro/internal/models"
)

// mockPersonSvc returns configured responses per method.
type mockPersonSvc struct {
	createFn func(ctx context.Context, req models.CreatePersonRequest) (*models.Person, error)
	getFn    func(ctx context.Context, id int64) (*models.Person, error)
	listFn   func(ctx context.Context, opts models.ListPeopleOpts) ([]models.Person, error)
	updateFn func(ctx context.Context, id int64, req models.UpdatePersonRequest) (*models.Person, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockPersonSvc) Create(ctx context.Context, req models.CreatePersonRequest) (*models.Person, error) {
	return m.createFn(ctx, req)
}

func (m *mockPersonSvc) Get(ctx context.Context, id int64) (*models.Person, error) {
	return m.getFn(ctx, id)
}

func (m *mockPersonSvc) List(ctx context.Context, opts models.ListPeopleOpts) ([]models.Person, error) {
	return m.listFn(ctx, opts)
}

func (m *mockPersonSvc) Update(ctx context.Context, id int64, req models.UpdatePersonRequest) (*models.Person, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockPersonSvc) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

// mockLogSvc returns a configured log listing.
type mockLogSvc struct {
	listFn func(ctx context.Context) ([]models.LogEntry, error)
}

func (m *mockLogSvc) List(ctx context.Context) ([]models.LogEntry, error) {
	return m.listFn(ctx)
}

// mockCSVSvc returns configured CSV responses.
type mockCSVSvc struct {
	ingestFn func(ctx context.Context, r io.Reader) (int, error)
	exportFn func(ctx context.Context, ids []int64) ([]byte, error)
}

func (m *mockCSVSvc) Ingest(ctx context.Context, r io.Reader) (int, error) {
	return m.ingestFn(ctx, r)
}

func (m *mockCSVSvc) Export(ctx context.Context, ids []int64) ([]byte, error) {
	return m.exportFn(ctx, ids)
}
