package api

import (
	"context"
	"io"

	"github.com/registrohq/registro/internal/models"
)

// PersonService defines person operations used by PersonHandler.
type PersonService interface {
	Create(ctx context.Context, req models.CreatePersonRequest) (*models.Person, error)
	Get(ctx context.Context, id int64) (*models.Person, error)
	List(ctx context.Context, opts models.ListPeopleOpts) ([]models.Person, error)
	Update(ctx context.Context, id int64, req models.UpdatePersonRequest) (*models.Person, error)
	Delete(ctx context.Context, id int64) error
}

// LogService defines audit log operations used by LogHandler.
type LogService interface {
	List(ctx context.Context) ([]models.LogEntry, error)
}

// CSVService defines CSV import/export operations used by CSVHandler.
type CSVService interface {
	Ingest(ctx context.Context, r io.Reader) (int, error)
	Export(ctx context.Context, ids []int64) ([]byte, error)
}
