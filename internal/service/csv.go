package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/registrohq/registro/internal/models"
)

// csvHeader is the fixed column layout of import and export files. Column
// names are Portuguese for compatibility with the files the original service
// exchanged with its frontend.
var csvHeader = []string{
	"nome",
	"data_nascimento",
	"genero",
	"nacionalidade",
	"data_criacao",
	"data_atualizacao",
}

// Day-first layouts accepted on import, most specific first.
var (
	dayFirstDateTimeLayouts = []string{
		"02/01/2006 15:04:05",
		"02/01/2006 15:04",
		"02/01/2006",
	}
	dayFirstDateLayout = "02/01/2006"
)

// Timestamp layout written on export (date-times, not calendar dates).
const exportTimeLayout = "2006-01-02 15:04:05"

// personCreator is the mutation path used for imported rows, so every row
// gets the same audit treatment as a single create.
type personCreator interface {
	Create(ctx context.Context, req models.CreatePersonRequest) (*models.Person, error)
}

// personFetcher resolves an id set to rows for export.
type personFetcher interface {
	ListPeopleByIDs(ctx context.Context, ids []int64) ([]models.Person, error)
}

// CSVService translates between person records and the external CSV layout.
type CSVService struct {
	people personCreator
	store  personFetcher
	log    *logrus.Logger
}

// NewCSVService creates a CSVService.
func NewCSVService(people personCreator, store personFetcher, log *logrus.Logger) *CSVService {
	return &CSVService{people: people, store: store, log: log}
}

// Ingest reads a CSV file and creates one person per row, in file order,
// passing the file's data_criacao/data_atualizacao through as the stored
// timestamps. Unparseable date values become nulls rather than failing the
// row; a row missing a required field aborts the batch (rows already created
// stay — there is no batch transaction). Returns the number of rows created.
func (s *CSVService) Ingest(ctx context.Context, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("%w: reading header: %v", models.ErrBadCSV, err)
	}

	cols, err := indexColumns(header)
	if err != nil {
		return 0, err
	}

	created := 0

	for rowNum := 2; ; rowNum++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return created, fmt.Errorf("%w: row %d: %v", models.ErrBadCSV, rowNum, err)
		}

		req := rowToCreateRequest(record, cols)

		if err := req.ValidateForImport(); err != nil {
			return created, fmt.Errorf("row %d: %w", rowNum, err)
		}

		if _, err := s.people.Create(ctx, req); err != nil {
			return created, fmt.Errorf("row %d: %w", rowNum, err)
		}

		created++
	}

	s.log.WithField("rows", created).Info("csv.ingest")

	return created, nil
}

// Export fetches the people whose id is in ids and renders them as CSV with
// the fixed Portuguese header, dropping the id column. Fails with
// ErrNoExportRows when nothing matches. Read-only: no audit entry.
func (s *CSVService) Export(ctx context.Context, ids []int64) ([]byte, error) {
	people, err := s.store.ListPeopleByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	if len(people) == 0 {
		return nil, models.ErrNoExportRows
	}

	var buf bytes.Buffer

	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("writing csv header: %w", err)
	}

	for _, p := range people {
		birthdate := ""
		if p.Birthdate != nil {
			birthdate = p.Birthdate.String()
		}

		row := []string{
			p.Name,
			birthdate,
			p.Gender,
			p.Nationality,
			p.CreatedAt.UTC().Format(exportTimeLayout),
			p.UpdatedAt.UTC().Format(exportTimeLayout),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("writing csv row: %w", err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}

	return buf.Bytes(), nil
}

// indexColumns maps each expected header name to its position in the file,
// so column order in the incoming file does not matter.
func indexColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}

	for _, name := range csvHeader {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", models.ErrBadCSV, name)
		}
	}

	return cols, nil
}

// rowToCreateRequest maps one CSV record onto a create request, tolerating
// unparseable dates by leaving the fields nil.
func rowToCreateRequest(record []string, cols map[string]int) models.CreatePersonRequest {
	return models.CreatePersonRequest{
		Name:        cell(record, cols, "nome"),
		Birthdate:   parseDayFirstDate(cell(record, cols, "data_nascimento")),
		Gender:      cell(record, cols, "genero"),
		Nationality: cell(record, cols, "nacionalidade"),
		CreatedAt:   parseDayFirstDateTime(cell(record, cols, "data_criacao")),
		UpdatedAt:   parseDayFirstDateTime(cell(record, cols, "data_atualizacao")),
	}
}

func cell(record []string, cols map[string]int, name string) string {
	i := cols[name]
	if i >= len(record) {
		return ""
	}

	return strings.TrimSpace(record[i])
}

// parseDayFirstDate parses a "31/12/2020" style date, returning nil when the
// value is empty or unparseable.
func parseDayFirstDate(s string) *models.Date {
	if s == "" {
		return nil
	}

	t, err := time.Parse(dayFirstDateLayout, s)
	if err != nil {
		return nil
	}

	d := models.NewDate(t)

	return &d
}

// parseDayFirstDateTime parses a day-first date-time, trying layouts from
// most to least specific, returning nil when the value is empty or
// unparseable.
func parseDayFirstDateTime(s string) *time.Time {
	if s == "" {
		return nil
	}

	for _, layout := range dayFirstDateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}

	return nil
}
