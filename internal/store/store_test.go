package store_test

import (
	"context"
	"os"
	"strconv"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/registrohq/registro/internal/db"
	"github.com/registrohq/registro/internal/db/migrations"
	"github.com/registrohq/registro/internal/dbpool"
	"github.com/registrohq/registro/internal/models"
	"github.com/registrohq/registro/internal/store"
)

// testEnv holds shared test infrastructure (single pool across all tests).
type testEnv struct {
	pool *dbpool.Pool
	log  *logrus.Logger
}

var sharedEnv *testEnv

func getTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if sharedEnv != nil {
		return sharedEnv
	}

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()

	pool, err := dbpool.NewPool(ctx, dbURL)
	if err != nil {
		t.Fatalf("connecting to test DB: %v", err)
	}

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	if err := db.RunMigrations(ctx, pool, log, migrations.FS); err != nil {
		t.Fatalf("migrating test DB: %v", err)
	}

	sharedEnv = &testEnv{
		pool: pool,
		log:  log,
	}

	return sharedEnv
}

// setupTestStores empties both tables and returns fresh stores. Sequences are
// deliberately not restarted so generated ids stay unique across tests.
func setupTestStores(t *testing.T) (*store.PersonStore, *store.LogStore) {
	t.Helper()

	env := getTestEnv(t)
	ctx := context.Background()

	if _, err := env.pool.Exec(ctx, "TRUNCATE people, logs"); err != nil {
		t.Fatalf("truncating tables: %v", err)
	}

	base := store.Base{Pool: env.pool, Log: env.log}

	return store.NewPersonStore(base), store.NewLogStore(base)
}

// formatID renders an id the way it arrives in a query string.
func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// newCreateRequest builds a valid create request for tests.
func newCreateRequest(t *testing.T, name string) models.CreatePersonRequest {
	t.Helper()

	bd, err := models.ParseDate("1990-05-20")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}

	return models.CreatePersonRequest{
		Name:        name,
		Birthdate:   &bd,
		Gender:      "female",
		Nationality: "brazilian",
	}
}
