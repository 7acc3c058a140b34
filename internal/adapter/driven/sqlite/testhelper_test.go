package sqlite

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// newMemoryDB opens a migrated in-memory journal database private to t.
// Reader and writer see the same data through cache=shared; the name keeps
// tests from seeing each other's rows.
func newMemoryDB(t *testing.T) *DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)", name)

	db, err := open(context.Background(), dsn, ":memory:")
	require.NoError(t, err, "open journal db")
	t.Cleanup(func() { _ = db.Close() })

	_, err = RunMigrations(db.Writer)
	require.NoError(t, err, "migrate journal db")

	return db
}

// newTestJournal returns a JournalRepo over a fresh in-memory database.
func newTestJournal(t *testing.T) *JournalRepo {
	t.Helper()
	return NewJournalRepo(newMemoryDB(t))
}
