package application_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/ericfisherdev/potcatalog/internal/application"
	"github.com/ericfisherdev/potcatalog/internal/domain/model"
	"github.com/ericfisherdev/potcatalog/internal/domain/port/driven"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// --- Mock implementations ---

type mockJournal struct {
	mu      sync.Mutex
	entries []model.JournalEntry
	err     error
}

func (m *mockJournal) Record(_ context.Context, entry model.JournalEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockJournal) Recent(_ context.Context, limit int) ([]model.JournalEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit > len(m.entries) {
		limit = len(m.entries)
	}
	return m.entries[len(m.entries)-limit:], nil
}

var errJournalDown = errors.New("journal down")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// sequentialIDs returns pot-1, pot-2, ... so tests can predict ids.
func sequentialIDs() driven.IDGenerator {
	var mu sync.Mutex
	n := 0
	return driven.IDGeneratorFunc(func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("pot-%d", n)
	})
}

var fixedNow = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

func newTestCatalog(t *testing.T, journal driven.PotJournal) *application.CatalogService {
	t.Helper()
	return application.NewCatalogService(journal, discardLogger(),
		application.WithIDGenerator(sequentialIDs()),
		application.WithClock(func() time.Time { return fixedNow }),
	)
}
