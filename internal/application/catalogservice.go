package application

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ericfisherdev/potcatalog/internal/domain/model"
	"github.com/ericfisherdev/potcatalog/internal/domain/port/driven"
)

// CatalogService owns the in-memory pot catalog. Records are kept newest
// first; Add prepends and Remove deletes by id. It is safe for concurrent
// use so the HTTP adapters can share one instance. The size gauge and the
// journal are updated under the same lock as the slice.
type CatalogService struct {
	mu   sync.RWMutex
	pots []model.PotRecord

	ids     driven.IDGenerator
	now     func() time.Time
	journal driven.PotJournal
	logger  *slog.Logger
}

// CatalogOption customizes a CatalogService.
type CatalogOption func(*CatalogService)

// WithIDGenerator replaces the default UUIDv4 id generator.
func WithIDGenerator(ids driven.IDGenerator) CatalogOption {
	return func(s *CatalogService) { s.ids = ids }
}

// WithClock replaces time.Now for CreatedAt and journal timestamps.
func WithClock(now func() time.Time) CatalogOption {
	return func(s *CatalogService) { s.now = now }
}

// NewCatalogService creates an empty catalog. journal may be nil, in which
// case mutations are not recorded anywhere.
func NewCatalogService(journal driven.PotJournal, logger *slog.Logger, opts ...CatalogOption) *CatalogService {
	s := &CatalogService{
		pots:    []model.PotRecord{},
		ids:     driven.IDGeneratorFunc(uuid.NewString),
		now:     time.Now,
		journal: journal,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add validates the input, assigns a fresh id and prepends the new record.
// It returns a *model.ValidationError without mutating anything when name or
// location is blank.
func (s *CatalogService) Add(ctx context.Context, name, location, flowersRaw string) (model.PotRecord, error) {
	pot, err := model.NewPotRecord(s.ids.NewID(), name, location, flowersRaw, s.now().UTC())
	if err != nil {
		validationFailuresTotal.Inc()
		return model.PotRecord{}, err
	}

	s.mu.Lock()
	s.pots = append([]model.PotRecord{pot}, s.pots...)
	catalogSize.Set(float64(len(s.pots)))
	s.record(ctx, model.JournalActionAdded, pot)
	s.mu.Unlock()

	potsAddedTotal.Inc()
	s.logger.Debug("pot added", "id", pot.ID, "name", pot.Name, "location", pot.Location, "flowers", len(pot.Flowers))
	return pot.Clone(), nil
}

// Remove deletes the record with the given id. Unknown ids are a no-op.
// The return value reports whether a record was removed.
func (s *CatalogService) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	removed := s.pots[idx]
	s.pots = append(s.pots[:idx:idx], s.pots[idx+1:]...)
	catalogSize.Set(float64(len(s.pots)))
	s.record(ctx, model.JournalActionRemoved, removed)
	s.mu.Unlock()

	potsRemovedTotal.Inc()
	s.logger.Debug("pot removed", "id", id, "name", removed.Name)
	return true
}

// List returns a snapshot of the catalog, newest first. The caller owns the
// returned slice.
func (s *CatalogService) List(_ context.Context) []model.PotRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.PotRecord, 0, len(s.pots))
	for _, p := range s.pots {
		out = append(out, p.Clone())
	}
	return out
}

// Get returns the record with the given id, if present.
func (s *CatalogService) Get(_ context.Context, id string) (model.PotRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return model.PotRecord{}, false
	}
	return s.pots[idx].Clone(), true
}

// Len returns the number of records in the catalog.
func (s *CatalogService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pots)
}

// indexOf must be called with s.mu held.
func (s *CatalogService) indexOf(id string) int {
	for i := range s.pots {
		if s.pots[i].ID == id {
			return i
		}
	}
	return -1
}

// record writes a journal entry. It runs with s.mu held so the journal sees
// mutations in the order they were applied. Failures are logged and counted;
// they never undo or fail the mutation.
func (s *CatalogService) record(ctx context.Context, action model.JournalAction, pot model.PotRecord) {
	if s.journal == nil {
		return
	}
	entry := model.NewJournalEntry(action, pot, s.now().UTC())
	if err := s.journal.Record(ctx, entry); err != nil {
		journalFailuresTotal.WithLabelValues(string(action)).Inc()
		s.logger.Error("failed to record journal entry", "action", action, "pot_id", pot.ID, "error", err)
	}
}
