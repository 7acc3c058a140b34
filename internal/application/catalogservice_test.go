package application_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/potcatalog/internal/application"
	"github.com/ericfisherdev/potcatalog/internal/domain/model"
)

func TestCatalogService_AddIncreasesLengthWithUniqueID(t *testing.T) {
	catalog := application.NewCatalogService(nil, discardLogger())
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := range 50 {
		pot, err := catalog.Add(ctx, "Vaso", "Sala", "Rosa")
		require.NoError(t, err)
		assert.NotEmpty(t, pot.ID)
		assert.False(t, seen[pot.ID], "duplicate id %s", pot.ID)
		seen[pot.ID] = true
		assert.Equal(t, i+1, catalog.Len())
	}
}

func TestCatalogService_AddRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name     string
		potName  string
		location string
		flowers  string
	}{
		{name: "missing name", potName: "", location: "Sala", flowers: "Rosa"},
		{name: "missing location", potName: "Vaso", location: "", flowers: "Rosa"},
		{name: "all empty", potName: "", location: "", flowers: ""},
		{name: "whitespace name", potName: "   ", location: "Sala", flowers: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			journal := &mockJournal{}
			catalog := newTestCatalog(t, journal)
			_, err := catalog.Add(context.Background(), "Existing", "Quarto", "")
			require.NoError(t, err)

			_, err = catalog.Add(context.Background(), tt.potName, tt.location, tt.flowers)

			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrMissingRequiredField))
			assert.Equal(t, 1, catalog.Len())
			assert.Len(t, journal.entries, 1)
		})
	}
}

func TestCatalogService_AddParsesFlowers(t *testing.T) {
	catalog := newTestCatalog(t, nil)

	pot, err := catalog.Add(context.Background(), "Vaso 1", "Sala", "Rosa, Lírio , , Tulipa")
	require.NoError(t, err)
	assert.Equal(t, []string{"Rosa", "Lírio", "Tulipa"}, pot.Flowers)

	empty, err := catalog.Add(context.Background(), "Vaso 1", "Sala", "")
	require.NoError(t, err)
	assert.Equal(t, []string{}, empty.Flowers)
}

func TestCatalogService_ListIsNewestFirst(t *testing.T) {
	catalog := newTestCatalog(t, nil)
	ctx := context.Background()

	a, err := catalog.Add(ctx, "A", "Sala", "")
	require.NoError(t, err)
	b, err := catalog.Add(ctx, "B", "Varanda", "Rosa")
	require.NoError(t, err)

	want := []model.PotRecord{b, a}
	if diff := cmp.Diff(want, catalog.List(ctx)); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalogService_ListReturnsSnapshot(t *testing.T) {
	catalog := newTestCatalog(t, nil)
	ctx := context.Background()
	_, err := catalog.Add(ctx, "A", "Sala", "Rosa")
	require.NoError(t, err)

	snapshot := catalog.List(ctx)
	snapshot[0].Name = "mutated"
	snapshot[0].Flowers[0] = "mutated"

	fresh := catalog.List(ctx)
	assert.Equal(t, "A", fresh[0].Name)
	assert.Equal(t, []string{"Rosa"}, fresh[0].Flowers)
}

func TestCatalogService_RemoveExisting(t *testing.T) {
	catalog := newTestCatalog(t, nil)
	ctx := context.Background()
	a, _ := catalog.Add(ctx, "A", "Sala", "")
	b, _ := catalog.Add(ctx, "B", "Sala", "")
	c, _ := catalog.Add(ctx, "C", "Sala", "")

	removed := catalog.Remove(ctx, b.ID)

	assert.True(t, removed)
	assert.Equal(t, 2, catalog.Len())
	if diff := cmp.Diff([]model.PotRecord{c, a}, catalog.List(ctx)); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
	_, ok := catalog.Get(ctx, b.ID)
	assert.False(t, ok)
}

func TestCatalogService_RemoveUnknownIsNoOp(t *testing.T) {
	catalog := newTestCatalog(t, nil)
	ctx := context.Background()
	_, _ = catalog.Add(ctx, "A", "Sala", "")

	removed := catalog.Remove(ctx, "does-not-exist")

	assert.False(t, removed)
	assert.Equal(t, 1, catalog.Len())
}

func TestCatalogService_RemoveTwiceIsIdempotent(t *testing.T) {
	catalog := newTestCatalog(t, nil)
	ctx := context.Background()
	a, _ := catalog.Add(ctx, "A", "Sala", "")
	b, _ := catalog.Add(ctx, "B", "Sala", "")

	assert.True(t, catalog.Remove(ctx, a.ID))
	afterFirst := catalog.List(ctx)
	assert.False(t, catalog.Remove(ctx, a.ID))

	assert.Equal(t, afterFirst, catalog.List(ctx))
	assert.Equal(t, []model.PotRecord{b}, catalog.List(ctx))
}

func TestCatalogService_RecordsJournalEntries(t *testing.T) {
	journal := &mockJournal{}
	catalog := newTestCatalog(t, journal)
	ctx := context.Background()

	pot, err := catalog.Add(ctx, "Orquídea", "Varanda", "Orquídea")
	require.NoError(t, err)
	catalog.Remove(ctx, pot.ID)
	catalog.Remove(ctx, pot.ID)

	require.Len(t, journal.entries, 2)
	assert.Equal(t, model.JournalActionAdded, journal.entries[0].Action)
	assert.Equal(t, model.JournalActionRemoved, journal.entries[1].Action)
	assert.Equal(t, pot.ID, journal.entries[1].PotID)
	assert.Equal(t, []string{"Orquídea"}, journal.entries[1].Flowers)
	assert.Equal(t, fixedNow, journal.entries[0].RecordedAt)
}

func TestCatalogService_JournalFailureDoesNotFailMutation(t *testing.T) {
	journal := &mockJournal{err: errJournalDown}
	catalog := newTestCatalog(t, journal)
	ctx := context.Background()

	pot, err := catalog.Add(ctx, "A", "Sala", "")
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.Len())

	assert.True(t, catalog.Remove(ctx, pot.ID))
	assert.Equal(t, 0, catalog.Len())
}

func TestCatalogService_ConcurrentAddRemove(t *testing.T) {
	catalog := application.NewCatalogService(nil, discardLogger())
	ctx := context.Background()

	const goroutines = 50
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()
			pot, err := catalog.Add(ctx, "Vaso", "Sala", "Rosa")
			assert.NoError(t, err)
			_ = catalog.List(ctx)
			catalog.Remove(ctx, pot.ID)
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, catalog.Len())
}

func TestCatalogService_JournalAndGaugeFollowMutationOrder(t *testing.T) {
	journal := &mockJournal{}
	catalog := application.NewCatalogService(journal, discardLogger())
	ctx := context.Background()

	const goroutines = 16
	ids := make(chan string, goroutines*2)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()
			kept, err := catalog.Add(ctx, "Vaso", "Sala", "Rosa")
			assert.NoError(t, err)
			ids <- kept.ID
			dropped, err := catalog.Add(ctx, "Vaso", "Varanda", "")
			assert.NoError(t, err)
			catalog.Remove(ctx, dropped.ID)
			// Race another goroutine for a pot it may or may not have removed yet.
			select {
			case id := <-ids:
				catalog.Remove(ctx, id)
			default:
			}
		}()
	}
	wg.Wait()

	// Replaying the journal must never remove an absent pot or add a present one.
	present := map[string]bool{}
	for i, e := range journal.entries {
		switch e.Action {
		case model.JournalActionAdded:
			require.False(t, present[e.PotID], "entry %d adds %s twice", i, e.PotID)
			present[e.PotID] = true
		case model.JournalActionRemoved:
			require.True(t, present[e.PotID], "entry %d removes absent %s", i, e.PotID)
			delete(present, e.PotID)
		}
	}
	assert.Len(t, present, catalog.Len())
	assert.Equal(t, float64(catalog.Len()), gaugeValue(t, "potcatalog_catalog_size"))
}

func gaugeValue(t *testing.T, name string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			require.NotEmpty(t, mf.GetMetric())
			return mf.GetMetric()[0].GetGauge().GetValue()
		}
	}
	t.Fatalf("metric %s not registered", name)
	return 0
}
