package driven

import (
	"context"

	"github.com/ericfisherdev/potcatalog/internal/domain/model"
)

// PotJournal defines the driven port for recording catalog mutations.
// The catalog calls Record after every successful Add or Remove; the journal
// is never used to rebuild the catalog.
type PotJournal interface {
	Record(ctx context.Context, entry model.JournalEntry) error
	Recent(ctx context.Context, limit int) ([]model.JournalEntry, error)
}
