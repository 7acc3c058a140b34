package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/ericfisherdev/potcatalog/internal/domain/model"
)

// EmptyPlaceholder is rendered instead of an empty list.
const EmptyPlaceholder = "No pots catalogued yet."

// Labels for the two choices of the removal confirmation.
const (
	RemovalCancelLabel  = "Cancel"
	RemovalConfirmLabel = "Remove"
)

// ErrNoPendingRemoval is returned when a removal prompt is answered twice.
var ErrNoPendingRemoval = errors.New("no removal pending")

// Row is the display form of a single pot.
type Row struct {
	ID         string
	Name       string
	Location   string
	Flowers    string
	HasFlowers bool
}

// ListView is what a UI renders for the catalog: either Rows, or the
// Placeholder when Empty is true.
type ListView struct {
	Rows        []Row
	Empty       bool
	Placeholder string
}

// ListPresenter maps the catalog to rows and drives per-row removal.
type ListPresenter struct {
	catalog *CatalogService
}

// NewListPresenter creates a presenter over catalog.
func NewListPresenter(catalog *CatalogService) *ListPresenter {
	return &ListPresenter{catalog: catalog}
}

// Present renders the current catalog, newest first.
func (p *ListPresenter) Present(ctx context.Context) ListView {
	pots := p.catalog.List(ctx)
	if len(pots) == 0 {
		return ListView{Rows: []Row{}, Empty: true, Placeholder: EmptyPlaceholder}
	}

	rows := make([]Row, 0, len(pots))
	for _, pot := range pots {
		rows = append(rows, toRow(pot))
	}
	return ListView{Rows: rows}
}

func toRow(pot model.PotRecord) Row {
	return Row{
		ID:         pot.ID,
		Name:       pot.Name,
		Location:   pot.Location,
		Flowers:    pot.FlowerList(),
		HasFlowers: len(pot.Flowers) > 0,
	}
}

// RemovalState is the state of a single removal attempt.
type RemovalState int

const (
	// RemovalIdle means no confirmation is outstanding.
	RemovalIdle RemovalState = iota
	// RemovalConfirmationPending means the user has not answered yet.
	RemovalConfirmationPending
)

// String returns a human-readable name for the state.
func (s RemovalState) String() string {
	switch s {
	case RemovalIdle:
		return "idle"
	case RemovalConfirmationPending:
		return "confirmation_pending"
	default:
		return "unknown"
	}
}

// RemovalOutcome is how a removal attempt ended.
type RemovalOutcome int

const (
	RemovalUnanswered RemovalOutcome = iota
	RemovalCancelled
	RemovalRemoved
)

// String returns a human-readable name for the outcome.
func (o RemovalOutcome) String() string {
	switch o {
	case RemovalUnanswered:
		return "unanswered"
	case RemovalCancelled:
		return "cancelled"
	case RemovalRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// RemovalPrompt is one removal attempt awaiting confirmation. It moves from
// ConfirmationPending back to Idle exactly once, via Cancel or Confirm.
type RemovalPrompt struct {
	catalog *CatalogService
	potID   string
	potName string

	state   RemovalState
	outcome RemovalOutcome
}

// BeginRemoval opens a confirmation for the pot with the given id. The id
// need not exist; confirming an unknown id removes nothing.
func (p *ListPresenter) BeginRemoval(ctx context.Context, id string) *RemovalPrompt {
	name := ""
	if pot, ok := p.catalog.Get(ctx, id); ok {
		name = pot.Name
	}
	return &RemovalPrompt{
		catalog: p.catalog,
		potID:   id,
		potName: name,
		state:   RemovalConfirmationPending,
	}
}

// PotID returns the id the prompt would remove.
func (r *RemovalPrompt) PotID() string { return r.potID }

// State returns the current state.
func (r *RemovalPrompt) State() RemovalState { return r.state }

// Outcome returns how the prompt was answered.
func (r *RemovalPrompt) Outcome() RemovalOutcome { return r.outcome }

// Title is the confirmation heading.
func (r *RemovalPrompt) Title() string { return "Remove pot" }

// Message asks the user to confirm.
func (r *RemovalPrompt) Message() string {
	if r.potName == "" {
		return "Remove this pot from the catalog?"
	}
	return fmt.Sprintf("Remove %q from the catalog?", r.potName)
}

// Cancel dismisses the prompt without touching the catalog.
func (r *RemovalPrompt) Cancel() error {
	if r.state != RemovalConfirmationPending {
		return ErrNoPendingRemoval
	}
	r.state = RemovalIdle
	r.outcome = RemovalCancelled
	return nil
}

// Confirm removes the pot and returns whether a record was deleted.
func (r *RemovalPrompt) Confirm(ctx context.Context) (bool, error) {
	if r.state != RemovalConfirmationPending {
		return false, ErrNoPendingRemoval
	}
	removed := r.catalog.Remove(ctx, r.potID)
	r.state = RemovalIdle
	r.outcome = RemovalRemoved
	return removed, nil
}
