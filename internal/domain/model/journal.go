package model

import "time"

// JournalAction identifies the catalog mutation a journal entry records.
type JournalAction string

const (
	JournalActionAdded   JournalAction = "added"
	JournalActionRemoved JournalAction = "removed"
)

// JournalEntry is one recorded catalog mutation. The journal is write-mostly
// and is never replayed into the catalog.
type JournalEntry struct {
	ID         int64
	Action     JournalAction
	PotID      string
	Name       string
	Location   string
	Flowers    []string
	RecordedAt time.Time
}

// NewJournalEntry builds an entry describing action applied to pot.
func NewJournalEntry(action JournalAction, pot PotRecord, at time.Time) JournalEntry {
	return JournalEntry{
		Action:     action,
		PotID:      pot.ID,
		Name:       pot.Name,
		Location:   pot.Location,
		Flowers:    pot.Clone().Flowers,
		RecordedAt: at,
	}
}
