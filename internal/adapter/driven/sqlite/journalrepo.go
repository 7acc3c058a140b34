package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ericfisherdev/potcatalog/internal/domain/model"
	"github.com/ericfisherdev/potcatalog/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.PotJournal = (*JournalRepo)(nil)

// JournalRepo is the SQLite implementation of the PotJournal port interface.
type JournalRepo struct {
	db *DB
}

// NewJournalRepo creates a new JournalRepo backed by the given DB.
func NewJournalRepo(db *DB) *JournalRepo {
	return &JournalRepo{db: db}
}

// Record appends a mutation entry. Flowers are stored as a JSON array.
func (r *JournalRepo) Record(ctx context.Context, entry model.JournalEntry) error {
	const query = `INSERT INTO pot_journal (action, pot_id, name, location, flowers, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	flowers := entry.Flowers
	if flowers == nil {
		flowers = []string{}
	}
	flowersJSON, err := json.Marshal(flowers)
	if err != nil {
		return fmt.Errorf("marshal flowers for pot %s: %w", entry.PotID, err)
	}

	recordedAt := entry.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	_, err = r.db.Writer.ExecContext(ctx, query,
		string(entry.Action),
		entry.PotID,
		entry.Name,
		entry.Location,
		string(flowersJSON),
		recordedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record %s of pot %s: %w", entry.Action, entry.PotID, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first. A non-positive limit
// returns an empty slice.
func (r *JournalRepo) Recent(ctx context.Context, limit int) ([]model.JournalEntry, error) {
	result := []model.JournalEntry{}
	if limit <= 0 {
		return result, nil
	}

	const query = `SELECT id, action, pot_id, name, location, flowers, recorded_at
		FROM pot_journal ORDER BY id DESC LIMIT ?`
	rows, err := r.db.Reader.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entry       model.JournalEntry
			action      string
			flowersJSON string
			recordedAt  string
		)
		if err := rows.Scan(&entry.ID, &action, &entry.PotID, &entry.Name, &entry.Location, &flowersJSON, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		entry.Action = model.JournalAction(action)
		if err := json.Unmarshal([]byte(flowersJSON), &entry.Flowers); err != nil {
			return nil, fmt.Errorf("unmarshal flowers for entry %d: %w", entry.ID, err)
		}
		entry.RecordedAt, err = parseTime(recordedAt)
		if err != nil {
			return nil, fmt.Errorf("parse recorded_at for entry %d: %w", entry.ID, err)
		}
		result = append(result, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal entries: %w", err)
	}
	return result, nil
}

// parseTime accepts the layouts SQLite and this package write.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format: %q", s)
}
