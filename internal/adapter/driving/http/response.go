package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ericfisherdev/potcatalog/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body. Fields lists the
// offending input fields for validation errors.
type errorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// AddPotRequest is the JSON request body for adding a pot. Flowers is the raw
// comma-separated list, exactly as typed into the form.
type AddPotRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Flowers  string `json:"flowers"`
}

// PotResponse is the JSON representation of a pot record.
type PotResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Location  string   `json:"location"`
	Flowers   []string `json:"flowers"`
	CreatedAt string   `json:"created_at"`
}

// JournalEntryResponse is the JSON representation of a journal entry.
type JournalEntryResponse struct {
	ID         int64    `json:"id"`
	Action     string   `json:"action"`
	PotID      string   `json:"pot_id"`
	Name       string   `json:"name"`
	Location   string   `json:"location"`
	Flowers    []string `json:"flowers"`
	RecordedAt string   `json:"recorded_at"`
}

// HealthResponse is the JSON response for the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Pots   int    `json:"pots"`
	Time   string `json:"time"`
}

// toPotResponse converts a domain PotRecord to its JSON response representation.
func toPotResponse(p model.PotRecord) PotResponse {
	flowers := p.Flowers
	if flowers == nil {
		flowers = []string{}
	}
	return PotResponse{
		ID:        p.ID,
		Name:      p.Name,
		Location:  p.Location,
		Flowers:   flowers,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// toJournalEntryResponse converts a domain JournalEntry to its JSON representation.
func toJournalEntryResponse(e model.JournalEntry) JournalEntryResponse {
	flowers := e.Flowers
	if flowers == nil {
		flowers = []string{}
	}
	return JournalEntryResponse{
		ID:         e.ID,
		Action:     string(e.Action),
		PotID:      e.PotID,
		Name:       e.Name,
		Location:   e.Location,
		Flowers:    flowers,
		RecordedAt: e.RecordedAt.UTC().Format(time.RFC3339),
	}
}
