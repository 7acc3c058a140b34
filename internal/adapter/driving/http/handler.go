// Package httphandler implements the JSON REST API driving adapter.
package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ericfisherdev/potcatalog/internal/application"
	"github.com/ericfisherdev/potcatalog/internal/domain/model"
	"github.com/ericfisherdev/potcatalog/internal/domain/port/driven"
)

const (
	maxRequestBytes     = 64 << 10
	defaultJournalLimit = 50
	maxJournalLimit     = 500
)

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	catalog *application.CatalogService
	journal driven.PotJournal
	logger  *slog.Logger
}

// NewHandler creates a Handler with all required dependencies. journal may
// be nil when journaling is disabled.
func NewHandler(catalog *application.CatalogService, journal driven.PotJournal, logger *slog.Logger) *Handler {
	return &Handler{
		catalog: catalog,
		journal: journal,
		logger:  logger,
	}
}

// RegisterAPIRoutes registers all JSON API routes and the Prometheus metrics
// endpoint on the provided mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/pots", h.ListPots)
	mux.HandleFunc("POST /api/v1/pots", h.AddPot)
	mux.HandleFunc("GET /api/v1/pots/{id}", h.GetPot)
	mux.HandleFunc("DELETE /api/v1/pots/{id}", h.RemovePot)
	mux.HandleFunc("GET /api/v1/journal", h.ListJournal)
	mux.HandleFunc("GET /api/v1/health", h.Health)
	mux.Handle("GET /metrics", promhttp.Handler())
}

// ListPots returns the catalog, newest first.
func (h *Handler) ListPots(w http.ResponseWriter, r *http.Request) {
	pots := h.catalog.List(r.Context())

	resp := make([]PotResponse, 0, len(pots))
	for _, p := range pots {
		resp = append(resp, toPotResponse(p))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetPot returns a single pot by id.
func (h *Handler) GetPot(w http.ResponseWriter, r *http.Request) {
	pot, ok := h.catalog.Get(r.Context(), r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "pot not found")
		return
	}

	writeJSON(w, http.StatusOK, toPotResponse(pot))
}

// AddPot validates and adds a pot to the catalog.
func (h *Handler) AddPot(w http.ResponseWriter, r *http.Request) {
	var req AddPotRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pot, err := h.catalog.Add(r.Context(), req.Name, req.Location, req.Flowers)
	if err != nil {
		var ve *model.ValidationError
		if errors.As(err, &ve) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Fields: ve.Fields})
			return
		}
		h.logger.Error("failed to add pot", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, toPotResponse(pot))
}

// RemovePot removes a pot by id. Removing an unknown id is not an error, so
// this always answers 204.
func (h *Handler) RemovePot(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if removed := h.catalog.Remove(r.Context(), id); !removed {
		h.logger.Debug("remove of unknown pot ignored", "id", id)
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListJournal returns the most recent journal entries, newest first.
func (h *Handler) ListJournal(w http.ResponseWriter, r *http.Request) {
	limit := defaultJournalLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = min(parsed, maxJournalLimit)
	}

	resp := []JournalEntryResponse{}
	if h.journal == nil {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	entries, err := h.journal.Recent(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to list journal", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	for _, e := range entries {
		resp = append(resp, toJournalEntryResponse(e))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Pots:   h.catalog.Len(),
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}
