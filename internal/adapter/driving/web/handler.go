// Package web implements the HTML GUI driving adapter using templ components.
package web

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/ericfisherdev/potcatalog/internal/adapter/driving/web/templates"
	"github.com/ericfisherdev/potcatalog/internal/adapter/driving/web/templates/pages"
	vm "github.com/ericfisherdev/potcatalog/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/potcatalog/internal/application"
	"github.com/ericfisherdev/potcatalog/internal/domain/model"
)

const (
	pageTitle       = "Pot catalog"
	maxFormBytes    = 64 << 10
	decisionConfirm = "confirm"
)

// Handler is the web GUI driving adapter that serves HTML via templ components.
type Handler struct {
	catalog   *application.CatalogService
	presenter *application.ListPresenter
	helpHTML  string
	logger    *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(catalog *application.CatalogService, logger *slog.Logger) *Handler {
	return &Handler{
		catalog:   catalog,
		presenter: application.NewListPresenter(catalog),
		helpHTML:  HelpHTML(),
		logger:    logger,
	}
}

// Catalog renders the catalog page with an empty form.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, application.FormValues{}, "", nil)
}

// SubmitPot buffers the posted fields in a FormController and submits them.
// Success redirects back to the page with cleared inputs; a validation error
// re-renders the page with the input kept and the prompt shown.
func (h *Handler) SubmitPot(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	form := application.NewFormController(h.catalog, func(p model.PotRecord) {
		h.logger.Info("pot added", "id", p.ID, "name", p.Name)
	})
	for _, field := range []application.Field{application.FieldName, application.FieldLocation, application.FieldFlowers} {
		if err := form.UpdateField(field, r.PostFormValue(string(field))); err != nil {
			h.logger.Error("failed to buffer form field", "field", field, "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
	}

	if _, err := form.Submit(r.Context()); err != nil {
		if model.IsValidationError(err) {
			h.renderPage(w, r, http.StatusUnprocessableEntity, form.Values(), form.Prompt(), nil)
			return
		}
		h.logger.Error("failed to submit pot", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ConfirmRemoval renders the page with the removal confirmation open.
// Unknown ids redirect to the page without a dialog.
func (h *Handler) ConfirmRemoval(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := h.catalog.Get(r.Context(), id); !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	prompt := h.presenter.BeginRemoval(r.Context(), id)
	h.renderPage(w, r, http.StatusOK, application.FormValues{}, "", prompt)
}

// AnswerRemoval resolves a removal confirmation. Only decision=confirm
// removes; any other answer cancels.
func (h *Handler) AnswerRemoval(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	id := r.PathValue("id")
	prompt := h.presenter.BeginRemoval(r.Context(), id)

	var (
		removed bool
		err     error
	)
	if r.PostFormValue("decision") == decisionConfirm {
		removed, err = prompt.Confirm(r.Context())
	} else {
		err = prompt.Cancel()
	}
	if err != nil {
		h.logger.Error("failed to answer removal", "id", id, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("pot removal answered",
		"id", id,
		"outcome", prompt.Outcome().String(),
		"state", prompt.State().String(),
		"removed", removed,
	)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// parseForm limits and parses the POST body and checks the CSRF token,
// writing the error response itself when it returns false.
func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return false
	}
	if !validateCSRF(r) {
		h.logger.Warn("csrf validation failed", "path", r.URL.Path)
		http.Error(w, "forbidden", http.StatusForbidden)
		return false
	}
	return true
}

func (h *Handler) renderPage(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	values application.FormValues,
	prompt string,
	removal *application.RemovalPrompt,
) {
	page := vm.PageViewModel{
		Title:     pageTitle,
		CSRFToken: csrfToken(w, r),
		Form:      toFormViewModel(values, prompt),
		List:      toListViewModel(h.presenter.Present(r.Context())),
		HelpHTML:  h.helpHTML,
	}
	if removal != nil {
		page.Removal = toConfirmDialogViewModel(removal)
	}

	h.render(w, r, status, templates.Layout(pageTitle, pages.Catalog(page)))
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render page", "path", r.URL.Path, "error", err)
	}
}
