package web

import (
	"io/fs"
	"net/http"
)

// RegisterRoutes mounts the catalog page, its form actions and the embedded
// stylesheet on mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	assets, err := fs.Sub(StaticFS, "static")
	if err != nil {
		panic("web: static assets missing from binary: " + err.Error())
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(assets)))

	mux.HandleFunc("GET /{$}", h.Catalog)
	mux.HandleFunc("POST /pots", h.SubmitPot)
	mux.HandleFunc("GET /pots/{id}/remove", h.ConfirmRemoval)
	mux.HandleFunc("POST /pots/{id}/remove", h.AnswerRemoval)
}
