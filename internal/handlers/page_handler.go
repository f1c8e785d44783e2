package handlers

import (
	"html/template"
	"net/http"
)

// PageHandler serves the HTML pages
type PageHandler struct {
	templates *template.Template
}

// NewPageHandler creates a new page handler
func NewPageHandler(templates *template.Template) *PageHandler {
	return &PageHandler{templates: templates}
}

// Home serves the typing page
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	if err := h.templates.ExecuteTemplate(w, "index.tmpl", nil); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error rendering index", err)
	}
}

// Dashboard serves the mood history dashboard
func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if err := h.templates.ExecuteTemplate(w, "dashboard.tmpl", nil); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error rendering dashboard", err)
	}
}
