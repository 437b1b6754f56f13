package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"concert-ticketing-platform/internal/models"
	"concert-ticketing-platform/internal/services"
)

type CatalogHandler struct {
	catalog *services.CatalogService
}

func NewCatalogHandler(catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListConcerts handles GET /api/concerts?genre=&search=
func (h *CatalogHandler) ListConcerts(w http.ResponseWriter, r *http.Request) {
	genre := r.URL.Query().Get("genre")
	search := r.URL.Query().Get("search")

	concerts, err := h.catalog.ListConcerts(r.Context(), genre, search)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"concerts": concerts,
		"count":    len(concerts),
	})
}

// GetConcert handles GET /api/concerts/{id}
func (h *CatalogHandler) GetConcert(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, models.ErrConcertNotFound)
		return
	}

	concert, err := h.catalog.GetConcert(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, concert)
}

// ListGenres handles GET /api/genres
func (h *CatalogHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.catalog.ListGenres(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"genres": genres})
}
