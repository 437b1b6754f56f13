package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"concert-ticketing-platform/internal/models"
	"concert-ticketing-platform/internal/repositories"
	"concert-ticketing-platform/internal/services"
)

// AdminHandler exposes venue and concert management. Routes mounted
// under it must sit behind the admin middleware.
type AdminHandler struct {
	venues   *repositories.VenueRepository
	concerts *repositories.ConcertRepository
	catalog  *services.CatalogService
}

func NewAdminHandler(venues *repositories.VenueRepository, concerts *repositories.ConcertRepository, catalog *services.CatalogService) *AdminHandler {
	return &AdminHandler{venues: venues, concerts: concerts, catalog: catalog}
}

// ListVenues handles GET /api/admin/venues
func (h *AdminHandler) ListVenues(w http.ResponseWriter, r *http.Request) {
	venues, err := h.venues.List()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"venues": venues,
		"count":  len(venues),
	})
}

// GetVenue handles GET /api/admin/venues/{id}
func (h *AdminHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, models.ErrVenueNotFound)
		return
	}

	venue, err := h.venues.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, venue)
}

// CreateVenue handles POST /api/admin/venues
func (h *AdminHandler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	var req models.VenueCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, err)
		return
	}

	venue, err := h.venues.Create(&req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, venue)
}

// UpdateVenue handles PUT /api/admin/venues/{id}
func (h *AdminHandler) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, models.ErrVenueNotFound)
		return
	}

	var req models.VenueUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, err)
		return
	}

	venue, err := h.venues.Update(id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	h.catalog.Invalidate(r.Context())
	writeJSON(w, http.StatusOK, venue)
}

// DeactivateVenue handles DELETE /api/admin/venues/{id}
func (h *AdminHandler) DeactivateVenue(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, models.ErrVenueNotFound)
		return
	}

	if err := h.venues.Deactivate(id); err != nil {
		writeError(w, err)
		return
	}

	h.catalog.Invalidate(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// ListConcerts handles GET /api/admin/concerts, including inactive ones
func (h *AdminHandler) ListConcerts(w http.ResponseWriter, r *http.Request) {
	concerts, err := h.concerts.List(repositories.ConcertFilters{ActiveOnly: false})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"concerts": concerts,
		"count":    len(concerts),
	})
}

// CreateConcert handles POST /api/admin/concerts
func (h *AdminHandler) CreateConcert(w http.ResponseWriter, r *http.Request) {
	var req models.ConcertCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, err)
		return
	}

	concert, err := h.concerts.Create(&req)
	if err != nil {
		writeError(w, err)
		return
	}

	h.catalog.Invalidate(r.Context())
	writeJSON(w, http.StatusCreated, concert)
}

// UpdateConcert handles PUT /api/admin/concerts/{id}
func (h *AdminHandler) UpdateConcert(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, models.ErrConcertNotFound)
		return
	}

	var req models.ConcertUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, err)
		return
	}

	concert, err := h.concerts.Update(id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	h.catalog.Invalidate(r.Context())
	writeJSON(w, http.StatusOK, concert)
}

// DeactivateConcert handles DELETE /api/admin/concerts/{id}
func (h *AdminHandler) DeactivateConcert(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, models.ErrConcertNotFound)
		return
	}

	if err := h.concerts.Deactivate(id); err != nil {
		writeError(w, err)
		return
	}

	h.catalog.Invalidate(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
