package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"concert-ticketing-platform/internal/middleware"
	"concert-ticketing-platform/internal/models"
	"concert-ticketing-platform/internal/services"
)

type OrderHandler struct {
	orders *services.OrderService
}

func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	orders, err := h.orders.ListOrders(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"orders": orders,
		"count":  len(orders),
	})
}

// GetOrder handles GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, models.ErrOrderNotFound)
		return
	}

	order, err := h.orders.GetOrder(user.ID, orderID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// GetConfirmation handles GET /api/orders/{id}/confirmation
func (h *OrderHandler) GetConfirmation(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, models.ErrOrderNotFound)
		return
	}

	confirmation, err := h.orders.Confirmation(user.ID, orderID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, confirmation)
}

// ListTickets handles GET /api/tickets
func (h *OrderHandler) ListTickets(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	tickets, err := h.orders.ListTickets(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tickets": tickets,
		"count":   len(tickets),
	})
}

// GetTicket handles GET /api/tickets/{id}
func (h *OrderHandler) GetTicket(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	ticketID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, models.ErrTicketNotFound)
		return
	}

	ticket, err := h.orders.GetTicket(user.ID, ticketID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ticket)
}
