package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"concert-ticketing-platform/internal/middleware"
	"concert-ticketing-platform/internal/models"
	"concert-ticketing-platform/internal/services"
)

// Checkouter runs the checkout flow for a user's cart.
type Checkouter interface {
	Checkout(ctx context.Context, userID int, req *models.CheckoutRequest) (*models.Order, error)
}

type CartHandler struct {
	cart     *services.CartService
	checkout Checkouter
}

func NewCartHandler(cart *services.CartService, checkout Checkouter) *CartHandler {
	return &CartHandler{cart: cart, checkout: checkout}
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	summary, err := h.cart.GetCart(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var req models.AddToCartRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	summary, err := h.cart.AddItem(user.ID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// UpdateItem handles PUT /api/cart/items/{id}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	itemID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, models.ErrCartItemNotFound)
		return
	}

	var req models.UpdateCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, err)
		return
	}

	summary, err := h.cart.UpdateQuantity(user.ID, itemID, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// RemoveItem handles DELETE /api/cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	itemID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, models.ErrCartItemNotFound)
		return
	}

	summary, err := h.cart.RemoveItem(user.ID, itemID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// Checkout handles POST /api/checkout
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var req models.CheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	order, err := h.checkout.Checkout(r.Context(), user.ID, &req)
	if err != nil {
		// A payment failure still produced a pending order the customer
		// can retry against, so include it in the response.
		if order != nil {
			writeJSON(w, http.StatusPaymentRequired, map[string]interface{}{
				"error": err.Error(),
				"order": order,
			})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}
