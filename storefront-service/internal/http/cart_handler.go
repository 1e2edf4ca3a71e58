package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/fjod/mycogrow/storefront-service/internal/domain"
	"github.com/go-chi/chi/v5"
)

type AddItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
}

type UpdateQuantityRequestDTO struct {
	Quantity *int `json:"quantity"`
}

type CartResponse struct {
	Lines        []domain.CartItem `json:"lines"`
	ItemCount    int               `json:"item_count"`
	Total        int64             `json:"total"`
	TotalDisplay string            `json:"total_display"`
}

type CheckoutResponse struct {
	Receipt      *domain.Receipt `json:"receipt"`
	TotalDisplay string          `json:"total_display"`
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		h.respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.cart.AddItem(req.ProductID); err != nil {
		h.handleError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, h.cartResponse())
}

// UpdateQuantity replaces a line's quantity; a quantity below 1 removes the line.
func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID, ok := h.productIDParam(w, r)
	if !ok {
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity == nil {
		h.respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity is required")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.cart.SetQuantity(productID, *req.Quantity); err != nil {
		h.handleError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := h.productIDParam(w, r)
	if !ok {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.cart.RemoveItem(productID)
	h.respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.cart.Clear()
	h.respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	receipt := h.checkout.Checkout()
	h.view.CloseCart()

	h.respondJSON(w, http.StatusOK, CheckoutResponse{
		Receipt:      receipt,
		TotalDisplay: h.money.Format(receipt.Total),
	})
}

// cartResponse must be called with h.mu held.
func (h *Handler) cartResponse() CartResponse {
	total := h.cart.Total()
	return CartResponse{
		Lines:        h.cart.Items(),
		ItemCount:    h.cart.ItemCount(),
		Total:        total,
		TotalDisplay: h.money.Format(total),
	}
}

func (h *Handler) productIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil || productID <= 0 {
		h.respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return 0, false
	}
	return productID, true
}
