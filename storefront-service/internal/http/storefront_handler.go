package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/fjod/mycogrow/storefront-service/internal/carousel"
	"github.com/fjod/mycogrow/storefront-service/internal/domain"
	"github.com/fjod/mycogrow/storefront-service/internal/risk"
	"github.com/fjod/mycogrow/storefront-service/internal/view"
	"github.com/go-chi/chi/v5"
)

type ProductResponse struct {
	domain.Product
	PriceDisplay string `json:"price_display"`
}

type TestimonialResponse struct {
	carousel.Slide
	Count int `json:"count"`
}

type ViewResponse struct {
	view.Snapshot
	Risk      domain.RiskTier `json:"risk"`
	CartCount int             `json:"cart_count"`
}

type SetTabRequestDTO struct {
	Tab view.Tab `json:"tab"`
}

type SetMetalLevelRequestDTO struct {
	Level *int `json:"level"`
}

type SetModalRequestDTO struct {
	Open bool `json:"open"`
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products := h.products.List()
	resp := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, ProductResponse{Product: p, PriceDisplay: h.money.Format(p.Price)})
	}
	h.respondJSON(w, http.StatusOK, resp)
}

// EstimateRisk classifies ?level=N, falling back to the simulator's current level.
func (h *Handler) EstimateRisk(w http.ResponseWriter, r *http.Request) {
	level := h.view.Snapshot().MetalLevel
	if raw := r.URL.Query().Get("level"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid_level", "level must be an integer")
			return
		}
		level = n
	}
	h.respondJSON(w, http.StatusOK, risk.Estimate(level))
}

func (h *Handler) CurrentTestimonial(w http.ResponseWriter, r *http.Request) {
	h.respondTestimonial(w, h.carousel.Current())
}

func (h *Handler) NextTestimonial(w http.ResponseWriter, r *http.Request) {
	h.respondTestimonial(w, h.carousel.Next())
}

func (h *Handler) PreviousTestimonial(w http.ResponseWriter, r *http.Request) {
	h.respondTestimonial(w, h.carousel.Previous())
}

func (h *Handler) JumpToTestimonial(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_index", "index must be an integer")
		return
	}

	slide, err := h.carousel.JumpTo(index)
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.respondTestimonial(w, slide)
}

func (h *Handler) respondTestimonial(w http.ResponseWriter, slide carousel.Slide) {
	h.respondJSON(w, http.StatusOK, TestimonialResponse{
		Slide: slide,
		Count: h.carousel.Len(),
	})
}

func (h *Handler) GetView(w http.ResponseWriter, r *http.Request) {
	h.respondView(w)
}

func (h *Handler) SetTab(w http.ResponseWriter, r *http.Request) {
	var req SetTabRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if err := h.view.SetTab(req.Tab); err != nil {
		h.handleError(w, err)
		return
	}
	h.respondView(w)
}

func (h *Handler) SetMetalLevel(w http.ResponseWriter, r *http.Request) {
	var req SetMetalLevelRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Level == nil {
		h.respondError(w, http.StatusBadRequest, "invalid_level", "level is required")
		return
	}
	h.view.SetMetalLevel(*req.Level)
	h.respondView(w)
}

func (h *Handler) SetTeamModal(w http.ResponseWriter, r *http.Request) {
	h.setModal(w, r, h.view.OpenTeam, h.view.CloseTeam)
}

func (h *Handler) SetCartModal(w http.ResponseWriter, r *http.Request) {
	h.setModal(w, r, h.view.OpenCart, h.view.CloseCart)
}

func (h *Handler) setModal(w http.ResponseWriter, r *http.Request, open, closeFn func()) {
	var req SetModalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Open {
		open()
	} else {
		closeFn()
	}
	h.respondView(w)
}

func (h *Handler) respondView(w http.ResponseWriter) {
	snap := h.view.Snapshot()
	h.respondJSON(w, http.StatusOK, ViewResponse{
		Snapshot:  snap,
		Risk:      risk.Estimate(snap.MetalLevel),
		CartCount: h.cart.ItemCount(),
	})
}
