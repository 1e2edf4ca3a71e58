package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/fjod/mycogrow/pkg/logger"
	"github.com/fjod/mycogrow/storefront-service/internal/carousel"
	"github.com/fjod/mycogrow/storefront-service/internal/domain"
	"github.com/fjod/mycogrow/storefront-service/internal/money"
	"github.com/fjod/mycogrow/storefront-service/internal/service"
	"github.com/fjod/mycogrow/storefront-service/internal/store"
	"github.com/fjod/mycogrow/storefront-service/internal/view"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type ProductLister interface {
	List() []domain.Product
}

type Carousel interface {
	Current() carousel.Slide
	Len() int
	Next() carousel.Slide
	Previous() carousel.Slide
	JumpTo(k int) (carousel.Slide, error)
}

// Handler serves the storefront state of a single session. Cart mutations
// and checkout are serialized so each request sees a consistent cart.
type Handler struct {
	mu       sync.Mutex
	products ProductLister
	cart     store.CartStore
	carousel Carousel
	checkout service.CheckoutService
	view     *view.State
	money    *money.Formatter
	log      *zap.Logger
}

type Deps struct {
	Products ProductLister
	Cart     store.CartStore
	Carousel Carousel
	Checkout service.CheckoutService
	View     *view.State
	Money    *money.Formatter
	Log      *zap.Logger
}

func NewHandler(d Deps) *Handler {
	return &Handler{
		products: d.Products,
		cart:     d.Cart,
		carousel: d.Carousel,
		checkout: d.Checkout,
		view:     d.View,
		money:    d.Money,
		log:      logger.OrNop(d.Log),
	}
}

// Routes builds the API router.
func (h *Handler) Routes(requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(RequestIDHeader)
	r.Use(RequestLogger(h.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", h.ListProducts)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.GetCart)
			r.Delete("/", h.ClearCart)
			r.Post("/items", h.AddItem)
			r.Put("/items/{product_id}", h.UpdateQuantity)
			r.Delete("/items/{product_id}", h.RemoveItem)
		})
		r.Post("/checkout", h.Checkout)

		r.Get("/risk", h.EstimateRisk)

		r.Route("/testimonials", func(r chi.Router) {
			r.Get("/current", h.CurrentTestimonial)
			r.Post("/next", h.NextTestimonial)
			r.Post("/previous", h.PreviousTestimonial)
			r.Post("/jump/{index}", h.JumpToTestimonial)
		})

		r.Route("/view", func(r chi.Router) {
			r.Get("/", h.GetView)
			r.Put("/tab", h.SetTab)
			r.Put("/metal-level", h.SetMetalLevel)
			r.Put("/team", h.SetTeamModal)
			r.Put("/cart", h.SetCartModal)
		})
	})

	return r
}
