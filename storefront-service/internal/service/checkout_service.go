package service

import (
	"github.com/fjod/mycogrow/pkg/logger"
	"github.com/fjod/mycogrow/storefront-service/internal/domain"
	"github.com/fjod/mycogrow/storefront-service/internal/store"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

type CheckoutService interface {
	Checkout() *domain.Receipt
}

// CheckoutServiceImpl is the checkout stub. It always succeeds; this is where
// a payment or order service would be called.
type CheckoutServiceImpl struct {
	cart  store.CartStore
	clock clockwork.Clock
	log   *zap.Logger
}

func NewCheckoutService(cart store.CartStore, clock clockwork.Clock, log *zap.Logger) *CheckoutServiceImpl {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &CheckoutServiceImpl{cart: cart, clock: clock, log: logger.OrNop(log)}
}

// Checkout reports the current cart as a completed order, then clears it.
func (s *CheckoutServiceImpl) Checkout() *domain.Receipt {
	receipt := &domain.Receipt{
		ID:          uuid.New().String(),
		Items:       s.cart.Items(),
		ItemCount:   s.cart.ItemCount(),
		Total:       s.cart.Total(),
		CompletedAt: s.clock.Now(),
	}

	s.cart.Clear()

	s.log.Info("checkout completed",
		zap.String("receipt_id", receipt.ID),
		zap.Int64("total", receipt.Total),
		zap.Int("item_count", receipt.ItemCount),
	)
	return receipt
}
