package store

import (
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/fjod/mycogrow/storefront-service/internal/domain"
)

// MemoryCartStore implements CartStore with in-memory storage
type MemoryCartStore struct {
	mu       sync.RWMutex
	products ProductLookup
	lines    []domain.CartLine // insertion order, at most one line per product
}

// NewMemoryCartStore creates an empty cart backed by the given catalog
func NewMemoryCartStore(products ProductLookup) *MemoryCartStore {
	return &MemoryCartStore{products: products}
}

func (s *MemoryCartStore) AddItem(productID int64) error {
	if _, ok := s.products.Get(productID); !ok {
		return fmt.Errorf("%w: %d", ErrUnknownProduct, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(productID); i >= 0 {
		if err := s.checkQuantity(i, s.lines[i].Quantity+1); err != nil {
			return err
		}
		s.lines[i].Quantity++
		return nil
	}
	s.lines = append(s.lines, domain.CartLine{ProductID: productID, Quantity: 1})
	if err := s.checkQuantity(len(s.lines)-1, 1); err != nil {
		s.lines = s.lines[:len(s.lines)-1]
		return err
	}
	return nil
}

func (s *MemoryCartStore) SetQuantity(productID int64, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return fmt.Errorf("%w: %d not in cart", ErrUnknownProduct, productID)
	}

	if quantity < 1 {
		s.lines = slices.Delete(s.lines, i, i+1)
		return nil
	}
	if err := s.checkQuantity(i, quantity); err != nil {
		return err
	}
	s.lines[i].Quantity = quantity
	return nil
}

func (s *MemoryCartStore) RemoveItem(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(productID); i >= 0 {
		s.lines = slices.Delete(s.lines, i, i+1)
	}
}

func (s *MemoryCartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
}

func (s *MemoryCartStore) Lines() []domain.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.lines)
}

func (s *MemoryCartStore) Items() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.CartItem, 0, len(s.lines))
	for _, line := range s.lines {
		p, _ := s.products.Get(line.ProductID)
		items = append(items, domain.CartItem{
			ProductID: line.ProductID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  line.Quantity,
			Subtotal:  p.Price * int64(line.Quantity),
		})
	}
	return items
}

// Total is recomputed from the catalog on every call.
func (s *MemoryCartStore) Total() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, line := range s.lines {
		p, _ := s.products.Get(line.ProductID)
		total += p.Price * int64(line.Quantity)
	}
	return total
}

func (s *MemoryCartStore) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// checkQuantity rejects setting line i to quantity when the cart total would
// no longer fit in an int64. Must be called with s.mu held.
func (s *MemoryCartStore) checkQuantity(i, quantity int) error {
	var total int64
	for j, line := range s.lines {
		q := int64(line.Quantity)
		if j == i {
			q = int64(quantity)
		}
		p, _ := s.products.Get(line.ProductID)
		if p.Price > 0 && q > math.MaxInt64/p.Price {
			return fmt.Errorf("%w: %d of product %d", ErrInvalidQuantity, quantity, s.lines[i].ProductID)
		}
		sub := p.Price * q
		if total > math.MaxInt64-sub {
			return fmt.Errorf("%w: %d of product %d", ErrInvalidQuantity, quantity, s.lines[i].ProductID)
		}
		total += sub
	}
	return nil
}

// indexOf must be called with s.mu held.
func (s *MemoryCartStore) indexOf(productID int64) int {
	return slices.IndexFunc(s.lines, func(l domain.CartLine) bool {
		return l.ProductID == productID
	})
}
