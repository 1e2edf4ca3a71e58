package store

import (
	"errors"

	"github.com/fjod/mycogrow/storefront-service/internal/domain"
)

// Common errors returned by the store
var (
	ErrUnknownProduct  = errors.New("unknown product")
	ErrInvalidQuantity = errors.New("quantity would overflow the cart total")
)

// ProductLookup resolves catalog products by id.
// Consumers define this interface, not the catalog.
type ProductLookup interface {
	Get(id int64) (domain.Product, bool)
}

// CartStore defines the shopping cart operations for one session
type CartStore interface {
	// AddItem adds one unit of the product, merging into an existing line
	AddItem(productID int64) error

	// SetQuantity replaces the quantity of an existing line.
	// A quantity below 1 removes the line instead of clamping.
	// Returns ErrInvalidQuantity when the cart total would overflow.
	SetQuantity(productID int64, quantity int) error

	// RemoveItem deletes the line for productID; absent lines are ignored
	RemoveItem(productID int64)

	// Clear empties the cart
	Clear()

	// Lines returns the cart lines in insertion order
	Lines() []domain.CartLine

	// Items returns the lines joined with product data
	Items() []domain.CartItem

	// Total is the sum of price x quantity over all lines
	Total() int64

	// ItemCount is the sum of quantities over all lines
	ItemCount() int
}
