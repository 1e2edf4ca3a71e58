package domain

import "time"

// Receipt is what the checkout stub reports back before the cart is cleared.
type Receipt struct {
	ID          string     `json:"id"`
	Items       []CartItem `json:"items"`
	ItemCount   int        `json:"item_count"`
	Total       int64      `json:"total"`
	CompletedAt time.Time  `json:"completed_at"`
}
