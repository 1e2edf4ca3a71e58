package domain

// Testimonial is a customer quote shown in the carousel.
type Testimonial struct {
	ID     int64  `json:"id" yaml:"id"`
	Author string `json:"author" yaml:"author"`
	Role   string `json:"role" yaml:"role"`
	Text   string `json:"text" yaml:"text"`
	Rating int    `json:"rating" yaml:"rating"`
}

// MaxRating is the highest score a testimonial can carry.
const MaxRating = 5
