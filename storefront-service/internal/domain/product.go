package domain

// Product is a purchasable catalog item. Prices are whole currency units.
type Product struct {
	ID          int64    `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Weight      string   `json:"weight" yaml:"weight"`
	Description string   `json:"description" yaml:"description"`
	Price       int64    `json:"price" yaml:"price"`
	ImageURL    string   `json:"image_url" yaml:"image_url"`
	Features    []string `json:"features" yaml:"features"`
}
