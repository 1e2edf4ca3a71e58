package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/fjod/mycogrow/storefront-service/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seed []byte

var ErrInvalidSeed = errors.New("invalid catalog seed")

type seedFile struct {
	Products     []domain.Product     `yaml:"products"`
	Testimonials []domain.Testimonial `yaml:"testimonials"`
}

// Catalog is the read-only product and testimonial list fixed at startup.
type Catalog struct {
	products     []domain.Product
	byID         map[int64]int
	testimonials []domain.Testimonial
}

// Default returns the compiled-in catalog. It panics if the embedded seed is
// malformed, which can only happen through a bad build.
func Default() *Catalog {
	c, err := Load(seed)
	if err != nil {
		panic(err)
	}
	return c
}

// Load decodes and validates a YAML seed.
func Load(data []byte) (*Catalog, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}

	c := &Catalog{
		products:     f.Products,
		byID:         make(map[int64]int, len(f.Products)),
		testimonials: f.Testimonials,
	}

	for i, p := range f.Products {
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate product id %d", ErrInvalidSeed, p.ID)
		}
		if p.Price <= 0 {
			return nil, fmt.Errorf("%w: product %d has non-positive price %d", ErrInvalidSeed, p.ID, p.Price)
		}
		c.byID[p.ID] = i
	}

	seen := make(map[int64]struct{}, len(f.Testimonials))
	for _, t := range f.Testimonials {
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate testimonial id %d", ErrInvalidSeed, t.ID)
		}
		if t.Rating < 0 || t.Rating > domain.MaxRating {
			return nil, fmt.Errorf("%w: testimonial %d rating %d outside 0..%d", ErrInvalidSeed, t.ID, t.Rating, domain.MaxRating)
		}
		seen[t.ID] = struct{}{}
	}

	return c, nil
}

// List returns every product in catalog order.
func (c *Catalog) List() []domain.Product {
	out := make([]domain.Product, len(c.products))
	for i, p := range c.products {
		p.Features = append([]string(nil), p.Features...)
		out[i] = p
	}
	return out
}

// Get looks a product up by id.
func (c *Catalog) Get(id int64) (domain.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	p := c.products[i]
	p.Features = append([]string(nil), p.Features...)
	return p, true
}

// Testimonials returns the testimonial sequence in display order.
func (c *Catalog) Testimonials() []domain.Testimonial {
	return append([]domain.Testimonial(nil), c.testimonials...)
}
