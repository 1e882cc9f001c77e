package testimonials

import (
	"errors"
	"sensus-service/internal/app/models"
)

var ErrEmptyCarousel = errors.New("carousel has no testimonials")

// Carousel is a cursor over a fixed list of testimonials that wraps around in
// both directions. It is a value type; moving returns a new Carousel.
type Carousel struct {
	items []models.Testimonial
	index int
}

// NewCarousel positions a carousel at index, normalised into range.
func NewCarousel(items []models.Testimonial, index int) (Carousel, error) {
	if len(items) == 0 {
		return Carousel{}, ErrEmptyCarousel
	}
	n := len(items)
	return Carousel{items: items, index: ((index % n) + n) % n}, nil
}

func (c Carousel) Current() models.Testimonial {
	return c.items[c.index]
}

func (c Carousel) Next() Carousel {
	c.index = (c.index + 1) % len(c.items)
	return c
}

func (c Carousel) Prev() Carousel {
	c.index = (c.index - 1 + len(c.items)) % len(c.items)
	return c
}

func (c Carousel) Index() int {
	return c.index
}

func (c Carousel) Len() int {
	return len(c.items)
}
