package testimonials

import (
	"fmt"
	"path/filepath"
	"sensus-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(n int) []models.Testimonial {
	out := make([]models.Testimonial, n)
	for i := range out {
		out[i] = models.Testimonial{ID: fmt.Sprintf("t%d", i), Author: "a", Quote: "q"}
	}
	return out
}

func TestNewCarousel_Empty(t *testing.T) {
	_, err := NewCarousel(nil, 0)
	assert.ErrorIs(t, err, ErrEmptyCarousel)
}

func TestNewCarousel_NormalisesIndex(t *testing.T) {
	for _, tc := range []struct{ in, want int }{{0, 0}, {2, 2}, {3, 0}, {7, 1}, {-1, 2}, {-4, 2}} {
		carousel, err := NewCarousel(items(3), tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, carousel.Index(), "index %d", tc.in)
	}
}

func TestCarousel_WrapsBothDirections(t *testing.T) {
	carousel, err := NewCarousel(items(3), 0)
	require.NoError(t, err)

	assert.Equal(t, "t2", carousel.Prev().Current().ID)
	assert.Equal(t, "t1", carousel.Next().Current().ID)
	assert.Equal(t, "t0", carousel.Next().Next().Next().Current().ID)
	assert.Equal(t, "t0", carousel.Prev().Next().Current().ID)

	// Moving returns a copy.
	assert.Equal(t, 0, carousel.Index())
}

func TestCarousel_SingleItem(t *testing.T) {
	carousel, err := NewCarousel(items(1), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, carousel.Next().Index())
	assert.Equal(t, 0, carousel.Prev().Index())
}

func TestLoadTestimonials_ShippedFile(t *testing.T) {
	loaded, err := LoadTestimonials(filepath.Join("..", "..", "..", "..", "..", "configs", "testimonials.yaml"))
	require.NoError(t, err)
	assert.Len(t, loaded, 3)
}
