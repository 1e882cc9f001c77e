package testimonials

import (
	"context"
	"os"
	"path/filepath"
	"sensus-service/internal/app/config"
	"sensus-service/internal/app/services/shared/redis/redistest"
	"sensus-service/internal/pkg/constvars"
	"sensus-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestTestimonialUsecase(n int) *testimonialUsecase {
	return &testimonialUsecase{
		Testimonials:    items(n),
		RedisRepository: redistest.NewMemoryRepository(),
		InternalConfig: &config.InternalConfig{
			App:         config.App{CarouselExpiredTimeInHours: 24},
			Testimonial: config.Testimonial{AutoAdvanceInterval: 5 * time.Second},
		},
		Log: zap.NewNop(),
	}
}

func TestTestimonialUsecase_NavigatesPerViewer(t *testing.T) {
	uc := newTestTestimonialUsecase(3)
	ctx := context.Background()

	current, err := uc.Current(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, 0, current.Index)
	assert.Equal(t, 3, current.Total)
	assert.Equal(t, 5, current.AutoAdvanceSeconds)

	next, err := uc.Next(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, "t1", next.ID)

	current, err = uc.Current(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, 1, current.Index)

	other, err := uc.Current(ctx, "v2")
	require.NoError(t, err)
	assert.Equal(t, 0, other.Index)

	previous, err := uc.Previous(ctx, "v2")
	require.NoError(t, err)
	assert.Equal(t, "t2", previous.ID)
}

func TestTestimonialUsecase_Empty(t *testing.T) {
	uc := newTestTestimonialUsecase(0)

	_, err := uc.Next(context.Background(), "v1")
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}

func TestTestimonialUsecase_StaleIndexIsNormalised(t *testing.T) {
	uc := newTestTestimonialUsecase(2)
	ctx := context.Background()
	require.NoError(t, uc.RedisRepository.Set(ctx, carouselKey("v1"), 9, time.Hour))

	current, err := uc.Current(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, 1, current.Index)
}

func TestLoadTestimonials(t *testing.T) {
	dir := t.TempDir()

	t.Run("default set", func(t *testing.T) {
		loaded, err := LoadTestimonials("")
		require.NoError(t, err)
		assert.Len(t, loaded, len(DefaultTestimonials()))
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(dir, "ok.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
testimonials:
  - author: Ana
    quote: "  Helpful.  "
  - id: custom
    author: Luis
    role: Nurse
    quote: Calm.
`), 0o600))

		loaded, err := LoadTestimonials(path)
		require.NoError(t, err)
		require.Len(t, loaded, 2)
		assert.Equal(t, "t1", loaded[0].ID)
		assert.Equal(t, "Helpful.", loaded[0].Quote)
		assert.Equal(t, "custom", loaded[1].ID)
	})

	t.Run("rejects", func(t *testing.T) {
		cases := map[string]string{
			"empty.yaml":     "testimonials: []\n",
			"unknown.yaml":   "testimonials:\n  - author: A\n    quote: Q\n    stars: 5\n",
			"noquote.yaml":   "testimonials:\n  - author: A\n",
			"duplicate.yaml": "testimonials:\n  - id: x\n    author: A\n    quote: Q\n  - id: x\n    author: B\n    quote: R\n",
		}
		for name, content := range cases {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
			_, err := LoadTestimonials(path)
			assert.Error(t, err, name)
		}
	})
}
