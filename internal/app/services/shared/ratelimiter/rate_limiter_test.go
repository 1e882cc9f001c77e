package ratelimiter

import (
	"context"
	"sensus-service/internal/app/services/shared/redis/redistest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestResourceLimiter_FixedWindow(t *testing.T) {
	limiter := NewResourceLimiter(redistest.NewMemoryRepository(), zap.NewNop())
	now := time.Date(2026, 3, 1, 10, 0, 30, 0, time.UTC)
	input := &ApplyResourceLimiterInput{
		ResourceName:      "Ana@Example.com",
		LimiterGroupName:  "password_reset",
		WindowDurationSec: 60,
		MaxQuota:          2,
		NowUTC:            now,
	}

	for i := 0; i < 2; i++ {
		out, err := limiter.ApplyResourceLimiter(context.Background(), input)
		require.NoError(t, err)
		assert.True(t, out.Allowed)
	}

	out, err := limiter.ApplyResourceLimiter(context.Background(), input)
	require.NoError(t, err)
	assert.False(t, out.Allowed)
	assert.Equal(t, 31, out.RetryAfterSecs)

	input.NowUTC = now.Add(time.Minute)
	out, err = limiter.ApplyResourceLimiter(context.Background(), input)
	require.NoError(t, err)
	assert.True(t, out.Allowed, "a new window resets the count")
}

func TestResourceLimiter_Unlimited(t *testing.T) {
	limiter := NewResourceLimiter(redistest.NewMemoryRepository(), zap.NewNop())
	out, err := limiter.ApplyResourceLimiter(context.Background(), &ApplyResourceLimiterInput{
		ResourceName:     "x",
		LimiterGroupName: "y",
	})
	require.NoError(t, err)
	assert.True(t, out.Allowed)
}

func TestResourceLimiter_NilInput(t *testing.T) {
	limiter := NewResourceLimiter(redistest.NewMemoryRepository(), zap.NewNop())
	_, err := limiter.ApplyResourceLimiter(context.Background(), nil)
	assert.Error(t, err)
}
