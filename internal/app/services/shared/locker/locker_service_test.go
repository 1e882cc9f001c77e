package locker

import (
	"context"
	"errors"
	"sensus-service/internal/app/services/shared/redis/redistest"
	"sensus-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLockService_TryLockAndUnlock(t *testing.T) {
	repo := redistest.NewMemoryRepository()
	svc := newLockService(repo, zap.NewNop())
	ctx := context.Background()

	acquired, token, err := svc.TryLock(ctx, "lock:signup:ana@example.com", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
	assert.NotEmpty(t, token)

	again, _, err := svc.TryLock(ctx, "lock:signup:ana@example.com", time.Minute)
	require.NoError(t, err)
	assert.False(t, again, "second holder must not acquire")

	require.NoError(t, svc.Unlock(ctx, "lock:signup:ana@example.com", token))
	assert.Equal(t, 0, repo.Keys())

	acquired, _, err = svc.TryLock(ctx, "lock:signup:ana@example.com", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired, "released lock can be taken again")
}

func TestLockService_UnlockWithWrongToken(t *testing.T) {
	repo := redistest.NewMemoryRepository()
	svc := newLockService(repo, zap.NewNop())
	ctx := context.Background()

	acquired, _, err := svc.TryLock(ctx, "lock:a", time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)

	err = svc.Unlock(ctx, "lock:a", "someone-else")
	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, 1, repo.Keys())
}

func TestLockService_UnlockAfterExpiryLeavesNewHolder(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	repo := redistest.NewMemoryRepository()
	repo.Now = func() time.Time { return now }
	svc := newLockService(repo, zap.NewNop())
	tokens := []string{"first", "second"}
	svc.newToken = func() string {
		token := tokens[0]
		tokens = tokens[1:]
		return token
	}
	ctx := context.Background()

	_, first, err := svc.TryLock(ctx, "lock:b", time.Second)
	require.NoError(t, err)

	now = now.Add(2 * time.Second)
	acquired, second, err := svc.TryLock(ctx, "lock:b", time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)
	assert.Equal(t, "second", second)

	assert.Error(t, svc.Unlock(ctx, "lock:b", first))
	assert.Equal(t, 1, repo.Keys(), "the new holder keeps its lock")
}

func TestLockService_RedisDown(t *testing.T) {
	repo := redistest.NewMemoryRepository()
	repo.Err = errors.New("connection refused")
	svc := newLockService(repo, zap.NewNop())

	acquired, token, err := svc.TryLock(context.Background(), "lock:c", time.Minute)
	assert.Error(t, err)
	assert.False(t, acquired)
	assert.Empty(t, token)

	assert.Error(t, svc.Unlock(context.Background(), "lock:c", "token"))
}
