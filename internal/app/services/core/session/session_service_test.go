package session

import (
	"context"
	"sensus-service/internal/app/models"
	"sensus-service/internal/app/services/shared/redis/redistest"
	"sensus-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestSessionService(repo *redistest.MemoryRepository, now time.Time) *sessionService {
	repo.Now = func() time.Time { return now }
	return &sessionService{
		RedisRepository: repo,
		Log:             zap.NewNop(),
		now:             func() time.Time { return now },
	}
}

func TestSessionService_Lifecycle(t *testing.T) {
	now := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	repo := redistest.NewMemoryRepository()
	svc := newTestSessionService(repo, now)
	ctx := context.Background()

	user := &models.User{ID: "u1", Email: "ana@example.com", Name: "Ana"}
	created, err := svc.CreateSession(ctx, user, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "u1", created.UserID)
	assert.Equal(t, now.Add(time.Hour), created.ExpiresAt)

	found, err := svc.GetSession(ctx, created.SessionID)
	require.NoError(t, err)
	assert.Equal(t, created.SessionID, found.SessionID)
	assert.Equal(t, "Ana", found.Name)

	require.NoError(t, svc.DeleteSession(ctx, created.SessionID))

	_, err = svc.GetSession(ctx, created.SessionID)
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, 401, customErr.StatusCode)
}

func TestSessionService_ExpiredSession(t *testing.T) {
	now := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	repo := redistest.NewMemoryRepository()
	svc := newTestSessionService(repo, now)

	created, err := svc.CreateSession(context.Background(), &models.User{ID: "u1"}, time.Minute)
	require.NoError(t, err)

	svc.now = func() time.Time { return now.Add(2 * time.Minute) }
	_, err = svc.GetSession(context.Background(), created.SessionID)
	assert.Error(t, err)
}
