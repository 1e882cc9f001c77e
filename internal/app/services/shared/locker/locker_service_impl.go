package locker

import (
	"context"
	"fmt"
	"sensus-service/internal/app/contracts"
	"sensus-service/internal/pkg/constvars"
	"sensus-service/internal/pkg/exceptions"
	"sensus-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	lockerServiceInstance contracts.LockerService
	onceLockerService     sync.Once
)

// lockService hands out short lived Redis locks. Each holder gets a random
// token and only that token can release the lock.
type lockService struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
	newToken  func() string
}

func NewLockService(repo contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	onceLockerService.Do(func() {
		lockerServiceInstance = newLockService(repo, logger)
	})
	return lockerServiceInstance
}

func newLockService(repo contracts.RedisRepository, logger *zap.Logger) *lockService {
	return &lockService{redisRepo: repo, Log: logger, newToken: uuid.NewString}
}

func (s *lockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingRedisKey, key),
	}

	token := s.newToken()
	acquired, err := s.redisRepo.TrySetNX(ctx, key, token, expiration)
	switch {
	case err != nil:
		s.Log.Error("lockService.TryLock redis unavailable", append(fields, zap.Error(err))...)
		return false, "", err
	case !acquired:
		s.Log.Info("lockService.TryLock held elsewhere", fields...)
		return false, "", nil
	}

	s.Log.Debug("lockService.TryLock acquired",
		append(fields, zap.Duration(constvars.LoggingLockExpirationTimeKey, expiration))...)
	return true, token, nil
}

// Unlock fails when the lock expired or passed to another holder in the
// meantime; the key is never removed from under that holder.
func (s *lockService) Unlock(ctx context.Context, key, token string) error {
	released, err := s.redisRepo.DeleteIfEqual(ctx, key, token)
	if err != nil {
		return err
	}
	if !released {
		return exceptions.ErrRedisUnlock(fmt.Errorf("lock %s is no longer held by this caller", key))
	}

	s.Log.Debug("lockService.Unlock released",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingRedisKey, key),
	)
	return nil
}
