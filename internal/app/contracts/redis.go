package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	// Scan decodes the JSON stored at key into dest and reports whether the
	// key existed.
	Scan(ctx context.Context, key string, dest interface{}) (bool, error)
	// ScanAndDelete is Scan plus an atomic delete of the key. Only one caller
	// ever observes a given value.
	ScanAndDelete(ctx context.Context, key string, dest interface{}) (bool, error)
	// DeleteIfEqual removes key only while it still holds value and reports
	// whether it did.
	DeleteIfEqual(ctx context.Context, key string, value interface{}) (bool, error)
	IncrementWithTTL(ctx context.Context, key string, exp time.Duration) (int, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
}
