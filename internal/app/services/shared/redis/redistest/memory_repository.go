// Package redistest provides an in-memory contracts.RedisRepository for unit
// tests. Values are stored as JSON, exactly as the real repository does.
package redistest

import (
	"bytes"
	"context"
	"sensus-service/internal/app/contracts"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

type MemoryRepository struct {
	mu   sync.Mutex
	data map[string]entry
	Now  func() time.Time
	// Err, when set, is returned by every call.
	Err error
}

var _ contracts.RedisRepository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: map[string]entry{}, Now: time.Now}
}

func (m *MemoryRepository) load(key string) (entry, bool) {
	item, ok := m.data[key]
	if !ok {
		return entry{}, false
	}
	if !item.expiresAt.IsZero() && !m.Now().Before(item.expiresAt) {
		delete(m.data, key)
		return entry{}, false
	}
	return item, true
}

func (m *MemoryRepository) expiry(exp time.Duration) time.Time {
	if exp <= 0 {
		return time.Time{}
	}
	return m.Now().Add(exp)
}

func (m *MemoryRepository) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	delete(m.data, key)
	return nil
}

func (m *MemoryRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = entry{value: raw, expiresAt: m.expiry(exp)}
	return nil
}

func (m *MemoryRepository) Scan(ctx context.Context, key string, dest interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	item, ok := m.load(key)
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(item.value, dest)
}

func (m *MemoryRepository) ScanAndDelete(ctx context.Context, key string, dest interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	item, ok := m.load(key)
	if !ok {
		return false, nil
	}
	delete(m.data, key)
	return true, json.Unmarshal(item.value, dest)
}

func (m *MemoryRepository) DeleteIfEqual(ctx context.Context, key string, value interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	item, ok := m.load(key)
	if !ok || !bytes.Equal(item.value, raw) {
		return false, nil
	}
	delete(m.data, key)
	return true, nil
}

func (m *MemoryRepository) IncrementWithTTL(ctx context.Context, key string, exp time.Duration) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	item, ok := m.load(key)
	count := 0
	if ok {
		if err := json.Unmarshal(item.value, &count); err != nil {
			return 0, err
		}
	} else {
		item.expiresAt = m.expiry(exp)
	}
	count++
	item.value, _ = json.Marshal(count)
	m.data[key] = item
	return count, nil
}

func (m *MemoryRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.load(key); ok {
		return false, nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	m.data[key] = entry{value: raw, expiresAt: m.expiry(exp)}
	return true, nil
}

// Keys returns the number of live keys.
func (m *MemoryRepository) Keys() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	live := 0
	for key := range m.data {
		if _, ok := m.load(key); ok {
			live++
		}
	}
	return live
}
