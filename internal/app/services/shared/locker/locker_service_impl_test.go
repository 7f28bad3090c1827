package locker

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryRedis struct {
	mu      sync.Mutex
	values  map[string]string
	failSet error
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{values: map[string]string{}}
}

func (m *memoryRedis) SetNX(ctx context.Context, key, value string, expiration time.Duration) (bool, error) {
	if m.failSet != nil {
		return false, m.failSet
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.values[key]; ok {
		return false, nil
	}
	m.values[key] = value
	return true, nil
}

func (m *memoryRedis) CompareAndDelete(ctx context.Context, key, expected string) (contracts.KeyRelease, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.values[key]
	switch {
	case !ok:
		return contracts.KeyMissing, nil
	case current != expected:
		return contracts.KeyHeldByOther, nil
	}
	delete(m.values, key)
	return contracts.KeyReleased, nil
}

func TestLockService(t *testing.T) {
	ctx := context.Background()

	t.Run("second holder is refused until release", func(t *testing.T) {
		store := newMemoryRedis()
		locker := NewLockService(store, zap.NewNop())

		acquired, value, err := locker.TryLock(ctx, "lock:a", time.Second)
		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, value)

		acquired, _, err = locker.TryLock(ctx, "lock:a", time.Second)
		require.NoError(t, err)
		assert.False(t, acquired)

		require.NoError(t, locker.Unlock(ctx, "lock:a", value))

		acquired, _, err = locker.TryLock(ctx, "lock:a", time.Second)
		require.NoError(t, err)
		assert.True(t, acquired)
	})

	t.Run("foreign value cannot release", func(t *testing.T) {
		store := newMemoryRedis()
		locker := NewLockService(store, zap.NewNop())

		_, _, err := locker.TryLock(ctx, "lock:b", time.Second)
		require.NoError(t, err)

		err = locker.Unlock(ctx, "lock:b", "someone-else")
		require.Error(t, err)
		assert.Equal(t, exceptions.KindInternal, exceptions.KindOf(err))
		assert.ErrorIs(t, err, errLockNotOwned)

		acquired, _, err := locker.TryLock(ctx, "lock:b", time.Second)
		require.NoError(t, err)
		assert.False(t, acquired, "a refused release must leave the lock in place")
	})

	t.Run("expired lock unlocks silently", func(t *testing.T) {
		locker := NewLockService(newMemoryRedis(), zap.NewNop())
		assert.NoError(t, locker.Unlock(ctx, "lock:c", "gone"))
	})

	t.Run("store failure is returned", func(t *testing.T) {
		store := newMemoryRedis()
		store.failSet = errors.New("connection refused")
		locker := NewLockService(store, zap.NewNop())

		acquired, _, err := locker.TryLock(ctx, "lock:d", time.Second)
		assert.Error(t, err)
		assert.False(t, acquired)
	})
}
