package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfig_LockerIsOptIn(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		t.Setenv("LOCKER_ENABLED", "")

		internalConfig := NewInternalConfig()

		assert.False(t, internalConfig.Locker.Enabled)
		assert.Equal(t, 10, internalConfig.Locker.ExpirationInSeconds)
	})

	t.Run("enabled from env", func(t *testing.T) {
		t.Setenv("LOCKER_ENABLED", "true")
		t.Setenv("LOCKER_EXPIRATION_IN_SECONDS", "4")

		internalConfig := NewInternalConfig()

		assert.True(t, internalConfig.Locker.Enabled)
		assert.Equal(t, 4, internalConfig.Locker.ExpirationInSeconds)
	})
}
