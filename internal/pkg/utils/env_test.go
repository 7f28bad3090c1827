package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("CLINIC_TEST_INT", "42")
	t.Setenv("CLINIC_TEST_BAD_INT", "forty-two")
	t.Setenv("CLINIC_TEST_BLANK", "   ")
	t.Setenv("CLINIC_TEST_RATIO", "0.25")
	t.Setenv("CLINIC_TEST_BOOL", "true")

	assert.Equal(t, 42, GetEnvInt("CLINIC_TEST_INT", 1))
	assert.Equal(t, 1, GetEnvInt("CLINIC_TEST_BAD_INT", 1))
	assert.Equal(t, "fallback", GetEnvString("CLINIC_TEST_BLANK", "fallback"))
	assert.Equal(t, "fallback", GetEnvString("CLINIC_TEST_UNSET", "fallback"))
	assert.Equal(t, 0.25, GetEnvFloat("CLINIC_TEST_RATIO", 0.5))
	assert.Equal(t, uint32(42), GetEnvUint32("CLINIC_TEST_INT", 5))
	assert.Equal(t, int64(42), GetEnvInt64("CLINIC_TEST_INT", 5))
	assert.True(t, GetEnvBool("CLINIC_TEST_BOOL", false))
}
