package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("unset and empty use defaults", func(t *testing.T) {
		t.Setenv("CLINICBOOK_TEST_EMPTY", "")
		assert.Equal(t, "fallback", GetEnvString("CLINICBOOK_TEST_UNSET", "fallback"))
		assert.Equal(t, "fallback", GetEnvString("CLINICBOOK_TEST_EMPTY", "fallback"))
		assert.Equal(t, 7, GetEnvInt("CLINICBOOK_TEST_EMPTY", 7))
	})

	t.Run("typed values", func(t *testing.T) {
		t.Setenv("CLINICBOOK_TEST_INT", "42")
		t.Setenv("CLINICBOOK_TEST_BOOL", "true")
		t.Setenv("CLINICBOOK_TEST_DURATION", "90s")
		assert.Equal(t, 42, GetEnvInt("CLINICBOOK_TEST_INT", 0))
		assert.True(t, GetEnvBool("CLINICBOOK_TEST_BOOL", false))
		assert.Equal(t, 90*time.Second, GetEnvDuration("CLINICBOOK_TEST_DURATION", time.Second))
	})

	t.Run("unparseable values use defaults", func(t *testing.T) {
		t.Setenv("CLINICBOOK_TEST_INT", "forty-two")
		t.Setenv("CLINICBOOK_TEST_BOOL", "maybe")
		assert.Equal(t, 3, GetEnvInt("CLINICBOOK_TEST_INT", 3))
		assert.False(t, GetEnvBool("CLINICBOOK_TEST_BOOL", false))
	})
}
