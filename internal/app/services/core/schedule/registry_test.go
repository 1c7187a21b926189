package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	normalizer := newYorkNormalizer(t)
	built := map[string]int{}
	factory := func(sessionID string) *ViewModel {
		built[sessionID]++
		return NewViewModel(Config{Normalizer: normalizer})
	}

	t.Run("one view-model per session", func(t *testing.T) {
		registry := NewRegistry(factory, 0)

		first := registry.ForSession("s1")
		assert.Same(t, first, registry.ForSession("s1"))
		assert.NotSame(t, first, registry.ForSession("s2"))
		assert.Equal(t, 2, registry.Len())
	})

	t.Run("evict drops the view-model", func(t *testing.T) {
		registry := NewRegistry(factory, 0)

		first := registry.ForSession("s3")
		registry.Evict("s3")
		assert.Equal(t, 0, registry.Len())
		assert.NotSame(t, first, registry.ForSession("s3"))
		assert.Equal(t, 2, built["s3"])
	})

	t.Run("idle sessions are swept", func(t *testing.T) {
		registry := NewRegistry(factory, 10*time.Minute)
		clock := time.Date(2025, time.June, 27, 9, 0, 0, 0, time.UTC)
		registry.now = func() time.Time { return clock }

		registry.ForSession("idle")
		registry.ForSession("busy")

		clock = clock.Add(6 * time.Minute)
		registry.ForSession("busy")

		clock = clock.Add(6 * time.Minute)
		registry.ForSession("busy")

		assert.Equal(t, 1, registry.Len())
	})
}
