package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveOccurredOn(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 30, 45, 0, time.UTC)

	t.Run("vacío cae a ahora", func(t *testing.T) {
		assert.Equal(t, now, ResolveOccurredOn("", now))
		assert.Equal(t, now, ResolveOccurredOn("   ", now))
	})

	t.Run("ilegible cae a ahora", func(t *testing.T) {
		assert.Equal(t, now, ResolveOccurredOn("ayer por la tarde", now))
		assert.Equal(t, now, ResolveOccurredOn("14/03/2025", now))
	})

	t.Run("timestamp completo se respeta", func(t *testing.T) {
		got := ResolveOccurredOn("2025-03-01T08:00:00Z", now)
		assert.Equal(t, time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC), got)

		got = ResolveOccurredOn("2025-03-01 08:00:00", now)
		assert.Equal(t, time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC), got)
	})

	t.Run("fecha sin hora combina con la hora actual", func(t *testing.T) {
		got := ResolveOccurredOn("2025-03-01", now)
		assert.Equal(t, time.Date(2025, 3, 1, 10, 30, 45, 0, time.UTC), got)
	})
}
