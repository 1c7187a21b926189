package schedule

import (
	"clinicbook-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemsForDate(t *testing.T) {
	normalizer := newYorkNormalizer(t)

	appointments := []models.Appointment{
		{ID: "1", Date: "2025-06-27"},
		{ID: "2", Date: "2025-06-28"},
		{ID: "3", Date: "2025-06-28T02:00:00Z"},
		{ID: "4", Date: ""},
		{ID: "5", Date: "2025-06-27"},
	}

	t.Run("keeps input order across formats", func(t *testing.T) {
		got := AppointmentsForDate(normalizer, "2025-06-27", appointments)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"1", "3", "5"}, []string{got[0].GetID(), got[1].GetID(), got[2].GetID()})
	})

	t.Run("timestamp query resolves to its local day", func(t *testing.T) {
		got := AppointmentsForDate(normalizer, "2025-06-28T20:00:00-04:00", appointments)
		require.Len(t, got, 1)
		assert.Equal(t, "2", got[0].GetID())
	})

	t.Run("empty results are never nil", func(t *testing.T) {
		got := AppointmentsForDate(normalizer, "2025-01-01", appointments)
		assert.NotNil(t, got)
		assert.Empty(t, got)

		got = AppointmentsForDate(normalizer, "", appointments)
		assert.NotNil(t, got)
		assert.Empty(t, got)

		assert.NotNil(t, BlockedDatesForDate(normalizer, "2025-06-27", nil))
	})

	t.Run("blocked dates", func(t *testing.T) {
		blocked := []models.BlockedDate{
			{ID: "b1", StartTime: "2025-06-27T23:30:00-04:00"},
			{ID: "b2", StartTime: "2025-06-28T12:00:00-04:00"},
		}
		got := BlockedDatesForDate(normalizer, "2025-06-27", blocked)
		require.Len(t, got, 1)
		assert.Equal(t, "b1", got[0].GetID())
	})
}
