package reservation

import (
	"resihub/src/models"
	"resihub/src/types"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mkReservation(id uint, room types.RoomKey, start, end string) models.Reservation {
	s, _ := time.Parse(time.RFC3339, start)
	e, _ := time.Parse(time.RFC3339, end)
	return models.Reservation{
		ID:           id,
		RoomNumber:   room,
		ReserverRoom: "210",
		StartTime:    s,
		EndTime:      e,
		Description:  "test booking",
	}
}

func TestFindConflict(t *testing.T) {
	existing := []models.Reservation{
		mkReservation(1, types.ROOM_PARTY, "2024-06-01T20:00:00Z", "2024-06-02T02:00:00Z"),
		mkReservation(2, types.ROOM_FOYER, "2024-06-01T10:00:00Z", "2024-06-01T12:00:00Z"),
	}

	t.Run("overlap in same room", func(t *testing.T) {
		candidate := mkInterval(types.ROOM_PARTY, "2024-06-01T21:00:00Z", "2024-06-01T23:00:00Z")
		conflicting, found := FindConflict(candidate, existing)
		assert.True(t, found)
		assert.Equal(t, uint(1), conflicting.ID)
	})

	t.Run("same time different room", func(t *testing.T) {
		candidate := mkInterval(types.ROOM_ROOFTOP, "2024-06-01T21:00:00Z", "2024-06-01T23:00:00Z")
		assert.False(t, HasConflict(candidate, existing))
	})

	t.Run("back-to-back does not conflict", func(t *testing.T) {
		candidate := mkInterval(types.ROOM_FOYER, "2024-06-01T12:00:00Z", "2024-06-01T14:00:00Z")
		assert.False(t, HasConflict(candidate, existing))
	})

	t.Run("empty reservation set", func(t *testing.T) {
		candidate := mkInterval(types.ROOM_PARTY, "2024-06-01T21:00:00Z", "2024-06-01T23:00:00Z")
		assert.False(t, HasConflict(candidate, nil))
	})
}
