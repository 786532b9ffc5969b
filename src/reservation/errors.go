package reservation

import (
	"fmt"
	"time"
)

type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

type InvalidRangeError struct{}

func (e *InvalidRangeError) Error() string {
	return "end time must be after start time"
}

type PastStartError struct{}

func (e *PastStartError) Error() string {
	return "start time cannot be in the past"
}

type DurationExceededError struct{}

func (e *DurationExceededError) Error() string {
	return fmt.Sprintf("reservations cannot be longer than %s", MaxDuration)
}

type InvalidReserverRoomError struct{}

func (e *InvalidReserverRoomError) Error() string {
	return "room number must contain only numbers (e.g., 210)"
}

// ConflictError carries the occupied range so the caller can tell the user
// when the room frees up.
type ConflictError struct {
	Start time.Time
	End   time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("room is already reserved from %s to %s",
		e.Start.Format("Mon, Jan 2 15:04"), e.End.Format("Mon, Jan 2 15:04"))
}
