package utils

import (
	"resihub/src/clock"
	"resihub/src/config"
	"resihub/src/reservation"
	"resihub/src/types"
	"time"

	"gorm.io/gorm"
)

var Clock clock.Clock = clock.NewSystem()

// NewClock replaces the shared clock, used by tests to pin time.
func NewClock(c clock.Clock) clock.Clock {
	Clock = c
	return Clock
}

// ParseReservationRequest turns the raw form payload into a pipeline request.
// Datetimes come from datetime-local inputs or ISO strings; values that do
// not parse stay zero and fail the required-field rule.
func ParseReservationRequest(body types.CreateReservationRequestBody) reservation.Request {
	return reservation.Request{
		RoomNumber:   types.RoomKey(body.RoomNumber),
		ReserverRoom: body.ReserverRoom,
		StartTime:    parseDateTime(body.StartTime),
		EndTime:      parseDateTime(body.EndTime),
		Description:  body.Description,
		IsOpenInvite: body.IsOpenInvite,
	}
}

func parseDateTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.ParseInLocation(config.TIME_PARSE_FORMAT, s, time.Local); err == nil {
		return t
	}
	return time.Time{}
}

// VoteColumn maps a vote kind to the counter column it increments.
func VoteColumn(voteType string) string {
	if voteType == "up" {
		return "upvotes"
	}
	return "downvotes"
}

// ApplyVote bumps the counter atomically in the database.
func ApplyVote(db *gorm.DB, model any, id any, voteType string) error {
	col := VoteColumn(voteType)
	return db.
		Model(model).
		Where("id = ?", id).
		UpdateColumn(col, gorm.Expr(col+" + 1")).
		Error
}
