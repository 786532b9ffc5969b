package reservation

import (
	"regexp"
	"resihub/src/models"
	"resihub/src/types"
	"time"
)

// MaxDuration caps a single reservation; longer stays are split into
// separate bookings by the residents themselves.
const MaxDuration = 24 * time.Hour

var reserverRoomPattern = regexp.MustCompile(`^\d+$`)

// Request is a reservation submission after datetime parsing but before any
// business rule has been applied. Zero-valued times count as missing.
type Request struct {
	RoomNumber   types.RoomKey
	ReserverRoom string
	StartTime    time.Time
	EndTime      time.Time
	Description  string
	IsOpenInvite bool
}

// Validate applies the business rules in a fixed order and short-circuits on
// the first violation. On success it returns the accepted record with
// CreatedAt stamped to now; persistence is the caller's job. The rule order
// is part of the contract: required fields, range, past start, duration,
// reserver room format, and conflict last.
func Validate(req Request, existing []models.Reservation, now time.Time) (models.Reservation, error) {
	if req.RoomNumber == "" || !req.RoomNumber.Valid() {
		return models.Reservation{}, &MissingFieldError{Field: "room_number"}
	}
	if req.ReserverRoom == "" {
		return models.Reservation{}, &MissingFieldError{Field: "reserver_room"}
	}
	if req.StartTime.IsZero() {
		return models.Reservation{}, &MissingFieldError{Field: "start_time"}
	}
	if req.EndTime.IsZero() {
		return models.Reservation{}, &MissingFieldError{Field: "end_time"}
	}
	if req.Description == "" {
		return models.Reservation{}, &MissingFieldError{Field: "description"}
	}
	if !req.EndTime.After(req.StartTime) {
		return models.Reservation{}, &InvalidRangeError{}
	}
	if req.StartTime.Before(now) {
		return models.Reservation{}, &PastStartError{}
	}
	if req.EndTime.Sub(req.StartTime) > MaxDuration {
		return models.Reservation{}, &DurationExceededError{}
	}
	if !reserverRoomPattern.MatchString(req.ReserverRoom) {
		return models.Reservation{}, &InvalidReserverRoomError{}
	}
	candidate := Interval{Room: req.RoomNumber, Start: req.StartTime, End: req.EndTime}
	if conflicting, found := FindConflict(candidate, existing); found {
		return models.Reservation{}, &ConflictError{Start: conflicting.StartTime, End: conflicting.EndTime}
	}

	isOpenInvite := req.IsOpenInvite
	return models.Reservation{
		RoomNumber:   req.RoomNumber,
		ReserverRoom: req.ReserverRoom,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Description:  req.Description,
		IsOpenInvite: &isOpenInvite,
		CreatedAt:    now,
	}, nil
}
