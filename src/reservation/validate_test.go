package reservation

import (
	"resihub/src/models"
	"resihub/src/types"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func validRequest() Request {
	return Request{
		RoomNumber:   types.ROOM_PARTY,
		ReserverRoom: "210",
		StartTime:    testNow.Add(8 * time.Hour),
		EndTime:      testNow.Add(14 * time.Hour),
		Description:  "party",
	}
}

func TestValidateAccepts(t *testing.T) {
	rec, err := Validate(validRequest(), nil, testNow)
	require.NoError(t, err)
	assert.Equal(t, types.ROOM_PARTY, rec.RoomNumber)
	assert.Equal(t, "210", rec.ReserverRoom)
	assert.Equal(t, testNow, rec.CreatedAt, "createdAt is stamped at acceptance")
	require.NotNil(t, rec.IsOpenInvite)
	assert.False(t, *rec.IsOpenInvite)
}

func TestValidateMissingFields(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*Request)
	}{
		{"room_number", func(r *Request) { r.RoomNumber = "" }},
		{"reserver_room", func(r *Request) { r.ReserverRoom = "" }},
		{"start_time", func(r *Request) { r.StartTime = time.Time{} }},
		{"end_time", func(r *Request) { r.EndTime = time.Time{} }},
		{"description", func(r *Request) { r.Description = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := Validate(req, nil, testNow)
			var missingErr *MissingFieldError
			require.ErrorAs(t, err, &missingErr)
			assert.Equal(t, tt.field, missingErr.Field)
		})
	}
}

func TestValidateUnknownRoom(t *testing.T) {
	req := validRequest()
	req.RoomNumber = "penthouse"
	_, err := Validate(req, nil, testNow)
	var missingErr *MissingFieldError
	assert.ErrorAs(t, err, &missingErr)
}

func TestValidateInvalidRange(t *testing.T) {
	req := validRequest()
	req.EndTime = req.StartTime
	_, err := Validate(req, nil, testNow)
	var rangeErr *InvalidRangeError
	assert.ErrorAs(t, err, &rangeErr)

	req.EndTime = req.StartTime.Add(-time.Hour)
	_, err = Validate(req, nil, testNow)
	assert.ErrorAs(t, err, &rangeErr)
}

func TestValidatePastStart(t *testing.T) {
	req := validRequest()
	req.StartTime = testNow.Add(-time.Hour)
	req.EndTime = testNow.Add(time.Hour)
	_, err := Validate(req, nil, testNow)
	var pastErr *PastStartError
	assert.ErrorAs(t, err, &pastErr)
}

func TestValidateStartExactlyNow(t *testing.T) {
	req := validRequest()
	req.StartTime = testNow
	req.EndTime = testNow.Add(2 * time.Hour)
	_, err := Validate(req, nil, testNow)
	assert.NoError(t, err, "start == now is allowed")
}

func TestValidateDurationExceeded(t *testing.T) {
	req := validRequest()
	req.StartTime = testNow.Add(time.Hour)
	req.EndTime = testNow.Add(27 * time.Hour)
	_, err := Validate(req, nil, testNow)
	var durationErr *DurationExceededError
	assert.ErrorAs(t, err, &durationErr)

	req.EndTime = req.StartTime.Add(24 * time.Hour)
	_, err = Validate(req, nil, testNow)
	assert.NoError(t, err, "exactly 24h is allowed")
}

func TestValidateReserverRoomFormat(t *testing.T) {
	for _, bad := range []string{"21a", "room 210", "2.10", "-210", " 210"} {
		req := validRequest()
		req.ReserverRoom = bad
		_, err := Validate(req, nil, testNow)
		var reserverErr *InvalidReserverRoomError
		assert.ErrorAs(t, err, &reserverErr, "reserverRoom %q should be rejected", bad)
	}
}

func TestValidateConflict(t *testing.T) {
	existing := []models.Reservation{
		mkReservation(1, types.ROOM_PARTY, "2024-06-01T20:00:00Z", "2024-06-02T02:00:00Z"),
	}
	req := validRequest()
	req.StartTime = time.Date(2024, 6, 1, 21, 0, 0, 0, time.UTC)
	req.EndTime = time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC)

	_, err := Validate(req, existing, testNow)
	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, existing[0].StartTime, conflictErr.Start, "conflict reports the occupied range")
	assert.Equal(t, existing[0].EndTime, conflictErr.End)
}

func TestValidateAdjacentBookings(t *testing.T) {
	existing := []models.Reservation{
		mkReservation(1, types.ROOM_PARTY, "2024-06-01T14:00:00Z", "2024-06-01T16:00:00Z"),
	}
	req := validRequest()
	req.StartTime = time.Date(2024, 6, 1, 16, 0, 0, 0, time.UTC)
	req.EndTime = time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC)

	_, err := Validate(req, existing, testNow)
	assert.NoError(t, err, "back-to-back bookings both validate")
}

// Rule order is part of the contract: a request that is both in the past and
// over the duration cap reports the past start first.
func TestValidateRuleOrder(t *testing.T) {
	req := validRequest()
	req.StartTime = testNow.Add(-48 * time.Hour)
	req.EndTime = testNow.Add(time.Hour)
	req.ReserverRoom = "not-a-number"

	_, err := Validate(req, nil, testNow)
	var pastErr *PastStartError
	assert.ErrorAs(t, err, &pastErr)
}
