package reservation

import (
	"resihub/src/models"
	"sort"
	"time"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusUpcoming Status = "upcoming"
	StatusPast     Status = "past"
)

// Classify assigns exactly one status for any reservation and any now:
// active while [start, end) contains now, past once end has been reached,
// upcoming before start. Recomputed on every read since now moves.
func Classify(r models.Reservation, now time.Time) Status {
	if !now.Before(r.EndTime) {
		return StatusPast
	}
	if now.Before(r.StartTime) {
		return StatusUpcoming
	}
	return StatusActive
}

// Views are the three read-side partitions handed to the UI.
type Views struct {
	Active   []models.Reservation `json:"active"`
	Upcoming []models.Reservation `json:"upcoming"`
	Past     []models.Reservation `json:"past"`
}

// Split partitions reservations by status and orders each view: active and
// upcoming ascending by start time, past descending by end time. The Status
// field of each returned record is filled in; the input slice is not touched.
func Split(reservations []models.Reservation, now time.Time) Views {
	views := Views{
		Active:   []models.Reservation{},
		Upcoming: []models.Reservation{},
		Past:     []models.Reservation{},
	}
	for _, r := range reservations {
		status := Classify(r, now)
		r.Status = string(status)
		switch status {
		case StatusActive:
			views.Active = append(views.Active, r)
		case StatusUpcoming:
			views.Upcoming = append(views.Upcoming, r)
		case StatusPast:
			views.Past = append(views.Past, r)
		}
	}
	sort.SliceStable(views.Active, func(i, j int) bool {
		return views.Active[i].StartTime.Before(views.Active[j].StartTime)
	})
	sort.SliceStable(views.Upcoming, func(i, j int) bool {
		return views.Upcoming[i].StartTime.Before(views.Upcoming[j].StartTime)
	})
	sort.SliceStable(views.Past, func(i, j int) bool {
		return views.Past[i].EndTime.After(views.Past[j].EndTime)
	})
	return views
}

// PagePast windows the past partition with plain offset/limit slicing.
// A limit of 0 means no limit.
func PagePast(past []models.Reservation, offset, limit int) []models.Reservation {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(past) {
		return []models.Reservation{}
	}
	end := len(past)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return past[offset:end]
}
