package reservation

import (
	"fmt"
	"resihub/src/models"
	"resihub/src/types"
	"time"
)

// Interval is the half-open time span [Start, End) a reservation occupies in
// one room. All predicates are pure.
type Interval struct {
	Room  types.RoomKey
	Start time.Time
	End   time.Time
}

func IntervalOf(r models.Reservation) Interval {
	return Interval{Room: r.RoomNumber, Start: r.StartTime, End: r.EndTime}
}

// Overlaps reports whether two half-open spans intersect. Touching endpoints
// do not overlap, so back-to-back bookings are fine.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// ContainsInstant reports whether t falls inside [Start, End).
func (iv Interval) ContainsInstant(t time.Time) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}

// SpansMultipleDays reports whether the span crosses at least one midnight.
func (iv Interval) SpansMultipleDays() bool {
	return dateKey(iv.Start) != dateKey(iv.End)
}

// PortionOnDay renders the part of the span visible on the given calendar
// day: the full range for a same-day booking, a start or end marker on the
// edge days of an overnight one, "All day" for days fully covered, and ""
// when the span does not touch the day at all.
func (iv Interval) PortionOnDay(day time.Time) string {
	startDay := dateKey(iv.Start)
	endDay := dateKey(iv.End)
	cellDay := dateKey(day)

	if startDay == endDay {
		if cellDay != startDay {
			return ""
		}
		return fmt.Sprintf("%s–%s", iv.Start.Format("15:04"), iv.End.Format("15:04"))
	}
	switch {
	case cellDay == startDay:
		return fmt.Sprintf("%s →", iv.Start.Format("15:04"))
	case cellDay == endDay:
		return fmt.Sprintf("→ %s", iv.End.Format("15:04"))
	case cellDay > startDay && cellDay < endDay:
		return "All day"
	}
	return ""
}

// dateKey collapses an instant to its calendar date, comparable with < and ==.
func dateKey(t time.Time) string {
	return t.Format("20060102")
}

// startOfDay truncates an instant to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
