package reservation

import "resihub/src/models"

// FindConflict returns the first stored reservation for the same room whose
// half-open span overlaps the candidate. A reservation that ends exactly when
// another starts is not a conflict. Linear in the number of reservations for
// the room, which is plenty at this scale.
func FindConflict(candidate Interval, existing []models.Reservation) (models.Reservation, bool) {
	for _, r := range existing {
		if r.RoomNumber != candidate.Room {
			continue
		}
		if candidate.Overlaps(IntervalOf(r)) {
			return r, true
		}
	}
	return models.Reservation{}, false
}

func HasConflict(candidate Interval, existing []models.Reservation) bool {
	_, found := FindConflict(candidate, existing)
	return found
}
