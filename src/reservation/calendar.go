package reservation

import (
	"resihub/src/models"
	"resihub/src/types"
	"sort"
	"time"
)

const DefaultGridDays = 7

// CellEntry pairs a reservation with its label for one calendar day, already
// split for overnight spans by PortionOnDay.
type CellEntry struct {
	Reservation models.Reservation `json:"reservation"`
	Label       string             `json:"label"`
}

// Grid is the day-by-room occupancy view. Cells[room][i] holds the entries
// for Days[i]; an empty cell means the room is free that day.
type Grid struct {
	Days  []time.Time                     `json:"days"`
	Cells map[types.RoomKey][][]CellEntry `json:"cells"`
}

// BuildGrid computes the occupancy grid for numDays consecutive days starting
// at the calendar date of start. A reservation lands in a day cell when its
// start falls within the day, its end falls within the day, or it fully spans
// it. Entries within a cell are ordered ascending by start time, ties kept in
// input order. Pure: inputs are never mutated, so the caller can re-invoke
// with a shifted start to page the window.
func BuildGrid(rooms []types.RoomKey, reservations []models.Reservation, start time.Time, numDays int) Grid {
	if numDays <= 0 {
		numDays = DefaultGridDays
	}
	first := startOfDay(start)
	days := make([]time.Time, numDays)
	for i := range days {
		days[i] = first.AddDate(0, 0, i)
	}

	byRoom := make(map[types.RoomKey][]models.Reservation, len(rooms))
	for _, r := range reservations {
		byRoom[r.RoomNumber] = append(byRoom[r.RoomNumber], r)
	}

	grid := Grid{
		Days:  days,
		Cells: make(map[types.RoomKey][][]CellEntry, len(rooms)),
	}
	for _, room := range rooms {
		cells := make([][]CellEntry, numDays)
		for i, day := range days {
			cell := []CellEntry{}
			for _, r := range byRoom[room] {
				if !intersectsDay(IntervalOf(r), day) {
					continue
				}
				cell = append(cell, CellEntry{
					Reservation: r,
					Label:       IntervalOf(r).PortionOnDay(day),
				})
			}
			sort.SliceStable(cell, func(a, b int) bool {
				return cell[a].Reservation.StartTime.Before(cell[b].Reservation.StartTime)
			})
			cells[i] = cell
		}
		grid.Cells[room] = cells
	}
	return grid
}

// intersectsDay checks the span against the day window [00:00, 24:00), so a
// reservation ending exactly at midnight belongs to the prior day only.
func intersectsDay(iv Interval, day time.Time) bool {
	dayStart := startOfDay(day)
	window := Interval{Start: dayStart, End: dayStart.AddDate(0, 0, 1)}
	return iv.Overlaps(window)
}
