package booking

import (
	"fmt"
	"time"
)

// BookableDates returns the dates open for booking: every date strictly
// after today within the next horizonDays days, excluding the closed
// weekday. The returned dates are normalized to midnight in today's
// location.
func BookableDates(today time.Time, horizonDays int, closed time.Weekday) []time.Time {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	dates := make([]time.Time, 0, horizonDays)
	for i := 1; i <= horizonDays; i++ {
		d := start.AddDate(0, 0, i)
		if d.Weekday() == closed {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}

// SlotGrid returns the fixed set of appointment start times as "HH:MM"
// labels, from openHour:00 inclusive to closeHour:00 exclusive in
// stepMinutes increments. Misconfigured bounds yield an empty grid.
func SlotGrid(openHour, closeHour, stepMinutes int) []string {
	if stepMinutes <= 0 || closeHour <= openHour {
		return nil
	}

	var grid []string
	for m := openHour * 60; m < closeHour*60; m += stepMinutes {
		grid = append(grid, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return grid
}

// AvailableSlots returns grid minus taken, preserving grid order. Neither
// input is modified.
func AvailableSlots(grid, taken []string) []string {
	if len(taken) == 0 {
		out := make([]string, len(grid))
		copy(out, grid)
		return out
	}

	takenSet := make(map[string]bool, len(taken))
	for _, t := range taken {
		takenSet[t] = true
	}

	out := make([]string, 0, len(grid))
	for _, slot := range grid {
		if !takenSet[slot] {
			out = append(out, slot)
		}
	}
	return out
}
